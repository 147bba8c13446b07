package domain

// Package is a purchasable denomination of a product ("500 Diamonds").
type Package struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Price int64  `json:"price"` // minor currency units
}

// Product is a catalog entry: a game or subscription with its packages.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Packages    []Package `json:"packages"`
}

// Identity is the authenticated buyer as supplied by the external session
// service. A zero Identity means nobody is logged in.
type Identity struct {
	ID       string
	Username string
	Email    string
}

// IsZero reports whether no buyer is attached.
func (id Identity) IsZero() bool { return id.ID == "" }
