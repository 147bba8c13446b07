package domain

// LineItem is one purchasable package dropped into the cart. Unit price is
// captured at add time; later catalog price changes never touch existing
// cart contents. JSON tags are the persisted snapshot layout and must stay
// stable across releases.
type LineItem struct {
	ID           int64  `json:"id"`
	ProductID    string `json:"productId"`
	ProductTitle string `json:"productTitle"`
	ProductImage string `json:"productImage"`
	PackageID    string `json:"packageId"`
	PackageLabel string `json:"packageLabel"`
	UnitPrice    int64  `json:"unitPrice"` // minor currency units
	Quantity     int    `json:"quantity"`  // always >= 1
	AccountID    string `json:"accountId"`
	ServerID     string `json:"serverId,omitempty"`
}

// LineTotal is the price of a single line: unit price times quantity.
// Integer arithmetic only, so long carts accumulate no rounding drift.
func LineTotal(it LineItem) int64 {
	return it.UnitPrice * int64(it.Quantity)
}

// CartTotal sums LineTotal over all items. An empty cart totals 0.
func CartTotal(items []LineItem) int64 {
	var sum int64
	for _, it := range items {
		sum += LineTotal(it)
	}
	return sum
}
