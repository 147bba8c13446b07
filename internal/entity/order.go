package domain

// Order line status as the upstream order service expects it. The
// storefront only ever submits pending lines; everything after that is the
// order service's lifecycle.
const StatusPending = "Pending"

// OrderLine is one cart line flattened for submission. Every line from a
// single checkout shares the same remarks code so the seller can match the
// out-of-band payment to the whole order.
type OrderLine struct {
	ProductTitle string `json:"productTitle"`
	PackageLabel string `json:"packageLabel"`
	AccountID    string `json:"uid"`
	ServerID     string `json:"serverId"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"price"`
	Total        int64  `json:"total"`
	RemarksCode  string `json:"remarksCode"`
	Status       string `json:"status"`
}

// OrderPayload is what one submit attempt sends upstream. Built once per
// attempt, never mutated afterwards.
type OrderPayload struct {
	BuyerID string      `json:"user_id"`
	Lines   []OrderLine `json:"orders"`
}

// BuildOrderPayload flattens cart items into order lines, stamping each
// with the checkout session's remarks code.
func BuildOrderPayload(buyerID string, items []LineItem, code string) OrderPayload {
	lines := make([]OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, OrderLine{
			ProductTitle: it.ProductTitle,
			PackageLabel: it.PackageLabel,
			AccountID:    it.AccountID,
			ServerID:     it.ServerID,
			Quantity:     it.Quantity,
			UnitPrice:    it.UnitPrice,
			Total:        LineTotal(it),
			RemarksCode:  code,
			Status:       StatusPending,
		})
	}
	return OrderPayload{BuyerID: buyerID, Lines: lines}
}
