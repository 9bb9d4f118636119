package billing

import "time"

// Payment methods accepted at the counter.
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentWallet = "wallet"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet:
		return true
	}
	return false
}

// OrderItem is one line on a bill.
type OrderItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// LineTotal is price × quantity.
func (o OrderItem) LineTotal() float64 {
	return o.Price * float64(o.Quantity)
}

// Bill is the session state for one table's order.
type Bill struct {
	OrderID       string      `json:"order_id"`
	Table         string      `json:"table"`
	Items         []OrderItem `json:"items"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Discount      float64     `json:"discount"`
	TipPercent    float64     `json:"tip_percent"`
	Tip           float64     `json:"tip"`
	Total         float64     `json:"total"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	Paid          bool        `json:"paid"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// SumItems returns the subtotal of the current items.
func SumItems(items []OrderItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.LineTotal()
	}
	return sum
}

// Recalculate refreshes subtotal, tax, tip and total from the bill's
// items, discount and tip percentage. Safe to call repeatedly.
func (b *Bill) Recalculate() {
	b.Subtotal = SumItems(b.Items)

	t := Calculate(b.Subtotal, b.Discount, b.TipPercent)
	b.Tax = t.Tax
	b.Tip = t.Tip
	b.Total = t.Total
}
