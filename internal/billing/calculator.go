package billing

// TaxRate is the GST fraction applied to the gross subtotal.
// Tax and tip are both computed from the gross subtotal; the
// discount is applied last and never shrinks the taxable base.
const TaxRate = 0.12

// Totals is the derived money breakdown for a bill.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Tip      float64 `json:"tip"`
	Total    float64 `json:"total"`
}

// Calculate derives tax, tip and total from a subtotal, a flat
// discount amount and a tip percentage.
//
// Pure arithmetic: no I/O, no state, identical inputs always give
// identical outputs. Negative tip input is treated as 0 — a tip is
// never subtracted. A discount larger than subtotal+tax is allowed
// here; rejecting it is the caller's validation concern.
func Calculate(subtotal, discount, tipPercent float64) Totals {
	if tipPercent < 0 {
		tipPercent = 0
	}

	tax := subtotal * TaxRate
	tip := subtotal * (tipPercent / 100)

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Tip:      tip,
		Total:    subtotal - discount + tax + tip,
	}
}
