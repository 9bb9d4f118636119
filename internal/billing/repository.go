package billing

import "context"

// Repository defines all database operations for bills.
type Repository interface {

	// Create inserts a bill together with its line items.
	Create(ctx context.Context, bill *Bill) error

	// GetByOrderID loads a bill and its items.
	GetByOrderID(ctx context.Context, orderID string) (*Bill, error)

	// Update persists the mutable bill fields (discount, tip,
	// payment method, phone, totals, paid flag).
	Update(ctx context.Context, bill *Bill) error
}
