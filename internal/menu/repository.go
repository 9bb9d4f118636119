package menu

import "context"

// Repository defines all database operations for the catalog.
type Repository interface {

	// List returns every catalog item ordered by name.
	List(ctx context.Context) ([]MenuItem, error)

	GetByID(ctx context.Context, id string) (*MenuItem, error)

	Create(ctx context.Context, item *MenuItem) error

	Update(ctx context.Context, item *MenuItem) error

	Delete(ctx context.Context, id string) error

	SetAvailability(ctx context.Context, id string, available bool) error
}
