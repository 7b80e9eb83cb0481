package stock

import "context"

// Repository defines data access for the stock singleton.
type Repository interface {
	// Get retrieves the stock row, or sql.ErrNoRows if it was never created.
	Get(ctx context.Context) (*Stock, error)

	// Create inserts the singleton row with an initial count.
	Create(ctx context.Context, count int) (*Stock, error)

	// SetCount overwrites the available count.
	SetCount(ctx context.Context, count int) (*Stock, error)
}
