package production

import "context"

// Repository defines data access for production records.
type Repository interface {
	// Create persists a new record.
	Create(ctx context.Context, rec *Record) error

	// List returns all records, newest first.
	List(ctx context.Context) ([]*Record, error)
}
