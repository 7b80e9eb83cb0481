package schedule

import "context"

// Repository defines data access for schedules.
type Repository interface {
	// List returns all schedules; with activeOnly, only the selectable ones.
	List(ctx context.Context, activeOnly bool) ([]*Schedule, error)

	// ReplaceAll deletes every schedule and inserts the given set in one
	// transaction.
	ReplaceAll(ctx context.Context, schedules []*Schedule) error
}
