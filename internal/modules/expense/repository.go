package expense

import "context"

// Repository defines data access for expenses.
type Repository interface {
	// Create persists a new expense.
	Create(ctx context.Context, e *Expense) error

	// List returns all expenses with the author's name, newest first.
	List(ctx context.Context) ([]*Expense, error)
}
