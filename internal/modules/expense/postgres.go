package expense

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL expense repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, e *Expense) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO expenses (id, date, description, amount, category, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.Date, e.Description, e.Amount, e.Category, e.UserID)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Expense, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.id, e.date, e.description, e.amount, e.category, e.user_id,
		       u.name, e.created_at
		FROM expenses e
		JOIN users u ON u.id = e.user_id
		ORDER BY e.date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []*Expense{}
	for rows.Next() {
		e := &Expense{}
		if err := rows.Scan(&e.ID, &e.Date, &e.Description, &e.Amount,
			&e.Category, &e.UserID, &e.UserName, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
