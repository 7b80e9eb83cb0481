package production

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL production repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, rec *Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO egg_productions (id, date, quantity, user_id)
		VALUES ($1, $2, $3, $4)`,
		rec.ID, rec.Date, rec.Quantity, rec.UserID)
	return err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, date, quantity, user_id, created_at
		FROM egg_productions ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []*Record{}
	for rows.Next() {
		rec := &Record{}
		if err := rows.Scan(&rec.ID, &rec.Date, &rec.Quantity, &rec.UserID, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
