package schedule

import (
	"context"
	"database/sql"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL schedule repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) List(ctx context.Context, activeOnly bool) ([]*Schedule, error) {
	query := `SELECT id, day_of_week, start_time, end_time, type, is_active FROM schedules`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY day_of_week, start_time`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedules := []*Schedule{}
	for rows.Next() {
		s := &Schedule{}
		if err := rows.Scan(&s.ID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.Type, &s.IsActive); err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, rows.Err()
}

func (r *postgresRepo) ReplaceAll(ctx context.Context, schedules []*Schedule) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM schedules`); err != nil {
		return fmt.Errorf("delete schedules: %w", err)
	}
	for _, s := range schedules {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO schedules (id, day_of_week, start_time, end_time, type, is_active)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			s.ID, s.DayOfWeek, s.StartTime, s.EndTime, s.Type, s.IsActive); err != nil {
			return fmt.Errorf("insert schedule: %w", err)
		}
	}
	return tx.Commit()
}
