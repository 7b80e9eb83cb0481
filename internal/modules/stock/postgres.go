package stock

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL stock repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Get(ctx context.Context) (*Stock, error) {
	s := &Stock{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, maple_count, updated_at FROM stock LIMIT 1`).
		Scan(&s.ID, &s.MapleCount, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) Create(ctx context.Context, count int) (*Stock, error) {
	s := &Stock{ID: uuid.New(), MapleCount: count, UpdatedAt: time.Now()}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO stock (id, maple_count, updated_at) VALUES ($1, $2, $3)`,
		s.ID, s.MapleCount, s.UpdatedAt)
	if err != nil {
		// the singleton index rejects a second row when two admins race past
		// the service's existence check
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return nil, apperr.Conflictf("el registro de stock ya existe")
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresRepo) SetCount(ctx context.Context, count int) (*Stock, error) {
	s := &Stock{}
	err := r.db.QueryRowContext(ctx, `
		UPDATE stock SET maple_count=$1, updated_at=$2
		WHERE id = (SELECT id FROM stock LIMIT 1)
		RETURNING id, maple_count, updated_at`,
		count, time.Now()).Scan(&s.ID, &s.MapleCount, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
