package settings

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL settings repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Get(ctx context.Context) (*Settings, error) {
	s := &Settings{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, business_name, price_per_maple, price_per_half_dozen,
		       delivery_fee, free_delivery_threshold, minimum_order_quantity,
		       created_at, updated_at
		FROM settings LIMIT 1`).Scan(
		&s.ID, &s.BusinessName, &s.PricePerMaple, &s.PricePerHalfDozen,
		&s.DeliveryFee, &s.FreeDeliveryThreshold, &s.MinimumOrderQuantity,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}

	s.PriceTiers, err = r.listTiers(ctx, s.ID)
	return s, err
}

// Update writes the scalar fields and, when tiers is non-nil, drops and
// recreates the whole tier set inside one transaction.
func (r *postgresRepo) Update(ctx context.Context, s *Settings, tiers *[]PriceTierInput) (*Settings, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		UPDATE settings
		SET business_name=$1, price_per_maple=$2, price_per_half_dozen=$3,
		    delivery_fee=$4, free_delivery_threshold=$5, minimum_order_quantity=$6,
		    updated_at=$7
		WHERE id=$8`,
		s.BusinessName, s.PricePerMaple, s.PricePerHalfDozen,
		s.DeliveryFee, s.FreeDeliveryThreshold, s.MinimumOrderQuantity,
		time.Now(), s.ID)
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	if tiers != nil {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM price_tiers WHERE settings_id=$1`, s.ID); err != nil {
			return nil, fmt.Errorf("delete price tiers: %w", err)
		}
		for _, t := range *tiers {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO price_tiers (id, settings_id, min_quantity, price)
				VALUES ($1, $2, $3, $4)`,
				uuid.New(), s.ID, t.MinQuantity, t.Price); err != nil {
				return nil, fmt.Errorf("insert price tier: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func (r *postgresRepo) listTiers(ctx context.Context, settingsID uuid.UUID) ([]PriceTier, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, min_quantity, price
		FROM price_tiers WHERE settings_id=$1
		ORDER BY min_quantity ASC`, settingsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tiers := []PriceTier{}
	for rows.Next() {
		var t PriceTier
		if err := rows.Scan(&t.ID, &t.MinQuantity, &t.Price); err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}
