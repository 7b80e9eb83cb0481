package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/IWeppler/el-manantial/internal/modules/schedule"
	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetPricingConfig(ctx context.Context) (*PricingConfig, error) {
	cfg := &PricingConfig{}
	err := r.db.QueryRowContext(ctx, `
		SELECT price_per_maple, delivery_fee, free_delivery_threshold, minimum_order_quantity
		FROM settings LIMIT 1`).Scan(
		&cfg.PricePerMaple, &cfg.DeliveryFee, &cfg.FreeDeliveryThreshold, &cfg.MinimumOrderQuantity)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT pt.min_quantity, pt.price
		FROM price_tiers pt
		JOIN settings s ON s.id = pt.settings_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var t PriceTier
		if err := rows.Scan(&t.MinQuantity, &t.Price); err != nil {
			return nil, err
		}
		cfg.Tiers = append(cfg.Tiers, t)
	}
	return cfg, rows.Err()
}

func (r *postgresRepo) GetStockCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT maple_count FROM stock LIMIT 1`).Scan(&count)
	return count, err
}

func (r *postgresRepo) GetSchedule(ctx context.Context, id uuid.UUID) (*schedule.Schedule, error) {
	s := &schedule.Schedule{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, day_of_week, start_time, end_time, type, is_active
		FROM schedules WHERE id=$1`, id).Scan(
		&s.ID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.Type, &s.IsActive)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// CreateOrder reserves stock and inserts the order inside one transaction.
// The stock row is locked FOR UPDATE so concurrent placements serialize on it
// and the count can never go negative.
func (r *postgresRepo) CreateOrder(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var available int
	err = tx.QueryRowContext(ctx,
		`SELECT maple_count FROM stock LIMIT 1 FOR UPDATE`).Scan(&available)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.Conflictf("el registro de stock no está inicializado")
	}
	if err != nil {
		return fmt.Errorf("lock stock: %w", err)
	}
	if available < o.MapleQuantity {
		return apperr.Conflictf("no hay stock suficiente")
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE stock SET maple_count = maple_count - $1, updated_at = $2`,
		o.MapleQuantity, time.Now()); err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO orders
		  (id, user_id, guest_name, guest_phone, guest_address,
		   maple_quantity, total_price, payment_method, status, schedule_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		o.ID, o.UserID, nullableString(o.GuestName), nullableString(o.GuestPhone),
		nullableString(o.GuestAddress), o.MapleQuantity, o.TotalPrice,
		o.PaymentMethod, o.Status, o.ScheduleID); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	return tx.Commit()
}

// UpdateStatus changes the status and reconciles stock in the same
// transaction: into CANCELADO releases the maples, out of CANCELADO
// re-reserves them only if enough stock remains.
func (r *postgresRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status OrderStatus) (*Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var current OrderStatus
	var quantity int
	err = tx.QueryRowContext(ctx,
		`SELECT status, maple_quantity FROM orders WHERE id=$1 FOR UPDATE`, id).
		Scan(&current, &quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("orden no encontrada")
	}
	if err != nil {
		return nil, fmt.Errorf("lock order: %w", err)
	}

	if delta := stockDelta(current, status, quantity); delta != 0 {
		var available int
		err = tx.QueryRowContext(ctx,
			`SELECT maple_count FROM stock LIMIT 1 FOR UPDATE`).Scan(&available)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.Conflictf("el registro de stock no está inicializado")
		}
		if err != nil {
			return nil, fmt.Errorf("lock stock: %w", err)
		}
		if available+delta < 0 {
			return nil, apperr.Conflictf("no hay suficiente stock para reactivar este pedido")
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE stock SET maple_count = maple_count + $1, updated_at = $2`,
			delta, time.Now()); err != nil {
			return nil, fmt.Errorf("adjust stock: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3`,
		status, time.Now(), id); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.GetOrderByID(ctx, id)
}

const orderColumns = `
	o.id, o.user_id, o.guest_name, o.guest_phone, o.guest_address,
	o.maple_quantity, o.total_price, o.payment_method, o.status,
	o.schedule_id, o.created_at, o.updated_at,
	u.name, u.phone,
	s.day_of_week, s.start_time, s.end_time, s.type, s.is_active`

const orderJoins = `
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id
	LEFT JOIN schedules s ON s.id = o.schedule_id`

func (r *postgresRepo) GetOrderByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT`+orderColumns+orderJoins+` WHERE o.id=$1`, id)
	return scanOrder(row)
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error) {
	query := `SELECT` + orderColumns + orderJoins + ` WHERE TRUE`
	args := []interface{}{}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		query += fmt.Sprintf(` AND o.user_id=$%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND o.status=$%d`, len(args))
	}
	query += ` ORDER BY o.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*Order, error) {
	o := &Order{}
	var guestName, guestPhone, guestAddress sql.NullString
	var userName, userPhone sql.NullString
	var schedDay, schedStart, schedEnd, schedType sql.NullString
	var schedActive sql.NullBool

	err := row.Scan(
		&o.ID, &o.UserID, &guestName, &guestPhone, &guestAddress,
		&o.MapleQuantity, &o.TotalPrice, &o.PaymentMethod, &o.Status,
		&o.ScheduleID, &o.CreatedAt, &o.UpdatedAt,
		&userName, &userPhone,
		&schedDay, &schedStart, &schedEnd, &schedType, &schedActive)
	if err != nil {
		return nil, err
	}

	o.GuestName = guestName.String
	o.GuestPhone = guestPhone.String
	o.GuestAddress = guestAddress.String

	if o.UserID != nil && userName.Valid {
		o.User = &Customer{ID: *o.UserID, Name: userName.String, Phone: userPhone.String}
	}
	if o.ScheduleID != nil && schedDay.Valid {
		o.Schedule = &schedule.Schedule{
			ID:        *o.ScheduleID,
			DayOfWeek: schedDay.String,
			StartTime: schedStart.String,
			EndTime:   schedEnd.String,
			Type:      schedule.Type(schedType.String),
			IsActive:  schedActive.Bool,
		}
	}
	return o, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
