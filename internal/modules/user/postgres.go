package user

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL user repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, name, phone, address, hashed_password, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Phone, u.Address, u.PasswordHash, u.Role)
	return err
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, sql.ErrNoRows
	}
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, address, hashed_password, role, created_at, updated_at
		FROM users WHERE id = $1`, parsedID))
}

func (r *postgresRepository) GetUserByPhone(ctx context.Context, phone string) (*User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, address, hashed_password, role, created_at, updated_at
		FROM users WHERE phone = $1`, phone))
}

func (r *postgresRepository) SearchClients(ctx context.Context, query string, limit int) ([]*User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, phone, address, hashed_password, role, created_at, updated_at
		FROM users
		WHERE role = $1 AND (name ILIKE '%' || $2 || '%' OR phone LIKE '%' || $2 || '%')
		ORDER BY name ASC
		LIMIT $3`, RoleUser, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		u := &User{}
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Address, &u.PasswordHash,
			&u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *postgresRepository) scanOne(row *sql.Row) (*User, error) {
	u := &User{}
	err := row.Scan(&u.ID, &u.Name, &u.Phone, &u.Address, &u.PasswordHash,
		&u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
