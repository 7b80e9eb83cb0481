package user

import "context"

// Repository defines data access for users.
type Repository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, u *User) error

	// GetUserByID retrieves a user by UUID.
	GetUserByID(ctx context.Context, id string) (*User, error)

	// GetUserByPhone retrieves a user by their normalized phone number.
	GetUserByPhone(ctx context.Context, phone string) (*User, error)

	// SearchClients returns up to limit USER-role accounts whose name or phone
	// matches the query.
	SearchClients(ctx context.Context, query string, limit int) ([]*User, error)
}
