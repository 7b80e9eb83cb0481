package user

import "context"

// Service defines the interface for user-related business logic.
type Service interface {
	// Register creates an account from the public registration form. The
	// configured admin phone number is promoted to ADMIN.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// CreateClient creates a USER account on behalf of an admin, with a
	// generated throwaway password.
	CreateClient(ctx context.Context, req CreateClientRequest) (*User, error)

	// SearchClients finds registered customers by name or phone.
	SearchClients(ctx context.Context, query string) ([]*User, error)

	// GetUser retrieves a user by UUID.
	GetUser(ctx context.Context, id string) (*User, error)
}
