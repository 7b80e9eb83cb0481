package user

import (
	"time"

	"github.com/google/uuid"
)

// Role determines dashboard access. Admins manage the business; users are
// registered customers.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User represents a registered account, identified by phone number.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterRequest is the payload for self-registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password"`
}

// CreateClientRequest is the payload for an admin creating a customer record
// for walk-in or phone clients, without real credentials.
type CreateClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}
