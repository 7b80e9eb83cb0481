package auth

import (
	"context"

	"github.com/IWeppler/el-manantial/internal/modules/user"
	"github.com/google/uuid"
)

// Session is the authenticated caller extracted from a bearer token.
type Session struct {
	UserID uuid.UUID
	Role   user.Role
}

// IsAdmin reports whether the session has the ADMIN role.
func (s *Session) IsAdmin() bool { return s != nil && s.Role == user.RoleAdmin }

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies phone+password credentials and issues a signed token.
	Login(ctx context.Context, phone, password string) (string, *user.User, error)
}

type ctxKey struct{}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session, if any. Guest callers have none.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(ctxKey{}).(*Session)
	return s
}
