package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/IWeppler/el-manantial/internal/modules/user"
	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Claims are the JWT claims carried by a session token.
type Claims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}

type service struct {
	userRepo user.Repository
	secret   []byte
}

// NewService creates a new auth service signing tokens with secret.
func NewService(userRepo user.Repository, secret []byte) Service {
	return &service{userRepo: userRepo, secret: secret}
}

func (s *service) Login(ctx context.Context, phone, password string) (string, *user.User, error) {
	if phone == "" || password == "" {
		return "", nil, apperr.Validationf("teléfono y contraseña son obligatorios")
	}

	u, err := s.userRepo.GetUserByPhone(ctx, user.NormalizePhone(phone))
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, apperr.Unauthorizedf("credenciales inválidas")
	}
	if err != nil {
		return "", nil, apperr.Internalf(err, "lookup user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperr.Unauthorizedf("credenciales inválidas")
	}

	claims := &Claims{
		Role: string(u.Role),
		StandardClaims: jwt.StandardClaims{
			Subject:   u.ID.String(),
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", nil, apperr.Internalf(err, "sign token")
	}
	return token, u, nil
}
