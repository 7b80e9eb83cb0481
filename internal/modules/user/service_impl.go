package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const clientSearchLimit = 5

type service struct {
	repo       Repository
	adminPhone string
}

// NewService creates a new user service. adminPhone is the phone number that
// gets the ADMIN role on registration.
func NewService(repo Repository, adminPhone string) Service {
	return &service{repo: repo, adminPhone: NormalizePhone(adminPhone)}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if req.Name == "" || req.Phone == "" || req.Password == "" {
		return nil, apperr.Validationf("faltan datos obligatorios")
	}

	phone := NormalizePhone(req.Phone)
	if existing, err := s.repo.GetUserByPhone(ctx, phone); err == nil && existing != nil {
		return nil, apperr.Conflictf("el número de teléfono ya está registrado")
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internalf(err, "lookup user by phone")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, apperr.Internalf(err, "hash password")
	}

	role := RoleUser
	if s.adminPhone != "" && phone == s.adminPhone {
		role = RoleAdmin
	}

	u := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Phone:        phone,
		Address:      req.Address,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, apperr.Internalf(err, "create user")
	}
	return u, nil
}

func (s *service) CreateClient(ctx context.Context, req CreateClientRequest) (*User, error) {
	if len(req.Name) < 2 {
		return nil, apperr.Validationf("el nombre es requerido")
	}
	if len(req.Phone) < 6 {
		return nil, apperr.Validationf("el teléfono es requerido")
	}

	phone := NormalizePhone(req.Phone)
	if existing, err := s.repo.GetUserByPhone(ctx, phone); err == nil && existing != nil {
		return nil, apperr.Conflictf("ya existe un cliente con este teléfono")
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internalf(err, "lookup user by phone")
	}

	// The schema requires credentials; clients created by the admin never log
	// in, so they get an unguessable throwaway password.
	hash, err := bcrypt.GenerateFromPassword(
		[]byte(fmt.Sprintf("CLIENTE_%s_%d", phone, time.Now().UnixMilli())), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internalf(err, "hash password")
	}

	u := &User{
		ID:           uuid.New(),
		Name:         req.Name,
		Phone:        phone,
		Address:      req.Address,
		PasswordHash: string(hash),
		Role:         RoleUser,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, apperr.Internalf(err, "create client")
	}
	return u, nil
}

func (s *service) SearchClients(ctx context.Context, query string) ([]*User, error) {
	if query == "" {
		return []*User{}, nil
	}
	users, err := s.repo.SearchClients(ctx, query, clientSearchLimit)
	if err != nil {
		return nil, apperr.Internalf(err, "search clients")
	}
	return users, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("usuario no encontrado")
	}
	if err != nil {
		return nil, apperr.Internalf(err, "get user")
	}
	return u, nil
}
