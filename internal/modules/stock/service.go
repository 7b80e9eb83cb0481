package stock

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IWeppler/el-manantial/internal/apperr"
)

// Service defines the stock business logic.
type Service interface {
	// Get returns the current stock.
	Get(ctx context.Context) (*Stock, error)

	// Initialize creates the singleton row; conflicts if it already exists.
	Initialize(ctx context.Context, count int) (*Stock, error)

	// SetCount overwrites the available count with an absolute value.
	SetCount(ctx context.Context, count *int) (*Stock, error)
}

type service struct {
	repo Repository
}

// NewService creates a new stock service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Stock, error) {
	current, err := s.repo.Get(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Conflictf("el registro de stock no está inicializado")
	}
	if err != nil {
		return nil, apperr.Internalf(err, "get stock")
	}
	return current, nil
}

func (s *service) Initialize(ctx context.Context, count int) (*Stock, error) {
	if count < 0 {
		return nil, apperr.Validationf("cantidad inválida")
	}
	if _, err := s.repo.Get(ctx); err == nil {
		return nil, apperr.Conflictf("el registro de stock ya existe")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Internalf(err, "get stock")
	}

	created, err := s.repo.Create(ctx, count)
	if err != nil {
		if apperr.KindOf(err) == apperr.Internal {
			return nil, apperr.Internalf(err, "create stock")
		}
		return nil, err
	}
	return created, nil
}

func (s *service) SetCount(ctx context.Context, count *int) (*Stock, error) {
	if count == nil || *count < 0 {
		return nil, apperr.Validationf("cantidad inválida")
	}
	if _, err := s.Get(ctx); err != nil {
		return nil, err
	}

	updated, err := s.repo.SetCount(ctx, *count)
	if err != nil {
		return nil, apperr.Internalf(err, "set stock count")
	}
	return updated, nil
}
