package production

import (
	"context"
	"time"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/google/uuid"
)

// Service defines the production record business logic.
type Service interface {
	// Create registers a production day attributed to the acting admin.
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Record, error)

	// List returns all production records.
	List(ctx context.Context) ([]*Record, error)
}

type service struct{ repo Repository }

// NewService creates a new production service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Record, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, apperr.Validationf("la fecha no es válida")
	}
	if req.Quantity <= 0 {
		return nil, apperr.Validationf("la cantidad debe ser un número positivo")
	}

	rec := &Record{
		ID:       uuid.New(),
		Date:     date,
		Quantity: req.Quantity,
		UserID:   userID,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, apperr.Internalf(err, "create production record")
	}
	return rec, nil
}

func (s *service) List(ctx context.Context) ([]*Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internalf(err, "list production records")
	}
	return records, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
