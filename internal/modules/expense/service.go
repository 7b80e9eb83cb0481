package expense

import (
	"context"
	"strings"
	"time"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/google/uuid"
)

// Service defines the expense business logic.
type Service interface {
	// Create registers an expense attributed to the acting admin.
	Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Expense, error)

	// List returns all expenses.
	List(ctx context.Context) ([]*Expense, error)
}

type service struct{ repo Repository }

// NewService creates a new expense service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, userID uuid.UUID, req CreateRequest) (*Expense, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, apperr.Validationf("la fecha no es válida")
	}
	if len(req.Description) < 3 {
		return nil, apperr.Validationf("la descripción es muy corta")
	}
	if req.Amount <= 0 {
		return nil, apperr.Validationf("el monto debe ser un número positivo")
	}
	category := Category(strings.ToUpper(req.Category))
	if !ValidCategory(category) {
		return nil, apperr.Validationf("categoría inválida")
	}

	e := &Expense{
		ID:          uuid.New(),
		Date:        date,
		Description: req.Description,
		Amount:      req.Amount,
		Category:    category,
		UserID:      userID,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, apperr.Internalf(err, "create expense")
	}
	return e, nil
}

func (s *service) List(ctx context.Context) ([]*Expense, error) {
	expenses, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Internalf(err, "list expenses")
	}
	return expenses, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", v)
}
