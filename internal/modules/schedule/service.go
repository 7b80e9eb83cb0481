package schedule

import (
	"context"
	"regexp"

	"github.com/IWeppler/el-manantial/internal/apperr"
	"github.com/google/uuid"
)

var timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)

var validDays = map[string]bool{
	"Lunes": true, "Martes": true, "Miércoles": true, "Jueves": true,
	"Viernes": true, "Sábado": true, "Domingo": true,
}

// Service defines the schedule business logic.
type Service interface {
	// List returns schedules, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]*Schedule, error)

	// Replace validates and swaps the whole schedule set atomically.
	Replace(ctx context.Context, req ReplaceRequest) ([]*Schedule, error)
}

type service struct {
	repo Repository
}

// NewService creates a new schedule service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, activeOnly bool) ([]*Schedule, error) {
	schedules, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperr.Internalf(err, "list schedules")
	}
	return schedules, nil
}

func (s *service) Replace(ctx context.Context, req ReplaceRequest) ([]*Schedule, error) {
	schedules := make([]*Schedule, 0, len(req.Schedules))
	for _, in := range req.Schedules {
		if !validDays[in.DayOfWeek] {
			return nil, apperr.Validationf("día de la semana inválido: %q", in.DayOfWeek)
		}
		if !timeFormat.MatchString(in.StartTime) || !timeFormat.MatchString(in.EndTime) {
			return nil, apperr.Validationf("formato de hora inválido (HH:MM)")
		}
		if in.Type != TypeDelivery && in.Type != TypePickup {
			return nil, apperr.Validationf("tipo de horario inválido: %q", in.Type)
		}
		schedules = append(schedules, &Schedule{
			ID:        uuid.New(),
			DayOfWeek: in.DayOfWeek,
			StartTime: in.StartTime,
			EndTime:   in.EndTime,
			Type:      in.Type,
			IsActive:  in.IsActive,
		})
	}

	if err := s.repo.ReplaceAll(ctx, schedules); err != nil {
		return nil, apperr.Internalf(err, "replace schedules")
	}
	return schedules, nil
}
