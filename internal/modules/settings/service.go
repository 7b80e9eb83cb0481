package settings

import (
	"context"
	"database/sql"
	"errors"

	"github.com/IWeppler/el-manantial/internal/apperr"
)

// Service defines the settings business logic.
type Service interface {
	// Get returns the current configuration with its price tiers.
	Get(ctx context.Context) (*Settings, error)

	// Update validates and applies a partial update; a supplied tier list
	// replaces all existing tiers atomically.
	Update(ctx context.Context, req UpdateRequest) (*Settings, error)
}

type service struct {
	repo Repository
}

// NewService creates a new settings service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	current, err := s.repo.Get(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Conflictf("la configuración del negocio no está inicializada")
	}
	if err != nil {
		return nil, apperr.Internalf(err, "get settings")
	}
	return current, nil
}

func (s *service) Update(ctx context.Context, req UpdateRequest) (*Settings, error) {
	if err := validateUpdate(req); err != nil {
		return nil, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		current.BusinessName = *req.BusinessName
	}
	if req.PricePerMaple != nil {
		current.PricePerMaple = *req.PricePerMaple
	}
	if req.PricePerHalfDozen != nil {
		current.PricePerHalfDozen = req.PricePerHalfDozen
	}
	if req.DeliveryFee != nil {
		current.DeliveryFee = *req.DeliveryFee
	}
	if req.FreeDeliveryThreshold != nil {
		current.FreeDeliveryThreshold = req.FreeDeliveryThreshold
	}
	if req.MinimumOrderQuantity != nil {
		current.MinimumOrderQuantity = *req.MinimumOrderQuantity
	}

	updated, err := s.repo.Update(ctx, current, req.PriceTiers)
	if err != nil {
		return nil, apperr.Internalf(err, "update settings")
	}
	return updated, nil
}

func validateUpdate(req UpdateRequest) error {
	if req.PricePerMaple != nil && *req.PricePerMaple <= 0 {
		return apperr.Validationf("el precio por maple debe ser positivo")
	}
	if req.PricePerHalfDozen != nil && *req.PricePerHalfDozen <= 0 {
		return apperr.Validationf("el precio por media docena debe ser positivo")
	}
	if req.DeliveryFee != nil && *req.DeliveryFee < 0 {
		return apperr.Validationf("el costo de envío no puede ser negativo")
	}
	if req.FreeDeliveryThreshold != nil && *req.FreeDeliveryThreshold < 0 {
		return apperr.Validationf("el umbral de envío gratis no puede ser negativo")
	}
	if req.MinimumOrderQuantity != nil && *req.MinimumOrderQuantity < 1 {
		return apperr.Validationf("el pedido mínimo debe ser al menos 1")
	}
	if req.PriceTiers != nil {
		for _, t := range *req.PriceTiers {
			if t.MinQuantity <= 0 {
				return apperr.Validationf("la cantidad mínima de un tramo debe ser positiva")
			}
			if t.Price <= 0 {
				return apperr.Validationf("el precio de un tramo debe ser positivo")
			}
		}
	}
	return nil
}
