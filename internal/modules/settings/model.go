package settings

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the singleton business configuration row. Prices are whole
// Argentine pesos.
type Settings struct {
	ID                    uuid.UUID   `json:"id"`
	BusinessName          string      `json:"business_name"`
	PricePerMaple         int64       `json:"price_per_maple"`
	PricePerHalfDozen     *int64      `json:"price_per_half_dozen,omitempty"`
	DeliveryFee           int64       `json:"delivery_fee"`
	FreeDeliveryThreshold *int64      `json:"free_delivery_threshold,omitempty"`
	MinimumOrderQuantity  int         `json:"minimum_order_quantity"`
	PriceTiers            []PriceTier `json:"price_tiers"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// PriceTier is a volume discount: orders of at least MinQuantity maples pay
// Price per maple instead of the base price.
type PriceTier struct {
	ID          uuid.UUID `json:"id"`
	MinQuantity int       `json:"min_quantity"`
	Price       int64     `json:"price"`
}

// PriceTierInput is a tier as submitted by the dashboard.
type PriceTierInput struct {
	MinQuantity int   `json:"min_quantity"`
	Price       int64 `json:"price"`
}

// UpdateRequest is the payload for PATCH /api/settings. Nil fields are left
// unchanged; a non-nil PriceTiers replaces the whole tier set.
type UpdateRequest struct {
	BusinessName          *string           `json:"business_name,omitempty"`
	PricePerMaple         *int64            `json:"price_per_maple,omitempty"`
	PricePerHalfDozen     *int64            `json:"price_per_half_dozen,omitempty"`
	DeliveryFee           *int64            `json:"delivery_fee,omitempty"`
	FreeDeliveryThreshold *int64            `json:"free_delivery_threshold,omitempty"`
	MinimumOrderQuantity  *int              `json:"minimum_order_quantity,omitempty"`
	PriceTiers            *[]PriceTierInput `json:"price_tiers,omitempty"`
}
