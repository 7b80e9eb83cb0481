package stock

import (
	"time"

	"github.com/google/uuid"
)

// Stock is the singleton row tracking how many maples are available for sale.
// It is decremented and restored only inside the order transactions; the
// endpoints here let the admin set the absolute count after production.
type Stock struct {
	ID         uuid.UUID `json:"id"`
	MapleCount int       `json:"maple_count"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AdjustRequest is the payload for PATCH /api/stock.
type AdjustRequest struct {
	NewCount *int `json:"new_count"`
}
