package production

import (
	"time"

	"github.com/google/uuid"
)

// Record is one day's egg production entry. Records are informational; stock
// is adjusted manually by the admin.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	Quantity  int       `json:"quantity"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateRequest is the payload for registering a production day.
type CreateRequest struct {
	Date     string `json:"date"` // RFC 3339 or YYYY-MM-DD
	Quantity int    `json:"quantity"`
}
