package expense

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies a business expense.
type Category string

const (
	CategoryAlimento      Category = "ALIMENTO"
	CategoryTransporte    Category = "TRANSPORTE"
	CategoryMantenimiento Category = "MANTENIMIENTO"
	CategoryInsumos       Category = "INSUMOS"
	CategoryOtros         Category = "OTROS"
)

// ValidCategory reports whether c is a known expense category.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryAlimento, CategoryTransporte, CategoryMantenimiento,
		CategoryInsumos, CategoryOtros:
		return true
	}
	return false
}

// Expense is a business expense entered by the admin, in whole pesos.
type Expense struct {
	ID          uuid.UUID `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	Category    Category  `json:"category"`
	UserID      uuid.UUID `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRequest is the payload for registering an expense.
type CreateRequest struct {
	Date        string `json:"date"` // RFC 3339 or YYYY-MM-DD
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	Category    string `json:"category"`
}
