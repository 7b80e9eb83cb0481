package order

import (
	"time"

	"github.com/IWeppler/el-manantial/internal/modules/schedule"
	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	StatusPendiente  OrderStatus = "PENDIENTE"
	StatusConfirmado OrderStatus = "CONFIRMADO"
	StatusEntregado  OrderStatus = "ENTREGADO"
	StatusCancelado  OrderStatus = "CANCELADO"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPendiente, StatusConfirmado, StatusEntregado, StatusCancelado:
		return true
	}
	return false
}

// PaymentMethod indicates how the customer pays.
type PaymentMethod string

const (
	PaymentEfectivo      PaymentMethod = "EFECTIVO"
	PaymentTransferencia PaymentMethod = "TRANSFERENCIA"
)

// Order represents a maple order. Exactly one of UserID or the guest fields
// identifies the author; TotalPrice is always computed server-side.
type Order struct {
	ID            uuid.UUID          `json:"id"`
	UserID        *uuid.UUID         `json:"user_id,omitempty"`
	User          *Customer          `json:"user,omitempty"`
	GuestName     string             `json:"guest_name,omitempty"`
	GuestPhone    string             `json:"guest_phone,omitempty"`
	GuestAddress  string             `json:"guest_address,omitempty"`
	MapleQuantity int                `json:"maple_quantity"`
	TotalPrice    int64              `json:"total_price"`
	PaymentMethod PaymentMethod      `json:"payment_method"`
	Status        OrderStatus        `json:"status"`
	ScheduleID    *uuid.UUID         `json:"schedule_id,omitempty"`
	Schedule      *schedule.Schedule `json:"schedule,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Customer is the resolved author summary attached to registered orders.
type Customer struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
}

// Guest identifies an order author without an account.
type Guest struct {
	Name    string
	Phone   string
	Address string
}

// Author is the order's resolved identity: exactly one variant is set.
type Author struct {
	Registered *uuid.UUID
	Guest      *Guest
}

// PlaceOrderRequest is the payload for creating a new order. UserID is only
// honored for admins attributing the order to an existing client.
type PlaceOrderRequest struct {
	MapleQuantity int    `json:"maple_quantity"`
	ScheduleID    string `json:"schedule_id,omitempty"`
	PaymentMethod string `json:"payment_method"`
	UserID        string `json:"user_id,omitempty"`
	GuestName     string `json:"guest_name,omitempty"`
	GuestPhone    string `json:"guest_phone,omitempty"`
	GuestAddress  string `json:"guest_address,omitempty"`
}

// UpdateStatusRequest is the payload for changing an order's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// PricingConfig is the slice of business configuration the placement
// operation needs.
type PricingConfig struct {
	PricePerMaple         int64
	DeliveryFee           int64
	FreeDeliveryThreshold *int64
	MinimumOrderQuantity  int
	Tiers                 []PriceTier
}

// PriceTier is a volume discount rule.
type PriceTier struct {
	MinQuantity int
	Price       int64
}
