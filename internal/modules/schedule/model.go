package schedule

import (
	"github.com/google/uuid"
)

// Type distinguishes home delivery windows from pickup windows; only
// deliveries can carry a delivery fee.
type Type string

const (
	TypeDelivery Type = "DELIVERY"
	TypePickup   Type = "PICKUP"
)

// Schedule is a weekly delivery or pickup window customers choose from.
type Schedule struct {
	ID        uuid.UUID `json:"id"`
	DayOfWeek string    `json:"day_of_week"`
	StartTime string    `json:"start_time"` // HH:MM
	EndTime   string    `json:"end_time"`   // HH:MM
	Type      Type      `json:"type"`
	IsActive  bool      `json:"is_active"`
}

// Input is a schedule as submitted by the dashboard.
type Input struct {
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Type      Type   `json:"type"`
	IsActive  bool   `json:"is_active"`
}

// ReplaceRequest is the payload for PUT /api/schedules; it replaces the whole
// schedule set, as the dashboard edits them as a block.
type ReplaceRequest struct {
	Schedules []Input `json:"schedules"`
}
