package entity

import (
	"time"

	"github.com/google/uuid"
)

// TimeSlot is a computed bookable window for one staff member. Slots are
// produced fresh per request and never persisted.
type TimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StaffID   uuid.UUID `json:"staff_id"`
	StaffName string    `json:"staff_name"`
}

// SlotRange is a domain-level filter for availability queries.
// Both bounds are inclusive dates.
type SlotRange struct {
	From time.Time
	To   time.Time
}
