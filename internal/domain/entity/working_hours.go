package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkingHours is one weekday row of a staff member's working-hours template.
// Weekday follows time.Weekday numbering (0 = Sunday). Days without a row
// fall back to the configured default window.
type WorkingHours struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index:idx_working_hours_staff_weekday,unique" json:"staff_id"`
	Weekday   int       `gorm:"not null;index:idx_working_hours_staff_weekday,unique" json:"weekday"`
	OpenTime  string    `gorm:"type:time;not null" json:"open_time"`  // HH:MM
	CloseTime string    `gorm:"type:time;not null" json:"close_time"` // HH:MM
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkingHours) TableName() string {
	return "working_hours"
}

// VacationRange blocks a staff member for an inclusive range of dates.
type VacationRange struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	StaffID   uuid.UUID `gorm:"type:uuid;not null;index" json:"staff_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	Reason    string    `gorm:"type:varchar(255)" json:"reason,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (VacationRange) TableName() string {
	return "vacation_ranges"
}

// Contains reports whether the given instant falls on a day inside the range.
func (v *VacationRange) Contains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := time.Date(v.StartDate.Year(), v.StartDate.Month(), v.StartDate.Day(), 0, 0, 0, 0, t.Location())
	end := time.Date(v.EndDate.Year(), v.EndDate.Month(), v.EndDate.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(start) && !day.After(end)
}
