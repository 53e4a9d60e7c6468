package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationType defines a bookable service: its duration and the buffer
// padding applied around each booking for conflict purposes.
type ConsultationType struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name            string    `gorm:"type:varchar(255);not null" json:"name"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	BufferBefore    int       `gorm:"not null;default:0" json:"buffer_before"`
	BufferAfter     int       `gorm:"not null;default:0" json:"buffer_after"`
	IsActive        bool      `gorm:"not null;default:true;index" json:"is_active"`
	DisplayOrder    int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ConsultationType) TableName() string {
	return "consultation_types"
}

// Duration returns the consultation length as a time.Duration.
func (c *ConsultationType) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}
