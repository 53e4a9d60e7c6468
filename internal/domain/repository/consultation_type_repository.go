package repository

import (
	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationTypeRepository interface {
	Create(db *gorm.DB, consultationType *entity.ConsultationType) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ConsultationType, error)
	FindAllActive(db *gorm.DB) ([]entity.ConsultationType, error)
	Update(db *gorm.DB, consultationType *entity.ConsultationType) error
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
