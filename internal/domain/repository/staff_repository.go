package repository

import (
	"appointment-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(db *gorm.DB, staff *entity.StaffMember) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffMember, error)
	FindAllActive(db *gorm.DB) ([]entity.StaffMember, error)
	FindAll(db *gorm.DB) ([]entity.StaffMember, error)
	Update(db *gorm.DB, staff *entity.StaffMember) error
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
	ReplaceWorkingHours(db *gorm.DB, staffID uuid.UUID, hours []entity.WorkingHours) error
	AddVacation(db *gorm.DB, vacation *entity.VacationRange) error
	DeleteVacation(db *gorm.DB, staffID uuid.UUID, vacationID int) (int64, error)
}
