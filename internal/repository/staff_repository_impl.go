package repository

import (
	"errors"

	"appointment-booking/internal/domain/entity"
	domainRepo "appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type staffRepository struct{}

func NewStaffRepository() domainRepo.StaffRepository {
	return &staffRepository{}
}

func (r *staffRepository) Create(db *gorm.DB, staff *entity.StaffMember) error {
	return db.Create(staff).Error
}

func (r *staffRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.StaffMember, error) {
	var staff entity.StaffMember
	err := db.Preload("WorkingHours").Preload("Vacations").Where("id = ?", id).First(&staff).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindAllActive(db *gorm.DB) ([]entity.StaffMember, error) {
	var staff []entity.StaffMember
	err := db.Preload("WorkingHours").Preload("Vacations").
		Where("is_active = ?", true).
		Order("display_name ASC").
		Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) FindAll(db *gorm.DB) ([]entity.StaffMember, error) {
	var staff []entity.StaffMember
	err := db.Preload("WorkingHours").Preload("Vacations").Order("display_name ASC").Find(&staff).Error
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *staffRepository) Update(db *gorm.DB, staff *entity.StaffMember) error {
	return db.Omit("WorkingHours", "Vacations", "Bookings").Save(staff).Error
}

// Deactivate soft-removes a staff member from future availability
// computation. Existing bookings are left untouched.
func (r *staffRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.StaffMember{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

// ReplaceWorkingHours swaps the full weekday template in one transaction.
func (r *staffRepository) ReplaceWorkingHours(db *gorm.DB, staffID uuid.UUID, hours []entity.WorkingHours) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("staff_id = ?", staffID).Delete(&entity.WorkingHours{}).Error; err != nil {
			return err
		}
		if len(hours) == 0 {
			return nil
		}
		for i := range hours {
			hours[i].StaffID = staffID
		}
		return tx.Create(&hours).Error
	})
}

func (r *staffRepository) AddVacation(db *gorm.DB, vacation *entity.VacationRange) error {
	return db.Create(vacation).Error
}

func (r *staffRepository) DeleteVacation(db *gorm.DB, staffID uuid.UUID, vacationID int) (int64, error) {
	result := db.Where("id = ? AND staff_id = ?", vacationID, staffID).Delete(&entity.VacationRange{})
	return result.RowsAffected, result.Error
}
