package repository

import (
	"errors"

	"appointment-booking/internal/domain/entity"
	domainRepo "appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type consultationTypeRepository struct{}

func NewConsultationTypeRepository() domainRepo.ConsultationTypeRepository {
	return &consultationTypeRepository{}
}

func (r *consultationTypeRepository) Create(db *gorm.DB, consultationType *entity.ConsultationType) error {
	return db.Create(consultationType).Error
}

func (r *consultationTypeRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ConsultationType, error) {
	var consultationType entity.ConsultationType
	err := db.Where("id = ?", id).First(&consultationType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultationType, nil
}

func (r *consultationTypeRepository) FindAllActive(db *gorm.DB) ([]entity.ConsultationType, error) {
	var consultationTypes []entity.ConsultationType
	err := db.Where("is_active = ?", true).
		Order("display_order ASC, name ASC").
		Find(&consultationTypes).Error
	if err != nil {
		return nil, err
	}
	return consultationTypes, nil
}

func (r *consultationTypeRepository) Update(db *gorm.DB, consultationType *entity.ConsultationType) error {
	return db.Save(consultationType).Error
}

func (r *consultationTypeRepository) Deactivate(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.ConsultationType{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
