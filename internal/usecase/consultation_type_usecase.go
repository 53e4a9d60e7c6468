package usecase

import (
	"context"
	"errors"

	"appointment-booking/internal/converter"
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"
	"appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrConsultationTypeNotFound = errors.New("consultation type not found")

type ConsultationTypeUsecase interface {
	CreateConsultationType(ctx context.Context, req *dto.CreateConsultationTypeRequest) (*dto.ConsultationTypeResponse, error)
	GetConsultationType(ctx context.Context, id uuid.UUID) (*dto.ConsultationTypeResponse, error)
	GetActiveConsultationTypes(ctx context.Context) (*dto.ConsultationTypeListResponse, error)
	UpdateConsultationType(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationTypeRequest) (*dto.ConsultationTypeResponse, error)
	DeactivateConsultationType(ctx context.Context, id uuid.UUID) error
}

type consultationTypeUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	consultationTypeRepo repository.ConsultationTypeRepository
}

func NewConsultationTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	consultationTypeRepo repository.ConsultationTypeRepository,
) ConsultationTypeUsecase {
	return &consultationTypeUsecase{
		db:                   db,
		log:                  log,
		consultationTypeRepo: consultationTypeRepo,
	}
}

func (u *consultationTypeUsecase) CreateConsultationType(ctx context.Context, req *dto.CreateConsultationTypeRequest) (*dto.ConsultationTypeResponse, error) {
	consultationType := &entity.ConsultationType{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		BufferBefore:    req.BufferBefore,
		BufferAfter:     req.BufferAfter,
		IsActive:        true,
		DisplayOrder:    req.DisplayOrder,
	}

	if err := u.consultationTypeRepo.Create(u.db.WithContext(ctx), consultationType); err != nil {
		u.log.Warnf("Failed to create consultation type: %+v", err)
		return nil, err
	}

	return converter.ConsultationTypeToResponse(consultationType), nil
}

func (u *consultationTypeUsecase) GetConsultationType(ctx context.Context, id uuid.UUID) (*dto.ConsultationTypeResponse, error) {
	consultationType, err := u.consultationTypeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consultation type: %+v", err)
		return nil, err
	}
	if consultationType == nil {
		return nil, ErrConsultationTypeNotFound
	}

	return converter.ConsultationTypeToResponse(consultationType), nil
}

func (u *consultationTypeUsecase) GetActiveConsultationTypes(ctx context.Context) (*dto.ConsultationTypeListResponse, error) {
	consultationTypes, err := u.consultationTypeRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list consultation types: %+v", err)
		return nil, err
	}

	return &dto.ConsultationTypeListResponse{
		ConsultationTypes: converter.ConsultationTypesToResponses(consultationTypes),
		Total:             len(consultationTypes),
	}, nil
}

func (u *consultationTypeUsecase) UpdateConsultationType(ctx context.Context, id uuid.UUID, req *dto.UpdateConsultationTypeRequest) (*dto.ConsultationTypeResponse, error) {
	consultationType, err := u.consultationTypeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consultation type: %+v", err)
		return nil, err
	}
	if consultationType == nil {
		return nil, ErrConsultationTypeNotFound
	}

	if req.Name != "" {
		consultationType.Name = req.Name
	}
	if req.DurationMinutes != nil {
		consultationType.DurationMinutes = *req.DurationMinutes
	}
	if req.BufferBefore != nil {
		consultationType.BufferBefore = *req.BufferBefore
	}
	if req.BufferAfter != nil {
		consultationType.BufferAfter = *req.BufferAfter
	}
	if req.DisplayOrder != nil {
		consultationType.DisplayOrder = *req.DisplayOrder
	}

	if err := u.consultationTypeRepo.Update(u.db.WithContext(ctx), consultationType); err != nil {
		u.log.Warnf("Failed to update consultation type: %+v", err)
		return nil, err
	}

	return converter.ConsultationTypeToResponse(consultationType), nil
}

func (u *consultationTypeUsecase) DeactivateConsultationType(ctx context.Context, id uuid.UUID) error {
	affected, err := u.consultationTypeRepo.Deactivate(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to deactivate consultation type: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrConsultationTypeNotFound
	}
	return nil
}
