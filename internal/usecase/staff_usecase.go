package usecase

import (
	"context"
	"errors"
	"time"

	"appointment-booking/internal/converter"
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"
	"appointment-booking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidWorkingHours = errors.New("close time must be after open time")
	ErrVacationNotFound    = errors.New("vacation not found")
	ErrInvalidVacation     = errors.New("vacation end date must not be before start date")
)

type StaffUsecase interface {
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffResponse, error)
	GetAllStaff(ctx context.Context) (*dto.StaffListResponse, error)
	UpdateStaff(ctx context.Context, staffID uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	DeactivateStaff(ctx context.Context, staffID uuid.UUID) error
	SetWorkingHours(ctx context.Context, staffID uuid.UUID, req *dto.SetWorkingHoursRequest) (*dto.StaffResponse, error)
	AddVacation(ctx context.Context, staffID uuid.UUID, req *dto.CreateVacationRequest) (*dto.StaffResponse, error)
	RemoveVacation(ctx context.Context, staffID uuid.UUID, vacationID int) error
}

type staffUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	staffRepo repository.StaffRepository
}

func NewStaffUsecase(db *gorm.DB, log *logrus.Logger, staffRepo repository.StaffRepository) StaffUsecase {
	return &staffUsecase{
		db:        db,
		log:       log,
		staffRepo: staffRepo,
	}
}

func (u *staffUsecase) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	staff := &entity.StaffMember{
		DisplayName: req.DisplayName,
		Email:       req.Email,
		IsActive:    true,
	}

	if err := u.staffRepo.Create(u.db.WithContext(ctx), staff); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create staff member: %+v", err)
		return nil, err
	}

	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) GetStaff(ctx context.Context, staffID uuid.UUID) (*dto.StaffResponse, error) {
	staff, err := u.findStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) GetAllStaff(ctx context.Context) (*dto.StaffListResponse, error) {
	staff, err := u.staffRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list staff: %+v", err)
		return nil, err
	}

	return &dto.StaffListResponse{
		Staff: converter.StaffToResponses(staff),
		Total: len(staff),
	}, nil
}

func (u *staffUsecase) UpdateStaff(ctx context.Context, staffID uuid.UUID, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := u.findStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != "" {
		staff.DisplayName = req.DisplayName
	}
	if req.Email != "" {
		staff.Email = req.Email
	}

	if err := u.staffRepo.Update(u.db.WithContext(ctx), staff); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update staff member: %+v", err)
		return nil, err
	}

	return converter.StaffToResponse(staff), nil
}

// DeactivateStaff soft-removes a staff member from availability computation.
// Existing bookings remain untouched.
func (u *staffUsecase) DeactivateStaff(ctx context.Context, staffID uuid.UUID) error {
	affected, err := u.staffRepo.Deactivate(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to deactivate staff member: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func (u *staffUsecase) SetWorkingHours(ctx context.Context, staffID uuid.UUID, req *dto.SetWorkingHoursRequest) (*dto.StaffResponse, error) {
	if _, err := u.findStaff(ctx, staffID); err != nil {
		return nil, err
	}

	hours := make([]entity.WorkingHours, 0, len(req.Hours))
	for _, h := range req.Hours {
		open, err := time.Parse("15:04", h.OpenTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		closeAt, err := time.Parse("15:04", h.CloseTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		if !closeAt.After(open) {
			return nil, ErrInvalidWorkingHours
		}
		hours = append(hours, entity.WorkingHours{
			StaffID:   staffID,
			Weekday:   h.Weekday,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
		})
	}

	if err := u.staffRepo.ReplaceWorkingHours(u.db.WithContext(ctx), staffID, hours); err != nil {
		u.log.Warnf("Failed to replace working hours: %+v", err)
		return nil, err
	}

	staff, err := u.findStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) AddVacation(ctx context.Context, staffID uuid.UUID, req *dto.CreateVacationRequest) (*dto.StaffResponse, error) {
	if _, err := u.findStaff(ctx, staffID); err != nil {
		return nil, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidVacation
	}

	vacation := &entity.VacationRange{
		StaffID:   staffID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	}

	if err := u.staffRepo.AddVacation(u.db.WithContext(ctx), vacation); err != nil {
		u.log.Warnf("Failed to add vacation: %+v", err)
		return nil, err
	}

	staff, err := u.findStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return converter.StaffToResponse(staff), nil
}

func (u *staffUsecase) RemoveVacation(ctx context.Context, staffID uuid.UUID, vacationID int) error {
	affected, err := u.staffRepo.DeleteVacation(u.db.WithContext(ctx), staffID, vacationID)
	if err != nil {
		u.log.Warnf("Failed to delete vacation: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrVacationNotFound
	}
	return nil
}

func (u *staffUsecase) findStaff(ctx context.Context, staffID uuid.UUID) (*entity.StaffMember, error) {
	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff member: %+v", err)
		return nil, err
	}
	if staff == nil {
		return nil, ErrStaffNotFound
	}
	return staff, nil
}
