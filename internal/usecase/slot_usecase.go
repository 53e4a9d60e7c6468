package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"appointment-booking/config"
	"appointment-booking/internal/availability"
	"appointment-booking/internal/converter"
	"appointment-booking/internal/delivery/dto"
	"appointment-booking/internal/domain/entity"
	"appointment-booking/internal/domain/repository"
	"appointment-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNoStaffAvailable = errors.New("no active staff members are configured")
	ErrInvalidRange     = errors.New("invalid date range")
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
)

type SlotUsecase interface {
	ComputeSlots(ctx context.Context, req *dto.SlotQueryRequest) (*dto.SlotListResponse, error)
	GetStaffSlots(ctx context.Context, staffID uuid.UUID, req *dto.SlotQueryRequest) (*dto.SlotListResponse, error)
}

type slotUsecase struct {
	db                   *gorm.DB
	log                  *logrus.Logger
	staffRepo            repository.StaffRepository
	bookingRepo          repository.BookingRepository
	consultationTypeRepo repository.ConsultationTypeRepository
	calculator           *availability.Calculator
	cache                *service.SlotCache
	slotCfg              config.SlotConfig
	now                  func() time.Time
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	bookingRepo repository.BookingRepository,
	consultationTypeRepo repository.ConsultationTypeRepository,
	cache *service.SlotCache,
	slotCfg config.SlotConfig,
) SlotUsecase {
	return &slotUsecase{
		db:                   db,
		log:                  log,
		staffRepo:            staffRepo,
		bookingRepo:          bookingRepo,
		consultationTypeRepo: consultationTypeRepo,
		calculator:           availability.NewCalculator(slotCfg.GranularityMinutes, slotCfg.DayStart, slotCfg.DayEnd),
		cache:                cache,
		slotCfg:              slotCfg,
		now:                  time.Now,
	}
}

// ComputeSlots is the public availability entry point: it fans out the
// per-staff calculator across all active staff members, then aggregates the
// candidates into a deduplicated, fairly distributed slot list.
//
// A failure fetching one staff member's bookings is logged and that staff
// member is skipped; the remaining staff still produce a result.
func (u *slotUsecase) ComputeSlots(ctx context.Context, req *dto.SlotQueryRequest) (*dto.SlotListResponse, error) {
	now := u.now()

	rng, err := u.resolveRange(req.From, req.To, now)
	if err != nil {
		return nil, err
	}

	consultationType, err := u.findActiveConsultationType(ctx, req.ConsultationTypeID)
	if err != nil {
		return nil, err
	}

	cacheKey := u.cache.Key(consultationType.ID, rng.From, rng.To)
	if slots, ok := u.cache.Get(ctx, cacheKey); ok {
		return slotListResponse(slots), nil
	}

	staffMembers, err := u.staffRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list active staff: %+v", err)
		return nil, err
	}
	if len(staffMembers) == 0 {
		return nil, ErrNoStaffAvailable
	}

	candidates := u.collectCandidates(ctx, staffMembers, consultationType, rng, now)

	slots := availability.Aggregate(candidates)
	u.cache.Set(ctx, cacheKey, slots)

	return slotListResponse(slots), nil
}

// GetStaffSlots computes availability for a single staff member.
func (u *slotUsecase) GetStaffSlots(ctx context.Context, staffID uuid.UUID, req *dto.SlotQueryRequest) (*dto.SlotListResponse, error) {
	now := u.now()

	rng, err := u.resolveRange(req.From, req.To, now)
	if err != nil {
		return nil, err
	}

	consultationType, err := u.findActiveConsultationType(ctx, req.ConsultationTypeID)
	if err != nil {
		return nil, err
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff %s: %+v", staffID, err)
		return nil, err
	}
	if staff == nil || !staff.IsActive {
		return nil, ErrStaffNotFound
	}

	bookings, err := u.bookingRepo.FindBlockingForStaffInRange(u.db.WithContext(ctx), staff.ID, rng.From, queryEnd(rng))
	if err != nil {
		u.log.Warnf("Failed to fetch bookings for staff %s: %+v", staff.ID, err)
		return nil, err
	}

	candidates := u.calculator.StaffCandidates(staff, consultationType, rng, bookings, now)

	return slotListResponse(availability.Aggregate(candidates)), nil
}

// collectCandidates runs the calculator once per staff member concurrently.
// The aggregation step needs the complete candidate set, so all goroutines
// are joined before returning. Per-staff fetch failures only drop that staff
// member from this pass.
func (u *slotUsecase) collectCandidates(
	ctx context.Context,
	staffMembers []entity.StaffMember,
	consultationType *entity.ConsultationType,
	rng entity.SlotRange,
	now time.Time,
) []availability.Candidate {
	var (
		mu         sync.Mutex
		wg         sync.WaitGroup
		candidates []availability.Candidate
	)

	for i := range staffMembers {
		wg.Add(1)
		go func(staff *entity.StaffMember) {
			defer wg.Done()

			bookings, err := u.bookingRepo.FindBlockingForStaffInRange(u.db.WithContext(ctx), staff.ID, rng.From, queryEnd(rng))
			if err != nil {
				u.log.Warnf("Failed to fetch bookings for staff %s, skipping: %+v", staff.ID, err)
				return
			}

			staffCandidates := u.calculator.StaffCandidates(staff, consultationType, rng, bookings, now)

			mu.Lock()
			candidates = append(candidates, staffCandidates...)
			mu.Unlock()
		}(&staffMembers[i])
	}

	wg.Wait()
	return candidates
}

func (u *slotUsecase) findActiveConsultationType(ctx context.Context, id uuid.UUID) (*entity.ConsultationType, error) {
	consultationType, err := u.consultationTypeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find consultation type %s: %+v", id, err)
		return nil, err
	}
	if consultationType == nil || !consultationType.IsActive {
		return nil, ErrConsultationTypeNotFound
	}
	return consultationType, nil
}

// resolveRange applies the default lookahead and bounds checks. Both dates
// are inclusive; an empty From means today, an empty To means From plus the
// configured default range.
func (u *slotUsecase) resolveRange(from, to string, now time.Time) (entity.SlotRange, error) {
	fromDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return entity.SlotRange{}, ErrInvalidDate
		}
		fromDay = parsed
	}

	toDay := fromDay.AddDate(0, 0, u.slotCfg.DefaultRangeDays)
	if to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return entity.SlotRange{}, ErrInvalidDate
		}
		toDay = parsed
	}

	if toDay.Before(fromDay) {
		return entity.SlotRange{}, ErrInvalidRange
	}
	if toDay.Sub(fromDay) > time.Duration(u.slotCfg.MaxRangeDays)*24*time.Hour {
		return entity.SlotRange{}, ErrInvalidRange
	}

	return entity.SlotRange{From: fromDay, To: toDay}, nil
}

// queryEnd converts the inclusive range end into the exclusive bound used by
// the booking range query.
func queryEnd(rng entity.SlotRange) time.Time {
	day := rng.To
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).AddDate(0, 0, 1)
}

func slotListResponse(slots []entity.TimeSlot) *dto.SlotListResponse {
	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}
}
