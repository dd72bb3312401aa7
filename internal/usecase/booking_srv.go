package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"room-reservation/internal/data/entity"
	"room-reservation/internal/data/repository"
	"room-reservation/internal/dto/request"
	"room-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBookingInput is the already-parsed form of a booking request. Times
// may be in any zone; Create normalizes them before validation.
type CreateBookingInput struct {
	RoomID         uuid.UUID
	UserName       string
	UserIdentity   string
	Purpose        *string
	Category       entity.BookingCategory
	Start          time.Time
	End            time.Time
	IsSeriesMember bool
}

type BookingService interface {
	// Create runs the full gauntlet: normalize, alignment, window, conflict
	// check, persist. A (nil, nil) return is the conflict sentinel: no
	// booking was created because the slot is taken. That is an expected
	// business outcome, not an error.
	Create(ctx context.Context, input CreateBookingInput) (*entity.Booking, error)
	CreateFromRequest(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error)
	SetStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) (*entity.Booking, error)
	Delete(ctx context.Context, bookingID uuid.UUID) error
	List(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error)
}

type bookingService struct {
	repo      *repository.Repository
	tz        *Normalizer
	conflicts *ConflictDetector
	now       func() time.Time
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, tz *Normalizer, now func() time.Time, log *zap.Logger) BookingService {
	if now == nil {
		now = time.Now
	}
	return &bookingService{
		repo:      repo,
		tz:        tz,
		conflicts: NewConflictDetector(repo.Booking, tz, log),
		now:       now,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateFromRequest(ctx context.Context, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	// Category is coerced to the closed enum exactly once, here at the
	// boundary. Everything downstream works with the typed constant.
	category := entity.BookingCategory(req.Category)
	if !entity.ValidCategory(category) {
		return nil, newWindowError(fmt.Sprintf("unknown category %q", req.Category))
	}

	start, err := s.tz.ParseTime(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid start_time %s: %w", req.StartTime, err)
	}
	end, err := s.tz.ParseTime(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid end_time %s: %w", req.EndTime, err)
	}

	return s.Create(ctx, CreateBookingInput{
		RoomID:       roomID,
		UserName:     req.UserName,
		UserIdentity: req.UserIdentity,
		Purpose:      req.Purpose,
		Category:     category,
		Start:        start,
		End:          end,
	})
}

func (s *bookingService) Create(ctx context.Context, input CreateBookingInput) (*entity.Booking, error) {
	room, err := s.repo.Room.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	start := s.tz.Normalize(input.Start)
	end := s.tz.Normalize(input.End)

	if !IsHalfHourAligned(start) || !IsHalfHourAligned(end) {
		return nil, newAlignmentError()
	}

	if !WithinCategoryWindow(input.Category, start, end) {
		return nil, newWindowError(fmt.Sprintf("interval %s-%s outside allowed window for %s",
			start.Format("15:04"), end.Format("15:04"), input.Category))
	}

	conflicts, err := s.conflicts.FindConflicts(ctx, input.RoomID, start, end)
	if err != nil {
		return nil, fmt.Errorf("conflict check: %w", err)
	}
	if len(conflicts) > 0 {
		// Log every collider so the audit trail can reconstruct why the
		// slot was refused.
		details := make([]string, len(conflicts))
		for i, c := range conflicts {
			details[i] = fmt.Sprintf("%s %s [%s, %s)",
				c.ID.String(), c.Status,
				c.StartTime.Format(time.RFC3339), c.EndTime.Format(time.RFC3339))
		}
		s.log.Info("Booking rejected by conflict",
			zap.String("room_id", input.RoomID.String()),
			zap.Time("start_time", start),
			zap.Time("end_time", end),
			zap.Strings("conflicts", details),
		)
		return nil, nil
	}

	now := s.tz.Normalize(s.now())
	booking := &entity.Booking{
		ID:           uuid.New(),
		RoomID:       input.RoomID,
		UserName:     input.UserName,
		UserIdentity: input.UserIdentity,
		Purpose:      input.Purpose,
		Category:     input.Category,
		StartTime:    start,
		EndTime:      end,
		Status:       entity.BookingStatusPending,
		IsSemester:   input.IsSeriesMember,
		CreatedAt:    now,
		RequestedAt:  now,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// The exclusion constraint caught a concurrent insert the conflict
		// check could not see. Same outcome as a detected conflict.
		if errors.Is(err, repository.ErrOverlap) {
			s.log.Info("Booking rejected by overlap constraint",
				zap.String("room_id", input.RoomID.String()),
				zap.Time("start_time", start),
				zap.Time("end_time", end),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("room_id", booking.RoomID.String()),
		zap.String("category", string(booking.Category)),
		zap.Time("start_time", booking.StartTime),
		zap.Time("end_time", booking.EndTime),
		zap.String("status", string(booking.Status)),
		zap.Bool("is_semester", booking.IsSemester),
	)

	return booking, nil
}

// SetStatus overwrites the workflow status. Transitions are intentionally
// unrestricted; see DESIGN.md before tightening.
func (s *bookingService) SetStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	if !entity.ValidStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if err := s.repo.Booking.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	booking.Status = status

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID.String()),
		zap.String("status", string(status)),
	)

	return booking, nil
}

func (s *bookingService) Delete(ctx context.Context, bookingID uuid.UUID) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return ErrBookingNotFound
	}

	return s.repo.Booking.Delete(ctx, bookingID)
}

func (s *bookingService) List(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	bookings, err := s.repo.Booking.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	for _, b := range bookings {
		b.StartTime = s.tz.Normalize(b.StartTime)
		b.EndTime = s.tz.Normalize(b.EndTime)
	}

	return bookings, nil
}
