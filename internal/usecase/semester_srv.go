package usecase

import (
	"context"
	"fmt"
	"time"

	"room-reservation/internal/data/entity"
	"room-reservation/internal/dto/request"
	"room-reservation/internal/dto/response"
	"room-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SemesterService expands a weekly recurring request into individual booking
// attempts. Each occurrence is validated and conflict-checked independently;
// failures are reported, never raised, so one taken slot does not abort the
// rest of the semester.
type SemesterService interface {
	CreateSemester(ctx context.Context, req *request.SemesterBookingRequest) (*response.SemesterBookingResult, error)
}

type semesterService struct {
	booking        BookingService
	tz             *Normalizer
	maxSeriesWeeks int
	log            *zap.Logger
}

func NewSemesterService(booking BookingService, tz *Normalizer, maxSeriesWeeks int, log *zap.Logger) SemesterService {
	return &semesterService{
		booking:        booking,
		tz:             tz,
		maxSeriesWeeks: maxSeriesWeeks,
		log:            log.With(zap.String("service", "semester")),
	}
}

func (s *semesterService) CreateSemester(ctx context.Context, req *request.SemesterBookingRequest) (*response.SemesterBookingResult, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create semester validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	category := entity.BookingCategory(req.Category)
	if !entity.ValidCategory(category) {
		return nil, newWindowError(fmt.Sprintf("unknown category %q", req.Category))
	}

	startClock, err := time.Parse("15:04", req.StartTimeHM)
	if err != nil {
		return nil, fmt.Errorf("invalid start_time_hm %s: %w", req.StartTimeHM, err)
	}
	endClock, err := time.Parse("15:04", req.EndTimeHM)
	if err != nil {
		return nil, fmt.Errorf("invalid end_time_hm %s: %w", req.EndTimeHM, err)
	}

	startDate, err := time.ParseInLocation("2006-01-02", req.StartDate, s.tz.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid start_date %s: %w", req.StartDate, err)
	}
	endDate, err := time.ParseInLocation("2006-01-02", req.EndDate, s.tz.Location())
	if err != nil {
		return nil, fmt.Errorf("invalid end_date %s: %w", req.EndDate, err)
	}

	result := &response.SemesterBookingResult{
		CreatedIDs:       []string{},
		SkippedConflicts: []string{},
	}

	if endDate.Before(startDate) {
		return result, nil
	}

	// Weekly on the weekday of the first date. The +7 step keeps current on
	// that weekday; the nudge below only matters if the dates drift, and the
	// week cap bounds the loop against malformed ranges either way.
	targetWeekday := startDate.Weekday()
	current := startDate
	weeks := 0

	for !current.After(endDate) && weeks < s.maxSeriesWeeks {
		if current.Weekday() != targetWeekday {
			current = current.AddDate(0, 0, 1)
			continue
		}

		start := s.tz.CombineDateTime(current, startClock.Hour(), startClock.Minute())
		end := s.tz.CombineDateTime(current, endClock.Hour(), endClock.Minute())

		booking, err := s.booking.Create(ctx, CreateBookingInput{
			RoomID:         roomID,
			UserName:       req.UserName,
			UserIdentity:   req.UserIdentity,
			Purpose:        req.Purpose,
			Category:       category,
			Start:          start,
			End:            end,
			IsSeriesMember: true,
		})

		switch {
		case err != nil && IsValidationError(err):
			result.SkippedConflicts = append(result.SkippedConflicts, start.Format(time.RFC3339))
			s.log.Info("Semester occurrence skipped by validation",
				zap.String("room_id", roomID.String()),
				zap.Time("start_time", start),
				zap.String("reason", err.Error()),
			)
		case err != nil:
			return nil, fmt.Errorf("create semester occurrence %s: %w", start.Format(time.RFC3339), err)
		case booking == nil:
			result.SkippedConflicts = append(result.SkippedConflicts, start.Format(time.RFC3339))
			s.log.Info("Semester occurrence skipped by conflict",
				zap.String("room_id", roomID.String()),
				zap.Time("start_time", start),
			)
		default:
			result.CreatedIDs = append(result.CreatedIDs, booking.ID.String())
		}

		weeks++
		current = current.AddDate(0, 0, 7)
	}

	s.log.Info("Semester series processed",
		zap.String("room_id", roomID.String()),
		zap.String("weekday", targetWeekday.String()),
		zap.Int("created", len(result.CreatedIDs)),
		zap.Int("skipped", len(result.SkippedConflicts)),
	)

	return result, nil
}
