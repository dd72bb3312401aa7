package usecase

import (
	"context"
	"fmt"
	"time"

	"room-reservation/internal/data/entity"
	"room-reservation/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConflictDetector finds active bookings overlapping a requested interval.
type ConflictDetector struct {
	bookings repository.BookingRepository
	tz       *Normalizer
	log      *zap.Logger
}

func NewConflictDetector(bookings repository.BookingRepository, tz *Normalizer, log *zap.Logger) *ConflictDetector {
	return &ConflictDetector{
		bookings: bookings,
		tz:       tz,
		log:      log.With(zap.String("component", "conflict_detector")),
	}
}

// overlaps reports whether [start, end) collides with [candStart, candEnd).
// Touching at a shared edge is not a conflict, so back-to-back bookings are
// allowed.
func overlaps(start, end, candStart, candEnd time.Time) bool {
	if !start.Before(candEnd) || !end.After(candStart) {
		return false
	}
	return true
}

// FindConflicts returns every non-rejected booking in the room whose interval
// overlaps [start, end). The full set is returned, not just existence, so
// callers can log all colliding bookings.
func (d *ConflictDetector) FindConflicts(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]*entity.Booking, error) {
	candidates, err := d.bookings.FindActiveByRoomID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("load active bookings: %w", err)
	}

	var conflicts []*entity.Booking
	for _, candidate := range candidates {
		// Stored times may predate zone normalization; compare in the
		// reference zone on both sides.
		candStart := d.tz.Normalize(candidate.StartTime)
		candEnd := d.tz.Normalize(candidate.EndTime)

		if overlaps(start, end, candStart, candEnd) {
			conflicts = append(conflicts, candidate)
		}
	}

	return conflicts, nil
}
