package usecase

import (
	"fmt"
	"time"

	"room-reservation/internal/data/repository"
	"room-reservation/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Room     RoomService
	Booking  BookingService
	Semester SemesterService
}

// NewService wires the core services around a shared time normalizer built
// from the configured reference zone.
func NewService(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*Service, error) {
	loc, err := time.LoadLocation(config.Booking.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", config.Booking.Timezone, err)
	}
	tz := NewNormalizer(loc)

	booking := NewBookingService(repo, tz, nil, logger)

	return &Service{
		Room:     NewRoomService(repo, tz, nil, logger),
		Booking:  booking,
		Semester: NewSemesterService(booking, tz, config.Booking.MaxSeriesWeeks, logger),
	}, nil
}
