package repository

import (
	"room-reservation/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room    RoomRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:    NewRoomRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
