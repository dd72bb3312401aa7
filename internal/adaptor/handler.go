package adaptor

import (
	"room-reservation/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Room    *RoomHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Room:    NewRoomHandler(service.Room, log),
		Booking: NewBookingHandler(service.Booking, service.Semester, log),
	}
}
