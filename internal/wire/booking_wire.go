package wire

import (
	"room-reservation/internal/adaptor"
	"room-reservation/pkg/middleware"
	"room-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /bookings - Request a room booking (status starts pending)
	r.Post("/bookings", bookingHandler.CreateBooking)

	// GET /bookings - List bookings, optionally filtered by room/status
	r.Get("/bookings", bookingHandler.ListBookings)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin.KeyHash, log))

		// PATCH /admin/bookings/{id} - Approve or reject a booking
		r.Patch("/admin/bookings/{id}", bookingHandler.UpdateBookingStatus)

		// DELETE /admin/bookings/{id} - Remove a booking
		r.Delete("/admin/bookings/{id}", bookingHandler.DeleteBooking)

		// POST /admin/semester_bookings - Expand a weekly recurring request
		r.Post("/admin/semester_bookings", bookingHandler.CreateSemesterBookings)
	})
}
