package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"room-reservation/internal/data/entity"
	"room-reservation/internal/data/repository"
	"room-reservation/internal/dto/request"
	"room-reservation/internal/dto/response"
	"room-reservation/internal/usecase"
	"room-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service  usecase.BookingService
	semester usecase.SemesterService
	log      *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, semester usecase.SemesterService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:  service,
		semester: semester,
		log:      log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /bookings (public)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateFromRequest(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create booking")
		return
	}

	// Conflict sentinel: the slot is taken by a non-rejected booking.
	if booking == nil {
		utils.ResponseConflict(w, "Time slot conflicts with an existing booking")
		return
	}

	utils.ResponseCreated(w, "success", response.BookingToResponse(booking))
}

// ListBookings handles GET /bookings?room_id=&status= (public)
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	var filter repository.BookingFilter

	query := r.URL.Query()
	if v := query.Get("room_id"); v != "" {
		roomID, err := uuid.Parse(v)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid room_id filter", nil)
			return
		}
		filter.RoomID = &roomID
	}
	if v := query.Get("status"); v != "" {
		status := entity.BookingStatus(v)
		if !entity.ValidStatus(status) {
			utils.ResponseBadRequest(w, "Invalid status filter", nil)
			return
		}
		filter.Status = &status
	}

	bookings, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "list bookings")
		return
	}

	limit := utils.ParseInt(query.Get("limit"), 200)
	if len(bookings) > limit {
		bookings = bookings[:limit]
	}

	utils.ResponseSuccess(w, "success", response.BookingsToResponse(bookings))
}

// UpdateBookingStatus handles PATCH /admin/bookings/{id} (admin only)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.SetStatus(r.Context(), bookingID, entity.BookingStatus(req.Status))
	if err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", response.BookingToResponse(booking))
}

// DeleteBooking handles DELETE /admin/bookings/{id} (admin only)
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		h.handleServiceError(w, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateSemesterBookings handles POST /admin/semester_bookings (admin only)
func (h *BookingHandler) CreateSemesterBookings(w http.ResponseWriter, r *http.Request) {
	var req request.SemesterBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.semester.CreateSemester(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create semester bookings")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	var vErr *usecase.ValidationError

	switch {
	case errors.As(err, &vErr):
		h.log.Warn(operation+" rejected",
			zap.String("field", vErr.Field),
			zap.String("reason", vErr.Message))
		utils.ResponseBadRequest(w, errMsg, map[string]string{vErr.Field: vErr.Message})

	case errors.Is(err, usecase.ErrRoomNotFound), errors.Is(err, usecase.ErrBookingNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
