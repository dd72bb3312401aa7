package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"room-reservation/internal/dto/request"
	"room-reservation/internal/dto/response"
	"room-reservation/internal/usecase"
	"room-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /rooms (public)
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list rooms")
		return
	}

	out := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		out[i] = response.RoomToResponse(room)
	}

	utils.ResponseSuccess(w, "success", out)
}

// ListRoomsWeekly handles GET /rooms/weekly (public)
func (h *RoomHandler) ListRoomsWeekly(w http.ResponseWriter, r *http.Request) {
	weekly, err := h.service.ProjectWeekly(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "project weekly rooms")
		return
	}

	out := make([]response.WeeklyRoomResponse, len(weekly))
	for i, wr := range weekly {
		out[i] = response.WeeklyRoomResponse{
			RoomResponse: response.RoomToResponse(wr.Room),
			Bookings:     response.BookingsToResponse(wr.Bookings),
		}
	}

	utils.ResponseSuccess(w, "success", out)
}

// GetRoom handles GET /rooms/{id} (public)
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	room, bookings, err := h.service.Get(r.Context(), roomID)
	if err != nil {
		h.handleServiceError(w, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", response.RoomWithBookingsResponse{
		RoomResponse: response.RoomToResponse(room),
		Bookings:     response.BookingsToResponse(bookings),
	})
}

// CreateRoom handles POST /admin/rooms (admin only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", response.RoomToResponse(room))
}

// RenameRoom handles PATCH /admin/rooms/{id} (admin only)
func (h *RoomHandler) RenameRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	var req request.RenameRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	room, err := h.service.Rename(r.Context(), roomID, req.Name)
	if err != nil {
		h.handleServiceError(w, err, "rename room")
		return
	}

	utils.ResponseSuccess(w, "success", response.RoomToResponse(room))
}

// DeleteRoom handles DELETE /admin/rooms/{id} (admin only)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	if err := h.service.Delete(r.Context(), roomID); err != nil {
		h.handleServiceError(w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func (h *RoomHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrRoomNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "duplicate key"):
		h.log.Warn(operation+" failed - name taken", zap.Error(err))
		utils.ResponseConflict(w, "Room name already exists")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
