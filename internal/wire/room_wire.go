package wire

import (
	"room-reservation/internal/adaptor"
	"room-reservation/pkg/middleware"
	"room-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/rooms", roomHandler.ListRooms)
	r.Get("/rooms/weekly", roomHandler.ListRoomsWeekly)
	r.Get("/rooms/{id}", roomHandler.GetRoom)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AdminKey(config.Admin.KeyHash, log))

		r.Post("/admin/rooms", roomHandler.CreateRoom)
		r.Patch("/admin/rooms/{id}", roomHandler.RenameRoom)
		r.Delete("/admin/rooms/{id}", roomHandler.DeleteRoom)
	})
}
