package response

import (
	"room-reservation/internal/data/entity"
)

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func RoomToResponse(r *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          r.ID.String(),
		Name:        r.Name,
		Description: r.Description,
	}
}

type RoomWithBookingsResponse struct {
	RoomResponse
	Bookings []BookingResponse `json:"bookings"`
}

// WeeklyRoomResponse carries a room plus only the bookings that intersect the
// rolling 7-day display window. Rooms without bookings still appear with an
// empty list.
type WeeklyRoomResponse struct {
	RoomResponse
	Bookings []BookingResponse `json:"bookings"`
}
