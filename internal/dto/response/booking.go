package response

import (
	"time"

	"room-reservation/internal/data/entity"
)

type BookingResponse struct {
	ID           string    `json:"id"`
	RoomID       string    `json:"room_id"`
	UserName     string    `json:"user_name"`
	UserIdentity string    `json:"user_identity"`
	Purpose      *string   `json:"purpose,omitempty"`
	Category     string    `json:"category"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	IsSemester   bool      `json:"is_semester"`
	CreatedAt    time.Time `json:"created_at"`
	RequestedAt  time.Time `json:"requested_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID.String(),
		RoomID:       b.RoomID.String(),
		UserName:     b.UserName,
		UserIdentity: b.UserIdentity,
		Purpose:      b.Purpose,
		Category:     string(b.Category),
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       string(b.Status),
		IsSemester:   b.IsSemester,
		CreatedAt:    b.CreatedAt,
		RequestedAt:  b.RequestedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = BookingToResponse(b)
	}
	return out
}

type SemesterBookingResult struct {
	CreatedIDs       []string `json:"created_ids"`
	SkippedConflicts []string `json:"skipped_conflicts"`
}
