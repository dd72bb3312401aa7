package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// ValidStatus reports whether s is one of the known workflow states.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return true
	}
	return false
}

type BookingCategory string

const (
	CategoryActivity BookingCategory = "activity" // 05:00-22:00
	CategoryMeeting  BookingCategory = "meeting"  // 05:00-17:00
	CategoryCourse   BookingCategory = "course"   // same window as activity
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c BookingCategory) bool {
	switch c {
	case CategoryActivity, CategoryMeeting, CategoryCourse:
		return true
	}
	return false
}

type Booking struct {
	ID           uuid.UUID       `db:"id"`
	RoomID       uuid.UUID       `db:"room_id"`
	UserName     string          `db:"user_name"`
	UserIdentity string          `db:"user_identity"`
	Purpose      *string         `db:"purpose"`
	Category     BookingCategory `db:"category"`
	StartTime    time.Time       `db:"start_time"`
	EndTime      time.Time       `db:"end_time"`
	Status       BookingStatus   `db:"status"`
	IsSemester   bool            `db:"is_semester"`
	CreatedAt    time.Time       `db:"created_at"`
	RequestedAt  time.Time       `db:"requested_at"`
}
