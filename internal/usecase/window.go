package usecase

import (
	"time"

	"room-reservation/internal/data/entity"
)

// Allowed clock windows per category, minutes from local midnight, half-open.
const (
	windowOpenMinute = 5 * 60 // 05:00

	activityCloseMinute = 22 * 60 // 22:00
	meetingCloseMinute  = 17 * 60 // 17:00
)

// IsHalfHourAligned reports whether t sits exactly on the hour or half hour.
func IsHalfHourAligned(t time.Time) bool {
	return (t.Minute() == 0 || t.Minute() == 30) && t.Second() == 0 && t.Nanosecond() == 0
}

// categoryWindow returns the [open, close) window in minutes from midnight.
// Course bookings follow the activity window; unknown categories get no window.
func categoryWindow(category entity.BookingCategory) (open, close int, ok bool) {
	switch category {
	case entity.CategoryActivity, entity.CategoryCourse:
		return windowOpenMinute, activityCloseMinute, true
	case entity.CategoryMeeting:
		return windowOpenMinute, meetingCloseMinute, true
	}
	return 0, 0, false
}

// WithinCategoryWindow reports whether [start, end) fits the category's
// allowed same-day clock window. Both instants must already be in the
// reference zone. Overnight spans are rejected.
func WithinCategoryWindow(category entity.BookingCategory, start, end time.Time) bool {
	open, close, ok := categoryWindow(category)
	if !ok {
		return false
	}

	startMin := start.Hour()*60 + start.Minute()
	endMin := end.Hour()*60 + end.Minute()
	if endMin <= startMin {
		return false
	}

	return open <= startMin && startMin < close &&
		open < endMin && endMin <= close
}
