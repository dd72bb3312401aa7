package usecase

import (
	"testing"
	"time"

	"room-reservation/internal/data/entity"
)

func TestIsHalfHourAligned(t *testing.T) {
	t.Parallel()

	loc := taipeiLocation(t)

	tests := []struct {
		name string
		time time.Time
		want bool
	}{
		{"on the hour", time.Date(2025, 9, 2, 8, 0, 0, 0, loc), true},
		{"on the half hour", time.Date(2025, 9, 2, 8, 30, 0, 0, loc), true},
		{"quarter past", time.Date(2025, 9, 2, 8, 15, 0, 0, loc), false},
		{"nonzero seconds", time.Date(2025, 9, 2, 8, 30, 1, 0, loc), false},
		{"nonzero nanoseconds", time.Date(2025, 9, 2, 8, 0, 0, 500, loc), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHalfHourAligned(tt.time); got != tt.want {
				t.Errorf("IsHalfHourAligned(%v) = %v, want %v", tt.time, got, tt.want)
			}
		})
	}
}

func TestWithinCategoryWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category entity.BookingCategory
		startH   int
		startM   int
		endH     int
		endM     int
		want     bool
	}{
		{"meeting full window", entity.CategoryMeeting, 8, 0, 17, 0, true},
		{"meeting ends past 17:00", entity.CategoryMeeting, 8, 0, 17, 30, false},
		{"meeting starts at open", entity.CategoryMeeting, 5, 0, 9, 0, true},
		{"meeting starts before open", entity.CategoryMeeting, 4, 30, 9, 0, false},
		{"activity before open", entity.CategoryActivity, 4, 0, 6, 0, false},
		{"activity ends at close", entity.CategoryActivity, 20, 0, 22, 0, true},
		{"activity ends past close", entity.CategoryActivity, 21, 30, 22, 30, false},
		{"course follows activity window", entity.CategoryCourse, 18, 0, 21, 30, true},
		{"course past meeting close is fine", entity.CategoryCourse, 17, 0, 19, 0, true},
		{"end equals start", entity.CategoryActivity, 10, 0, 10, 0, false},
		{"end before start", entity.CategoryActivity, 12, 0, 10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := taipeiTime(t, 2025, time.September, 2, tt.startH, tt.startM)
			end := taipeiTime(t, 2025, time.September, 2, tt.endH, tt.endM)
			if got := WithinCategoryWindow(tt.category, start, end); got != tt.want {
				t.Errorf("WithinCategoryWindow(%s, %02d:%02d, %02d:%02d) = %v, want %v",
					tt.category, tt.startH, tt.startM, tt.endH, tt.endM, got, tt.want)
			}
		})
	}
}

func TestWithinCategoryWindow_UnknownCategory(t *testing.T) {
	t.Parallel()

	start := taipeiTime(t, 2025, time.September, 2, 10, 0)
	end := taipeiTime(t, 2025, time.September, 2, 12, 0)

	if WithinCategoryWindow(entity.BookingCategory("banquet"), start, end) {
		t.Error("expected unknown category to be rejected")
	}
}

func TestWithinCategoryWindow_OvernightRejected(t *testing.T) {
	t.Parallel()

	// Wall-clock 21:00 to 06:00 next day computes endMin < startMin and must
	// be rejected regardless of the calendar day.
	start := taipeiTime(t, 2025, time.September, 2, 21, 0)
	end := taipeiTime(t, 2025, time.September, 3, 6, 0)

	if WithinCategoryWindow(entity.CategoryActivity, start, end) {
		t.Error("expected overnight span to be rejected")
	}
}
