package usecase

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/dto/request"

	"go.uber.org/zap"
)

func semesterRequest(env *testEnv) *request.SemesterBookingRequest {
	return &request.SemesterBookingRequest{
		RoomID:       env.roomID.String(),
		UserName:     "林助教",
		UserIdentity: "staff",
		Category:     "course",
		StartTimeHM:  "08:00",
		EndTimeHM:    "10:00",
		StartDate:    "2025-09-02", // a Tuesday
		EndDate:      "2025-12-16",
	}
}

func (e *testEnv) semesterService(t *testing.T, now time.Time, maxWeeks int) SemesterService {
	t.Helper()
	booking := e.bookingService(now)
	return NewSemesterService(booking, e.tz, maxWeeks, zap.NewNop())
}

func TestSemesterService_FullSemester(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	now := taipeiTime(t, 2025, time.August, 1, 12, 0)
	svc := env.semesterService(t, now, 40)

	result, err := svc.CreateSemester(context.Background(), semesterRequest(env))
	if err != nil {
		t.Fatalf("CreateSemester: %v", err)
	}

	// Tuesdays from 2025-09-02 through 2025-12-16 inclusive.
	if len(result.CreatedIDs) != 16 {
		t.Errorf("created = %d, want 16", len(result.CreatedIDs))
	}
	if len(result.SkippedConflicts) != 0 {
		t.Errorf("skipped = %d, want 0", len(result.SkippedConflicts))
	}
	if len(env.bookings.bookings) != 16 {
		t.Errorf("persisted = %d, want 16", len(env.bookings.bookings))
	}

	for _, b := range env.bookings.bookings {
		if !b.IsSemester {
			t.Error("series members must carry the is_semester flag")
			break
		}
		if b.StartTime.Weekday() != time.Tuesday {
			t.Errorf("occurrence on %s, want Tuesday", b.StartTime.Weekday())
		}
	}
}

func TestSemesterService_ResubmitSkipsEverything(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	now := taipeiTime(t, 2025, time.August, 1, 12, 0)
	svc := env.semesterService(t, now, 40)

	if _, err := svc.CreateSemester(context.Background(), semesterRequest(env)); err != nil {
		t.Fatalf("first CreateSemester: %v", err)
	}

	result, err := svc.CreateSemester(context.Background(), semesterRequest(env))
	if err != nil {
		t.Fatalf("second CreateSemester: %v", err)
	}

	if len(result.CreatedIDs) != 0 {
		t.Errorf("created = %d, want 0 on resubmit", len(result.CreatedIDs))
	}
	if len(result.SkippedConflicts) != 16 {
		t.Errorf("skipped = %d, want 16 on resubmit", len(result.SkippedConflicts))
	}
	if len(env.bookings.bookings) != 16 {
		t.Errorf("resubmit must not duplicate rows, have %d", len(env.bookings.bookings))
	}
}

func TestSemesterService_ReversedDates(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.semesterService(t, taipeiTime(t, 2025, time.August, 1, 12, 0), 40)

	req := semesterRequest(env)
	req.StartDate = "2025-12-16"
	req.EndDate = "2025-09-02"

	result, err := svc.CreateSemester(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateSemester: %v", err)
	}

	if len(result.CreatedIDs) != 0 || len(result.SkippedConflicts) != 0 {
		t.Errorf("reversed dates must yield empty result, got %d/%d",
			len(result.CreatedIDs), len(result.SkippedConflicts))
	}
	if len(env.bookings.bookings) != 0 {
		t.Error("reversed dates must have zero side effects")
	}
}

func TestSemesterService_WeekCap(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.semesterService(t, taipeiTime(t, 2025, time.August, 1, 12, 0), 40)

	req := semesterRequest(env)
	req.StartDate = "2025-09-02"
	req.EndDate = "2027-09-02" // over 100 weeks

	result, err := svc.CreateSemester(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateSemester: %v", err)
	}

	if got := len(result.CreatedIDs) + len(result.SkippedConflicts); got != 40 {
		t.Errorf("attempts = %d, want exactly the 40-week cap", got)
	}
}

func TestSemesterService_PartialConflictsContinue(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	now := taipeiTime(t, 2025, time.August, 1, 12, 0)
	booking := env.bookingService(now)
	svc := NewSemesterService(booking, env.tz, 40, zap.NewNop())

	// Pre-book the third Tuesday.
	taken, err := booking.Create(context.Background(), CreateBookingInput{
		RoomID:       env.roomID,
		UserName:     "張先生",
		UserIdentity: "other",
		Category:     "activity",
		Start:        taipeiTime(t, 2025, time.September, 16, 9, 0),
		End:          taipeiTime(t, 2025, time.September, 16, 9, 30),
	})
	if err != nil || taken == nil {
		t.Fatalf("pre-booking failed: booking=%v err=%v", taken, err)
	}

	result, err := svc.CreateSemester(context.Background(), semesterRequest(env))
	if err != nil {
		t.Fatalf("CreateSemester: %v", err)
	}

	if len(result.CreatedIDs) != 15 {
		t.Errorf("created = %d, want 15", len(result.CreatedIDs))
	}
	if len(result.SkippedConflicts) != 1 {
		t.Fatalf("skipped = %d, want 1", len(result.SkippedConflicts))
	}

	wantSkip := taipeiTime(t, 2025, time.September, 16, 8, 0).Format(time.RFC3339)
	if result.SkippedConflicts[0] != wantSkip {
		t.Errorf("skipped marker = %s, want %s", result.SkippedConflicts[0], wantSkip)
	}
}

func TestSemesterService_ValidationFailuresSkipNotAbort(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.semesterService(t, taipeiTime(t, 2025, time.August, 1, 12, 0), 40)

	// Meetings must end by 17:00, so every occurrence fails the window gate.
	req := semesterRequest(env)
	req.Category = "meeting"
	req.StartTimeHM = "16:00"
	req.EndTimeHM = "18:00"

	result, err := svc.CreateSemester(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateSemester: %v", err)
	}

	if len(result.CreatedIDs) != 0 {
		t.Errorf("created = %d, want 0", len(result.CreatedIDs))
	}
	if len(result.SkippedConflicts) != 16 {
		t.Errorf("skipped = %d, want all 16 occurrences", len(result.SkippedConflicts))
	}
}
