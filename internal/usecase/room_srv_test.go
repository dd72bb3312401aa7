package usecase

import (
	"context"
	"testing"
	"time"

	"room-reservation/internal/data/entity"
	"room-reservation/internal/dto/request"

	"github.com/google/uuid"
)

func addBooking(env *testEnv, t *testing.T, roomID uuid.UUID, start, end time.Time) *entity.Booking {
	t.Helper()
	booking := &entity.Booking{
		ID:           uuid.New(),
		RoomID:       roomID,
		UserName:     "王小明",
		UserIdentity: "student",
		Category:     entity.CategoryActivity,
		StartTime:    start,
		EndTime:      end,
		Status:       entity.BookingStatusPending,
	}
	if err := env.bookings.Create(context.Background(), booking); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
	return booking
}

func TestRoomService_ProjectWeekly_WindowEdges(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	now := taipeiTime(t, 2025, time.September, 2, 10, 0)
	svc := env.roomService(now)

	// In progress right now: started an hour ago, ends in two.
	inProgress := addBooking(env, t, env.roomID,
		taipeiTime(t, 2025, time.September, 2, 9, 0),
		taipeiTime(t, 2025, time.September, 2, 12, 0))

	// Ended yesterday: out.
	addBooking(env, t, env.roomID,
		taipeiTime(t, 2025, time.September, 1, 9, 0),
		taipeiTime(t, 2025, time.September, 1, 12, 0))

	// Starts in 8 days: out.
	addBooking(env, t, env.roomID,
		taipeiTime(t, 2025, time.September, 10, 9, 0),
		taipeiTime(t, 2025, time.September, 10, 12, 0))

	// Earlier today, before now but after local midnight: in.
	earlierToday := addBooking(env, t, env.roomID,
		taipeiTime(t, 2025, time.September, 2, 6, 0),
		taipeiTime(t, 2025, time.September, 2, 7, 0))

	weekly, err := svc.ProjectWeekly(context.Background())
	if err != nil {
		t.Fatalf("ProjectWeekly: %v", err)
	}
	if len(weekly) != 1 {
		t.Fatalf("expected 1 room, got %d", len(weekly))
	}

	kept := weekly[0].Bookings
	if len(kept) != 2 {
		t.Fatalf("kept = %d bookings, want 2", len(kept))
	}

	// Sorted ascending by start time.
	if kept[0].ID != earlierToday.ID || kept[1].ID != inProgress.ID {
		t.Error("bookings not sorted ascending by start time")
	}
}

func TestRoomService_ProjectWeekly_EmptyRoomStillAppears(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.roomService(taipeiTime(t, 2025, time.September, 2, 10, 0))

	weekly, err := svc.ProjectWeekly(context.Background())
	if err != nil {
		t.Fatalf("ProjectWeekly: %v", err)
	}

	if len(weekly) != 1 {
		t.Fatalf("expected 1 room, got %d", len(weekly))
	}
	if weekly[0].Room.ID != env.roomID {
		t.Error("wrong room returned")
	}
	if len(weekly[0].Bookings) != 0 {
		t.Errorf("expected empty booking list, got %d", len(weekly[0].Bookings))
	}
}

func TestRoomService_ProjectWeekly_DoesNotMutateStoredRows(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.roomService(taipeiTime(t, 2025, time.September, 2, 10, 0))

	// Stored in UTC; 03:00-05:00 UTC is 11:00-13:00 Taipei today.
	addBooking(env, t, env.roomID,
		time.Date(2025, 9, 2, 3, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 2, 5, 0, 0, 0, time.UTC))

	weekly, err := svc.ProjectWeekly(context.Background())
	if err != nil {
		t.Fatalf("ProjectWeekly: %v", err)
	}

	kept := weekly[0].Bookings
	if len(kept) != 1 {
		t.Fatalf("kept = %d, want 1", len(kept))
	}
	if kept[0].StartTime.Hour() != 11 {
		t.Errorf("returned copy not normalized: hour = %d, want 11", kept[0].StartTime.Hour())
	}

	// Projection is a pure read: the stored row keeps its original zone.
	if env.bookings.bookings[0].StartTime.Location() != time.UTC {
		t.Error("stored booking mutated by read path")
	}
}

func TestRoomService_CreateAndRename(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.roomService(taipeiTime(t, 2025, time.September, 2, 10, 0))

	desc := "投影機"
	room, err := svc.Create(context.Background(), &request.CreateRoomRequest{
		Name:        "研討三",
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if room.Name != "研討三" {
		t.Errorf("name = %s", room.Name)
	}

	renamed, err := svc.Rename(context.Background(), room.ID, "研討三A")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if renamed.Name != "研討三A" {
		t.Errorf("renamed = %s", renamed.Name)
	}
}

func TestRoomService_GetNotFound(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	svc := env.roomService(taipeiTime(t, 2025, time.September, 2, 10, 0))

	if _, _, err := svc.Get(context.Background(), uuid.New()); err != ErrRoomNotFound {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
