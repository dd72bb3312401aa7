package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"room-reservation/internal/data/entity"
	"room-reservation/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type roomRepoStub struct {
	rooms []*entity.Room
	err   error
}

func (r *roomRepoStub) Create(ctx context.Context, room *entity.Room) error {
	if r.err != nil {
		return r.err
	}
	r.rooms = append(r.rooms, room)
	return nil
}

func (r *roomRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, room := range r.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, nil
}

func (r *roomRepoStub) List(ctx context.Context) ([]*entity.Room, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*entity.Room, len(r.rooms))
	copy(out, r.rooms)
	return out, nil
}

func (r *roomRepoStub) Count(ctx context.Context) (int64, error) {
	return int64(len(r.rooms)), r.err
}

func (r *roomRepoStub) Rename(ctx context.Context, id uuid.UUID, name string) error {
	if r.err != nil {
		return r.err
	}
	for _, room := range r.rooms {
		if room.ID == id {
			room.Name = name
			return nil
		}
	}
	return fmt.Errorf("room %s not found", id.String())
}

func (r *roomRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	for i, room := range r.rooms {
		if room.ID == id {
			r.rooms = append(r.rooms[:i], r.rooms[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("room %s not found", id.String())
}

type bookingRepoStub struct {
	bookings []*entity.Booking
	err      error
}

func (b *bookingRepoStub) Create(ctx context.Context, booking *entity.Booking) error {
	if b.err != nil {
		return b.err
	}
	stored := *booking
	b.bookings = append(b.bookings, &stored)
	return nil
}

func (b *bookingRepoStub) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, booking := range b.bookings {
		if booking.ID == id {
			return booking, nil
		}
	}
	return nil, nil
}

func (b *bookingRepoStub) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Booking, error) {
	if b.err != nil {
		return nil, b.err
	}
	var out []*entity.Booking
	for _, booking := range b.bookings {
		if booking.RoomID == roomID {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (b *bookingRepoStub) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Booking, error) {
	if b.err != nil {
		return nil, b.err
	}
	var out []*entity.Booking
	for _, booking := range b.bookings {
		if booking.RoomID == roomID && booking.Status != entity.BookingStatusRejected {
			out = append(out, booking)
		}
	}
	return out, nil
}

func (b *bookingRepoStub) List(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	if b.err != nil {
		return nil, b.err
	}
	var out []*entity.Booking
	for _, booking := range b.bookings {
		if filter.RoomID != nil && booking.RoomID != *filter.RoomID {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		out = append(out, booking)
	}
	return out, nil
}

func (b *bookingRepoStub) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	if b.err != nil {
		return b.err
	}
	for _, booking := range b.bookings {
		if booking.ID == id {
			booking.Status = status
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", id.String())
}

func (b *bookingRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	if b.err != nil {
		return b.err
	}
	for i, booking := range b.bookings {
		if booking.ID == id {
			b.bookings = append(b.bookings[:i], b.bookings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("booking %s not found", id.String())
}

func taipeiLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Taipei")
	if err != nil {
		t.Fatalf("failed to load Asia/Taipei location: %v", err)
	}
	return loc
}

func taipeiTime(t *testing.T, year int, month time.Month, day, hour, minute int) time.Time {
	t.Helper()
	return time.Date(year, month, day, hour, minute, 0, 0, taipeiLocation(t))
}

type testEnv struct {
	rooms    *roomRepoStub
	bookings *bookingRepoStub
	roomID   uuid.UUID
	tz       *Normalizer
	repo     *repository.Repository
}

// newTestEnv builds a repository backed by stubs with one seeded room.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	roomID := uuid.New()
	rooms := &roomRepoStub{rooms: []*entity.Room{{
		ID:        roomID,
		Name:      "204",
		CreatedAt: taipeiTime(t, 2025, time.January, 1, 0, 0),
	}}}
	bookings := &bookingRepoStub{}

	return &testEnv{
		rooms:    rooms,
		bookings: bookings,
		roomID:   roomID,
		tz:       NewNormalizer(taipeiLocation(t)),
		repo:     &repository.Repository{Room: rooms, Booking: bookings},
	}
}

func (e *testEnv) bookingService(now time.Time) BookingService {
	return NewBookingService(e.repo, e.tz, func() time.Time { return now }, zap.NewNop())
}

func (e *testEnv) roomService(now time.Time) RoomService {
	return NewRoomService(e.repo, e.tz, func() time.Time { return now }, zap.NewNop())
}
