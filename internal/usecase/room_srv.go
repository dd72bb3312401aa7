package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"room-reservation/internal/data/entity"
	"room-reservation/internal/data/repository"
	"room-reservation/internal/dto/request"
	"room-reservation/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WeeklyRoom pairs a room with the bookings intersecting the 7-day display
// window, normalized and sorted by start time.
type WeeklyRoom struct {
	Room     *entity.Room
	Bookings []*entity.Booking
}

type RoomService interface {
	Create(ctx context.Context, req *request.CreateRoomRequest) (*entity.Room, error)
	Get(ctx context.Context, roomID uuid.UUID) (*entity.Room, []*entity.Booking, error)
	List(ctx context.Context) ([]*entity.Room, error)
	Rename(ctx context.Context, roomID uuid.UUID, name string) (*entity.Room, error)
	Delete(ctx context.Context, roomID uuid.UUID) error
	// ProjectWeekly returns every room with the subset of its bookings that
	// overlap [startOfToday, startOfToday+7d) in the reference zone. Pure
	// read: stored rows are never rewritten on this path.
	ProjectWeekly(ctx context.Context) ([]WeeklyRoom, error)
}

type roomService struct {
	repo *repository.Repository
	tz   *Normalizer
	now  func() time.Time
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, tz *Normalizer, now func() time.Time, log *zap.Logger) RoomService {
	if now == nil {
		now = time.Now
	}
	return &roomService{
		repo: repo,
		tz:   tz,
		now:  now,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) Create(ctx context.Context, req *request.CreateRoomRequest) (*entity.Room, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	room := &entity.Room{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		CreatedAt:   s.tz.Normalize(s.now()),
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
	)

	return room, nil
}

func (s *roomService) Get(ctx context.Context, roomID uuid.UUID) (*entity.Room, []*entity.Booking, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, nil, ErrRoomNotFound
	}

	bookings, err := s.repo.Booking.FindByRoomID(ctx, roomID)
	if err != nil {
		return nil, nil, fmt.Errorf("find room bookings: %w", err)
	}

	for _, b := range bookings {
		b.StartTime = s.tz.Normalize(b.StartTime)
		b.EndTime = s.tz.Normalize(b.EndTime)
	}

	return room, bookings, nil
}

func (s *roomService) List(ctx context.Context) ([]*entity.Room, error) {
	return s.repo.Room.List(ctx)
}

func (s *roomService) Rename(ctx context.Context, roomID uuid.UUID, name string) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	if err := s.repo.Room.Rename(ctx, roomID, name); err != nil {
		return nil, fmt.Errorf("rename room: %w", err)
	}
	room.Name = name

	s.log.Info("Room renamed",
		zap.String("room_id", roomID.String()),
		zap.String("name", name),
	)

	return room, nil
}

// Delete removes the room; its bookings go with it (cascade).
func (s *roomService) Delete(ctx context.Context, roomID uuid.UUID) error {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return ErrRoomNotFound
	}

	return s.repo.Room.Delete(ctx, roomID)
}

func (s *roomService) ProjectWeekly(ctx context.Context) ([]WeeklyRoom, error) {
	rooms, err := s.repo.Room.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	windowStart := s.tz.StartOfDay(s.now())
	windowEnd := windowStart.AddDate(0, 0, 7)

	result := make([]WeeklyRoom, 0, len(rooms))
	for _, room := range rooms {
		bookings, err := s.repo.Booking.FindByRoomID(ctx, room.ID)
		if err != nil {
			return nil, fmt.Errorf("find bookings for room %s: %w", room.ID.String(), err)
		}

		kept := make([]*entity.Booking, 0, len(bookings))
		for _, b := range bookings {
			// Normalized copy; legacy zone representations are converted
			// for comparison and serialization but never written back.
			normalized := *b
			normalized.StartTime = s.tz.Normalize(b.StartTime)
			normalized.EndTime = s.tz.Normalize(b.EndTime)

			if normalized.StartTime.Before(windowEnd) && normalized.EndTime.After(windowStart) {
				kept = append(kept, &normalized)
			}
		}

		sort.Slice(kept, func(i, j int) bool {
			return kept[i].StartTime.Before(kept[j].StartTime)
		})

		result = append(result, WeeklyRoom{Room: room, Bookings: kept})
	}

	return result, nil
}
