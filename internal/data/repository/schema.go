package repository

import (
	"context"
	"fmt"
	"time"

	"room-reservation/internal/data/entity"
	"room-reservation/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The exclusion constraint is the serialization mechanism for concurrent
// creators targeting the same room and interval: the in-service conflict check
// produces the diagnostic list, the constraint guarantees at most one
// non-rejected booking per room-instant.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id UUID PRIMARY KEY,
		room_id UUID NOT NULL REFERENCES rooms(id) ON DELETE CASCADE,
		user_name TEXT NOT NULL,
		user_identity TEXT NOT NULL,
		purpose TEXT,
		category TEXT NOT NULL,
		start_time TIMESTAMPTZ NOT NULL,
		end_time TIMESTAMPTZ NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		is_semester BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		requested_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT bookings_time_order CHECK (end_time > start_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_room_id ON bookings (room_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_start_time ON bookings (start_time)`,
	`ALTER TABLE bookings DROP CONSTRAINT IF EXISTS bookings_no_overlap`,
	`ALTER TABLE bookings ADD CONSTRAINT bookings_no_overlap
		EXCLUDE USING gist (
			room_id WITH =,
			tstzrange(start_time, end_time) WITH &&
		) WHERE (status <> 'rejected')`,
}

// Default rooms seeded on an empty database.
var seedRooms = []struct {
	name        string
	description string
}{
	{"116", ""},
	{"221", ""},
	{"電腦教室", "電腦設備齊全"},
	{"204", ""},
	{"研討一", ""},
	{"研討二", ""},
}

// Migrate creates the schema and seeds default rooms when none exist.
func Migrate(ctx context.Context, db database.PgxIface, log *zap.Logger) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}

	rooms := NewRoomRepository(db, log)
	count, err := rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("check room seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedRooms {
		room := &entity.Room{
			ID:        uuid.New(),
			Name:      seed.name,
			CreatedAt: time.Now(),
		}
		if seed.description != "" {
			desc := seed.description
			room.Description = &desc
		}
		if err := rooms.Create(ctx, room); err != nil {
			return fmt.Errorf("seed room %s: %w", seed.name, err)
		}
	}

	log.Info("Seeded default rooms", zap.Int("count", len(seedRooms)))
	return nil
}
