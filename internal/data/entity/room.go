package entity

import (
	"time"

	"github.com/google/uuid"
)

type Room struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}
