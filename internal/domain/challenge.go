package domain

import (
	"time"

	"github.com/google/uuid"
)

// Challenge is one entry of the static 40-day catalog. The catalog is seeded
// by migrations and never mutated by the application.
type Challenge struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DayNumber   int       `db:"day_number" json:"day_number"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Verse       string    `db:"verse" json:"verse"`
}

// UserChallenge is one completion record: proof that a user finished the
// challenge of a given campaign day. At most one row exists per
// (user, day_number) pair and rows are never updated.
type UserChallenge struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	DayNumber   int       `db:"day_number" json:"day_number"`
	Completed   bool      `db:"completed" json:"completed"`
	CompletedAt time.Time `db:"completed_at" json:"completed_at"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
