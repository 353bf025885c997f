package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Name         string
	PasswordHash string
	// Notes holds the identifiers of notes owned by this user. Grows via the
	// create path only; deletion does not prune it.
	Notes     []uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
