package entity

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id        uuid.UUID
	Content   string
	Important bool
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}
