package dto

import (
	"github.com/google/uuid"
)

type CreateNoteRequest struct {
	Content   string `json:"content" validate:"required"`
	Important bool   `json:"important"`
}

type UpdateNoteRequest struct {
	Content   *string `json:"content"`
	Important *bool   `json:"important"`
}

type NoteResponse struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Important bool      `json:"important"`
	User      uuid.UUID `json:"user"`
}

// NoteOwnerSummary is the partial owner projection used when listing notes.
// It deliberately never carries the owner's note set.
type NoteOwnerSummary struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type NoteWithOwnerResponse struct {
	Id        uuid.UUID        `json:"id"`
	Content   string           `json:"content"`
	Important bool             `json:"important"`
	User      NoteOwnerSummary `json:"user"`
}
