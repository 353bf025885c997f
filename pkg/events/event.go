package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicNoteCreated carries note-creation facts to the reconciler.
const TopicNoteCreated = "NOTE_CREATED"

type NoteCreated struct {
	NoteId     uuid.UUID `json:"note_id"`
	UserId     uuid.UUID `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
