package contract

import (
	"context"

	"notes-be/internal/entity"

	"github.com/google/uuid"
)

// NotePatch carries a partial update; nil fields are left untouched.
type NotePatch struct {
	Content   *string
	Important *bool
}

type NoteRepository interface {
	// Create persists the note and assigns its identifier.
	Create(ctx context.Context, note *entity.Note) error
	FindAll(ctx context.Context) ([]*entity.Note, error)
	// FindByID returns (nil, nil) when no note matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error)
	// UpdateByID applies the patch and returns the post-update note, or
	// (nil, nil) when no note matches.
	UpdateByID(ctx context.Context, id uuid.UUID, patch NotePatch) (*entity.Note, error)
	// DeleteByID is idempotent; deleting an absent id is not an error.
	DeleteByID(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
