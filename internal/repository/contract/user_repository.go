package contract

import (
	"context"

	"notes-be/internal/entity"

	"github.com/google/uuid"
)

type UserRepository interface {
	// Create persists the user and assigns its identifier.
	Create(ctx context.Context, user *entity.User) error
	Save(ctx context.Context, user *entity.User) error
	FindAll(ctx context.Context) ([]*entity.User, error)
	// FindByID returns (nil, nil) when no user matches.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// AppendNote adds noteId to the user's note set and saves the user.
	// Appending an id already present is a no-op, so retries are safe.
	AppendNote(ctx context.Context, userId, noteId uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
