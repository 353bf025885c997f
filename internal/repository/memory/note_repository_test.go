package memory_test

import (
	"context"
	"testing"

	"notes-be/internal/entity"
	"notes-be/internal/repository/contract"
	"notes-be/internal/repository/memory"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteRepositoryCreateAssignsID(t *testing.T) {
	repo := memory.NewNoteRepository()
	ctx := context.Background()

	note := &entity.Note{Content: "HTML is easy", UserId: uuid.New()}
	require.NoError(t, repo.Create(ctx, note))

	assert.NotEqual(t, uuid.Nil, note.Id)
	assert.False(t, note.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, note.Id)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "HTML is easy", found.Content)
	assert.False(t, found.Important)
}

func TestNoteRepositoryFindByIDAbsent(t *testing.T) {
	repo := memory.NewNoteRepository()

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestNoteRepositoryUpdateByID(t *testing.T) {
	repo := memory.NewNoteRepository()
	ctx := context.Background()
	owner := uuid.New()

	note := &entity.Note{Content: "old", Important: true, UserId: owner}
	require.NoError(t, repo.Create(ctx, note))

	t.Run("partial patch keeps untouched fields", func(t *testing.T) {
		content := "new"
		updated, err := repo.UpdateByID(ctx, note.Id, contract.NotePatch{Content: &content})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "new", updated.Content)
		assert.True(t, updated.Important)
		assert.Equal(t, owner, updated.UserId)
	})

	t.Run("absent id yields nil, not an error", func(t *testing.T) {
		updated, err := repo.UpdateByID(ctx, uuid.New(), contract.NotePatch{})
		require.NoError(t, err)
		assert.Nil(t, updated)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestNoteRepositoryDeleteIsIdempotent(t *testing.T) {
	repo := memory.NewNoteRepository()
	ctx := context.Background()

	note := &entity.Note{Content: "x", UserId: uuid.New()}
	require.NoError(t, repo.Create(ctx, note))

	require.NoError(t, repo.DeleteByID(ctx, note.Id))
	require.NoError(t, repo.DeleteByID(ctx, note.Id))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNoteRepositoryFindAllReturnsCopies(t *testing.T) {
	repo := memory.NewNoteRepository()
	ctx := context.Background()

	note := &entity.Note{Content: "original", UserId: uuid.New()}
	require.NoError(t, repo.Create(ctx, note))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	all[0].Content = "mutated"

	found, err := repo.FindByID(ctx, note.Id)
	require.NoError(t, err)
	assert.Equal(t, "original", found.Content)
}
