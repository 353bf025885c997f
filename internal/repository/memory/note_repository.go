package memory

import (
	"context"
	"sort"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// NoteRepository is the process-owned in-memory variant of the note store.
// Entries never expire; the cache is just a concurrency-safe keyed map.
type NoteRepository struct {
	cache *cache.Cache
}

func NewNoteRepository() *NoteRepository {
	return &NoteRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func cloneNote(n *entity.Note) *entity.Note {
	c := *n
	return &c
}

func (r *NoteRepository) Create(ctx context.Context, note *entity.Note) error {
	if note.Id == uuid.Nil {
		note.Id = uuid.New()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	r.cache.Set(note.Id.String(), cloneNote(note), cache.NoExpiration)
	return nil
}

func (r *NoteRepository) FindAll(ctx context.Context) ([]*entity.Note, error) {
	items := r.cache.Items()
	notes := make([]*entity.Note, 0, len(items))
	for _, item := range items {
		notes = append(notes, cloneNote(item.Object.(*entity.Note)))
	}
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].Id.String() < notes[j].Id.String()
		}
		return notes[i].CreatedAt.Before(notes[j].CreatedAt)
	})
	return notes, nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Note, error) {
	if x, found := r.cache.Get(id.String()); found {
		return cloneNote(x.(*entity.Note)), nil
	}
	return nil, nil
}

func (r *NoteRepository) UpdateByID(ctx context.Context, id uuid.UUID, patch contract.NotePatch) (*entity.Note, error) {
	x, found := r.cache.Get(id.String())
	if !found {
		return nil, nil
	}
	note := cloneNote(x.(*entity.Note))
	if patch.Content != nil {
		note.Content = *patch.Content
	}
	if patch.Important != nil {
		note.Important = *patch.Important
	}
	now := time.Now()
	note.UpdatedAt = &now
	r.cache.Set(note.Id.String(), note, cache.NoExpiration)
	return cloneNote(note), nil
}

func (r *NoteRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	r.cache.Delete(id.String())
	return nil
}

func (r *NoteRepository) Count(ctx context.Context) (int64, error) {
	return int64(r.cache.ItemCount()), nil
}
