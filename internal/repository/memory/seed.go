package memory

import (
	"context"

	"notes-be/internal/entity"
	"notes-be/internal/repository/contract"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var seedNotes = []struct {
	content   string
	important bool
}{
	{"HTML is easy", true},
	{"Browser can execute only JavaScript", false},
	{"GET and POST are the most important methods of HTTP protocol", true},
}

// Seed populates the in-memory stores with the starter collection: one
// superuser owning three notes. Only used with the memory driver.
func Seed(ctx context.Context, notes contract.NoteRepository, users contract.UserRepository) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("sekret"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &entity.User{
		Username:     "root",
		Name:         "Superuser",
		PasswordHash: string(hash),
		Notes:        []uuid.UUID{},
	}
	if err := users.Create(ctx, user); err != nil {
		return err
	}

	for _, s := range seedNotes {
		note := &entity.Note{
			Content:   s.content,
			Important: s.important,
			UserId:    user.Id,
		}
		if err := notes.Create(ctx, note); err != nil {
			return err
		}
		if err := users.AppendNote(ctx, user.Id, note.Id); err != nil {
			return err
		}
	}
	return nil
}
