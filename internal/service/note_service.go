package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/entity"
	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/contract"
	"notes-be/pkg/events"

	"github.com/google/uuid"
)

type INoteService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error)
	List(ctx context.Context) ([]*dto.NoteWithOwnerResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteService struct {
	noteRepository   contract.NoteRepository
	userRepository   contract.UserRepository
	publisherService IPublisherService
	log              logger.ILogger
}

func NewNoteService(
	noteRepository contract.NoteRepository,
	userRepository contract.UserRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) INoteService {
	return &noteService{
		noteRepository:   noteRepository,
		userRepository:   userRepository,
		publisherService: publisherService,
		log:              log,
	}
}

// Create runs the two-step write: the note insert always completes (or
// fails) before the owner's note set is touched. There is no transaction
// spanning the two; a failed append leaves the note in place and the
// reconciler repairs the linkage from the published event.
func (s *noteService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.NoteResponse, error) {
	user, err := s.userRepository.FindByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("note owner %s not found", userId)
	}

	note := entity.Note{
		Content:   req.Content,
		Important: req.Important,
		UserId:    user.Id,
	}
	if err := s.noteRepository.Create(ctx, &note); err != nil {
		return nil, err
	}

	evt := events.NoteCreated{
		NoteId:     note.Id,
		UserId:     user.Id,
		OccurredAt: time.Now(),
	}
	if payload, err := json.Marshal(evt); err == nil {
		// Auxiliary; the request does not fail on a publish error.
		if err := s.publisherService.Publish(ctx, events.TopicNoteCreated, payload); err != nil {
			s.log.Warn("note", "failed to publish note created event", map[string]interface{}{
				"note_id": note.Id.String(),
				"error":   err.Error(),
			})
		}
	}

	if err := s.userRepository.AppendNote(ctx, user.Id, note.Id); err != nil {
		s.log.Error("note", "note persisted but owner linkage failed", map[string]interface{}{
			"note_id": note.Id.String(),
			"user_id": user.Id.String(),
			"error":   err.Error(),
		})
		return nil, err
	}

	return &dto.NoteResponse{
		Id:        note.Id,
		Content:   note.Content,
		Important: note.Important,
		User:      note.UserId,
	}, nil
}

func (s *noteService) List(ctx context.Context) ([]*dto.NoteWithOwnerResponse, error) {
	notes, err := s.noteRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.userRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	owners := make(map[uuid.UUID]dto.NoteOwnerSummary, len(users))
	for _, u := range users {
		owners[u.Id] = dto.NoteOwnerSummary{
			Username: u.Username,
			Name:     u.Name,
		}
	}

	res := make([]*dto.NoteWithOwnerResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, &dto.NoteWithOwnerResponse{
			Id:        n.Id,
			Content:   n.Content,
			Important: n.Important,
			User:      owners[n.UserId],
		})
	}
	return res, nil
}

func (s *noteService) Show(ctx context.Context, id uuid.UUID) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}
	return &dto.NoteResponse{
		Id:        note.Id,
		Content:   note.Content,
		Important: note.Important,
		User:      note.UserId,
	}, nil
}

func (s *noteService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	note, err := s.noteRepository.UpdateByID(ctx, id, contract.NotePatch{
		Content:   req.Content,
		Important: req.Important,
	})
	if err != nil {
		return nil, err
	}
	if note == nil {
		// Updating an absent id yields an absent result, not an error.
		return nil, nil
	}
	return &dto.NoteResponse{
		Id:        note.Id,
		Content:   note.Content,
		Important: note.Important,
		User:      note.UserId,
	}, nil
}

func (s *noteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.noteRepository.DeleteByID(ctx, id)
}
