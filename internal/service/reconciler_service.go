package service

import (
	"context"
	"encoding/json"

	"notes-be/internal/pkg/logger"
	"notes-be/internal/repository/contract"
	"notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IReconcilerService interface {
	Consume(ctx context.Context) error
}

// reconcilerService repairs orphan notes: notes persisted whose id never
// made it into the owner's note set because the second write of the create
// sequence failed. It replays the append from the note-created event; the
// append is idempotent, so the common case (linkage already done in-request)
// is a no-op.
type reconcilerService struct {
	pubSub         *gochannel.GoChannel
	userRepository contract.UserRepository
	log            logger.ILogger
}

func NewReconcilerService(
	pubSub *gochannel.GoChannel,
	userRepository contract.UserRepository,
	log logger.ILogger,
) IReconcilerService {
	return &reconcilerService{
		pubSub:         pubSub,
		userRepository: userRepository,
		log:            log,
	}
}

func (s *reconcilerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, events.TopicNoteCreated)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *reconcilerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var evt events.NoteCreated
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.log.Error("reconciler", "failed to unmarshal note created event", map[string]interface{}{
			"error":   err.Error(),
			"payload": string(msg.Payload),
		})
		return
	}

	if err := s.userRepository.AppendNote(ctx, evt.UserId, evt.NoteId); err != nil {
		s.log.Error("reconciler", "failed to restore note linkage", map[string]interface{}{
			"note_id": evt.NoteId.String(),
			"user_id": evt.UserId.String(),
			"error":   err.Error(),
		})
	}
}
