package service_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"notes-be/internal/entity"
	"notes-be/internal/repository/memory"
	"notes-be/internal/service"
	"notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Simulates the orphan-note window: a note persisted without its id ever
// reaching the owner's note set. The reconciler must restore the linkage
// from the note-created event.
func TestReconcilerRestoresNoteLinkage(t *testing.T) {
	ctx := context.Background()
	notes := memory.NewNoteRepository()
	users := memory.NewUserRepository()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	owner := &entity.User{Username: "root", Name: "Superuser", Notes: []uuid.UUID{}}
	require.NoError(t, users.Create(ctx, owner))

	orphan := &entity.Note{Content: "orphaned", UserId: owner.Id}
	require.NoError(t, notes.Create(ctx, orphan))

	reconciler := service.NewReconcilerService(pubSub, users, nopLogger{})
	require.NoError(t, reconciler.Consume(ctx))

	publisher := service.NewPublisherService(pubSub)
	payload, err := json.Marshal(events.NoteCreated{
		NoteId:     orphan.Id,
		UserId:     owner.Id,
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, events.TopicNoteCreated, payload))

	assert.Eventually(t, func() bool {
		user, err := users.FindByID(ctx, owner.Id)
		if err != nil || user == nil {
			return false
		}
		for _, id := range user.Notes {
			if id == orphan.Id {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}

func TestReconcilerIgnoresMalformedPayload(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})

	reconciler := service.NewReconcilerService(pubSub, users, nopLogger{})
	require.NoError(t, reconciler.Consume(ctx))

	publisher := service.NewPublisherService(pubSub)
	require.NoError(t, publisher.Publish(ctx, events.TopicNoteCreated, []byte("not json")))

	// Nothing to assert beyond "does not wedge": publish a valid event after
	// the malformed one and observe it still gets processed.
	owner := &entity.User{Username: "root", Notes: []uuid.UUID{}}
	require.NoError(t, users.Create(ctx, owner))
	noteId := uuid.New()
	payload, err := json.Marshal(events.NoteCreated{NoteId: noteId, UserId: owner.Id, OccurredAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, events.TopicNoteCreated, payload))

	assert.Eventually(t, func() bool {
		user, err := users.FindByID(ctx, owner.Id)
		if err != nil || user == nil {
			return false
		}
		for _, id := range user.Notes {
			if id == noteId {
				return true
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)
}
