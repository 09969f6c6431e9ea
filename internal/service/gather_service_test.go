package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"brandlaunch-be/internal/constant"
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/entity"
	"brandlaunch-be/pkg/intelligence"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const gatherTestTopic = "GATHER_TEST"

func publishGather(t *testing.T, pubSub *gochannel.GoChannel, payload dto.GatherRequestedMessage) {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	require.NoError(t, pubSub.Publish(gatherTestTopic, message.NewMessage(watermill.NewUUID(), data)))
}

// Producers are unreachable in this test; the pipeline must still drain the
// queue and leave the consultation intact.
func TestGatherSurvivesProducerFailures(t *testing.T) {
	f := newFakeFactory()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewGatherService(pubSub, gatherTestTopic, f, testRegistry(), nil, nil)
	require.NoError(t, svc.Consume(context.Background()))

	ownerId := uuid.New()
	consultation := &entity.Consultation{
		Id:           uuid.New(),
		OwnerId:      &ownerId,
		Intelligence: intelligence.NewRecord(),
		Status:       constant.ConsultationStatusInProgress,
		WebsiteURL:   "https://example.com",
	}
	f.store.consultations[consultation.Id] = consultation

	publishGather(t, pubSub, dto.GatherRequestedMessage{
		ConsultationId: consultation.Id,
		OwnerId:        ownerId,
		WebsiteURL:     "https://example.com",
	})

	// Both producers fail fast against an unreachable endpoint; the pipeline
	// still persists the (unchanged) record. The store keeps a fresh copy on
	// every Update, so a new pointer means the write landed.
	deadline := time.After(5 * time.Second)
	for {
		f.store.mu.Lock()
		c := f.store.consultations[consultation.Id]
		persisted := c != nil && c != consultation
		f.store.mu.Unlock()
		if persisted {
			require.Equal(t, constant.ConsultationStatusInProgress, c.Status)
			break
		}
		select {
		case <-deadline:
			t.Fatal("gather pipeline did not settle")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// A gather request for a session that no longer exists is dropped silently.
func TestGatherDropsMissingConsultation(t *testing.T) {
	f := newFakeFactory()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	svc := NewGatherService(pubSub, gatherTestTopic, f, testRegistry(), nil, nil)
	require.NoError(t, svc.Consume(context.Background()))

	publishGather(t, pubSub, dto.GatherRequestedMessage{
		ConsultationId: uuid.New(),
		OwnerId:        uuid.New(),
		WebsiteURL:     "https://example.com",
	})

	// Give the consumer a moment; nothing must be created.
	time.Sleep(200 * time.Millisecond)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	require.Empty(t, f.store.consultations)
}
