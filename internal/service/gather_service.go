package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"brandlaunch-be/internal/constant"
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/repository/specification"
	"brandlaunch-be/internal/repository/unitofwork"
	"brandlaunch-be/internal/websocket"
	"brandlaunch-be/pkg/events"
	"brandlaunch-be/pkg/intelligence"
	pktNats "brandlaunch-be/pkg/nats"
	"brandlaunch-be/pkg/producer"
	"brandlaunch-be/pkg/producer/factory"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IGatherService interface {
	Consume(ctx context.Context) error
}

// gatherService drains the gather queue: for each request it runs the market
// research and site extraction producers, merges their fragments into the
// consultation's record and streams progress to the owner's websocket.
type gatherService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	uowFactory     unitofwork.RepositoryFactory
	producers      *factory.Registry
	hub            *websocket.Hub
	eventPublisher *pktNats.Publisher
}

func NewGatherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	producers *factory.Registry,
	hub *websocket.Hub,
	eventPublisher *pktNats.Publisher,
) IGatherService {
	return &gatherService{
		pubSub:         pubSub,
		topicName:      topicName,
		uowFactory:     uowFactory,
		producers:      producers,
		hub:            hub,
		eventPublisher: eventPublisher,
	}
}

func (gs *gatherService) Consume(ctx context.Context) error {
	messages, err := gs.pubSub.Subscribe(ctx, gs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			gs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (gs *gatherService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.GatherRequestedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal gather message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Gathering intelligence for ConsultationId: %s", payload.ConsultationId)

	uow := gs.uowFactory.NewUnitOfWork(ctx)

	consultation, err := uow.ConsultationRepository().FindOne(ctx, specification.ByID{ID: payload.ConsultationId})
	if err != nil {
		log.Printf("[ERROR] Failed to get consultation %s: %v", payload.ConsultationId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if consultation == nil {
		// Session gone (abandoned or deleted). Drop the fragment silently.
		log.Printf("[WARN] Consultation not found, dropping gather request: %s", payload.ConsultationId)
		msg.Ack()
		return
	}

	rec := consultationRecord(consultation)
	steps := []struct {
		name    string
		payload map[string]interface{}
	}{
		{producer.NameMarketResearch, map[string]interface{}{
			"industry": payload.Industry,
			"audience": payload.TargetAudience,
		}},
		{producer.NameSiteExtractor, map[string]interface{}{
			"website_url": payload.WebsiteURL,
		}},
	}

	merged := 0
	for _, step := range steps {
		gs.sendProgress(payload, step.name, "started", rec.ReadinessScore, "")

		p, err := gs.producers.Get(step.name)
		if err != nil {
			gs.sendProgress(payload, step.name, "failed", rec.ReadinessScore, err.Error())
			continue
		}

		frag, err := p.Invoke(ctx, step.payload)
		if err != nil {
			// Producer failures degrade gracefully; the session stays usable
			// with whatever intelligence it already has.
			log.Printf("[WARN] Producer %s failed for %s: %v", step.name, payload.ConsultationId, err)
			gs.sendProgress(payload, step.name, "failed", rec.ReadinessScore, err.Error())
			continue
		}
		if frag != nil {
			intelligence.Merge(rec, *frag, p.Source())
			merged++
		}
		gs.sendProgress(payload, step.name, "completed", rec.ReadinessScore, "")
	}

	syncRecordToConsultation(consultation, rec)

	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	// Guard against the attempt having been abandoned while producers ran.
	current, err := uow.ConsultationRepository().FindOne(ctx, specification.ByID{ID: payload.ConsultationId})
	if err != nil {
		log.Printf("[ERROR] Failed to re-check consultation %s: %v", payload.ConsultationId, err)
		msg.Nack()
		return
	}
	if current == nil {
		log.Printf("[WARN] Consultation vanished mid-gather, dropping results: %s", payload.ConsultationId)
		msg.Ack()
		return
	}

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		log.Printf("[ERROR] Failed to persist gathered intelligence: %v", err)
		msg.Nack()
		return
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	gs.sendProgress(payload, "gather", "done", rec.ReadinessScore, "")

	if gs.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventGatherCompleted,
			Data: map[string]interface{}{
				"consultation_id": payload.ConsultationId.String(),
				"owner_id":        payload.OwnerId.String(),
				"readiness_score": rec.ReadinessScore,
				"merged":          merged,
			},
			OccurredAt: time.Now(),
		}
		if err := gs.eventPublisher.Publish(ctx, evt); err != nil {
			log.Printf("[WARN] Failed to publish gather event: %v", err)
		}
	}

	log.Printf("[SUCCESS] Gather finished for ConsultationId: %s (score %d)", payload.ConsultationId, rec.ReadinessScore)
	msg.Ack()
}

func (gs *gatherService) sendProgress(payload dto.GatherRequestedMessage, step, status string, score int, errMsg string) {
	if gs.hub == nil {
		return
	}
	gs.hub.SendProgress(payload.OwnerId, dto.GatherProgressPayload{
		ConsultationId: payload.ConsultationId,
		Step:           step,
		Status:         status,
		ReadinessScore: score,
		Error:          errMsg,
	})
}
