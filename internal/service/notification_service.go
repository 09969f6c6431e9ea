package service

import (
	"context"
	"strings"

	"brandlaunch-be/internal/pkg/logger"
	"brandlaunch-be/internal/websocket"
	"brandlaunch-be/pkg/events"
	pktNats "brandlaunch-be/pkg/nats"

	"github.com/google/uuid"
)

// NotificationService bridges the NATS milestone bus to the websocket hub so
// a connected client sees flow advances and gather completions live.
type NotificationService struct {
	hub    *websocket.Hub
	logger logger.ILogger
}

func NewNotificationService(hub *websocket.Hub, log logger.ILogger) *NotificationService {
	return &NotificationService{
		hub:    hub,
		logger: log,
	}
}

// Start subscribes to every onboarding subject with a durable consumer.
func (s *NotificationService) Start(subscriber *pktNats.Subscriber) error {
	return subscriber.Subscribe("onboarding.>", "notification-service", s.handleEvent)
}

func (s *NotificationService) handleEvent(ctx context.Context, event events.Event) error {
	ownerIdStr, ok := event.Payload()["owner_id"].(string)
	if !ok {
		// Events without an owner have no delivery target; drop them.
		return nil
	}
	ownerId, err := uuid.Parse(ownerIdStr)
	if err != nil {
		s.logger.Warn("NotificationService", "Bad owner_id in event", map[string]interface{}{
			"subject": event.EventType(),
			"value":   ownerIdStr,
		})
		return nil
	}

	// Subjects arrive as "onboarding.FLOW_ADVANCED"; forward the bare type.
	eventType := event.EventType()
	if idx := strings.LastIndex(eventType, "."); idx >= 0 {
		eventType = eventType[idx+1:]
	}

	s.hub.SendEvent(ownerId, eventType, event.Payload())
	return nil
}
