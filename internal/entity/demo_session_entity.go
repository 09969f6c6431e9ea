package entity

import (
	"time"

	"brandlaunch-be/pkg/intelligence"

	"github.com/google/uuid"
)

// DemoMessage is one turn of the anonymous pre-signup conversation.
type DemoMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// DemoSession is an anonymous onboarding attempt. Token is the opaque value
// handed to the browser; it is not the database row id. ClaimedBy moves from
// nil to an owner exactly once (compare-and-swap at the persistence layer),
// after which the session is immutable intelligence input.
type DemoSession struct {
	Id                  uuid.UUID
	Token               string
	ConversationHistory []DemoMessage
	Intelligence        *intelligence.Record
	ReadinessScore      int
	ClaimedBy           *uuid.UUID
	ClaimedAt           *time.Time
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

func (s *DemoSession) Claimed() bool {
	return s.ClaimedBy != nil
}
