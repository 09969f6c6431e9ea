package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Demo Session ---

type CreateDemoSessionResponse struct {
	Token          string    `json:"token"`
	ReadinessScore int       `json:"readiness_score"`
	CreatedAt      time.Time `json:"created_at"`
}

type DemoSessionResponse struct {
	Token          string    `json:"token"`
	ReadinessScore int       `json:"readiness_score"`
	MessageCount   int       `json:"message_count"`
	Claimed        bool      `json:"claimed"`
	CreatedAt      time.Time `json:"created_at"`
}

type DemoMessageRequest struct {
	Content string `json:"content" validate:"required,min=1,max=4000"`
}

type DemoMessageResponse struct {
	Token          string `json:"token"`
	ReadinessScore int    `json:"readiness_score"`
	MessageCount   int    `json:"message_count"`
}

// --- Claim ---

type ClaimDemoSessionRequest struct {
	Token string `json:"token" validate:"required"`
}

type ClaimDemoSessionResponse struct {
	Claimed        bool       `json:"claimed"`
	ConsultationId *uuid.UUID `json:"consultation_id,omitempty"`
	ReadinessScore int        `json:"readiness_score"`
	// Prefilled is false for the loser of a claim race; the caller starts a
	// fresh checklist with no demo-derived answers.
	Prefilled bool `json:"prefilled"`
}
