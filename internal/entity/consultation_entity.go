package entity

import (
	"time"

	"brandlaunch-be/pkg/flow"
	"brandlaunch-be/pkg/intelligence"

	"github.com/google/uuid"
)

// CommunicationStyle is the structured tone/voice descriptor captured during
// onboarding or extracted from a brand guide.
type CommunicationStyle struct {
	Tone  string `json:"tone,omitempty"`
	Voice string `json:"voice,omitempty"`
}

// BrandAssets holds the visual identity triple: logo, color triple, font pair.
type BrandAssets struct {
	LogoURL string   `json:"logo_url,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Fonts   []string `json:"fonts,omitempty"`
}

// Consultation is the persisted, owner-scoped record of one onboarding
// attempt. It is the single source of truth; the Draft is advisory cache.
type Consultation struct {
	Id                 uuid.UUID
	OwnerId            *uuid.UUID // nil until the session is claimed/owned
	Industry           string
	Goal               string
	TargetAudience     string
	UniqueValue        string
	CompetitiveEdge    string
	PainPoints         []string
	AuthorityMarkers   []string
	ServiceType        string
	Offer              string
	BusinessName       string
	WebsiteURL         string
	CommunicationStyle CommunicationStyle
	BrandAssets        BrandAssets
	BrandGuideSkipped  bool
	Intelligence       *intelligence.Record
	ReadinessScore     int
	FlowState          flow.State
	Status             string
	StrategyBrief      map[string]interface{} // opaque artifact from the generator
	PublishedPageURL   *string
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}

// ChecklistAnswers projects the record onto the resolver's field-presence
// view. The challenge answer is the first pain point.
func (c *Consultation) ChecklistAnswers() flow.Answers {
	challenge := ""
	if len(c.PainPoints) > 0 {
		challenge = c.PainPoints[0]
	}
	return flow.Answers{
		Industry:    c.Industry,
		Goal:        c.Goal,
		Audience:    c.TargetAudience,
		ServiceType: c.ServiceType,
		Challenge:   challenge,
		UniqueValue: c.UniqueValue,
		Offer:       c.Offer,
	}
}

// HasBrandData reports whether any non-default brand material was captured.
func (c *Consultation) HasBrandData() bool {
	return c.BrandAssets.LogoURL != "" || len(c.BrandAssets.Colors) > 0 || len(c.BrandAssets.Fonts) > 0
}
