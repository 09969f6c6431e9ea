package dto

import (
	"time"

	"github.com/google/uuid"
)

// --- Attempt lifecycle ---

type StartAttemptRequest struct {
	DemoToken *string `json:"demo_token,omitempty"`
	// WizardActive suppresses the draft-recovery dialog when the caller
	// arrived through the conversational wizard.
	WizardActive bool `json:"wizard_active,omitempty"`
}

// --- Stage machine ---

type StageResponse struct {
	Stage         string `json:"stage"`
	QuestionIndex int    `json:"question_index"`
	WizardActive  bool   `json:"wizard_active"`
}

type StageAdvanceRequest struct {
	Stage string `json:"stage" validate:"required,oneof=checking_draft intro brand_extractor analysis main_questions review submitting done"`
}

type ConsultationResponse struct {
	Id               uuid.UUID              `json:"id"`
	Status           string                 `json:"status"`
	FlowState        string                 `json:"flow_state"`
	ReadinessScore   int                    `json:"readiness_score"`
	Industry         string                 `json:"industry,omitempty"`
	Goal             string                 `json:"goal,omitempty"`
	TargetAudience   string                 `json:"target_audience,omitempty"`
	ServiceType      string                 `json:"service_type,omitempty"`
	UniqueValue      string                 `json:"unique_value,omitempty"`
	Offer            string                 `json:"offer,omitempty"`
	BusinessName     string                 `json:"business_name,omitempty"`
	WebsiteURL       string                 `json:"website_url,omitempty"`
	PainPoints       []string               `json:"pain_points,omitempty"`
	HasBrandData     bool                   `json:"has_brand_data"`
	StrategyBrief    map[string]interface{} `json:"strategy_brief,omitempty"`
	PublishedPageURL *string                `json:"published_page_url,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// --- Answers ---

type SubmitAnswerRequest struct {
	Field string `json:"field" validate:"required,oneof=industry goal audience service_type challenge unique_value offer"`
	Value string `json:"value" validate:"required,min=2,max=2000"`
}

type SubmitAnswerResponse struct {
	ReadinessScore int           `json:"readiness_score"`
	NextField      string        `json:"next_field,omitempty"`
	Complete       bool          `json:"complete"`
	NextStep       *NextStepBody `json:"next_step,omitempty"`
}

// --- Brand capture ---

type CaptureBrandRequest struct {
	LogoURL   string   `json:"logo_url,omitempty" validate:"omitempty,url"`
	Colors    []string `json:"colors,omitempty" validate:"omitempty,max=12,dive,hexcolor"`
	Fonts     []string `json:"fonts,omitempty" validate:"omitempty,max=6"`
	GuideURL  string   `json:"guide_url,omitempty" validate:"omitempty,url"`
	SkipGuide bool     `json:"skip_guide,omitempty"`
}

type CaptureBrandResponse struct {
	ReadinessScore int  `json:"readiness_score"`
	GuideQueued    bool `json:"guide_queued"`
}

// --- Website analysis ---

type AnalyzeWebsiteRequest struct {
	WebsiteURL string `json:"website_url" validate:"required,url"`
}

type AnalyzeWebsiteResponse struct {
	Queued bool `json:"queued"`
}

// --- Routing ---

type NextStepBody struct {
	Route        string `json:"route"`
	Confirmation string `json:"confirmation,omitempty"`
	Field        string `json:"field,omitempty"`
}

type NextStepResponse struct {
	FlowState      string       `json:"flow_state"`
	ReadinessScore int          `json:"readiness_score"`
	NextStep       NextStepBody `json:"next_step"`
}

// --- Draft recovery ---

type ResumeResponse struct {
	HasDraft       bool          `json:"has_draft"`
	ConsultationId *uuid.UUID    `json:"consultation_id,omitempty"`
	ResumeField    string        `json:"resume_field,omitempty"`
	ReadinessScore int           `json:"readiness_score"`
	NextStep       *NextStepBody `json:"next_step,omitempty"`
}

type DraftChoiceRequest struct {
	// resume continues the prior attempt, discard abandons it and starts
	// fresh, delete removes the stored wizard data only.
	Choice string `json:"choice" validate:"required,oneof=resume discard delete"`
}

// --- Flow advancement ---

type AdvanceFlowRequest struct {
	State string `json:"state" validate:"required,oneof=signed_up brand_captured brief_generated page_generated published"`
}

type AdvanceFlowResponse struct {
	FlowState string `json:"flow_state"`
}

type StoreBriefRequest struct {
	Brief map[string]interface{} `json:"brief" validate:"required"`
}

type MarkPublishedRequest struct {
	PageURL string `json:"page_url" validate:"required,url"`
}

// --- Gather pipeline ---

// GatherRequestedMessage is the payload carried on the in-process queue from
// the analyze endpoint to the gather worker.
type GatherRequestedMessage struct {
	ConsultationId uuid.UUID `json:"consultation_id"`
	OwnerId        uuid.UUID `json:"owner_id"`
	WebsiteURL     string    `json:"website_url"`
	Industry       string    `json:"industry"`
	TargetAudience string    `json:"target_audience"`
}

type GatherProgressPayload struct {
	ConsultationId uuid.UUID `json:"consultation_id"`
	Step           string    `json:"step"`
	Status         string    `json:"status"`
	ReadinessScore int       `json:"readiness_score,omitempty"`
	Error          string    `json:"error,omitempty"`
}
