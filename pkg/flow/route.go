package flow

// Route names handed to the navigation collaborator.
const (
	RouteConfirmation = "confirmation"
	RouteChecklist    = "checklist"
	RouteReview       = "review"
	RouteBriefViewer  = "brief_viewer"
)

// ConfirmationType distinguishes the two "I listened" checkpoints.
type ConfirmationType string

const (
	ConfirmationNone     ConfirmationType = ""
	ConfirmationPreBrief ConfirmationType = "pre_brief"
	ConfirmationPrePage  ConfirmationType = "pre_page"
)

// Thresholds carries the two readiness lines. They are deliberately separate
// config values; see FlowConfig.
type Thresholds struct {
	SkipAhead int // enough signal to generate (default 50)
	Confirm   int // enough signal to warrant an extra confirmation step (default 70)
}

// RouteInput is everything NextStep reads. It is assembled from persisted
// state only, so the function stays pure.
type RouteInput struct {
	FlowState        State
	ReadinessScore   int
	HasBrief         bool
	HasBrandData     bool
	HasPublishedPage bool
	Answers          Answers
}

// Destination is the routing decision. Field is set only for checklist
// routes.
type Destination struct {
	Route        string           `json:"route"`
	Confirmation ConfirmationType `json:"confirmation_type,omitempty"`
	Field        Field            `json:"field,omitempty"`
}

// NextStep evaluates the routing decision table top-to-bottom, first match
// wins. It only reads its input and returns a destination; it never advances
// flow state itself, so callers may invoke it any number of times.
func NextStep(in RouteInput, th Thresholds) Destination {
	// 1. Post-signup with strong signal: confirm before showing the brief.
	if in.FlowState == StateSignedUp && in.ReadinessScore >= th.Confirm {
		return Destination{Route: RouteConfirmation, Confirmation: ConfirmationPreBrief}
	}

	// 2. Brand captured, brief exists, enough signal: confirm before page
	// generation.
	if in.FlowState == StateBrandCaptured && in.HasBrief && in.ReadinessScore >= th.SkipAhead {
		return Destination{Route: RouteConfirmation, Confirmation: ConfirmationPrePage}
	}

	// 3. Brand captured but not enough signal to generate anything useful:
	// back into the questions.
	if in.FlowState == StateBrandCaptured && in.ReadinessScore < th.SkipAhead {
		return checklistDestination(in.Answers)
	}

	// 4. Fully completed session: straight to the brief viewer, never re-run
	// onboarding.
	if in.HasBrief && in.HasBrandData && in.HasPublishedPage {
		return Destination{Route: RouteBriefViewer}
	}

	// 5. Default: next unanswered checklist field.
	return checklistDestination(in.Answers)
}

func checklistDestination(a Answers) Destination {
	if field, ok := NextField(a); ok {
		return Destination{Route: RouteChecklist, Field: field}
	}
	return Destination{Route: RouteReview}
}
