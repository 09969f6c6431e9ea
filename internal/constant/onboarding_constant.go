package constant

// Consultation status lifecycle. At most one in_progress record exists per
// owner at any time.
const (
	ConsultationStatusInProgress = "in_progress"
	ConsultationStatusCompleted  = "completed"
	ConsultationStatusAbandoned  = "abandoned"
)

// Demo conversation roles.
const (
	DemoRoleUser      = "user"
	DemoRoleAssistant = "assistant"
)

// Event subjects published on the NATS bus.
const (
	EventFlowAdvanced       = "FLOW_ADVANCED"
	EventDemoSessionClaimed = "DEMO_SESSION_CLAIMED"
	EventGatherCompleted    = "GATHER_COMPLETED"
)
