package flow

import "strings"

// Field is one entry of the ordered question checklist.
type Field string

const (
	FieldIndustry    Field = "industry"
	FieldGoal        Field = "goal"
	FieldAudience    Field = "audience"
	FieldServiceType Field = "service_type"
	FieldChallenge   Field = "challenge"
	FieldUniqueValue Field = "unique_value"
	FieldOffer       Field = "offer"
)

// Answers is the field-presence view of a consultation record. The resume
// point is derived from this alone; there is no stored cursor to trust, which
// makes resumption self-healing across restarts.
type Answers struct {
	Industry    string
	Goal        string
	Audience    string
	ServiceType string
	Challenge   string
	UniqueValue string
	Offer       string
}

// IsProfessionalServices reports whether the industry answer selects the
// professional-services branch, which inserts the service-type question.
func IsProfessionalServices(industry string) bool {
	return strings.EqualFold(strings.TrimSpace(industry), "professional services")
}

// Checklist returns the ordered question sequence for the given answers.
// The service-type question appears immediately after audience only on the
// professional-services branch.
func Checklist(a Answers) []Field {
	fields := []Field{FieldIndustry, FieldGoal, FieldAudience}
	if IsProfessionalServices(a.Industry) {
		fields = append(fields, FieldServiceType)
	}
	return append(fields, FieldChallenge, FieldUniqueValue, FieldOffer)
}

// NextField walks the checklist in order and returns the first unanswered
// field. ok is false when every required field is answered. Prefilled values
// (demo referral) count as answered, so greater prefill coverage simply
// advances the starting point.
func NextField(a Answers) (Field, bool) {
	for _, f := range Checklist(a) {
		if answer(a, f) == "" {
			return f, true
		}
	}
	return "", false
}

func answer(a Answers, f Field) string {
	switch f {
	case FieldIndustry:
		return a.Industry
	case FieldGoal:
		return a.Goal
	case FieldAudience:
		return a.Audience
	case FieldServiceType:
		return a.ServiceType
	case FieldChallenge:
		return a.Challenge
	case FieldUniqueValue:
		return a.UniqueValue
	case FieldOffer:
		return a.Offer
	}
	return ""
}
