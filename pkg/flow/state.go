package flow

import "fmt"

// State is the coarse, monotonic milestone marker of a consultation.
type State string

const (
	StateNone           State = ""
	StateSignedUp       State = "signed_up"
	StateBrandCaptured  State = "brand_captured"
	StateBriefGenerated State = "brief_generated"
	StatePageGenerated  State = "page_generated"
	StatePublished      State = "published"
)

var stateOrder = map[State]int{
	StateNone:           0,
	StateSignedUp:       1,
	StateBrandCaptured:  2,
	StateBriefGenerated: 3,
	StatePageGenerated:  4,
	StatePublished:      5,
}

// BackwardTransitionError marks an attempt to move flow state backward.
// This is a logic error, never retried.
type BackwardTransitionError struct {
	From State
	To   State
}

func (e *BackwardTransitionError) Error() string {
	return fmt.Sprintf("flow state cannot move backward: %s -> %s", e.From, e.To)
}

// ValidState reports whether s is a known milestone.
func ValidState(s State) bool {
	_, ok := stateOrder[s]
	return ok
}

// CheckAdvance validates that next is a strictly forward transition from
// current in the fixed partial order. Flow state is monotonic per session.
func CheckAdvance(current, next State) error {
	if !ValidState(next) || next == StateNone {
		return fmt.Errorf("unknown flow state: %q", next)
	}
	if stateOrder[next] <= stateOrder[current] {
		return &BackwardTransitionError{From: current, To: next}
	}
	return nil
}
