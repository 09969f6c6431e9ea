package producer

import (
	"context"
	"fmt"

	"brandlaunch-be/pkg/intelligence"
)

// Producer is the uniform boundary to every external intelligence source.
// The core treats producers identically regardless of what they compute
// internally; it only cares about the returned fragment and its precedence
// tier.
type Producer interface {
	// Name is the stable identifier used in gather requests and progress
	// notifications.
	Name() string

	// Source is the precedence tier the producer's fragments merge at.
	Source() intelligence.Source

	// Invoke calls the external service. A nil fragment with a nil error
	// never happens; failures are non-fatal to the session.
	Invoke(ctx context.Context, payload map[string]interface{}) (*intelligence.Fragment, error)
}

// Well-known producer names.
const (
	NameMarketResearch = "market_research"
	NameSiteExtractor  = "site_extractor"
	NameBrandGuide     = "brand_guide"
	NameChatExtractor  = "chat_extractor"
)

// FailedError wraps a producer failure so callers can tell it apart from
// merge or persistence errors. Producer failures degrade gracefully: the
// session stays usable with reduced personalization.
type FailedError struct {
	Producer string
	Err      error
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("producer %s failed: %v", e.Producer, e.Err)
}

func (e *FailedError) Unwrap() error {
	return e.Err
}
