package research

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"brandlaunch-be/pkg/intelligence"
	"brandlaunch-be/pkg/producer"
)

// Provider calls the market-research lookup service. Given an industry and
// audience it returns a persona, typical pain points and design conventions.
type Provider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

var _ producer.Producer = &Provider{}

func NewProvider(baseURL, apiKey string, timeout time.Duration) *Provider {
	return &Provider{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *Provider) Name() string {
	return producer.NameMarketResearch
}

func (p *Provider) Source() intelligence.Source {
	return intelligence.SourceWebsite
}

type researchRequest struct {
	Industry string `json:"industry"`
	Audience string `json:"audience,omitempty"`
}

type researchResponse struct {
	Persona           string   `json:"persona"`
	PainPoints        []string `json:"pain_points"`
	DesignConventions []string `json:"design_conventions"`
}

func (p *Provider) Invoke(ctx context.Context, payload map[string]interface{}) (*intelligence.Fragment, error) {
	reqBody := researchRequest{
		Industry: stringField(payload, "industry"),
		Audience: stringField(payload, "audience"),
	}
	if reqBody.Industry == "" {
		return nil, &producer.FailedError{Producer: p.Name(), Err: fmt.Errorf("industry is required")}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/research", bytes.NewReader(body))
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &producer.FailedError{Producer: p.Name(), Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))}
	}

	var result researchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}

	return &intelligence.Fragment{
		Market: intelligence.MarketData{
			Persona:           result.Persona,
			PainPoints:        result.PainPoints,
			DesignConventions: result.DesignConventions,
		},
	}, nil
}

func stringField(payload map[string]interface{}, key string) string {
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}
