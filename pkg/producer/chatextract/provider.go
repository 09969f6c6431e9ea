package chatextract

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

// Provider sends a demo conversation transcript to the extraction service and
// gets back whatever business facts the model could pull out of it. These
// fragments merge at demo-chat precedence, the lowest producer tier.
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
	return producer.NameChatExtractor
}

func (p *Provider) Source() intelligence.Source {
	return intelligence.SourceDemoChat
}

type extractRequest struct {
	Transcript []transcriptEntry `json:"transcript"`
}

type transcriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type extractResponse struct {
	Industry       string   `json:"industry"`
	TargetAudience string   `json:"target_audience"`
	UniqueValue    string   `json:"unique_value"`
	PainPoints     []string `json:"pain_points"`
	BusinessName   string   `json:"business_name"`
	Goal           string   `json:"goal"`
}

func (p *Provider) Invoke(ctx context.Context, payload map[string]interface{}) (*intelligence.Fragment, error) {
	rawTranscript, ok := payload["transcript"].([]map[string]string)
	if !ok || len(rawTranscript) == 0 {
		return nil, &producer.FailedError{Producer: p.Name(), Err: fmt.Errorf("transcript is required")}
	}

	reqBody := extractRequest{}
	for _, entry := range rawTranscript {
		reqBody.Transcript = append(reqBody.Transcript, transcriptEntry{
			Role:    entry["role"],
			Content: entry["content"],
		})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/extract-chat", bytes.NewReader(body))
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

	var result extractResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}

	return &intelligence.Fragment{
		Consultation: intelligence.ConsultationData{
			Industry:       result.Industry,
			TargetAudience: result.TargetAudience,
			UniqueValue:    result.UniqueValue,
			PainPoints:     result.PainPoints,
			BusinessName:   result.BusinessName,
			Goal:           result.Goal,
		},
	}, nil
}
