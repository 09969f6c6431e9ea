package brandguide

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

// Provider calls the PDF brand-guide parsing service. Its fragments merge at
// the highest brand precedence tier: an uploaded guide is authoritative over
// anything scraped from a website or extracted from a chat.
type Provider struct {
	BaseURL string
	Client  *http.Client
}

var _ producer.Producer = &Provider{}

func NewProvider(baseURL string, timeout time.Duration) *Provider {
	return &Provider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (p *Provider) Name() string {
	return producer.NameBrandGuide
}

func (p *Provider) Source() intelligence.Source {
	return intelligence.SourceBrandGuide
}

type parseRequest struct {
	DocumentURL string `json:"document_url"`
}

type parseResponse struct {
	LogoURL string   `json:"logo_url"`
	Colors  []string `json:"colors"`
	Fonts   []string `json:"fonts"`
	Tone    string   `json:"tone"`
	Voice   string   `json:"voice"`
}

func (p *Provider) Invoke(ctx context.Context, payload map[string]interface{}) (*intelligence.Fragment, error) {
	docURL, _ := payload["document_url"].(string)
	if docURL == "" {
		return nil, &producer.FailedError{Producer: p.Name(), Err: fmt.Errorf("document_url is required")}
	}

	body, err := json.Marshal(parseRequest{DocumentURL: docURL})
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/parse", bytes.NewReader(body))
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, &producer.FailedError{Producer: p.Name(), Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))}
	}

	var result parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}

	return &intelligence.Fragment{
		Brand: intelligence.BrandData{
			LogoURL:       result.LogoURL,
			Colors:        result.Colors,
			Fonts:         result.Fonts,
			Tone:          result.Tone,
			Voice:         result.Voice,
			GuideProvided: true,
		},
	}, nil
}
