package webextract

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

// Provider calls the website extraction service, which scrapes an existing
// site for business copy and visual identity (logo, palette, typography).
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
	return producer.NameSiteExtractor
}

func (p *Provider) Source() intelligence.Source {
	return intelligence.SourceWebsite
}

type extractRequest struct {
	URL string `json:"url"`
}

type extractResponse struct {
	BusinessName string   `json:"business_name"`
	Industry     string   `json:"industry"`
	ValueProp    string   `json:"value_proposition"`
	LogoURL      string   `json:"logo_url"`
	Colors       []string `json:"colors"`
	Fonts        []string `json:"fonts"`
	Tone         string   `json:"tone"`
}

func (p *Provider) Invoke(ctx context.Context, payload map[string]interface{}) (*intelligence.Fragment, error) {
	siteURL, _ := payload["website_url"].(string)
	if siteURL == "" {
		return nil, &producer.FailedError{Producer: p.Name(), Err: fmt.Errorf("website_url is required")}
	}

	body, err := json.Marshal(extractRequest{URL: siteURL})
	if err != nil {
		return nil, &producer.FailedError{Producer: p.Name(), Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/v1/extract", bytes.NewReader(body))
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
			BusinessName: result.BusinessName,
			Industry:     result.Industry,
			UniqueValue:  result.ValueProp,
			WebsiteURL:   siteURL,
		},
		Brand: intelligence.BrandData{
			LogoURL: result.LogoURL,
			Colors:  result.Colors,
			Fonts:   result.Fonts,
			Tone:    result.Tone,
		},
	}, nil
}
