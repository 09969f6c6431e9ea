package intelligence

// Source identifies who supplied a field. For brand fields the tier is a
// strict precedence ladder; for narrative fields only SourceUser is special.
type Source string

const (
	SourceDefault    Source = "default"
	SourceDemoChat   Source = "demo_chat"
	SourceWebsite    Source = "website"
	SourceUser       Source = "user"
	SourceBrandGuide Source = "brand_guide"
)

// brandRank orders sources for color/typography fields.
// Explicit brand-guide upload beats manual entry beats website extraction
// beats demo-chat extraction beats defaults.
func brandRank(s Source) int {
	switch s {
	case SourceBrandGuide:
		return 4
	case SourceUser:
		return 3
	case SourceWebsite:
		return 2
	case SourceDemoChat:
		return 1
	default:
		return 0
	}
}

// ConsultationData holds the narrative answers gathered across entry points.
type ConsultationData struct {
	Industry         string   `json:"industry,omitempty"`
	Goal             string   `json:"goal,omitempty"`
	TargetAudience   string   `json:"target_audience,omitempty"`
	UniqueValue      string   `json:"unique_value,omitempty"`
	CompetitiveEdge  string   `json:"competitive_edge,omitempty"`
	ServiceType      string   `json:"service_type,omitempty"`
	Offer            string   `json:"offer,omitempty"`
	BusinessName     string   `json:"business_name,omitempty"`
	WebsiteURL       string   `json:"website_url,omitempty"`
	PainPoints       []string `json:"pain_points,omitempty"`
	AuthorityMarkers []string `json:"authority_markers,omitempty"`
}

// MarketData is what the market-research producer contributes.
type MarketData struct {
	Persona           string   `json:"persona,omitempty"`
	PainPoints        []string `json:"pain_points,omitempty"`
	DesignConventions []string `json:"design_conventions,omitempty"`
}

// BrandData holds visual identity. Colors is a triple (primary, secondary,
// accent), Fonts a pair (heading, body).
type BrandData struct {
	LogoURL       string   `json:"logo_url,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	Fonts         []string `json:"fonts,omitempty"`
	GuideProvided bool     `json:"guide_provided,omitempty"`
	GuideSkipped  bool     `json:"guide_skipped,omitempty"`
	Tone          string   `json:"tone,omitempty"`
	Voice         string   `json:"voice,omitempty"`
}

// Record is the canonical merged intelligence for one session. Provenance
// tracks, per field key, the source that last won the merge.
type Record struct {
	Consultation   ConsultationData  `json:"consultation"`
	Market         MarketData        `json:"market"`
	Brand          BrandData         `json:"brand"`
	Provenance     map[string]Source `json:"provenance,omitempty"`
	ReadinessScore int               `json:"readiness_score"`
}

func NewRecord() *Record {
	return &Record{
		Provenance: make(map[string]Source),
	}
}

// Stage is the coarse completion bucket derived from the readiness score.
type Stage string

const (
	StageEmpty   Stage = "empty"
	StagePartial Stage = "partial"
	StageReady   Stage = "ready"
)
