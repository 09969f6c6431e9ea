package intelligence

import (
	"testing"
)

func TestComputeReadinessBounds(t *testing.T) {
	empty := NewRecord()
	if got := ComputeReadiness(empty); got != 0 {
		t.Errorf("empty record score = %d, want 0", got)
	}

	full := NewRecord()
	Merge(full, Fragment{
		Consultation: ConsultationData{
			Industry:         "Professional Services",
			TargetAudience:   "CFOs",
			UniqueValue:      "Benchmarks",
			CompetitiveEdge:  "Industry focus",
			PainPoints:       []string{"unclear margins"},
			AuthorityMarkers: []string{"CPA certified"},
		},
		Brand: BrandData{
			LogoURL:       "https://cdn.example.com/logo.png",
			Colors:        []string{"#111111", "#222222", "#333333"},
			Fonts:         []string{"Inter", "Lora"},
			GuideProvided: true,
		},
	}, SourceUser)

	if full.ReadinessScore != 100 {
		t.Errorf("full record score = %d, want 100", full.ReadinessScore)
	}
}

// Readiness is monotone: filling any additional field never lowers the score.
func TestComputeReadinessMonotone(t *testing.T) {
	steps := []Fragment{
		{Consultation: ConsultationData{Industry: "Consulting"}},
		{Consultation: ConsultationData{TargetAudience: "Founders"}},
		{Consultation: ConsultationData{UniqueValue: "Speed"}},
		{Consultation: ConsultationData{PainPoints: []string{"slow hiring"}}},
		{Brand: BrandData{Colors: []string{"#123456"}}},
		{Brand: BrandData{GuideSkipped: true}},
	}

	rec := NewRecord()
	prev := rec.ReadinessScore
	for i, frag := range steps {
		Merge(rec, frag, SourceUser)
		if rec.ReadinessScore < prev {
			t.Fatalf("step %d decreased score: %d -> %d", i, prev, rec.ReadinessScore)
		}
		prev = rec.ReadinessScore
	}
}

func TestComputeReadinessIgnoresDefaultBrand(t *testing.T) {
	rec := NewRecord()
	Merge(rec, Fragment{Brand: BrandData{
		Colors: []string{"#000000"},
		Fonts:  []string{"Arial"},
	}}, SourceDefault)

	// Default palette and fonts carry no signal.
	if rec.ReadinessScore != 0 {
		t.Errorf("default brand data scored %d, want 0", rec.ReadinessScore)
	}
}

func TestMarketPainPointsCountTowardScore(t *testing.T) {
	rec := NewRecord()
	Merge(rec, Fragment{Market: MarketData{PainPoints: []string{"churn"}}}, SourceWebsite)

	if rec.ReadinessScore != pointsPainPoint {
		t.Errorf("score = %d, want %d", rec.ReadinessScore, pointsPainPoint)
	}
}

func TestCompletionStage(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Record
		want  Stage
	}{
		{
			name:  "empty record",
			build: NewRecord,
			want:  StageEmpty,
		},
		{
			name: "partial record",
			build: func() *Record {
				rec := NewRecord()
				Merge(rec, Fragment{Consultation: ConsultationData{Industry: "Consulting"}}, SourceUser)
				return rec
			},
			want: StagePartial,
		},
		{
			name: "ready record",
			build: func() *Record {
				rec := NewRecord()
				Merge(rec, Fragment{Consultation: ConsultationData{
					Industry:       "Consulting",
					TargetAudience: "Founders",
					UniqueValue:    "Speed",
					PainPoints:     []string{"slow hiring"},
				}}, SourceUser)
				return rec
			},
			want: StageReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := tt.build()
			if got := CompletionStage(rec, 50); got != tt.want {
				t.Errorf("CompletionStage = %q (score %d), want %q", got, rec.ReadinessScore, tt.want)
			}
		})
	}
}
