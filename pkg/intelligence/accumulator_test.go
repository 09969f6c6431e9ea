package intelligence

import (
	"testing"
)

func TestMergeNarrativePrecedence(t *testing.T) {
	tests := []struct {
		name   string
		writes []struct {
			src   Source
			value string
		}
		want     string
		wantProv Source
	}{
		{
			name: "producer fills empty field",
			writes: []struct {
				src   Source
				value string
			}{
				{SourceWebsite, "Consulting"},
			},
			want:     "Consulting",
			wantProv: SourceWebsite,
		},
		{
			name: "last producer wins over earlier producer",
			writes: []struct {
				src   Source
				value string
			}{
				{SourceDemoChat, "Coaching"},
				{SourceWebsite, "Consulting"},
			},
			want:     "Consulting",
			wantProv: SourceWebsite,
		},
		{
			name: "producer never clobbers a user answer",
			writes: []struct {
				src   Source
				value string
			}{
				{SourceUser, "Legal Services"},
				{SourceWebsite, "Consulting"},
			},
			want:     "Legal Services",
			wantProv: SourceUser,
		},
		{
			name: "user edit overrides a producer value",
			writes: []struct {
				src   Source
				value string
			}{
				{SourceWebsite, "Consulting"},
				{SourceUser, "Legal Services"},
			},
			want:     "Legal Services",
			wantProv: SourceUser,
		},
		{
			name: "user edit overrides an earlier user answer",
			writes: []struct {
				src   Source
				value string
			}{
				{SourceUser, "Coaching"},
				{SourceUser, "Legal Services"},
			},
			want:     "Legal Services",
			wantProv: SourceUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord()
			for _, w := range tt.writes {
				Merge(rec, Fragment{Consultation: ConsultationData{Industry: w.value}}, w.src)
			}
			if rec.Consultation.Industry != tt.want {
				t.Errorf("Industry = %q, want %q", rec.Consultation.Industry, tt.want)
			}
			if rec.Provenance[FieldIndustry] != tt.wantProv {
				t.Errorf("Provenance = %q, want %q", rec.Provenance[FieldIndustry], tt.wantProv)
			}
		})
	}
}

func TestMergeBrandTierPrecedence(t *testing.T) {
	tests := []struct {
		name   string
		writes []struct {
			src    Source
			colors []string
		}
		want     string
		wantProv Source
	}{
		{
			name: "website beats demo chat regardless of order",
			writes: []struct {
				src    Source
				colors []string
			}{
				{SourceWebsite, []string{"#111111"}},
				{SourceDemoChat, []string{"#222222"}},
			},
			want:     "#111111",
			wantProv: SourceWebsite,
		},
		{
			name: "brand guide beats everything",
			writes: []struct {
				src    Source
				colors []string
			}{
				{SourceUser, []string{"#111111"}},
				{SourceBrandGuide, []string{"#333333"}},
			},
			want:     "#333333",
			wantProv: SourceBrandGuide,
		},
		{
			name: "equal tier keeps the existing value",
			writes: []struct {
				src    Source
				colors []string
			}{
				{SourceWebsite, []string{"#111111"}},
				{SourceWebsite, []string{"#444444"}},
			},
			want:     "#111111",
			wantProv: SourceWebsite,
		},
		{
			name: "lower tier cannot displace user entry",
			writes: []struct {
				src    Source
				colors []string
			}{
				{SourceUser, []string{"#111111"}},
				{SourceWebsite, []string{"#555555"}},
			},
			want:     "#111111",
			wantProv: SourceUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord()
			for _, w := range tt.writes {
				Merge(rec, Fragment{Brand: BrandData{Colors: w.colors}}, w.src)
			}
			if len(rec.Brand.Colors) == 0 || rec.Brand.Colors[0] != tt.want {
				t.Errorf("Colors = %v, want first %q", rec.Brand.Colors, tt.want)
			}
			if rec.Provenance[FieldBrandColors] != tt.wantProv {
				t.Errorf("Provenance = %q, want %q", rec.Provenance[FieldBrandColors], tt.wantProv)
			}
		})
	}
}

// Brand precedence must not depend on arrival order: merging the same two
// fragments in either order converges to the same winner.
func TestMergeBrandOrderIndependence(t *testing.T) {
	fragA := Fragment{Brand: BrandData{Colors: []string{"#AAAAAA"}}}
	fragB := Fragment{Brand: BrandData{Colors: []string{"#BBBBBB"}}}

	recAB := NewRecord()
	Merge(recAB, fragA, SourceDemoChat)
	Merge(recAB, fragB, SourceBrandGuide)

	recBA := NewRecord()
	Merge(recBA, fragB, SourceBrandGuide)
	Merge(recBA, fragA, SourceDemoChat)

	if recAB.Brand.Colors[0] != recBA.Brand.Colors[0] {
		t.Errorf("order dependent merge: %v vs %v", recAB.Brand.Colors, recBA.Brand.Colors)
	}
	if recAB.Brand.Colors[0] != "#BBBBBB" {
		t.Errorf("winner = %v, want #BBBBBB", recAB.Brand.Colors)
	}
}

func TestMergeGuideFlagsLatch(t *testing.T) {
	rec := NewRecord()

	Merge(rec, Fragment{Brand: BrandData{GuideProvided: true}}, SourceBrandGuide)
	Merge(rec, Fragment{Brand: BrandData{}}, SourceWebsite)

	if !rec.Brand.GuideProvided {
		t.Error("GuideProvided latch was reset by a later fragment")
	}

	Merge(rec, Fragment{Brand: BrandData{GuideSkipped: true}}, SourceUser)
	Merge(rec, Fragment{Brand: BrandData{}}, SourceUser)

	if !rec.Brand.GuideSkipped {
		t.Error("GuideSkipped latch was reset by a later fragment")
	}
}

func TestMergeEmptyValuesAreIgnored(t *testing.T) {
	rec := NewRecord()
	Merge(rec, Fragment{Consultation: ConsultationData{Industry: "Consulting"}}, SourceUser)

	// Empty string means "not supplied", never "clear the field".
	Merge(rec, Fragment{Consultation: ConsultationData{Industry: ""}}, SourceUser)

	if rec.Consultation.Industry != "Consulting" {
		t.Errorf("Industry = %q, want Consulting", rec.Consultation.Industry)
	}
}

func TestMergeRecomputesReadiness(t *testing.T) {
	rec := NewRecord()
	if rec.ReadinessScore != 0 {
		t.Fatalf("fresh record score = %d, want 0", rec.ReadinessScore)
	}

	Merge(rec, Fragment{Consultation: ConsultationData{Industry: "Consulting"}}, SourceUser)
	after := rec.ReadinessScore
	if after <= 0 {
		t.Errorf("score after merge = %d, want > 0", after)
	}

	Merge(rec, Fragment{Consultation: ConsultationData{TargetAudience: "Founders"}}, SourceWebsite)
	if rec.ReadinessScore <= after {
		t.Errorf("score did not grow: %d -> %d", after, rec.ReadinessScore)
	}
}
