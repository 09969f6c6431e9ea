package flow

import (
	"testing"
)

func TestChecklistBranching(t *testing.T) {
	base := Checklist(Answers{Industry: "SaaS"})
	for _, f := range base {
		if f == FieldServiceType {
			t.Error("service_type appeared outside the professional-services branch")
		}
	}

	branched := Checklist(Answers{Industry: "Professional Services"})
	foundAt := -1
	for i, f := range branched {
		if f == FieldServiceType {
			foundAt = i
		}
	}
	if foundAt == -1 {
		t.Fatal("service_type missing on the professional-services branch")
	}
	// Directly after audience.
	if branched[foundAt-1] != FieldAudience {
		t.Errorf("service_type follows %q, want %q", branched[foundAt-1], FieldAudience)
	}
}

func TestIsProfessionalServices(t *testing.T) {
	tests := []struct {
		industry string
		want     bool
	}{
		{"Professional Services", true},
		{"professional services", true},
		{"  PROFESSIONAL SERVICES  ", true},
		{"SaaS", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsProfessionalServices(tt.industry); got != tt.want {
			t.Errorf("IsProfessionalServices(%q) = %v, want %v", tt.industry, got, tt.want)
		}
	}
}

func TestNextField(t *testing.T) {
	tests := []struct {
		name     string
		answers  Answers
		want     Field
		complete bool
	}{
		{
			name:    "fresh start asks industry",
			answers: Answers{},
			want:    FieldIndustry,
		},
		{
			name:    "prefilled industry and goal resumes at audience",
			answers: Answers{Industry: "SaaS", Goal: "Leads"},
			want:    FieldAudience,
		},
		{
			name:    "non-professional branch skips service type",
			answers: Answers{Industry: "SaaS", Goal: "Leads", Audience: "CFOs"},
			want:    FieldChallenge,
		},
		{
			name:    "professional branch inserts service type",
			answers: Answers{Industry: "Professional Services", Goal: "Leads", Audience: "CFOs"},
			want:    FieldServiceType,
		},
		{
			name: "all answered reports complete",
			answers: Answers{
				Industry: "SaaS", Goal: "Leads", Audience: "CFOs",
				Challenge: "Churn", UniqueValue: "Speed", Offer: "Audit",
			},
			complete: true,
		},
		{
			name: "professional branch complete needs service type",
			answers: Answers{
				Industry: "Professional Services", Goal: "Leads", Audience: "CFOs",
				Challenge: "Churn", UniqueValue: "Speed", Offer: "Audit",
			},
			want: FieldServiceType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextField(tt.answers)
			if tt.complete {
				if ok {
					t.Errorf("NextField = %q, want complete", got)
				}
				return
			}
			if !ok {
				t.Fatal("NextField reported complete, want a field")
			}
			if got != tt.want {
				t.Errorf("NextField = %q, want %q", got, tt.want)
			}
		})
	}
}

// Switching the industry answer onto the professional-services branch makes
// an already "complete" checklist incomplete again; resumption derives from
// answers alone, so this self-corrects.
func TestNextFieldBranchSwitch(t *testing.T) {
	a := Answers{
		Industry: "SaaS", Goal: "Leads", Audience: "CFOs",
		Challenge: "Churn", UniqueValue: "Speed", Offer: "Audit",
	}
	if _, ok := NextField(a); ok {
		t.Fatal("expected complete before branch switch")
	}

	a.Industry = "Professional Services"
	got, ok := NextField(a)
	if !ok || got != FieldServiceType {
		t.Errorf("after branch switch NextField = %q (ok=%v), want %q", got, ok, FieldServiceType)
	}
}
