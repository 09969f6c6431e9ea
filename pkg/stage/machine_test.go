package stage

import (
	"io"
	"log"
	"testing"
)

func newTestMachine() *Machine {
	return NewMachine(log.New(io.Discard, "", 0))
}

func TestInitRunsExactlyOnce(t *testing.T) {
	m := newTestMachine()

	if !m.Init(true) {
		t.Fatal("first Init returned false")
	}
	if m.Current() != StageCheckingDraft {
		t.Errorf("stage after Init = %q, want %q", m.Current(), StageCheckingDraft)
	}

	// Hosting runtimes may fire setup twice; the second call must be a no-op.
	if m.Init(false) {
		t.Error("second Init returned true")
	}
	if !m.WizardActive() {
		t.Error("second Init overwrote wizardActive")
	}
}

func TestAdvanceLegality(t *testing.T) {
	tests := []struct {
		name    string
		path    []Stage
		wantErr bool
	}{
		{
			name: "form wizard happy path",
			path: []Stage{StageIntro, StageAnalysis, StageMainQuestions, StageReview, StageSubmitting, StageDone},
		},
		{
			name: "brand extractor entry",
			path: []Stage{StageBrandExtractor, StageMainQuestions, StageReview},
		},
		{
			name: "skip straight to questions",
			path: []Stage{StageMainQuestions, StageReview},
		},
		{
			name:    "review cannot jump back to questions",
			path:    []Stage{StageMainQuestions, StageReview, StageMainQuestions},
			wantErr: true,
		},
		{
			name:    "done is terminal",
			path:    []Stage{StageMainQuestions, StageReview, StageSubmitting, StageDone, StageIntro},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			m.Init(false)
			var err error
			for _, s := range tt.path {
				if err = m.Advance(s); err != nil {
					break
				}
			}
			if tt.wantErr && err == nil {
				t.Error("expected a transition error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected transition error: %v", err)
			}
		})
	}
}

func TestBackOnlyInsideMainQuestions(t *testing.T) {
	m := newTestMachine()
	m.Init(false)

	if err := m.Back(); err == nil {
		t.Error("Back allowed outside main questions")
	}

	if err := m.Advance(StageMainQuestions); err != nil {
		t.Fatalf("advance to main questions: %v", err)
	}

	// At the first question there is nothing to go back to.
	if err := m.Back(); err == nil {
		t.Error("Back allowed at question index 0")
	}

	if err := m.NextQuestion(); err != nil {
		t.Fatalf("next question: %v", err)
	}
	if err := m.Back(); err != nil {
		t.Errorf("Back at index 1: %v", err)
	}
	if m.QuestionIndex() != 0 {
		t.Errorf("index after Back = %d, want 0", m.QuestionIndex())
	}
}

func TestEnteringMainQuestionsResetsIndex(t *testing.T) {
	// A stale snapshot can carry a nonzero index from a prior visit.
	m := Restore(Snapshot{Current: StageAnalysis, QuestionIndex: 3}, log.New(io.Discard, "", 0))
	if err := m.Advance(StageMainQuestions); err != nil {
		t.Fatal(err)
	}
	if m.QuestionIndex() != 0 {
		t.Fatalf("index on entry = %d, want 0", m.QuestionIndex())
	}
	m.NextQuestion()
	m.NextQuestion()
	if m.QuestionIndex() != 2 {
		t.Fatalf("index = %d, want 2", m.QuestionIndex())
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	m := newTestMachine()
	m.Init(true)
	if err := m.Advance(StageMainQuestions); err != nil {
		t.Fatal(err)
	}
	m.NextQuestion()

	restored := Restore(m.Snapshot(), log.New(io.Discard, "", 0))

	if restored.Current() != StageMainQuestions {
		t.Errorf("restored stage = %q", restored.Current())
	}
	if restored.QuestionIndex() != 1 {
		t.Errorf("restored index = %d, want 1", restored.QuestionIndex())
	}
	if !restored.WizardActive() {
		t.Error("restored machine lost wizardActive")
	}
	if restored.Init(false) {
		t.Error("restored machine allowed a second Init")
	}
}
