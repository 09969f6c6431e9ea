package stage

import (
	"fmt"
	"log"
)

// Stage is one visible sub-stage of a single entry point (form wizard,
// conversational wizard, brand capture). It layers above the coarse flow
// state and never outlives the hosting page.
type Stage string

const (
	StageLoading        Stage = "loading"
	StageCheckingDraft  Stage = "checking_draft"
	StageIntro          Stage = "intro"
	StageBrandExtractor Stage = "brand_extractor"
	StageAnalysis       Stage = "analysis"
	StageMainQuestions  Stage = "main_questions"
	StageReview         Stage = "review"
	StageSubmitting     Stage = "submitting"
	StageDone           Stage = "done"
)

// transitions lists the allowed forward moves. Everything is one-directional
// except Back, which is handled separately and only inside main questions.
var transitions = map[Stage][]Stage{
	StageLoading:        {StageCheckingDraft},
	StageCheckingDraft:  {StageIntro, StageBrandExtractor, StageMainQuestions},
	StageIntro:          {StageAnalysis, StageMainQuestions},
	StageBrandExtractor: {StageAnalysis, StageMainQuestions},
	StageAnalysis:       {StageMainQuestions},
	StageMainQuestions:  {StageReview},
	StageReview:         {StageSubmitting},
	StageSubmitting:     {StageDone},
}

// TransitionError reports a move the machine does not allow.
type TransitionError struct {
	From Stage
	To   Stage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal stage transition: %s -> %s", e.From, e.To)
}

// Machine drives one entry point's sub-stages. WizardActive is an explicit
// flag passed in at entry (it suppresses the draft-recovery dialog); it is
// deliberately not ambient state.
type Machine struct {
	current       Stage
	initialized   bool
	questionIndex int
	wizardActive  bool
	logger        *log.Logger
}

func NewMachine(logger *log.Logger) *Machine {
	return &Machine{current: StageLoading, logger: logger}
}

// Init runs the entry setup exactly once per machine instance. Hosting
// runtimes may invoke setup effects twice; the second call must be a no-op or
// duplicate consultation records get created. Returns true only for the call
// that actually initialized.
func (m *Machine) Init(wizardActive bool) bool {
	if m.initialized {
		m.logger.Printf("[STAGE] Init called twice, ignoring")
		return false
	}
	m.initialized = true
	m.wizardActive = wizardActive
	m.current = StageCheckingDraft
	m.logger.Printf("[STAGE] Initialized (wizardActive=%v)", wizardActive)
	return true
}

func (m *Machine) Initialized() bool {
	return m.initialized
}

func (m *Machine) WizardActive() bool {
	return m.wizardActive
}

func (m *Machine) Current() Stage {
	return m.current
}

// QuestionIndex is which main question is displayed. It is presentation
// position only; answers live in the consultation record.
func (m *Machine) QuestionIndex() int {
	return m.questionIndex
}

// Advance moves to the next stage, driven by user action or by completion of
// an asynchronous producer call (e.g. analysis resolving or being skipped).
func (m *Machine) Advance(to Stage) error {
	for _, allowed := range transitions[m.current] {
		if allowed == to {
			m.logger.Printf("[STAGE] %s -> %s", m.current, to)
			m.current = to
			if to == StageMainQuestions {
				m.questionIndex = 0
			}
			return nil
		}
	}
	return &TransitionError{From: m.current, To: to}
}

// NextQuestion moves the displayed question forward within main questions.
func (m *Machine) NextQuestion() error {
	if m.current != StageMainQuestions {
		return &TransitionError{From: m.current, To: StageMainQuestions}
	}
	m.questionIndex++
	return nil
}

// Back is allowed only within main questions and only changes which question
// is displayed. It must never mutate already-answered fields.
func (m *Machine) Back() error {
	if m.current != StageMainQuestions {
		return &TransitionError{From: m.current, To: StageMainQuestions}
	}
	if m.questionIndex == 0 {
		return fmt.Errorf("already at the first question")
	}
	m.questionIndex--
	return nil
}

// Snapshot is the advisory cached view of a machine, stored per user so a
// reconnecting client can resume the same visual position. It is cache only,
// re-derivable, never the system of record.
type Snapshot struct {
	Current       Stage `json:"current"`
	QuestionIndex int   `json:"question_index"`
	WizardActive  bool  `json:"wizard_active"`
}

func (m *Machine) Snapshot() Snapshot {
	return Snapshot{
		Current:       m.current,
		QuestionIndex: m.questionIndex,
		WizardActive:  m.wizardActive,
	}
}

// Restore rebuilds a machine from a cached snapshot.
func Restore(s Snapshot, logger *log.Logger) *Machine {
	return &Machine{
		current:       s.Current,
		initialized:   true,
		questionIndex: s.QuestionIndex,
		wizardActive:  s.WizardActive,
		logger:        logger,
	}
}
