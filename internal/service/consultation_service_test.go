package service

import (
	"context"
	"encoding/json"
	"testing"

	"brandlaunch-be/internal/config"
	"brandlaunch-be/internal/constant"
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/pkg/serverutils"
	"brandlaunch-be/internal/repository/memory"
	"brandlaunch-be/pkg/flow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsultationService(f *fakeFactory, pub IPublisherService) IConsultationService {
	if pub == nil {
		pub = &capturingPublisher{}
	}
	return NewConsultationService(
		f,
		testRegistry(),
		pub,
		nil,
		nil,
		memory.NewStageRepository(),
		config.FlowConfig{SkipAheadScore: 50, ConfirmScore: 70},
		noopLogger{},
	)
}

func countInProgress(f *fakeFactory, ownerId uuid.UUID) int {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	n := 0
	for _, c := range f.store.consultations {
		if c.OwnerId != nil && *c.OwnerId == ownerId && c.Status == constant.ConsultationStatusInProgress {
			n++
		}
	}
	return n
}

// Starting a new attempt supersedes the previous one; at most one record is
// ever in_progress per owner.
func TestStartAttemptSingleInProgress(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()

	first, err := svc.StartAttempt(context.Background(), ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	second, err := svc.StartAttempt(context.Background(), ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	assert.NotEqual(t, first.Id, second.Id)
	assert.Equal(t, 1, countInProgress(f, ownerId))
}

func TestSubmitAnswerWalksChecklist(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	_, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	res, err := svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "industry", Value: "Professional Services"})
	require.NoError(t, err)
	assert.Equal(t, "goal", res.NextField)

	res, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "goal", Value: "More leads"})
	require.NoError(t, err)
	assert.Equal(t, "audience", res.NextField)

	// Professional-services branch inserts the service-type question.
	res, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "audience", Value: "Dental clinics"})
	require.NoError(t, err)
	assert.Equal(t, "service_type", res.NextField)

	for _, a := range []dto.SubmitAnswerRequest{
		{Field: "service_type", Value: "Bookkeeping"},
		{Field: "challenge", Value: "Unclear margins"},
		{Field: "unique_value", Value: "Dental benchmarks"},
	} {
		res, err = svc.SubmitAnswer(ctx, ownerId, &a)
		require.NoError(t, err)
		assert.False(t, res.Complete)
	}

	res, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "offer", Value: "Free audit"})
	require.NoError(t, err)
	assert.True(t, res.Complete)
	require.NotNil(t, res.NextStep)
}

func TestSubmitAnswerPersistsDraft(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	started, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "industry", Value: "SaaS"})
	require.NoError(t, err)

	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	require.Len(t, f.store.drafts, 1)
	for _, d := range f.store.drafts {
		assert.Equal(t, started.Id, d.ConsultationId)
		assert.Equal(t, "SaaS", d.WizardData["industry"])
	}
}

func TestAdvanceFlowStateBackwardIsInvariantViolation(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	_, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	res, err := svc.AdvanceFlowState(ctx, ownerId, "", &dto.AdvanceFlowRequest{State: "brand_captured"})
	require.NoError(t, err)
	assert.Equal(t, "brand_captured", res.FlowState)

	_, err = svc.AdvanceFlowState(ctx, ownerId, "", &dto.AdvanceFlowRequest{State: "signed_up"})
	require.Error(t, err)
	var violation *serverutils.InvariantViolationError
	assert.ErrorAs(t, err, &violation)

	// The stored state is untouched by the rejected transition.
	current, err := svc.GetCurrent(ctx, ownerId)
	require.NoError(t, err)
	assert.Equal(t, string(flow.StateBrandCaptured), current.FlowState)
}

func TestAdvanceToPublishedCompletesAttempt(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	_, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	_, err = svc.MarkPublished(ctx, ownerId, &dto.MarkPublishedRequest{PageURL: "https://pages.example.com/x"})
	require.NoError(t, err)

	_, err = svc.AdvanceFlowState(ctx, ownerId, "", &dto.AdvanceFlowRequest{State: "published"})
	require.NoError(t, err)

	assert.Equal(t, 0, countInProgress(f, ownerId))
}

func TestNextStepUsesPersistedStateOnly(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	_, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	res, err := svc.NextStep(ctx, ownerId)
	require.NoError(t, err)
	assert.Equal(t, flow.RouteChecklist, res.NextStep.Route)
	assert.Equal(t, "industry", res.NextStep.Field)

	// Same state, same answer.
	again, err := svc.NextStep(ctx, ownerId)
	require.NoError(t, err)
	assert.Equal(t, res.NextStep, again.NextStep)
}

func TestAnalyzeWebsiteQueuesGather(t *testing.T) {
	f := newFakeFactory()
	pub := &capturingPublisher{}
	svc := newTestConsultationService(f, pub)
	ownerId := uuid.New()
	ctx := context.Background()

	started, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	res, err := svc.AnalyzeWebsite(ctx, ownerId, &dto.AnalyzeWebsiteRequest{WebsiteURL: "https://example.com"})
	require.NoError(t, err)
	assert.True(t, res.Queued)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.payloads, 1)

	var msg dto.GatherRequestedMessage
	require.NoError(t, json.Unmarshal(pub.payloads[0], &msg))
	assert.Equal(t, started.Id, msg.ConsultationId)
	assert.Equal(t, ownerId, msg.OwnerId)
	assert.Equal(t, "https://example.com", msg.WebsiteURL)
}

func TestResumeDerivesFieldFromAnswers(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	_, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "industry", Value: "SaaS"})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "goal", Value: "Leads"})
	require.NoError(t, err)

	res, err := svc.Resume(ctx, ownerId)
	require.NoError(t, err)
	assert.True(t, res.HasDraft)
	assert.Equal(t, "audience", res.ResumeField)
}

func TestDraftChoiceDiscardStartsFresh(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	started, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "industry", Value: "SaaS"})
	require.NoError(t, err)

	res, err := svc.DraftChoice(ctx, ownerId, &dto.DraftChoiceRequest{Choice: "discard"})
	require.NoError(t, err)
	require.NotNil(t, res.ConsultationId)
	assert.NotEqual(t, started.Id, *res.ConsultationId)
	assert.False(t, res.HasDraft)
	assert.Equal(t, "industry", res.ResumeField)

	assert.Equal(t, 1, countInProgress(f, ownerId))
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	assert.Empty(t, f.store.drafts)
	assert.Equal(t, constant.ConsultationStatusAbandoned, f.store.consultations[started.Id].Status)
}

func TestStageBackGuard(t *testing.T) {
	f := newFakeFactory()
	svc := newTestConsultationService(f, nil)
	ownerId := uuid.New()
	ctx := context.Background()

	_, err := svc.StartAttempt(ctx, ownerId, &dto.StartAttemptRequest{})
	require.NoError(t, err)

	// Fresh machine sits in intro; back is only legal inside main questions.
	_, err = svc.Back(ctx, ownerId)
	assert.Error(t, err)

	// Two answers put the machine at question index 1.
	_, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "industry", Value: "SaaS"})
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, ownerId, &dto.SubmitAnswerRequest{Field: "goal", Value: "Leads"})
	require.NoError(t, err)

	res, err := svc.Back(ctx, ownerId)
	require.NoError(t, err)
	assert.Equal(t, 0, res.QuestionIndex)
}
