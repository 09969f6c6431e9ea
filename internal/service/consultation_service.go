package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"brandlaunch-be/internal/config"
	"brandlaunch-be/internal/constant"
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/pkg/logger"
	"brandlaunch-be/internal/pkg/mailer"
	"brandlaunch-be/internal/pkg/serverutils"
	"brandlaunch-be/internal/repository/memory"
	"brandlaunch-be/internal/repository/specification"
	"brandlaunch-be/internal/repository/unitofwork"
	"brandlaunch-be/pkg/events"
	"brandlaunch-be/pkg/flow"
	"brandlaunch-be/pkg/intelligence"
	pktNats "brandlaunch-be/pkg/nats"
	"brandlaunch-be/pkg/producer"
	"brandlaunch-be/pkg/producer/factory"
	"brandlaunch-be/pkg/stage"

	"github.com/google/uuid"
)

type IConsultationService interface {
	StartAttempt(ctx context.Context, ownerId uuid.UUID, req *dto.StartAttemptRequest) (*dto.ConsultationResponse, error)
	GetCurrent(ctx context.Context, ownerId uuid.UUID) (*dto.ConsultationResponse, error)
	SubmitAnswer(ctx context.Context, ownerId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	CaptureBrand(ctx context.Context, ownerId uuid.UUID, req *dto.CaptureBrandRequest) (*dto.CaptureBrandResponse, error)
	AnalyzeWebsite(ctx context.Context, ownerId uuid.UUID, req *dto.AnalyzeWebsiteRequest) (*dto.AnalyzeWebsiteResponse, error)
	NextStep(ctx context.Context, ownerId uuid.UUID) (*dto.NextStepResponse, error)
	Resume(ctx context.Context, ownerId uuid.UUID) (*dto.ResumeResponse, error)
	DraftChoice(ctx context.Context, ownerId uuid.UUID, req *dto.DraftChoiceRequest) (*dto.ResumeResponse, error)
	AdvanceFlowState(ctx context.Context, ownerId uuid.UUID, ownerEmail string, req *dto.AdvanceFlowRequest) (*dto.AdvanceFlowResponse, error)
	StoreBrief(ctx context.Context, ownerId uuid.UUID, req *dto.StoreBriefRequest) (*dto.ConsultationResponse, error)
	MarkPublished(ctx context.Context, ownerId uuid.UUID, req *dto.MarkPublishedRequest) (*dto.ConsultationResponse, error)
	GetStage(ctx context.Context, ownerId uuid.UUID) (*dto.StageResponse, error)
	AdvanceStage(ctx context.Context, ownerId uuid.UUID, req *dto.StageAdvanceRequest) (*dto.StageResponse, error)
	Back(ctx context.Context, ownerId uuid.UUID) (*dto.StageResponse, error)
}

type consultationService struct {
	uowFactory       unitofwork.RepositoryFactory
	producers        *factory.Registry
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	emailService     mailer.IEmailService
	stageRepo        *memory.StageRepository
	flowCfg          config.FlowConfig
	logger           logger.ILogger
	stageLog         *log.Logger
}

func NewConsultationService(
	uowFactory unitofwork.RepositoryFactory,
	producers *factory.Registry,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	stageRepo *memory.StageRepository,
	flowCfg config.FlowConfig,
	logger logger.ILogger,
) IConsultationService {
	return &consultationService{
		uowFactory:       uowFactory,
		producers:        producers,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		emailService:     emailService,
		stageRepo:        stageRepo,
		flowCfg:          flowCfg,
		logger:           logger,
		stageLog:         log.New(os.Stdout, "", log.LstdFlags),
	}
}

func (s *consultationService) thresholds() flow.Thresholds {
	return flow.Thresholds{
		SkipAhead: s.flowCfg.SkipAheadScore,
		Confirm:   s.flowCfg.ConfirmScore,
	}
}

// findCurrent loads the owner's single in_progress consultation.
func (s *consultationService) findCurrent(ctx context.Context, uow unitofwork.UnitOfWork, ownerId uuid.UUID) (*entity.Consultation, error) {
	return uow.ConsultationRepository().FindOne(ctx,
		specification.OwnedBy{OwnerID: ownerId},
		specification.ByStatus{Status: constant.ConsultationStatusInProgress},
	)
}

func (s *consultationService) StartAttempt(ctx context.Context, ownerId uuid.UUID, req *dto.StartAttemptRequest) (*dto.ConsultationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	// A claim at /demo/v1/claim already created the seeded attempt; starting
	// again with the same token must not spawn a second one.
	if req.DemoToken != nil {
		existing, err := s.findCurrent(ctx, uow, ownerId)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			s.initStage(ownerId, req.WizardActive, false)
			return toConsultationResponse(existing), nil
		}
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := uow.ConsultationRepository().AbandonInProgress(ctx, ownerId); err != nil {
		return nil, err
	}

	consultation := entity.Consultation{
		Id:           uuid.New(),
		OwnerId:      &ownerId,
		Intelligence: intelligence.NewRecord(),
		FlowState:    flow.StateSignedUp,
		Status:       constant.ConsultationStatusInProgress,
		CreatedAt:    time.Now(),
	}

	if err := uow.ConsultationRepository().Create(ctx, &consultation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	hasDraft := false
	if draft, err := uow.DraftRepository().FindOne(ctx, specification.OwnedBy{OwnerID: ownerId}); err == nil && draft != nil {
		hasDraft = true
	}
	s.initStage(ownerId, req.WizardActive, hasDraft)

	s.logger.Info("ConsultationService", "Attempt started", map[string]interface{}{
		"owner_id":        ownerId,
		"consultation_id": consultation.Id,
	})

	return toConsultationResponse(&consultation), nil
}

// initStage seeds the advisory stage snapshot. Entry setup runs exactly once
// per machine; a stale snapshot simply gets replaced.
func (s *consultationService) initStage(ownerId uuid.UUID, wizardActive bool, hasDraft bool) {
	m := stage.NewMachine(s.stageLog)
	m.Init(wizardActive)
	if !hasDraft || wizardActive {
		// No recovery dialog to show, go straight into the intro.
		if err := m.Advance(stage.StageIntro); err != nil {
			s.stageLog.Printf("[STAGE] advance failed: %v", err)
		}
	}
	s.stageRepo.Save(ownerId.String(), m.Snapshot())
}

func (s *consultationService) GetCurrent(ctx context.Context, ownerId uuid.UUID) (*dto.ConsultationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	return toConsultationResponse(consultation), nil
}

func (s *consultationService) SubmitAnswer(ctx context.Context, ownerId uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	field := flow.Field(req.Field)
	rec := consultationRecord(consultation)
	intelligence.Merge(rec, answerFragment(field, req.Value), intelligence.SourceUser)
	syncRecordToConsultation(consultation, rec)

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return nil, err
	}

	if err := s.saveDraftAnswer(ctx, uow, ownerId, consultation.Id, req.Field, req.Value); err != nil {
		// The draft is advisory cache; losing one answer is not worth
		// failing the submission.
		s.logger.Warn("ConsultationService", "Draft save failed", map[string]interface{}{
			"owner_id": ownerId,
			"error":    err.Error(),
		})
	}

	s.advanceStageOnAnswer(ownerId)

	resp := &dto.SubmitAnswerResponse{
		ReadinessScore: consultation.ReadinessScore,
	}
	if next, ok := flow.NextField(consultation.ChecklistAnswers()); ok {
		resp.NextField = string(next)
	} else {
		resp.Complete = true
		dest := flow.NextStep(s.routeInput(consultation), s.thresholds())
		resp.NextStep = destinationBody(dest)
	}
	return resp, nil
}

func (s *consultationService) saveDraftAnswer(ctx context.Context, uow unitofwork.UnitOfWork, ownerId, consultationId uuid.UUID, field, value string) error {
	draft, err := uow.DraftRepository().FindOne(ctx,
		specification.OwnedBy{OwnerID: ownerId},
		specification.ByConsultationID{ConsultationID: consultationId},
	)
	if err != nil {
		return err
	}
	now := time.Now()
	if draft == nil {
		draft = &entity.Draft{
			Id:             uuid.New(),
			OwnerId:        ownerId,
			ConsultationId: consultationId,
			WizardData:     map[string]string{},
			CreatedAt:      now,
		}
	}
	if draft.WizardData == nil {
		draft.WizardData = map[string]string{}
	}
	draft.WizardData[field] = value
	draft.UpdatedAt = &now
	return uow.DraftRepository().Save(ctx, draft)
}

// advanceStageOnAnswer keeps the advisory snapshot in step with answering.
func (s *consultationService) advanceStageOnAnswer(ownerId uuid.UUID) {
	snap, ok := s.stageRepo.Get(ownerId.String())
	if !ok {
		return
	}
	m := stage.Restore(snap, s.stageLog)
	if m.Current() != stage.StageMainQuestions {
		if err := m.Advance(stage.StageMainQuestions); err != nil {
			return
		}
	} else {
		if err := m.NextQuestion(); err != nil {
			return
		}
	}
	s.stageRepo.Save(ownerId.String(), m.Snapshot())
}

func (s *consultationService) CaptureBrand(ctx context.Context, ownerId uuid.UUID, req *dto.CaptureBrandRequest) (*dto.CaptureBrandResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	rec := consultationRecord(consultation)

	frag := intelligence.Fragment{}
	frag.Brand.LogoURL = req.LogoURL
	frag.Brand.Colors = req.Colors
	frag.Brand.Fonts = req.Fonts
	frag.Brand.GuideSkipped = req.SkipGuide
	intelligence.Merge(rec, frag, intelligence.SourceUser)

	guideProcessed := false
	if req.GuideURL != "" {
		guideProcessed = s.parseBrandGuide(ctx, rec, req.GuideURL, consultation.Id)
	}

	syncRecordToConsultation(consultation, rec)

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return nil, err
	}

	return &dto.CaptureBrandResponse{
		ReadinessScore: consultation.ReadinessScore,
		GuideQueued:    guideProcessed,
	}, nil
}

// parseBrandGuide runs the guide parser synchronously. Its fragments merge at
// the highest brand tier. Failure degrades to whatever brand data the record
// already holds.
func (s *consultationService) parseBrandGuide(ctx context.Context, rec *intelligence.Record, guideURL string, consultationId uuid.UUID) bool {
	p, err := s.producers.Get(producer.NameBrandGuide)
	if err != nil {
		return false
	}
	frag, err := p.Invoke(ctx, map[string]interface{}{"document_url": guideURL})
	if err != nil {
		s.logger.Warn("ConsultationService", "Brand guide parse failed", map[string]interface{}{
			"consultation_id": consultationId,
			"error":           err.Error(),
		})
		return false
	}
	if frag != nil {
		intelligence.Merge(rec, *frag, p.Source())
	}
	return true
}

func (s *consultationService) AnalyzeWebsite(ctx context.Context, ownerId uuid.UUID, req *dto.AnalyzeWebsiteRequest) (*dto.AnalyzeWebsiteResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	rec := consultationRecord(consultation)
	intelligence.Merge(rec, intelligence.Fragment{
		Consultation: intelligence.ConsultationData{WebsiteURL: req.WebsiteURL},
	}, intelligence.SourceUser)
	syncRecordToConsultation(consultation, rec)

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return nil, err
	}

	msg := dto.GatherRequestedMessage{
		ConsultationId: consultation.Id,
		OwnerId:        ownerId,
		WebsiteURL:     req.WebsiteURL,
		Industry:       consultation.Industry,
		TargetAudience: consultation.TargetAudience,
	}
	msgJson, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	s.logger.Info("ConsultationService", "Gather queued", map[string]interface{}{
		"consultation_id": consultation.Id,
		"website_url":     req.WebsiteURL,
	})

	return &dto.AnalyzeWebsiteResponse{Queued: true}, nil
}

func (s *consultationService) routeInput(c *entity.Consultation) flow.RouteInput {
	return flow.RouteInput{
		FlowState:        c.FlowState,
		ReadinessScore:   c.ReadinessScore,
		HasBrief:         len(c.StrategyBrief) > 0,
		HasBrandData:     c.HasBrandData(),
		HasPublishedPage: c.PublishedPageURL != nil,
		Answers:          c.ChecklistAnswers(),
	}
}

func destinationBody(d flow.Destination) *dto.NextStepBody {
	return &dto.NextStepBody{
		Route:        d.Route,
		Confirmation: string(d.Confirmation),
		Field:        string(d.Field),
	}
}

func (s *consultationService) NextStep(ctx context.Context, ownerId uuid.UUID) (*dto.NextStepResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	dest := flow.NextStep(s.routeInput(consultation), s.thresholds())
	return &dto.NextStepResponse{
		FlowState:      string(consultation.FlowState),
		ReadinessScore: consultation.ReadinessScore,
		NextStep:       *destinationBody(dest),
	}, nil
}

func (s *consultationService) Resume(ctx context.Context, ownerId uuid.UUID) (*dto.ResumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return &dto.ResumeResponse{HasDraft: false}, nil
	}

	draft, err := uow.DraftRepository().FindOne(ctx,
		specification.OwnedBy{OwnerID: ownerId},
		specification.ByConsultationID{ConsultationID: consultation.Id},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.ResumeResponse{
		HasDraft:       draft != nil,
		ConsultationId: &consultation.Id,
		ReadinessScore: consultation.ReadinessScore,
	}

	// The resume point is derived from which fields hold answers, never from
	// a stored cursor. Stale drafts therefore cannot point past real data.
	if next, ok := flow.NextField(consultation.ChecklistAnswers()); ok {
		resp.ResumeField = string(next)
	}
	dest := flow.NextStep(s.routeInput(consultation), s.thresholds())
	resp.NextStep = destinationBody(dest)
	return resp, nil
}

func (s *consultationService) DraftChoice(ctx context.Context, ownerId uuid.UUID, req *dto.DraftChoiceRequest) (*dto.ResumeResponse, error) {
	switch req.Choice {
	case "resume":
		return s.Resume(ctx, ownerId)
	case "delete":
		return s.deleteDraft(ctx, ownerId)
	case "discard":
		return s.discardAttempt(ctx, ownerId)
	}
	return nil, &serverutils.NotFoundError{Resource: "draft choice"}
}

// deleteDraft removes only the cached wizard data; the consultation itself
// keeps going.
func (s *consultationService) deleteDraft(ctx context.Context, ownerId uuid.UUID) (*dto.ResumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	draft, err := uow.DraftRepository().FindOne(ctx, specification.OwnedBy{OwnerID: ownerId})
	if err != nil {
		return nil, err
	}
	if draft != nil {
		if err := uow.DraftRepository().Delete(ctx, draft.Id); err != nil {
			return nil, err
		}
	}
	return s.Resume(ctx, ownerId)
}

// discardAttempt abandons the prior attempt entirely and starts a blank one.
func (s *consultationService) discardAttempt(ctx context.Context, ownerId uuid.UUID) (*dto.ResumeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := uow.ConsultationRepository().AbandonInProgress(ctx, ownerId); err != nil {
		return nil, err
	}

	draft, err := uow.DraftRepository().FindOne(ctx, specification.OwnedBy{OwnerID: ownerId})
	if err != nil {
		return nil, err
	}
	if draft != nil {
		if err := uow.DraftRepository().Delete(ctx, draft.Id); err != nil {
			return nil, err
		}
	}

	consultation := entity.Consultation{
		Id:           uuid.New(),
		OwnerId:      &ownerId,
		Intelligence: intelligence.NewRecord(),
		FlowState:    flow.StateSignedUp,
		Status:       constant.ConsultationStatusInProgress,
		CreatedAt:    time.Now(),
	}
	if err := uow.ConsultationRepository().Create(ctx, &consultation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.initStage(ownerId, false, false)

	dest := flow.NextStep(s.routeInput(&consultation), s.thresholds())
	resp := &dto.ResumeResponse{
		HasDraft:       false,
		ConsultationId: &consultation.Id,
		ReadinessScore: consultation.ReadinessScore,
		NextStep:       destinationBody(dest),
	}
	if next, ok := flow.NextField(consultation.ChecklistAnswers()); ok {
		resp.ResumeField = string(next)
	}
	return resp, nil
}

func (s *consultationService) AdvanceFlowState(ctx context.Context, ownerId uuid.UUID, ownerEmail string, req *dto.AdvanceFlowRequest) (*dto.AdvanceFlowResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	next := flow.State(req.State)
	if err := flow.CheckAdvance(consultation.FlowState, next); err != nil {
		var backward *flow.BackwardTransitionError
		if errors.As(err, &backward) {
			// Backward movement means corrupted logic somewhere upstream,
			// never a retriable condition.
			return nil, &serverutils.InvariantViolationError{Message: err.Error()}
		}
		return nil, err
	}

	consultation.FlowState = next
	if next == flow.StatePublished {
		consultation.Status = constant.ConsultationStatusCompleted
	}

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return nil, err
	}

	s.logger.Info("ConsultationService", "Flow advanced", map[string]interface{}{
		"consultation_id": consultation.Id,
		"flow_state":      string(next),
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventFlowAdvanced,
			Data: map[string]interface{}{
				"consultation_id": consultation.Id.String(),
				"owner_id":        ownerId.String(),
				"flow_state":      string(next),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("ConsultationService", "Failed to publish flow event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.notifyMilestone(consultation, next, ownerEmail)

	return &dto.AdvanceFlowResponse{FlowState: string(next)}, nil
}

func (s *consultationService) notifyMilestone(c *entity.Consultation, state flow.State, ownerEmail string) {
	if s.emailService == nil || ownerEmail == "" {
		return
	}
	switch state {
	case flow.StateBriefGenerated:
		name := c.BusinessName
		if name == "" {
			name = "your business"
		}
		go func() {
			if err := s.emailService.SendBriefReady(ownerEmail, name); err != nil {
				s.logger.Warn("ConsultationService", "Brief email failed", map[string]interface{}{"error": err.Error()})
			}
		}()
	case flow.StatePublished:
		if c.PublishedPageURL == nil {
			return
		}
		pageURL := *c.PublishedPageURL
		go func() {
			if err := s.emailService.SendPagePublished(ownerEmail, pageURL); err != nil {
				s.logger.Warn("ConsultationService", "Publish email failed", map[string]interface{}{"error": err.Error()})
			}
		}()
	}
}

func (s *consultationService) StoreBrief(ctx context.Context, ownerId uuid.UUID, req *dto.StoreBriefRequest) (*dto.ConsultationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	consultation.StrategyBrief = req.Brief

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return nil, err
	}
	return toConsultationResponse(consultation), nil
}

func (s *consultationService) MarkPublished(ctx context.Context, ownerId uuid.UUID, req *dto.MarkPublishedRequest) (*dto.ConsultationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	consultation, err := s.findCurrent(ctx, uow, ownerId)
	if err != nil {
		return nil, err
	}
	if consultation == nil {
		return nil, &serverutils.NotFoundError{Resource: "consultation"}
	}

	consultation.PublishedPageURL = &req.PageURL

	if err := uow.ConsultationRepository().Update(ctx, consultation); err != nil {
		return nil, err
	}
	return toConsultationResponse(consultation), nil
}

func (s *consultationService) GetStage(ctx context.Context, ownerId uuid.UUID) (*dto.StageResponse, error) {
	snap, ok := s.stageRepo.Get(ownerId.String())
	if !ok {
		return nil, &serverutils.NotFoundError{Resource: "stage"}
	}
	return stageResponse(snap), nil
}

func (s *consultationService) AdvanceStage(ctx context.Context, ownerId uuid.UUID, req *dto.StageAdvanceRequest) (*dto.StageResponse, error) {
	snap, ok := s.stageRepo.Get(ownerId.String())
	if !ok {
		return nil, &serverutils.NotFoundError{Resource: "stage"}
	}
	m := stage.Restore(snap, s.stageLog)
	if err := m.Advance(stage.Stage(req.Stage)); err != nil {
		return nil, &serverutils.ConflictError{Message: err.Error()}
	}
	s.stageRepo.Save(ownerId.String(), m.Snapshot())
	return stageResponse(m.Snapshot()), nil
}

// Back steps the displayed question backward. Answers are never touched.
func (s *consultationService) Back(ctx context.Context, ownerId uuid.UUID) (*dto.StageResponse, error) {
	snap, ok := s.stageRepo.Get(ownerId.String())
	if !ok {
		return nil, &serverutils.NotFoundError{Resource: "stage"}
	}
	m := stage.Restore(snap, s.stageLog)
	if err := m.Back(); err != nil {
		return nil, &serverutils.ConflictError{Message: err.Error()}
	}
	s.stageRepo.Save(ownerId.String(), m.Snapshot())
	return stageResponse(m.Snapshot()), nil
}

func stageResponse(snap stage.Snapshot) *dto.StageResponse {
	return &dto.StageResponse{
		Stage:         string(snap.Current),
		QuestionIndex: snap.QuestionIndex,
		WizardActive:  snap.WizardActive,
	}
}
