package service

import (
	"context"
	"time"

	"brandlaunch-be/internal/constant"
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/pkg/logger"
	"brandlaunch-be/internal/pkg/serverutils"
	"brandlaunch-be/internal/repository/specification"
	"brandlaunch-be/internal/repository/unitofwork"
	"brandlaunch-be/pkg/events"
	"brandlaunch-be/pkg/flow"
	"brandlaunch-be/pkg/intelligence"
	pktNats "brandlaunch-be/pkg/nats"
	"brandlaunch-be/pkg/producer"
	"brandlaunch-be/pkg/producer/factory"

	"github.com/google/uuid"
)

type IDemoService interface {
	CreateSession(ctx context.Context) (*dto.CreateDemoSessionResponse, error)
	GetSession(ctx context.Context, token string) (*dto.DemoSessionResponse, error)
	SendMessage(ctx context.Context, token string, req *dto.DemoMessageRequest) (*dto.DemoMessageResponse, error)
	Claim(ctx context.Context, ownerId uuid.UUID, req *dto.ClaimDemoSessionRequest) (*dto.ClaimDemoSessionResponse, error)
}

type demoService struct {
	uowFactory     unitofwork.RepositoryFactory
	producers      *factory.Registry
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewDemoService(
	uowFactory unitofwork.RepositoryFactory,
	producers *factory.Registry,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IDemoService {
	return &demoService{
		uowFactory:     uowFactory,
		producers:      producers,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *demoService) CreateSession(ctx context.Context) (*dto.CreateDemoSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session := entity.DemoSession{
		Id:                  uuid.New(),
		Token:               uuid.NewString(),
		ConversationHistory: []entity.DemoMessage{},
		Intelligence:        intelligence.NewRecord(),
		CreatedAt:           time.Now(),
	}

	if err := uow.DemoSessionRepository().Create(ctx, &session); err != nil {
		return nil, err
	}

	s.logger.Info("DemoService", "Demo session created", map[string]interface{}{"session_id": session.Id})

	return &dto.CreateDemoSessionResponse{
		Token:          session.Token,
		ReadinessScore: session.ReadinessScore,
		CreatedAt:      session.CreatedAt,
	}, nil
}

func (s *demoService) GetSession(ctx context.Context, token string) (*dto.DemoSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.DemoSessionRepository().FindOne(ctx, specification.ByToken{Token: token})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &serverutils.NotFoundError{Resource: "demo session"}
	}

	return &dto.DemoSessionResponse{
		Token:          session.Token,
		ReadinessScore: session.ReadinessScore,
		MessageCount:   len(session.ConversationHistory),
		Claimed:        session.Claimed(),
		CreatedAt:      session.CreatedAt,
	}, nil
}

func (s *demoService) SendMessage(ctx context.Context, token string, req *dto.DemoMessageRequest) (*dto.DemoMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.DemoSessionRepository().FindOne(ctx, specification.ByToken{Token: token})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &serverutils.NotFoundError{Resource: "demo session"}
	}
	if session.Claimed() {
		return nil, &serverutils.ConflictError{Message: "demo session already claimed"}
	}

	session.ConversationHistory = append(session.ConversationHistory, entity.DemoMessage{
		Role:      constant.DemoRoleUser,
		Content:   req.Content,
		Timestamp: time.Now(),
	})

	rec := session.Intelligence
	if rec == nil {
		rec = intelligence.NewRecord()
		session.Intelligence = rec
	}

	// Extraction failures are non-fatal; the conversation continues and the
	// record simply does not grow on this turn.
	extractor, err := s.producers.Get(producer.NameChatExtractor)
	if err == nil {
		transcript := make([]map[string]string, 0, len(session.ConversationHistory))
		for _, msg := range session.ConversationHistory {
			transcript = append(transcript, map[string]string{
				"role":    msg.Role,
				"content": msg.Content,
			})
		}

		frag, invokeErr := extractor.Invoke(ctx, map[string]interface{}{"transcript": transcript})
		if invokeErr != nil {
			s.logger.Warn("DemoService", "Chat extraction failed", map[string]interface{}{
				"session_id": session.Id,
				"error":      invokeErr.Error(),
			})
		} else if frag != nil {
			intelligence.Merge(rec, *frag, extractor.Source())
		}
	}

	session.ReadinessScore = rec.ReadinessScore

	if err := uow.DemoSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return &dto.DemoMessageResponse{
		Token:          session.Token,
		ReadinessScore: session.ReadinessScore,
		MessageCount:   len(session.ConversationHistory),
	}, nil
}

// Claim transfers an anonymous demo session to a signed-up owner. The
// conditional update on claimed_by guarantees at most one winner; the loser
// gets claimed=false and starts the checklist without prefill.
func (s *demoService) Claim(ctx context.Context, ownerId uuid.UUID, req *dto.ClaimDemoSessionRequest) (*dto.ClaimDemoSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.DemoSessionRepository().FindOne(ctx, specification.ByToken{Token: req.Token})
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &serverutils.NotFoundError{Resource: "demo session"}
	}

	won, err := uow.DemoSessionRepository().Claim(ctx, session.Id, ownerId, time.Now())
	if err != nil {
		return nil, err
	}
	if !won {
		s.logger.Warn("DemoService", "Lost claim race", map[string]interface{}{
			"session_id": session.Id,
			"owner_id":   ownerId,
		})
		return &dto.ClaimDemoSessionResponse{Claimed: false, Prefilled: false}, nil
	}

	rec := session.Intelligence
	if rec == nil {
		rec = intelligence.NewRecord()
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	// A new attempt supersedes any stale in_progress record of this owner.
	if _, err := uow.ConsultationRepository().AbandonInProgress(ctx, ownerId); err != nil {
		return nil, err
	}

	consultation := entity.Consultation{
		Id:        uuid.New(),
		OwnerId:   &ownerId,
		FlowState: flow.StateSignedUp,
		Status:    constant.ConsultationStatusInProgress,
		CreatedAt: time.Now(),
	}
	syncRecordToConsultation(&consultation, rec)

	if err := uow.ConsultationRepository().Create(ctx, &consultation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("DemoService", "Demo session claimed", map[string]interface{}{
		"session_id":      session.Id,
		"owner_id":        ownerId,
		"consultation_id": consultation.Id,
		"readiness_score": consultation.ReadinessScore,
	})

	if s.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: constant.EventDemoSessionClaimed,
			Data: map[string]interface{}{
				"session_id":      session.Id.String(),
				"owner_id":        ownerId.String(),
				"consultation_id": consultation.Id.String(),
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("DemoService", "Failed to publish claim event", map[string]interface{}{"error": err.Error()})
		}
	}

	return &dto.ClaimDemoSessionResponse{
		Claimed:        true,
		ConsultationId: &consultation.Id,
		ReadinessScore: consultation.ReadinessScore,
		Prefilled:      consultation.ReadinessScore > 0,
	}, nil
}
