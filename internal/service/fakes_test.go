package service

import (
	"context"
	"sync"
	"time"

	"brandlaunch-be/internal/constant"
	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/repository/contract"
	"brandlaunch-be/internal/repository/specification"
	"brandlaunch-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes. They interpret the spec types the services
// actually use and guard all state with one mutex so claim races can be
// exercised from multiple goroutines.

type fakeStore struct {
	mu            sync.Mutex
	sessions      map[uuid.UUID]*entity.DemoSession
	consultations map[uuid.UUID]*entity.Consultation
	drafts        map[uuid.UUID]*entity.Draft
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		sessions:      make(map[uuid.UUID]*entity.DemoSession),
		consultations: make(map[uuid.UUID]*entity.Consultation),
		drafts:        make(map[uuid.UUID]*entity.Draft),
	}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: newFakeStore()}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) ConsultationRepository() contract.ConsultationRepository {
	return &fakeConsultationRepo{store: u.store}
}

func (u *fakeUow) DemoSessionRepository() contract.DemoSessionRepository {
	return &fakeDemoSessionRepo{store: u.store}
}

func (u *fakeUow) DraftRepository() contract.DraftRepository {
	return &fakeDraftRepo{store: u.store}
}

// --- Demo sessions ---

type fakeDemoSessionRepo struct {
	store *fakeStore
}

func (r *fakeDemoSessionRepo) Create(ctx context.Context, session *entity.DemoSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *session
	r.store.sessions[session.Id] = &cp
	return nil
}

func (r *fakeDemoSessionRepo) Update(ctx context.Context, session *entity.DemoSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *session
	r.store.sessions[session.Id] = &cp
	return nil
}

func (r *fakeDemoSessionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DemoSession, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.sessions {
		if sessionMatches(s, specs) {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDemoSessionRepo) Claim(ctx context.Context, id uuid.UUID, ownerId uuid.UUID, claimedAt time.Time) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	s, ok := r.store.sessions[id]
	if !ok || s.ClaimedBy != nil {
		return false, nil
	}
	owner := ownerId
	at := claimedAt
	s.ClaimedBy = &owner
	s.ClaimedAt = &at
	return true, nil
}

func sessionMatches(s *entity.DemoSession, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByToken:
			if s.Token != v.Token {
				return false
			}
		case specification.ByID:
			if s.Id != v.ID {
				return false
			}
		case specification.Unclaimed:
			if s.ClaimedBy != nil {
				return false
			}
		}
	}
	return true
}

// --- Consultations ---

type fakeConsultationRepo struct {
	store *fakeStore
}

func (r *fakeConsultationRepo) Create(ctx context.Context, c *entity.Consultation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *c
	r.store.consultations[c.Id] = &cp
	return nil
}

func (r *fakeConsultationRepo) Update(ctx context.Context, c *entity.Consultation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *c
	r.store.consultations[c.Id] = &cp
	return nil
}

func (r *fakeConsultationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.consultations, id)
	return nil
}

func (r *fakeConsultationRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consultation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, c := range r.store.consultations {
		if consultationMatches(c, specs) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeConsultationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*entity.Consultation
	for _, c := range r.store.consultations {
		if consultationMatches(c, specs) {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeConsultationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func (r *fakeConsultationRepo) AbandonInProgress(ctx context.Context, ownerId uuid.UUID) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var n int64
	for _, c := range r.store.consultations {
		if c.OwnerId != nil && *c.OwnerId == ownerId && c.Status == constant.ConsultationStatusInProgress {
			c.Status = constant.ConsultationStatusAbandoned
			n++
		}
	}
	return n, nil
}

func consultationMatches(c *entity.Consultation, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			if c.Id != v.ID {
				return false
			}
		case specification.OwnedBy:
			if c.OwnerId == nil || *c.OwnerId != v.OwnerID {
				return false
			}
		case specification.ByStatus:
			if c.Status != v.Status {
				return false
			}
		}
	}
	return true
}

// --- Drafts ---

type fakeDraftRepo struct {
	store *fakeStore
}

func (r *fakeDraftRepo) Save(ctx context.Context, draft *entity.Draft) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	cp := *draft
	r.store.drafts[draft.Id] = &cp
	return nil
}

func (r *fakeDraftRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Draft, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, d := range r.store.drafts {
		if draftMatches(d, specs) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeDraftRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.drafts, id)
	return nil
}

func draftMatches(d *entity.Draft, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			if d.Id != v.ID {
				return false
			}
		case specification.OwnedBy:
			if d.OwnerId != v.OwnerID {
				return false
			}
		case specification.ByConsultationID:
			id, ok := v.ConsultationID.(uuid.UUID)
			if !ok || d.ConsultationId != id {
				return false
			}
		}
	}
	return true
}

// --- Collaborator fakes ---

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

type capturingPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *capturingPublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}
