package unitofwork

import (
	"context"

	"brandlaunch-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ConsultationRepository() contract.ConsultationRepository
	DemoSessionRepository() contract.DemoSessionRepository
	DraftRepository() contract.DraftRepository
}
