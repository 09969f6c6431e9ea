package contract

import (
	"context"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConsultationRepository interface {
	Create(ctx context.Context, consultation *entity.Consultation) error
	Update(ctx context.Context, consultation *entity.Consultation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consultation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AbandonInProgress marks every in_progress record of the owner as
	// abandoned and returns how many rows changed. Called before creating a
	// new attempt so that at most one record stays in_progress per owner.
	AbandonInProgress(ctx context.Context, ownerId uuid.UUID) (int64, error)
}
