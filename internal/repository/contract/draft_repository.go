package contract

import (
	"context"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DraftRepository interface {
	Save(ctx context.Context, draft *entity.Draft) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
