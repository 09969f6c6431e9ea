package contract

import (
	"context"
	"time"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DemoSessionRepository interface {
	Create(ctx context.Context, session *entity.DemoSession) error
	Update(ctx context.Context, session *entity.DemoSession) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DemoSession, error)

	// Claim performs the conditional update "SET claimed_by, claimed_at WHERE
	// id = ? AND claimed_by IS NULL" and reports whether this caller won.
	// Zero rows affected means someone else already claimed the session; the
	// caller must not proceed to create a consultation from it.
	Claim(ctx context.Context, id uuid.UUID, ownerId uuid.UUID, claimedAt time.Time) (bool, error)
}
