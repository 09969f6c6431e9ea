package implementation

import (
	"context"
	"errors"
	"time"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/mapper"
	"brandlaunch-be/internal/model"
	"brandlaunch-be/internal/repository/contract"
	"brandlaunch-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DemoSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DemoSessionMapper
}

func NewDemoSessionRepository(db *gorm.DB) contract.DemoSessionRepository {
	return &DemoSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDemoSessionMapper(),
	}
}

func (r *DemoSessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DemoSessionRepositoryImpl) Create(ctx context.Context, session *entity.DemoSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *DemoSessionRepositoryImpl) Update(ctx context.Context, session *entity.DemoSession) error {
	m := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*session = *r.mapper.ToEntity(m)
	return nil
}

func (r *DemoSessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DemoSession, error) {
	var m model.DemoSession
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

// Claim is the one-shot compare-and-swap that converts an anonymous session
// into an owned one. The WHERE guard makes losing the race an expected
// outcome, not an error.
func (r *DemoSessionRepositoryImpl) Claim(ctx context.Context, id uuid.UUID, ownerId uuid.UUID, claimedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.DemoSession{}).
		Where("id = ? AND claimed_by IS NULL", id).
		Updates(map[string]interface{}{
			"claimed_by": ownerId,
			"claimed_at": claimedAt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
