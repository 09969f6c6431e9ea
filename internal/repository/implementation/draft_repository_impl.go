package implementation

import (
	"context"
	"errors"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/mapper"
	"brandlaunch-be/internal/model"
	"brandlaunch-be/internal/repository/contract"
	"brandlaunch-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DraftRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DraftMapper
}

func NewDraftRepository(db *gorm.DB) contract.DraftRepository {
	return &DraftRepositoryImpl{
		db:     db,
		mapper: mapper.NewDraftMapper(),
	}
}

func (r *DraftRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Save upserts on the primary key; the draft is advisory cache so clobbering
// an older snapshot is fine.
func (r *DraftRepositoryImpl) Save(ctx context.Context, draft *entity.Draft) error {
	m := r.mapper.ToModel(draft)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(m).Error; err != nil {
		return err
	}
	*draft = *r.mapper.ToEntity(m)
	return nil
}

func (r *DraftRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Draft, error) {
	var m model.Draft
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DraftRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Draft{}, id).Error
}
