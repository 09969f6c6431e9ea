package implementation

import (
	"context"
	"errors"

	"brandlaunch-be/internal/constant"
	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/mapper"
	"brandlaunch-be/internal/model"
	"brandlaunch-be/internal/repository/contract"
	"brandlaunch-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsultationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConsultationMapper
}

func NewConsultationRepository(db *gorm.DB) contract.ConsultationRepository {
	return &ConsultationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConsultationMapper(),
	}
}

func (r *ConsultationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConsultationRepositoryImpl) Create(ctx context.Context, consultation *entity.Consultation) error {
	m := r.mapper.ToModel(consultation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*consultation = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConsultationRepositoryImpl) Update(ctx context.Context, consultation *entity.Consultation) error {
	m := r.mapper.ToModel(consultation)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*consultation = *r.mapper.ToEntity(m)
	return nil
}

func (r *ConsultationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Consultation{}, id).Error
}

func (r *ConsultationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Consultation, error) {
	var m model.Consultation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ConsultationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error) {
	var models []*model.Consultation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ConsultationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Consultation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ConsultationRepositoryImpl) AbandonInProgress(ctx context.Context, ownerId uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Consultation{}).
		Where("owner_id = ? AND status = ?", ownerId, constant.ConsultationStatusInProgress).
		Update("status", constant.ConsultationStatusAbandoned)
	return result.RowsAffected, result.Error
}
