package mapper

import (
	"time"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/model"
)

type DraftMapper struct{}

func NewDraftMapper() *DraftMapper {
	return &DraftMapper{}
}

func (m *DraftMapper) ToEntity(d *model.Draft) *entity.Draft {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Draft{
		Id:             d.Id,
		OwnerId:        d.OwnerId,
		ConsultationId: d.ConsultationId,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      updatedAt,
	}

	unmarshalJSON(d.WizardData, &e.WizardData)

	return e
}

func (m *DraftMapper) ToModel(e *entity.Draft) *model.Draft {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Draft{
		Id:             e.Id,
		OwnerId:        e.OwnerId,
		ConsultationId: e.ConsultationId,
		WizardData:     marshalJSON(e.WizardData),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
