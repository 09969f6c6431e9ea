package mapper

import (
	"encoding/json"
	"time"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/model"
	"brandlaunch-be/pkg/flow"
	"brandlaunch-be/pkg/intelligence"

	"gorm.io/datatypes"
)

type ConsultationMapper struct{}

func NewConsultationMapper() *ConsultationMapper {
	return &ConsultationMapper{}
}

func (m *ConsultationMapper) ToEntity(c *model.Consultation) *entity.Consultation {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	e := &entity.Consultation{
		Id:                c.Id,
		OwnerId:           c.OwnerId,
		Industry:          c.Industry,
		Goal:              c.Goal,
		TargetAudience:    c.TargetAudience,
		UniqueValue:       c.UniqueValue,
		CompetitiveEdge:   c.CompetitiveEdge,
		ServiceType:       c.ServiceType,
		Offer:             c.Offer,
		BusinessName:      c.BusinessName,
		WebsiteURL:        c.WebsiteUrl,
		BrandGuideSkipped: c.BrandGuideSkipped,
		ReadinessScore:    c.ReadinessScore,
		FlowState:         flow.State(c.FlowState),
		Status:            c.Status,
		PublishedPageURL:  c.PublishedPageUrl,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         updatedAt,
	}

	unmarshalJSON(c.PainPoints, &e.PainPoints)
	unmarshalJSON(c.AuthorityMarkers, &e.AuthorityMarkers)
	unmarshalJSON(c.CommunicationStyle, &e.CommunicationStyle)
	unmarshalJSON(c.BrandAssets, &e.BrandAssets)
	unmarshalJSON(c.StrategyBrief, &e.StrategyBrief)

	if len(c.Intelligence) > 0 {
		rec := intelligence.NewRecord()
		if err := json.Unmarshal(c.Intelligence, rec); err == nil {
			e.Intelligence = rec
		}
	}

	return e
}

func (m *ConsultationMapper) ToModel(e *entity.Consultation) *model.Consultation {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.Consultation{
		Id:                 e.Id,
		OwnerId:            e.OwnerId,
		Industry:           e.Industry,
		Goal:               e.Goal,
		TargetAudience:     e.TargetAudience,
		UniqueValue:        e.UniqueValue,
		CompetitiveEdge:    e.CompetitiveEdge,
		PainPoints:         marshalJSON(e.PainPoints),
		AuthorityMarkers:   marshalJSON(e.AuthorityMarkers),
		ServiceType:        e.ServiceType,
		Offer:              e.Offer,
		BusinessName:       e.BusinessName,
		WebsiteUrl:         e.WebsiteURL,
		CommunicationStyle: marshalJSON(e.CommunicationStyle),
		BrandAssets:        marshalJSON(e.BrandAssets),
		BrandGuideSkipped:  e.BrandGuideSkipped,
		Intelligence:       marshalJSON(e.Intelligence),
		ReadinessScore:     e.ReadinessScore,
		FlowState:          string(e.FlowState),
		Status:             e.Status,
		StrategyBrief:      marshalJSON(e.StrategyBrief),
		PublishedPageUrl:   e.PublishedPageURL,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          updatedAt,
	}
}

func (m *ConsultationMapper) ToEntities(models []*model.Consultation) []*entity.Consultation {
	entities := make([]*entity.Consultation, len(models))
	for i, c := range models {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

// Shared JSON column helpers.

func marshalJSON(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	// Avoid storing JSON "null" for nil pointers behind interfaces
	if string(data) == "null" {
		return nil
	}
	return data
}

func unmarshalJSON(data datatypes.JSON, target interface{}) {
	if len(data) == 0 {
		return
	}
	_ = json.Unmarshal(data, target)
}
