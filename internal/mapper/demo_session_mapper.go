package mapper

import (
	"encoding/json"
	"time"

	"brandlaunch-be/internal/entity"
	"brandlaunch-be/internal/model"
	"brandlaunch-be/pkg/intelligence"
)

type DemoSessionMapper struct{}

func NewDemoSessionMapper() *DemoSessionMapper {
	return &DemoSessionMapper{}
}

func (m *DemoSessionMapper) ToEntity(s *model.DemoSession) *entity.DemoSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	e := &entity.DemoSession{
		Id:             s.Id,
		Token:          s.Token,
		ReadinessScore: s.ReadinessScore,
		ClaimedBy:      s.ClaimedBy,
		ClaimedAt:      s.ClaimedAt,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      updatedAt,
	}

	unmarshalJSON(s.ConversationHistory, &e.ConversationHistory)

	if len(s.Intelligence) > 0 {
		rec := intelligence.NewRecord()
		if err := json.Unmarshal(s.Intelligence, rec); err == nil {
			e.Intelligence = rec
		}
	}

	return e
}

func (m *DemoSessionMapper) ToModel(e *entity.DemoSession) *model.DemoSession {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.DemoSession{
		Id:                  e.Id,
		Token:               e.Token,
		ConversationHistory: marshalJSON(e.ConversationHistory),
		Intelligence:        marshalJSON(e.Intelligence),
		ReadinessScore:      e.ReadinessScore,
		ClaimedBy:           e.ClaimedBy,
		ClaimedAt:           e.ClaimedAt,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}
