package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DemoSession struct {
	Id                  uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Token               string         `gorm:"type:text;not null;uniqueIndex"`
	ConversationHistory datatypes.JSON `gorm:"type:jsonb"`
	Intelligence        datatypes.JSON `gorm:"column:extracted_intelligence;type:jsonb"`
	ReadinessScore      int            `gorm:"not null;default:0"`
	ClaimedBy           *uuid.UUID     `gorm:"type:uuid;index"`
	ClaimedAt           *time.Time
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

func (DemoSession) TableName() string {
	return "demo_sessions"
}
