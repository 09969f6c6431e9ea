package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Draft struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	ConsultationId uuid.UUID      `gorm:"type:uuid;not null;index"`
	WizardData     datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

func (Draft) TableName() string {
	return "drafts"
}
