package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Consultation struct {
	Id                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerId            *uuid.UUID     `gorm:"type:uuid;index"` // nullable until claimed
	Industry           string         `gorm:"type:text"`
	Goal               string         `gorm:"type:text"`
	TargetAudience     string         `gorm:"type:text"`
	UniqueValue        string         `gorm:"type:text"`
	CompetitiveEdge    string         `gorm:"type:text"`
	PainPoints         datatypes.JSON `gorm:"type:jsonb"`
	AuthorityMarkers   datatypes.JSON `gorm:"type:jsonb"`
	ServiceType        string         `gorm:"type:text"`
	Offer              string         `gorm:"type:text"`
	BusinessName       string         `gorm:"type:text"`
	WebsiteUrl         string         `gorm:"type:text"`
	CommunicationStyle datatypes.JSON `gorm:"type:jsonb"`
	BrandAssets        datatypes.JSON `gorm:"type:jsonb"`
	BrandGuideSkipped  bool           `gorm:"not null;default:false"`
	Intelligence       datatypes.JSON `gorm:"column:extracted_intelligence;type:jsonb"`
	ReadinessScore     int            `gorm:"not null;default:0"`
	FlowState          string         `gorm:"type:text;not null;default:''"`
	Status             string         `gorm:"type:text;not null;index:idx_consultations_owner_status,priority:2"`
	StrategyBrief      datatypes.JSON `gorm:"type:jsonb"`
	PublishedPageUrl   *string        `gorm:"type:text"`
	CreatedAt          time.Time      `gorm:"autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime"`
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (Consultation) TableName() string {
	return "consultations"
}
