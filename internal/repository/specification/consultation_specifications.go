package specification

import (
	"gorm.io/gorm"
)

// ByStatus filters consultations by lifecycle status
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByToken filters demo sessions by their opaque browser token
type ByToken struct {
	Token string
}

func (s ByToken) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

// Unclaimed filters demo sessions that no owner has claimed yet
type Unclaimed struct{}

func (s Unclaimed) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("claimed_by IS NULL")
}

// ByConsultationID filters drafts by their consultation
type ByConsultationID struct {
	ConsultationID interface{}
}

func (s ByConsultationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("consultation_id = ?", s.ConsultationID)
}
