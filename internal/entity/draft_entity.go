package entity

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a lightweight snapshot of in-progress wizard answers, used only
// for the recovery dialog. It may silently go stale and must never be trusted
// over the Consultation except when the user explicitly chooses to resume it.
type Draft struct {
	Id             uuid.UUID
	OwnerId        uuid.UUID
	ConsultationId uuid.UUID
	WizardData     map[string]string
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}
