package service

import (
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/entity"
	"brandlaunch-be/pkg/flow"
	"brandlaunch-be/pkg/intelligence"
)

// syncRecordToConsultation copies the merged intelligence record onto the
// flat consultation columns. The record is authoritative; the columns exist
// for querying and for collaborators that read plain fields.
func syncRecordToConsultation(c *entity.Consultation, rec *intelligence.Record) {
	c.Intelligence = rec
	c.ReadinessScore = rec.ReadinessScore

	c.Industry = rec.Consultation.Industry
	c.Goal = rec.Consultation.Goal
	c.TargetAudience = rec.Consultation.TargetAudience
	c.UniqueValue = rec.Consultation.UniqueValue
	c.CompetitiveEdge = rec.Consultation.CompetitiveEdge
	c.ServiceType = rec.Consultation.ServiceType
	c.Offer = rec.Consultation.Offer
	c.BusinessName = rec.Consultation.BusinessName
	c.WebsiteURL = rec.Consultation.WebsiteURL
	if len(rec.Consultation.PainPoints) > 0 {
		c.PainPoints = rec.Consultation.PainPoints
	}
	if len(rec.Consultation.AuthorityMarkers) > 0 {
		c.AuthorityMarkers = rec.Consultation.AuthorityMarkers
	}

	c.BrandAssets = entity.BrandAssets{
		LogoURL: rec.Brand.LogoURL,
		Colors:  rec.Brand.Colors,
		Fonts:   rec.Brand.Fonts,
	}
	if rec.Brand.Tone != "" || rec.Brand.Voice != "" {
		c.CommunicationStyle = entity.CommunicationStyle{
			Tone:  rec.Brand.Tone,
			Voice: rec.Brand.Voice,
		}
	}
	if rec.Brand.GuideSkipped {
		c.BrandGuideSkipped = true
	}
}

// consultationRecord returns the consultation's intelligence record,
// initializing an empty one for rows created before the record existed.
func consultationRecord(c *entity.Consultation) *intelligence.Record {
	if c.Intelligence == nil {
		c.Intelligence = intelligence.NewRecord()
	}
	return c.Intelligence
}

// answerFragment maps one checklist answer onto the record field it fills.
// The challenge answer lands in pain points.
func answerFragment(field flow.Field, value string) intelligence.Fragment {
	var frag intelligence.Fragment
	switch field {
	case flow.FieldIndustry:
		frag.Consultation.Industry = value
	case flow.FieldGoal:
		frag.Consultation.Goal = value
	case flow.FieldAudience:
		frag.Consultation.TargetAudience = value
	case flow.FieldServiceType:
		frag.Consultation.ServiceType = value
	case flow.FieldChallenge:
		frag.Consultation.PainPoints = []string{value}
	case flow.FieldUniqueValue:
		frag.Consultation.UniqueValue = value
	case flow.FieldOffer:
		frag.Consultation.Offer = value
	}
	return frag
}

func toConsultationResponse(c *entity.Consultation) *dto.ConsultationResponse {
	resp := &dto.ConsultationResponse{
		Id:               c.Id,
		Status:           c.Status,
		FlowState:        string(c.FlowState),
		ReadinessScore:   c.ReadinessScore,
		Industry:         c.Industry,
		Goal:             c.Goal,
		TargetAudience:   c.TargetAudience,
		ServiceType:      c.ServiceType,
		UniqueValue:      c.UniqueValue,
		Offer:            c.Offer,
		BusinessName:     c.BusinessName,
		WebsiteURL:       c.WebsiteURL,
		PainPoints:       c.PainPoints,
		HasBrandData:     c.HasBrandData(),
		StrategyBrief:    c.StrategyBrief,
		PublishedPageURL: c.PublishedPageURL,
		CreatedAt:        c.CreatedAt,
	}
	if c.UpdatedAt != nil {
		resp.UpdatedAt = *c.UpdatedAt
	} else {
		resp.UpdatedAt = c.CreatedAt
	}
	return resp
}
