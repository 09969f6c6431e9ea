package intelligence

// Point values per qualifying field. They sum to 100; ComputeReadiness caps
// there anyway so future additions cannot overflow the scale.
const (
	pointsIndustry       = 15
	pointsAudience       = 15
	pointsUniqueValue    = 15
	pointsDifferentiator = 10
	pointsPainPoint      = 10
	pointsAuthority      = 10
	pointsLogo           = 10
	pointsColors         = 5
	pointsFonts          = 5
	pointsGuideOrSkip    = 5
)

// ComputeReadiness derives the 0..100 completeness score that is the sole
// routing signal. It is monotonically non-decreasing as fields fill in.
func ComputeReadiness(rec *Record) int {
	score := 0

	if rec.Consultation.Industry != "" {
		score += pointsIndustry
	}
	if rec.Consultation.TargetAudience != "" {
		score += pointsAudience
	}
	if rec.Consultation.UniqueValue != "" {
		score += pointsUniqueValue
	}
	if rec.Consultation.CompetitiveEdge != "" {
		score += pointsDifferentiator
	}
	if len(rec.Consultation.PainPoints) > 0 || len(rec.Market.PainPoints) > 0 {
		score += pointsPainPoint
	}
	if len(rec.Consultation.AuthorityMarkers) > 0 {
		score += pointsAuthority
	}

	// Brand completeness: only non-default data counts.
	if rec.Brand.LogoURL != "" {
		score += pointsLogo
	}
	if len(rec.Brand.Colors) > 0 && rec.Provenance[FieldBrandColors] != SourceDefault {
		score += pointsColors
	}
	if len(rec.Brand.Fonts) > 0 && rec.Provenance[FieldBrandFonts] != SourceDefault {
		score += pointsFonts
	}
	if rec.Brand.GuideProvided || rec.Brand.GuideSkipped {
		score += pointsGuideOrSkip
	}

	if score > 100 {
		score = 100
	}
	return score
}

// CompletionStage buckets the score. readyThreshold is the configurable
// "sufficient to skip ahead" line (50 by default).
func CompletionStage(rec *Record, readyThreshold int) Stage {
	if rec.ReadinessScore >= readyThreshold {
		return StageReady
	}
	if anyFieldSet(rec) {
		return StagePartial
	}
	return StageEmpty
}

func anyFieldSet(rec *Record) bool {
	c := rec.Consultation
	if c.Industry != "" || c.Goal != "" || c.TargetAudience != "" || c.UniqueValue != "" ||
		c.CompetitiveEdge != "" || c.ServiceType != "" || c.Offer != "" ||
		len(c.PainPoints) > 0 || len(c.AuthorityMarkers) > 0 {
		return true
	}
	if rec.Market.Persona != "" || len(rec.Market.PainPoints) > 0 {
		return true
	}
	b := rec.Brand
	return b.LogoURL != "" || len(b.Colors) > 0 || len(b.Fonts) > 0 || b.GuideProvided || b.GuideSkipped
}
