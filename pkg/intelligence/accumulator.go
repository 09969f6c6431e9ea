package intelligence

// Fragment is a partial contribution from one producer or one user action.
// Empty strings and nil slices mean "not supplied".
type Fragment struct {
	Consultation ConsultationData `json:"consultation,omitempty"`
	Market       MarketData       `json:"market,omitempty"`
	Brand        BrandData        `json:"brand,omitempty"`
}

// Field keys used in the provenance map.
const (
	FieldIndustry         = "industry"
	FieldGoal             = "goal"
	FieldTargetAudience   = "target_audience"
	FieldUniqueValue      = "unique_value"
	FieldCompetitiveEdge  = "competitive_edge"
	FieldServiceType      = "service_type"
	FieldOffer            = "offer"
	FieldBusinessName     = "business_name"
	FieldWebsiteURL       = "website_url"
	FieldPainPoints       = "pain_points"
	FieldAuthorityMarkers = "authority_markers"
	FieldPersona          = "market.persona"
	FieldMarketPains      = "market.pain_points"
	FieldDesignConv       = "market.design_conventions"
	FieldBrandLogo        = "brand.logo"
	FieldBrandColors      = "brand.colors"
	FieldBrandFonts       = "brand.fonts"
	FieldBrandTone        = "brand.tone"
	FieldBrandVoice       = "brand.voice"
)

// Merge applies a fragment into the record under the precedence rules:
//   - narrative fields: a user write always wins; producer writes never
//     overwrite a user-set field; among producers the last writer wins
//   - brand (color/typography/logo) fields: strict tier precedence, an
//     equal-or-higher existing source keeps its value
//
// Merge is total over well-typed input and recomputes the readiness score.
// Callers hold one Record per session; records for different sessions are
// independent, so concurrent merges across sessions are safe.
func Merge(rec *Record, frag Fragment, src Source) {
	if rec.Provenance == nil {
		rec.Provenance = make(map[string]Source)
	}

	mergeNarrative(rec, FieldIndustry, frag.Consultation.Industry, &rec.Consultation.Industry, src)
	mergeNarrative(rec, FieldGoal, frag.Consultation.Goal, &rec.Consultation.Goal, src)
	mergeNarrative(rec, FieldTargetAudience, frag.Consultation.TargetAudience, &rec.Consultation.TargetAudience, src)
	mergeNarrative(rec, FieldUniqueValue, frag.Consultation.UniqueValue, &rec.Consultation.UniqueValue, src)
	mergeNarrative(rec, FieldCompetitiveEdge, frag.Consultation.CompetitiveEdge, &rec.Consultation.CompetitiveEdge, src)
	mergeNarrative(rec, FieldServiceType, frag.Consultation.ServiceType, &rec.Consultation.ServiceType, src)
	mergeNarrative(rec, FieldOffer, frag.Consultation.Offer, &rec.Consultation.Offer, src)
	mergeNarrative(rec, FieldBusinessName, frag.Consultation.BusinessName, &rec.Consultation.BusinessName, src)
	mergeNarrative(rec, FieldWebsiteURL, frag.Consultation.WebsiteURL, &rec.Consultation.WebsiteURL, src)
	mergeNarrativeList(rec, FieldPainPoints, frag.Consultation.PainPoints, &rec.Consultation.PainPoints, src)
	mergeNarrativeList(rec, FieldAuthorityMarkers, frag.Consultation.AuthorityMarkers, &rec.Consultation.AuthorityMarkers, src)

	mergeNarrative(rec, FieldPersona, frag.Market.Persona, &rec.Market.Persona, src)
	mergeNarrativeList(rec, FieldMarketPains, frag.Market.PainPoints, &rec.Market.PainPoints, src)
	mergeNarrativeList(rec, FieldDesignConv, frag.Market.DesignConventions, &rec.Market.DesignConventions, src)

	mergeBrand(rec, FieldBrandLogo, frag.Brand.LogoURL, &rec.Brand.LogoURL, src)
	mergeBrandList(rec, FieldBrandColors, frag.Brand.Colors, &rec.Brand.Colors, src)
	mergeBrandList(rec, FieldBrandFonts, frag.Brand.Fonts, &rec.Brand.Fonts, src)
	mergeBrand(rec, FieldBrandTone, frag.Brand.Tone, &rec.Brand.Tone, src)
	mergeBrand(rec, FieldBrandVoice, frag.Brand.Voice, &rec.Brand.Voice, src)

	// Flags only ever latch on; a later fragment cannot un-provide a guide.
	if frag.Brand.GuideProvided {
		rec.Brand.GuideProvided = true
	}
	if frag.Brand.GuideSkipped {
		rec.Brand.GuideSkipped = true
	}

	rec.ReadinessScore = ComputeReadiness(rec)
}

func mergeNarrative(rec *Record, key, incoming string, target *string, src Source) {
	if incoming == "" {
		return
	}
	if !narrativeWriteAllowed(rec.Provenance[key], *target != "", src) {
		return
	}
	*target = incoming
	rec.Provenance[key] = src
}

func mergeNarrativeList(rec *Record, key string, incoming []string, target *[]string, src Source) {
	if len(incoming) == 0 {
		return
	}
	if !narrativeWriteAllowed(rec.Provenance[key], len(*target) > 0, src) {
		return
	}
	*target = append([]string(nil), incoming...)
	rec.Provenance[key] = src
}

// narrativeWriteAllowed: user edits always win; producers never clobber a
// user-set field; otherwise last writer wins.
func narrativeWriteAllowed(existing Source, isSet bool, incoming Source) bool {
	if !isSet {
		return true
	}
	if incoming == SourceUser {
		return true
	}
	return existing != SourceUser
}

func mergeBrand(rec *Record, key, incoming string, target *string, src Source) {
	if incoming == "" {
		return
	}
	if *target != "" && brandRank(rec.Provenance[key]) >= brandRank(src) {
		return
	}
	*target = incoming
	rec.Provenance[key] = src
}

func mergeBrandList(rec *Record, key string, incoming []string, target *[]string, src Source) {
	if len(incoming) == 0 {
		return
	}
	if len(*target) > 0 && brandRank(rec.Provenance[key]) >= brandRank(src) {
		return
	}
	*target = append([]string(nil), incoming...)
	rec.Provenance[key] = src
}
