package model

// EnrichmentResult holds the profile data gathered about a candidate
// from web search. The zero value (Found=false, all else empty) means
// "no external verification available" and is safe to pass to every
// downstream stage.
type EnrichmentResult struct {
	Found          bool     `json:"found"`
	ProfileURL     string   `json:"url"`
	CurrentTitle   string   `json:"current_title"`
	CurrentCompany string   `json:"current_company"`
	PastRoles      []string `json:"past_roles"`
	Education      []string `json:"education"`
	Location       string   `json:"location"`
	Summary        string   `json:"summary"`

	// RawSearchResults retains the untouched search payload for audit
	// and debugging. Never fed back into scoring.
	RawSearchResults string `json:"-"`
}

// AuthenticityResult is the outcome of comparing application data
// against the enrichment record.
type AuthenticityResult struct {
	RiskLevel       RiskLevel `json:"risk_level"`
	ConfidenceScore int       `json:"confidence_score"` // 0-100, higher = more confident candidate is real
	Reasons         []string  `json:"reasons"`
	Details         string    `json:"details"`
}

// DefaultAuthenticityResult returns the uncertain/50 default used when
// the assessment call or parse fails.
func DefaultAuthenticityResult() AuthenticityResult {
	return AuthenticityResult{
		RiskLevel:       RiskUncertain,
		ConfidenceScore: 50,
	}
}

// QualificationScore holds the five dimension scores and the weighted
// composite. The zero value means "not evaluated".
type QualificationScore struct {
	SkillsMatch         int      `json:"skills_match"`
	ExperienceRelevance int      `json:"experience_relevance"`
	ExperienceLevel     int      `json:"experience_level"`
	Education           int      `json:"education"`
	OverallImpression   int      `json:"overall_impression"`
	CompositeScore      float64  `json:"composite_score"`
	Justification       string   `json:"justification"`
	Strengths           []string `json:"strengths"`
	Concerns            []string `json:"concerns"`
}

// ScreenedResult owns one candidate plus the output of every stage.
// Each sub-result is produced exactly once by its stage; flag and final
// score are derived on demand so they cannot drift from their sources.
type ScreenedResult struct {
	Candidate     CandidateRecord    `json:"candidate"`
	Enrichment    EnrichmentResult   `json:"enrichment"`
	Authenticity  AuthenticityResult `json:"authenticity"`
	Qualification QualificationScore `json:"qualification"`
}

// IsFlagged reports whether the candidate's risk level places them in
// the likely/definitely fake band.
func (s ScreenedResult) IsFlagged() bool {
	return s.Authenticity.RiskLevel.Flagged()
}

// FinalScore is the ranking score: zero for flagged candidates, the
// weighted composite otherwise.
func (s ScreenedResult) FinalScore() float64 {
	if s.IsFlagged() {
		return 0.0
	}
	return s.Qualification.CompositeScore
}
