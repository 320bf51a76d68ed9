package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAuthenticityResult(t *testing.T) {
	def := DefaultAuthenticityResult()
	assert.Equal(t, RiskUncertain, def.RiskLevel)
	assert.Equal(t, 50, def.ConfidenceScore)
	assert.Empty(t, def.Reasons)
	assert.Empty(t, def.Details)
}

func TestFinalScore_FlaggedIsZero(t *testing.T) {
	s := ScreenedResult{
		Authenticity:  AuthenticityResult{RiskLevel: RiskLikelyFake},
		Qualification: QualificationScore{CompositeScore: 88.5},
	}
	assert.True(t, s.IsFlagged())
	assert.Equal(t, 0.0, s.FinalScore())
}

func TestFinalScore_UnflaggedIsComposite(t *testing.T) {
	for _, level := range []RiskLevel{RiskUncertain, RiskLikelyReal, RiskVerified} {
		s := ScreenedResult{
			Authenticity:  AuthenticityResult{RiskLevel: level},
			Qualification: QualificationScore{CompositeScore: 71.5},
		}
		assert.False(t, s.IsFlagged())
		assert.Equal(t, 71.5, s.FinalScore())
	}
}

func TestZeroEnrichmentIsSafeDefault(t *testing.T) {
	var e EnrichmentResult
	assert.False(t, e.Found)
	assert.Empty(t, e.ProfileURL)
	assert.Empty(t, e.PastRoles)
	assert.Empty(t, e.RawSearchResults)
}

func TestZeroQualificationMeansNotEvaluated(t *testing.T) {
	var q QualificationScore
	assert.Zero(t, q.SkillsMatch)
	assert.Zero(t, q.CompositeScore)
	assert.Empty(t, q.Strengths)
}
