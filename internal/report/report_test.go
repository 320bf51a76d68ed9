package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirecheck/screener-cli/internal/model"
	"github.com/hirecheck/screener-cli/internal/pipeline"
)

var reportTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleRanked() pipeline.RankedResults {
	return pipeline.RankedResults{
		Top: []model.ScreenedResult{
			{
				Candidate: model.CandidateRecord{
					Name:     "Alice Chen",
					Email:    "alice@example.com",
					Headline: "Staff Engineer",
					Address:  "Berlin",
				},
				Enrichment: model.EnrichmentResult{
					Found:      true,
					ProfileURL: "https://linkedin.com/in/alicechen",
				},
				Authenticity: model.AuthenticityResult{
					RiskLevel:       model.RiskVerified,
					ConfidenceScore: 92,
					Reasons:         []string{"profile matches application"},
				},
				Qualification: model.QualificationScore{
					SkillsMatch:         85,
					ExperienceRelevance: 78,
					ExperienceLevel:     80,
					Education:           70,
					OverallImpression:   82,
					CompositeScore:      80.2,
					Justification:       "Strong match for the role.",
					Strengths:           []string{"Go", "distributed systems", "mentoring"},
					Concerns:            []string{"no frontend experience"},
				},
			},
		},
		Rest: []model.ScreenedResult{
			{
				Candidate:     model.CandidateRecord{Name: "Bob Ray", Email: "bob@example.com"},
				Authenticity:  model.AuthenticityResult{RiskLevel: model.RiskUncertain, ConfidenceScore: 50},
				Qualification: model.QualificationScore{CompositeScore: 42.0},
			},
		},
		Flagged: []model.ScreenedResult{
			{
				Candidate: model.CandidateRecord{Name: "Mallory Fake", Email: "mallory@example.com"},
				Authenticity: model.AuthenticityResult{
					RiskLevel:       model.RiskLikelyFake,
					ConfidenceScore: 15,
					Reasons:         []string{"no online presence", "company does not exist"},
				},
			},
		},
	}
}

func TestFormat_Sections(t *testing.T) {
	out := Format(sampleRanked(), "jd.md", reportTime)

	assert.Contains(t, out, "# Candidate Screening Report")
	assert.Contains(t, out, "**Generated:** 2026-03-14 09:30 UTC")
	assert.Contains(t, out, "**Job Description:** `jd.md`")
	assert.Contains(t, out, "**Total Candidates:** 3")
	assert.Contains(t, out, "**Flagged as Fake/Suspect:** 1")
	assert.Contains(t, out, "**Valid Candidates Scored:** 2")

	assert.Contains(t, out, "## Top Candidates")
	assert.Contains(t, out, "| 1 | Alice Chen | **80** |")
	assert.Contains(t, out, "| VERIFIED |")

	assert.Contains(t, out, "### 1. Alice Chen")
	assert.Contains(t, out, "- **LinkedIn:** https://linkedin.com/in/alicechen")
	assert.Contains(t, out, "**Strengths:** Go, distributed systems, mentoring")

	assert.Contains(t, out, "## Flagged Candidates (Likely Fake / Suspect)")
	assert.Contains(t, out, "| Mallory Fake | mallory@example.com |")
	assert.Contains(t, out, "no online presence; company does not exist")

	assert.Contains(t, out, "## Other Candidates (Ranked)")
	assert.Contains(t, out, "| 2 | Bob Ray | 42 |")
}

func TestFormat_TruncatesStrengthsInTable(t *testing.T) {
	out := Format(sampleRanked(), "jd.md", reportTime)

	// The summary table keeps the first two strengths only; the full
	// list still appears in the detailed profile.
	assert.Contains(t, out, "| Go; distributed systems |")
	assert.NotContains(t, out, "| Go; distributed systems; mentoring |")
}

func TestFormat_EmptyResults(t *testing.T) {
	out := Format(pipeline.RankedResults{}, "jd.md", reportTime)

	assert.Contains(t, out, "**Total Candidates:** 0")
	assert.Contains(t, out, "*No valid candidates to rank.*")
	assert.NotContains(t, out, "## Flagged Candidates")
	assert.NotContains(t, out, "## Other Candidates")
}

func TestFormat_FlaggedOnly(t *testing.T) {
	ranked := pipeline.RankedResults{Flagged: sampleRanked().Flagged}
	out := Format(ranked, "jd.md", reportTime)

	assert.Contains(t, out, "**Flagged as Fake/Suspect:** 1")
	assert.Contains(t, out, "**Valid Candidates Scored:** 0")
	assert.Contains(t, out, "*No valid candidates to rank.*")
	assert.Contains(t, out, "## Flagged Candidates")
}

func TestSave_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "report.md")

	require.NoError(t, Save("# Report\n", path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Report\n", string(data))
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join("output", "report_20260314_093000.md"), DefaultPath(reportTime))
}
