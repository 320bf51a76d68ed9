package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/hirecheck/screener-cli/internal/model"
	"github.com/hirecheck/screener-cli/internal/pipeline"
)

// Format renders the screening report as Markdown: summary header, top
// candidate table, detailed top profiles, flagged table, and the ranked
// remainder.
func Format(ranked pipeline.RankedResults, jobDescriptionPath string, now time.Time) string {
	var b strings.Builder

	total := len(ranked.Flagged) + len(ranked.Top) + len(ranked.Rest)
	valid := len(ranked.Top) + len(ranked.Rest)

	b.WriteString("# Candidate Screening Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", now.UTC().Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "**Job Description:** `%s`\n", jobDescriptionPath)
	fmt.Fprintf(&b, "**Total Candidates:** %d\n", total)
	fmt.Fprintf(&b, "**Flagged as Fake/Suspect:** %d\n", len(ranked.Flagged))
	fmt.Fprintf(&b, "**Valid Candidates Scored:** %d\n\n", valid)

	b.WriteString("---\n\n## Top Candidates\n\n")
	if len(ranked.Top) == 0 {
		b.WriteString("*No valid candidates to rank.*\n\n")
	} else {
		b.WriteString("| Rank | Name | Score | Skills | Exp. Relevance | Exp. Level | Verification | Key Strengths |\n")
		b.WriteString("|------|------|-------|--------|----------------|------------|--------------|---------------|\n")
		for i, s := range ranked.Top {
			q := s.Qualification
			fmt.Fprintf(&b, "| %d | %s | **%.0f** | %d | %d | %d | %s | %s |\n",
				i+1, s.Candidate.Name, s.FinalScore(),
				q.SkillsMatch, q.ExperienceRelevance, q.ExperienceLevel,
				s.Authenticity.RiskLevel.Badge(), firstN(q.Strengths, 2))
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n## Detailed Candidate Profiles\n\n")
	for i, s := range ranked.Top {
		writeProfile(&b, i+1, s)
	}

	if len(ranked.Flagged) > 0 {
		b.WriteString("## Flagged Candidates (Likely Fake / Suspect)\n\n")
		b.WriteString("| Name | Email | Risk | Confidence | Reasons |\n")
		b.WriteString("|------|-------|------|------------|---------|\n")
		for _, s := range ranked.Flagged {
			fmt.Fprintf(&b, "| %s | %s | %s | %d/100 | %s |\n",
				s.Candidate.Name, s.Candidate.Email,
				s.Authenticity.RiskLevel.Badge(),
				s.Authenticity.ConfidenceScore,
				firstN(s.Authenticity.Reasons, 2))
		}
		b.WriteString("\n")
	}

	if len(ranked.Rest) > 0 {
		b.WriteString("---\n\n## Other Candidates (Ranked)\n\n")
		b.WriteString("| Rank | Name | Score | Verification |\n")
		b.WriteString("|------|------|-------|--------------|\n")
		for i, s := range ranked.Rest {
			fmt.Fprintf(&b, "| %d | %s | %.0f | %s |\n",
				len(ranked.Top)+i+1, s.Candidate.Name, s.FinalScore(),
				s.Authenticity.RiskLevel.Badge())
		}
		b.WriteString("\n")
	}

	return b.String()
}

func writeProfile(b *strings.Builder, rank int, s model.ScreenedResult) {
	c := s.Candidate
	q := s.Qualification
	a := s.Authenticity

	fmt.Fprintf(b, "### %d. %s\n\n", rank, c.Name)
	fmt.Fprintf(b, "- **Score:** %.0f/100\n", s.FinalScore())
	fmt.Fprintf(b, "- **Email:** %s\n", c.Email)
	if c.Headline != "" {
		fmt.Fprintf(b, "- **Headline:** %s\n", c.Headline)
	}
	if c.Source != "" {
		fmt.Fprintf(b, "- **Source:** %s\n", c.Source)
	}
	if loc := location(c); loc != "" {
		fmt.Fprintf(b, "- **Location:** %s\n", loc)
	}
	if s.Enrichment.ProfileURL != "" {
		fmt.Fprintf(b, "- **LinkedIn:** %s\n", s.Enrichment.ProfileURL)
	}
	fmt.Fprintf(b, "- **Verification:** %s (confidence: %d/100)\n\n", a.RiskLevel.Badge(), a.ConfidenceScore)

	fmt.Fprintf(b, "**Scores:** Skills: %d | Experience Relevance: %d | Experience Level: %d | Education: %d | Overall: %d\n\n",
		q.SkillsMatch, q.ExperienceRelevance, q.ExperienceLevel, q.Education, q.OverallImpression)

	if q.Justification != "" {
		fmt.Fprintf(b, "**Assessment:** %s\n\n", q.Justification)
	}
	if len(q.Strengths) > 0 {
		fmt.Fprintf(b, "**Strengths:** %s\n", strings.Join(q.Strengths, ", "))
	}
	if len(q.Concerns) > 0 {
		fmt.Fprintf(b, "**Concerns:** %s\n", strings.Join(q.Concerns, ", "))
	}
	b.WriteString("\n")

	if len(a.Reasons) > 0 {
		fmt.Fprintf(b, "**Verification Notes:** %s\n\n", strings.Join(a.Reasons, "; "))
	}

	b.WriteString("---\n\n")
}

func location(c model.CandidateRecord) string {
	if c.Address != "" {
		return c.Address
	}
	return c.JobLocation
}

// firstN joins up to n items with "; ", or "-" when empty.
func firstN(items []string, n int) string {
	if len(items) == 0 {
		return "-"
	}
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, "; ")
}

// Save writes the report, creating parent directories as needed.
func Save(content, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return eris.Wrap(err, "report: create output dir")
	}
	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return eris.Wrap(err, "report: write file")
	}
	return nil
}

// DefaultPath returns the timestamped default report location.
func DefaultPath(now time.Time) string {
	return filepath.Join("output", fmt.Sprintf("report_%s.md", now.UTC().Format("20060102_150405")))
}
