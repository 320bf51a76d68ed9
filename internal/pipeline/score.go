package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hirecheck/screener-cli/internal/config"
	"github.com/hirecheck/screener-cli/internal/model"
	"github.com/hirecheck/screener-cli/pkg/anthropic"
)

const scorePrompt = `You are a senior technical recruiter evaluating a candidate for a specific role.

JOB DESCRIPTION:
%s

CANDIDATE PROFILE:
- Name: %s
- Headline: %s
- Summary: %s
- Skills: %s
- Keywords: %s
- Experience:
%s
- Education:
%s
- Location: %s

Score this candidate on each dimension (0-100, where 50 = meets basic requirements, 70 = strong match, 90+ = exceptional):

1. **skills_match** (%.0f%% weight): How well do their skills align with the JD requirements?
2. **experience_relevance** (%.0f%% weight): How relevant is their work experience to this role?
3. **experience_level** (%.0f%% weight): Do they have the right seniority / years of experience?
4. **education** (%.0f%% weight): Does their education background fit?
5. **overall_impression** (%.0f%% weight): Overall gut feeling — culture fit, trajectory, unique value?

Return a JSON object:
{
  "skills_match": 0-100,
  "experience_relevance": 0-100,
  "experience_level": 0-100,
  "education": 0-100,
  "overall_impression": 0-100,
  "justification": "2-3 sentence summary of why you gave these scores",
  "strengths": ["list of key strengths for this role"],
  "concerns": ["list of concerns or gaps"]
}

Return ONLY valid JSON.`

// ScorePhase rates the candidate against the job description across
// five weighted dimensions. Never returns an error: any call or parse
// failure degrades to the zero (not evaluated) score.
func ScorePhase(ctx context.Context, cand model.CandidateRecord, enrichment model.EnrichmentResult, jobDescription string, ai anthropic.Client, cfg *config.Config) model.QualificationScore {
	log := zap.L().With(zap.String("candidate", cand.Identity()), zap.String("stage", "score"))

	score, err := scoreCandidate(ctx, cand, enrichment, jobDescription, ai, cfg.Anthropic, cfg.Scoring.Weights)
	if err != nil {
		log.Error("scoring failed", zap.Error(err))
		return model.QualificationScore{}
	}
	return score
}

func scoreCandidate(ctx context.Context, cand model.CandidateRecord, enrichment model.EnrichmentResult, jobDescription string, ai anthropic.Client, aiCfg config.AnthropicConfig, w config.ScoringWeights) (model.QualificationScore, error) {
	location := cand.Address
	if location == "" {
		location = cand.JobLocation
	}

	resp, err := ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     aiCfg.Model,
		MaxTokens: 768,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(scorePrompt,
				jobDescription,
				cand.Name, cand.Headline, cand.Summary, cand.Skills, cand.Keywords,
				mergedExperience(cand, enrichment), mergedEducation(cand, enrichment), location,
				w.SkillsMatch*100, w.ExperienceRelevance*100, w.ExperienceLevel*100,
				w.Education*100, w.OverallImpression*100)},
		},
	})
	if err != nil {
		return model.QualificationScore{}, eris.Wrap(err, "score: create message")
	}
	resp.Usage.LogCost(aiCfg.Model, "score")

	var score model.QualificationScore
	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), &score); err != nil {
		return model.QualificationScore{}, eris.Wrap(err, "score: parse json")
	}

	score.CompositeScore = ComputeComposite(score, w)
	return score, nil
}

// ComputeComposite is the local, deterministic weighted sum of the five
// dimension scores. Dimension values outside [0,100] pass through
// arithmetically: the model is trusted to honor the prompt range.
func ComputeComposite(score model.QualificationScore, w config.ScoringWeights) float64 {
	return float64(score.SkillsMatch)*w.SkillsMatch +
		float64(score.ExperienceRelevance)*w.ExperienceRelevance +
		float64(score.ExperienceLevel)*w.ExperienceLevel +
		float64(score.Education)*w.Education +
		float64(score.OverallImpression)*w.OverallImpression
}

// mergedExperience combines the application experience blob with
// enrichment-sourced roles, labeled as externally verified. Enrichment
// entries are appended only when a profile was actually found.
func mergedExperience(cand model.CandidateRecord, enrichment model.EnrichmentResult) string {
	var b strings.Builder
	b.WriteString(cand.Experiences)

	if enrichment.Found && len(enrichment.PastRoles) > 0 {
		b.WriteString("\n\nLinkedIn verified roles:\n")
		for _, role := range enrichment.PastRoles {
			b.WriteString("- " + role + "\n")
		}
		if enrichment.CurrentTitle != "" {
			fmt.Fprintf(&b, "Current (LinkedIn): %s at %s", enrichment.CurrentTitle, enrichment.CurrentCompany)
		}
	}

	return b.String()
}

// mergedEducation combines application education with enrichment-sourced
// entries under the same found gate as mergedExperience.
func mergedEducation(cand model.CandidateRecord, enrichment model.EnrichmentResult) string {
	var b strings.Builder
	b.WriteString(cand.Educations)

	if enrichment.Found && len(enrichment.Education) > 0 {
		b.WriteString("\n\nLinkedIn education:\n")
		for _, edu := range enrichment.Education {
			b.WriteString("- " + edu + "\n")
		}
	}

	return b.String()
}
