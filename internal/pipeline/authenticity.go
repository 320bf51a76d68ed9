package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/hirecheck/screener-cli/internal/config"
	"github.com/hirecheck/screener-cli/internal/model"
	"github.com/hirecheck/screener-cli/pkg/anthropic"
)

const authenticityPrompt = `You are an expert recruiter screening candidates for fake or fraudulent applications.

Compare this candidate's APPLICATION data against their LINKEDIN profile data and assess whether the candidate appears genuine.

APPLICATION DATA:
- Name: %s
- Email: %s
- Headline: %s
- Experiences: %s
- Education: %s
- Skills: %s
- Summary: %s
- LinkedIn URL (provided by candidate): %s
- Source: %s

LINKEDIN PROFILE DATA (from web search):
- Profile found: %t
- LinkedIn URL: %s
- Current title: %s
- Current company: %s
- Past roles: %s
- Education: %s
- Location: %s
- Summary: %s

EVALUATE THESE RED FLAGS:
1. No LinkedIn profile found at all
2. LinkedIn profile exists but job history doesn't match application
3. Claimed experience/titles seem inflated vs LinkedIn
4. Education claims don't match
5. Profile appears very new or sparse
6. Name/details mismatch between application and LinkedIn
7. Unlikely combination of skills/experience for the claimed role

Return a JSON object:
{
  "risk_level": "definitely_fake" | "likely_fake" | "uncertain" | "likely_real" | "verified",
  "confidence_score": 0-100 (higher = more confident candidate is REAL),
  "reasons": ["list of specific reasons for your assessment"],
  "details": "1-2 sentence summary of your assessment"
}

Return ONLY valid JSON.`

// AuthenticityPhase classifies how likely the candidate's profile is
// fabricated by comparing application data against the enrichment
// record. Never returns an error: any call or parse failure degrades
// to the uncertain default.
func AuthenticityPhase(ctx context.Context, cand model.CandidateRecord, enrichment model.EnrichmentResult, ai anthropic.Client, cfg *config.Config) model.AuthenticityResult {
	log := zap.L().With(zap.String("candidate", cand.Identity()), zap.String("stage", "authenticity"))

	result, err := assessAuthenticity(ctx, cand, enrichment, ai, cfg.Anthropic)
	if err != nil {
		log.Error("authenticity assessment failed", zap.Error(err))
		return model.DefaultAuthenticityResult()
	}
	return result
}

func assessAuthenticity(ctx context.Context, cand model.CandidateRecord, enrichment model.EnrichmentResult, ai anthropic.Client, aiCfg config.AnthropicConfig) (model.AuthenticityResult, error) {
	linkedIn := cand.LinkedInURL()
	if linkedIn == "" {
		linkedIn = "not provided"
	}

	resp, err := ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     aiCfg.Model,
		MaxTokens: 512,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(authenticityPrompt,
				cand.Name, cand.Email, cand.Headline, cand.Experiences, cand.Educations,
				cand.Skills, cand.Summary, linkedIn, cand.Source,
				enrichment.Found, enrichment.ProfileURL, enrichment.CurrentTitle,
				enrichment.CurrentCompany, jsonList(enrichment.PastRoles),
				jsonList(enrichment.Education), enrichment.Location, enrichment.Summary)},
		},
	})
	if err != nil {
		return model.AuthenticityResult{}, eris.Wrap(err, "authenticity: create message")
	}
	resp.Usage.LogCost(aiCfg.Model, "authenticity")

	// risk_level is decoded as a plain string first so unrecognized
	// values can be folded into uncertain instead of erroring.
	var data struct {
		RiskLevel       string   `json:"risk_level"`
		ConfidenceScore *int     `json:"confidence_score"`
		Reasons         []string `json:"reasons"`
		Details         string   `json:"details"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), &data); err != nil {
		return model.AuthenticityResult{}, eris.Wrap(err, "authenticity: parse json")
	}

	confidence := 50
	if data.ConfidenceScore != nil {
		confidence = *data.ConfidenceScore
	}

	return model.AuthenticityResult{
		RiskLevel:       model.ParseRiskLevel(data.RiskLevel),
		ConfidenceScore: confidence,
		Reasons:         data.Reasons,
		Details:         data.Details,
	}, nil
}

// jsonList renders a string slice as a compact JSON array for prompt
// interpolation. Nil slices render as [].
func jsonList(items []string) string {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}
