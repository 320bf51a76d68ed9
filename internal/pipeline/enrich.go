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
	"github.com/hirecheck/screener-cli/pkg/tavily"
)

const enrichPrompt = `Analyze these web search results about a job candidate and extract LinkedIn profile information.

CANDIDATE APPLICATION DATA:
- Name: %s
- Headline: %s
- Experiences (from application): %s
- Education (from application): %s
- LinkedIn URL (from application): %s

WEB SEARCH RESULTS:
%s

Extract and return a JSON object with these fields:
- "found": boolean - whether a matching LinkedIn profile was found
- "url": string - the LinkedIn profile URL if found
- "current_title": string - their current job title per LinkedIn
- "current_company": string - their current company per LinkedIn
- "past_roles": list of strings - past job titles and companies from LinkedIn
- "education": list of strings - education entries from LinkedIn
- "location": string - location per LinkedIn
- "summary": string - brief summary of their LinkedIn profile

If no LinkedIn profile is found or search results are inconclusive, set "found" to false and leave other fields empty.

Return ONLY valid JSON, no other text.`

// EnrichPhase corroborates a candidate's application data with an
// externally searched profile. It never returns an error: a missing
// search credential, a failed call, or an unparseable response all
// degrade to the zero EnrichmentResult so the candidate's pipeline
// continues.
func EnrichPhase(ctx context.Context, cand model.CandidateRecord, search tavily.Client, ai anthropic.Client, cfg *config.Config) model.EnrichmentResult {
	log := zap.L().With(zap.String("candidate", cand.Identity()), zap.String("stage", "enrich"))

	if cfg.Tavily.Key == "" {
		log.Warn("no tavily key configured, skipping enrichment")
		return model.EnrichmentResult{}
	}

	raw, err := searchProfile(ctx, cand, search, cfg.Tavily.MaxResults)
	if err != nil {
		log.Error("profile search failed", zap.Error(err))
		return model.EnrichmentResult{}
	}

	result, err := structureProfile(ctx, cand, raw, ai, cfg.Anthropic)
	if err != nil {
		// Keep the raw payload for audit even when structuring fails.
		log.Warn("profile structuring failed", zap.Error(err))
		return model.EnrichmentResult{RawSearchResults: raw}
	}

	return result
}

// searchProfile runs the web search and returns the raw result payload.
func searchProfile(ctx context.Context, cand model.CandidateRecord, search tavily.Client, maxResults int) (string, error) {
	query := buildSearchQuery(cand)
	zap.L().Debug("searching", zap.String("query", query))

	resp, err := search.Search(ctx, tavily.SearchRequest{
		Query:         query,
		MaxResults:    maxResults,
		SearchDepth:   "advanced",
		IncludeAnswer: true,
	})
	if err != nil {
		return "", eris.Wrap(err, "enrich: search")
	}

	return resp.Raw(), nil
}

// buildSearchQuery assembles a targeted query from the strongest
// identity signal available: name plus headline, falling back to the
// first line of the experience blob, always suffixed with "LinkedIn"
// to disambiguate.
func buildSearchQuery(cand model.CandidateRecord) string {
	parts := []string{cand.Name}
	if cand.Headline != "" {
		parts = append(parts, cand.Headline)
	} else if cand.Experiences != "" {
		firstExp := strings.TrimSpace(strings.SplitN(cand.Experiences, "\n", 2)[0])
		if firstExp != "" {
			parts = append(parts, firstExp)
		}
	}
	parts = append(parts, "LinkedIn")
	return strings.Join(parts, " ")
}

// structureProfile hands the raw search payload to the model and parses
// the structured EnrichmentResult out of its response.
func structureProfile(ctx context.Context, cand model.CandidateRecord, raw string, ai anthropic.Client, aiCfg config.AnthropicConfig) (model.EnrichmentResult, error) {
	linkedIn := cand.LinkedInURL()
	if linkedIn == "" {
		linkedIn = "not provided"
	}

	resp, err := ai.CreateMessage(ctx, anthropic.MessageRequest{
		Model:     aiCfg.Model,
		MaxTokens: 1024,
		Messages: []anthropic.Message{
			{Role: "user", Content: fmt.Sprintf(enrichPrompt,
				cand.Name, cand.Headline, cand.Experiences, cand.Educations, linkedIn, raw)},
		},
	})
	if err != nil {
		return model.EnrichmentResult{}, eris.Wrap(err, "enrich: structure profile")
	}
	resp.Usage.LogCost(aiCfg.Model, "enrich")

	var result model.EnrichmentResult
	if err := json.Unmarshal([]byte(cleanJSON(resp.Text())), &result); err != nil {
		return model.EnrichmentResult{}, eris.Wrap(err, "enrich: parse profile json")
	}

	result.RawSearchResults = raw
	return result, nil
}

// cleanJSON attempts to extract a JSON object from text that may contain
// markdown code fences or other wrapping.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences.
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Find first { and last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}
