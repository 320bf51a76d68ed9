package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hirecheck/screener-cli/internal/config"
	"github.com/hirecheck/screener-cli/pkg/anthropic"
	"github.com/hirecheck/screener-cli/pkg/tavily"
)

// --- Tavily Mock ---

type mockTavilyClient struct {
	mock.Mock
}

func (m *mockTavilyClient) Search(ctx context.Context, req tavily.SearchRequest) (*tavily.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tavily.SearchResponse), args.Error(1)
}

// --- Anthropic Mock ---

type mockAnthropicClient struct {
	mock.Mock
}

func (m *mockAnthropicClient) CreateMessage(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*anthropic.MessageResponse), args.Error(1)
}

// textResponse wraps a text payload in a minimal message response.
func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
	}
}

// testConfig returns a config with both API keys set and the default
// scoring weights.
func testConfig() *config.Config {
	return &config.Config{
		Anthropic: config.AnthropicConfig{
			Key:   "sk-test",
			Model: "claude-sonnet-4-5-20250929",
		},
		Tavily: config.TavilyConfig{
			Key:        "tvly-test",
			MaxResults: 5,
		},
		Screening: config.ScreeningConfig{MaxConcurrency: 3},
		Scoring: config.ScoringConfig{
			Weights: config.ScoringWeights{
				SkillsMatch:         0.35,
				ExperienceRelevance: 0.25,
				ExperienceLevel:     0.20,
				Education:           0.10,
				OverallImpression:   0.10,
			},
		},
		Report: config.ReportConfig{TopN: 20},
	}
}
