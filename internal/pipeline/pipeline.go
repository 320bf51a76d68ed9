package pipeline

import (
	"context"

	"go.uber.org/zap"

	"github.com/hirecheck/screener-cli/internal/config"
	"github.com/hirecheck/screener-cli/internal/model"
	"github.com/hirecheck/screener-cli/pkg/anthropic"
	"github.com/hirecheck/screener-cli/pkg/tavily"
)

// Pipeline drives one candidate through enrichment, authenticity
// assessment, and qualification scoring. It holds no per-run state and
// is safe for concurrent use across candidates.
type Pipeline struct {
	cfg    *config.Config
	search tavily.Client
	ai     anthropic.Client
}

// New creates a Pipeline with its external capabilities.
func New(cfg *config.Config, search tavily.Client, ai anthropic.Client) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		search: search,
		ai:     ai,
	}
}

// Screen runs the full per-candidate task and always produces a result:
// every stage absorbs its own failures into that stage's default value.
// Candidates classified likely or definitely fake skip scoring entirely,
// so no scoring API call is issued for them.
func (p *Pipeline) Screen(ctx context.Context, cand model.CandidateRecord, jobDescription string) model.ScreenedResult {
	log := zap.L().With(zap.String("candidate", cand.Identity()))
	log.Info("screening candidate")

	enrichment := EnrichPhase(ctx, cand, p.search, p.ai, p.cfg)
	authenticity := AuthenticityPhase(ctx, cand, enrichment, p.ai, p.cfg)

	var qualification model.QualificationScore
	if authenticity.RiskLevel.Flagged() {
		log.Info("candidate flagged, skipping scoring",
			zap.String("risk_level", string(authenticity.RiskLevel)),
		)
	} else {
		qualification = ScorePhase(ctx, cand, enrichment, jobDescription, p.ai, p.cfg)
	}

	return model.ScreenedResult{
		Candidate:     cand,
		Enrichment:    enrichment,
		Authenticity:  authenticity,
		Qualification: qualification,
	}
}
