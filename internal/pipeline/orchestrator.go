package pipeline

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hirecheck/screener-cli/internal/model"
)

// ScreenFunc is the per-candidate task signature used by the batch
// runner. An error return is a task defect: the candidate is dropped
// from the output and the batch continues.
type ScreenFunc func(ctx context.Context, cand model.CandidateRecord, jobDescription string) (model.ScreenedResult, error)

// RunBatch screens every candidate under the configured concurrency
// bound and returns the results in completion order. A defect in one
// candidate's task never aborts the batch.
func (p *Pipeline) RunBatch(ctx context.Context, candidates []model.CandidateRecord, jobDescription string) []model.ScreenedResult {
	return runBatch(ctx, candidates, jobDescription, p.cfg.Screening.MaxConcurrency, p.screenGuarded)
}

// screenGuarded converts a panic escaping the per-candidate task into a
// task defect error so a single bad candidate cannot take the run down.
func (p *Pipeline) screenGuarded(ctx context.Context, cand model.CandidateRecord, jobDescription string) (result model.ScreenedResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = eris.Errorf("pipeline: screen panicked: %v", r)
		}
	}()
	return p.Screen(ctx, cand, jobDescription), nil
}

// runBatch dispatches one task per candidate with at most concurrency
// tasks in flight, collecting results as tasks complete.
func runBatch(ctx context.Context, candidates []model.CandidateRecord, jobDescription string, concurrency int, screen ScreenFunc) []model.ScreenedResult {
	runID := uuid.New().String()
	log := zap.L().With(zap.String("run_id", runID))
	log.Info("processing batch",
		zap.Int("candidates", len(candidates)),
		zap.Int("concurrency", concurrency),
	)

	start := time.Now()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	var results []model.ScreenedResult
	var done, failed atomic.Int64

	for _, cand := range candidates {
		g.Go(func() error {
			result, err := screen(gCtx, cand, jobDescription)
			if err != nil {
				failed.Add(1)
				log.Error("candidate dropped",
					zap.String("candidate", cand.Identity()),
					zap.Error(err),
				)
				return nil // don't abort batch on individual failure
			}

			n := done.Add(1)
			log.Info("candidate screened",
				zap.Int64("progress", n),
				zap.Int("total", len(candidates)),
				zap.String("candidate", cand.Identity()),
				zap.Float64("final_score", result.FinalScore()),
				zap.String("risk_level", string(result.Authenticity.RiskLevel)),
			)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()

	log.Info("batch complete",
		zap.Int64("processed", done.Load()),
		zap.Int64("dropped", failed.Load()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return results
}
