package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hirecheck/screener-cli/internal/ingest"
	"github.com/hirecheck/screener-cli/internal/model"
	"github.com/hirecheck/screener-cli/internal/pipeline"
	"github.com/hirecheck/screener-cli/internal/report"
	"github.com/hirecheck/screener-cli/pkg/anthropic"
	"github.com/hirecheck/screener-cli/pkg/tavily"
)

var (
	screenCSV    string
	screenJD     string
	screenOutput string
	screenLimit  int
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Screen candidates from a CSV export against a job description",
	Long: `Runs every candidate through the three-stage screening pipeline
(enrichment, authenticity assessment, qualification scoring) with bounded
concurrency, then writes a ranked Markdown report.

Examples:
  # Screen all candidates
  screener-cli screen --csv candidates.csv --jd jd.md

  # Screen the first 10 and choose the report location
  screener-cli screen --csv candidates.csv --jd jd.md --limit 10 --output report.md`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		candidates, jobDescription, err := loadInputs()
		if err != nil {
			return err
		}

		results := runScreening(ctx, candidates, jobDescription)

		ranked := pipeline.Aggregate(results, cfg.Report.TopN)

		now := time.Now()
		outPath := screenOutput
		if outPath == "" {
			outPath = report.DefaultPath(now)
		}
		if err := report.Save(report.Format(ranked, screenJD, now), outPath); err != nil {
			return err
		}
		zap.L().Info("report saved", zap.String("path", outPath))

		return nil
	},
}

func init() {
	screenCmd.Flags().StringVar(&screenCSV, "csv", "", "path to the Workable CSV export (required)")
	screenCmd.Flags().StringVar(&screenJD, "jd", "", "path to the job description file (required)")
	screenCmd.Flags().StringVar(&screenOutput, "output", "", "report path (default: output/report_<timestamp>.md)")
	screenCmd.Flags().IntVar(&screenLimit, "limit", 0, "max candidates to screen (0 = all)")
	_ = screenCmd.MarkFlagRequired("csv")
	_ = screenCmd.MarkFlagRequired("jd")
	rootCmd.AddCommand(screenCmd)
}

// loadInputs performs the fatal pre-flight checks: credential present,
// job description readable, candidate list non-empty. All of these
// abort before any worker is dispatched.
func loadInputs() ([]model.CandidateRecord, string, error) {
	if cfg.Anthropic.Key == "" {
		return nil, "", eris.New("screen: SCREENER_ANTHROPIC_KEY not set; add it to .env or the environment")
	}

	jd, err := os.ReadFile(screenJD)
	if err != nil {
		return nil, "", eris.Wrap(err, "screen: read job description")
	}

	candidates, err := ingest.ParseCSV(screenCSV, cfg.Ingest.ColumnMapping)
	if err != nil {
		return nil, "", eris.Wrap(err, "screen: parse csv")
	}
	if len(candidates) == 0 {
		return nil, "", eris.New("screen: no candidates found in csv")
	}
	zap.L().Info("parsed csv", zap.Int("candidates", len(candidates)))

	if screenLimit > 0 && screenLimit < len(candidates) {
		candidates = candidates[:screenLimit]
	}

	if cfg.Tavily.Key == "" {
		zap.L().Warn("SCREENER_TAVILY_KEY not set, enrichment will be skipped for every candidate")
	}

	return candidates, string(jd), nil
}

func runScreening(ctx context.Context, candidates []model.CandidateRecord, jobDescription string) []model.ScreenedResult {
	searchClient := tavily.NewClient(cfg.Tavily.Key,
		tavily.WithBaseURL(cfg.Tavily.BaseURL),
		tavily.WithRateLimit(cfg.Tavily.RateLimit),
	)
	aiClient := anthropic.NewClient(cfg.Anthropic.Key)

	p := pipeline.New(cfg, searchClient, aiClient)
	return p.RunBatch(ctx, candidates, jobDescription)
}
