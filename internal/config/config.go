package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Tavily    TavilyConfig    `yaml:"tavily" mapstructure:"tavily"`
	Screening ScreeningConfig `yaml:"screening" mapstructure:"screening"`
	Scoring   ScoringConfig   `yaml:"scoring" mapstructure:"scoring"`
	Report    ReportConfig    `yaml:"report" mapstructure:"report"`
	Ingest    IngestConfig    `yaml:"ingest" mapstructure:"ingest"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// TavilyConfig holds Tavily web-search API settings.
type TavilyConfig struct {
	Key        string  `yaml:"key" mapstructure:"key"`
	BaseURL    string  `yaml:"base_url" mapstructure:"base_url"`
	MaxResults int     `yaml:"max_results" mapstructure:"max_results"`
	RateLimit  float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // requests per second
}

// ScreeningConfig configures the batch orchestrator.
type ScreeningConfig struct {
	MaxConcurrency int `yaml:"max_concurrency" mapstructure:"max_concurrency"`
	// FakeFlagThreshold is reserved for confidence-based flagging.
	// The pipeline currently flags on risk level alone.
	FakeFlagThreshold int `yaml:"fake_flag_threshold" mapstructure:"fake_flag_threshold"`
}

// ScoringConfig configures qualification scoring.
type ScoringConfig struct {
	Weights ScoringWeights `yaml:"weights" mapstructure:"weights"`
}

// ScoringWeights holds the per-dimension weights for the composite
// score. The defaults sum to 1.0; the type does not enforce it.
type ScoringWeights struct {
	SkillsMatch         float64 `yaml:"skills_match" mapstructure:"skills_match"`
	ExperienceRelevance float64 `yaml:"experience_relevance" mapstructure:"experience_relevance"`
	ExperienceLevel     float64 `yaml:"experience_level" mapstructure:"experience_level"`
	Education           float64 `yaml:"education" mapstructure:"education"`
	OverallImpression   float64 `yaml:"overall_impression" mapstructure:"overall_impression"`
}

// ReportConfig configures report rendering.
type ReportConfig struct {
	TopN int `yaml:"top_n" mapstructure:"top_n"`
}

// IngestConfig configures CSV parsing.
type IngestConfig struct {
	// ColumnMapping overrides the default column-alias table:
	// internal field name to the exact CSV header to use.
	ColumnMapping map[string]string `yaml:"column_mapping" mapstructure:"column_mapping"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from .env, config file, and environment.
func Load() (*Config, error) {
	// Optional .env for API keys, matching local dev workflow.
	_ = godotenv.Load()

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("SCREENER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults. The keys default empty so AutomaticEnv can resolve them
	// during Unmarshal.
	v.SetDefault("anthropic.key", "")
	v.SetDefault("tavily.key", "")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("tavily.base_url", "https://api.tavily.com")
	v.SetDefault("tavily.max_results", 5)
	v.SetDefault("tavily.rate_limit", 2.0)
	v.SetDefault("screening.max_concurrency", 5)
	v.SetDefault("screening.fake_flag_threshold", 40)
	v.SetDefault("scoring.weights.skills_match", 0.35)
	v.SetDefault("scoring.weights.experience_relevance", 0.25)
	v.SetDefault("scoring.weights.experience_level", 0.20)
	v.SetDefault("scoring.weights.education", 0.10)
	v.SetDefault("scoring.weights.overall_impression", 0.10)
	v.SetDefault("report.top_n", 20)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
