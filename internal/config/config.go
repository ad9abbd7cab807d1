package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig marks malformed weight or threshold configuration. The
// engine refuses to start on it rather than silently diverging from the
// audited values.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Scoring   ScoringConfig   `mapstructure:"scoring"`
	Smoothing SmoothingConfig `mapstructure:"smoothing"`
	Skills    SkillsConfig    `mapstructure:"skills"`
	Model     ModelConfig     `mapstructure:"model"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	HTTPPort    string `mapstructure:"http_port"`
	Debug       bool   `mapstructure:"debug"`
	JSONLogs    bool   `mapstructure:"json_logs"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type RedisConfig struct {
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	Password   string `mapstructure:"password"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type AuthConfig struct {
	AccessSecret     string `mapstructure:"access_secret"`
	RefreshSecret    string `mapstructure:"refresh_secret"`
	AccessTTLMinutes int    `mapstructure:"access_ttl_minutes"`
	RefreshTTLHours  int    `mapstructure:"refresh_ttl_hours"`
}

// ScoringConfig carries the ATS sub-score weights, the ML/ATS blend and the
// status thresholds. Defaults are the audited 40/30/20/10 and 0.5/0.5.
type ScoringConfig struct {
	KeywordWeight    float64 `mapstructure:"keyword_weight"`
	SkillWeight      float64 `mapstructure:"skill_weight"`
	ExperienceWeight float64 `mapstructure:"experience_weight"`
	EducationWeight  float64 `mapstructure:"education_weight"`

	MLWeight  float64 `mapstructure:"ml_weight"`
	ATSWeight float64 `mapstructure:"ats_weight"`

	AcceptThreshold float64 `mapstructure:"accept_threshold"`
	ReviewThreshold float64 `mapstructure:"review_threshold"`

	TopK    int `mapstructure:"top_k"`
	Workers int `mapstructure:"workers"`
}

type SmoothingConfig struct {
	HighConfidence float64 `mapstructure:"high_confidence"`
	HighFloor      float64 `mapstructure:"high_floor"`
	MediumFloor    float64 `mapstructure:"medium_floor"`
	UpgradeOverlap float64 `mapstructure:"upgrade_overlap"`
	AmbiguityGap   float64 `mapstructure:"ambiguity_gap"`
}

// SkillsConfig lists tier membership for the weighted overlap ratio.
// Entries are canonicalized against the lexicon at bootstrap.
type SkillsConfig struct {
	Critical  []string `mapstructure:"critical"`
	Important []string `mapstructure:"important"`
}

type ModelConfig struct {
	Path string `mapstructure:"path"`
}

func Load(path string) (Config, error) {
	v := viper.New()

	setDefaults(v)

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("RECRUITER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "recruiter-pro")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.json_logs", true)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "recruiter_pro")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.ssl_mode", "disable")

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.ttl_seconds", 600)

	v.SetDefault("auth.access_ttl_minutes", 15)
	v.SetDefault("auth.refresh_ttl_hours", 168)

	v.SetDefault("scoring.keyword_weight", 0.40)
	v.SetDefault("scoring.skill_weight", 0.30)
	v.SetDefault("scoring.experience_weight", 0.20)
	v.SetDefault("scoring.education_weight", 0.10)
	v.SetDefault("scoring.ml_weight", 0.5)
	v.SetDefault("scoring.ats_weight", 0.5)
	v.SetDefault("scoring.accept_threshold", 75)
	v.SetDefault("scoring.review_threshold", 50)
	v.SetDefault("scoring.top_k", 10)
	v.SetDefault("scoring.workers", 8)

	v.SetDefault("smoothing.high_confidence", 0.85)
	v.SetDefault("smoothing.high_floor", 0.60)
	v.SetDefault("smoothing.medium_floor", 0.35)
	v.SetDefault("smoothing.upgrade_overlap", 0.70)
	v.SetDefault("smoothing.ambiguity_gap", 0.10)

	v.SetDefault("model.path", "models/ats_classifier.json")
}

func (c Config) Validate() error {
	sub := c.Scoring.KeywordWeight + c.Scoring.SkillWeight +
		c.Scoring.ExperienceWeight + c.Scoring.EducationWeight
	if math.Abs(sub-1.0) > 0.01 {
		return fmt.Errorf("%w: ATS sub-score weights must sum to 1.0, got %.3f", ErrInvalidConfig, sub)
	}

	blend := c.Scoring.MLWeight + c.Scoring.ATSWeight
	if math.Abs(blend-1.0) > 0.01 {
		return fmt.Errorf("%w: ML and ATS blend weights must sum to 1.0, got %.3f", ErrInvalidConfig, blend)
	}

	if c.Scoring.AcceptThreshold <= c.Scoring.ReviewThreshold {
		return fmt.Errorf("%w: accept threshold (%.1f) must exceed review threshold (%.1f)",
			ErrInvalidConfig, c.Scoring.AcceptThreshold, c.Scoring.ReviewThreshold)
	}

	for name, t := range map[string]float64{
		"high_confidence": c.Smoothing.HighConfidence,
		"high_floor":      c.Smoothing.HighFloor,
		"medium_floor":    c.Smoothing.MediumFloor,
		"upgrade_overlap": c.Smoothing.UpgradeOverlap,
		"ambiguity_gap":   c.Smoothing.AmbiguityGap,
	} {
		if t <= 0 || t >= 1 {
			return fmt.Errorf("%w: smoothing threshold %s must be in (0,1), got %.3f", ErrInvalidConfig, name, t)
		}
	}

	if c.Scoring.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0", ErrInvalidConfig)
	}
	return nil
}
