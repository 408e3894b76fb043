package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env       string `env:"TAA_ENV" envDefault:"dev"`
	ResultDir string `env:"TAA_RESULT_DIR" envDefault:"result"`

	FetchWorkers  int           `env:"TAA_FETCH_WORKERS" envDefault:"4"`
	FetchTimeout  time.Duration `env:"TAA_FETCH_TIMEOUT" envDefault:"20s"`
	FetchAttempts uint64        `env:"TAA_FETCH_ATTEMPTS" envDefault:"3"`
	QuoteCacheTTL time.Duration `env:"TAA_QUOTE_CACHE_TTL" envDefault:"5m"`

	Weights StrategyWeights `envPrefix:"TAA_WEIGHT_"`

	Port     int    `env:"TAA_PORT" envDefault:"3009"`
	Schedule string `env:"TAA_SCHEDULE"`

	Alpaca AlpacaSecrets `envPrefix:"TAA_ALPACA_"`
	SES    SESSecrets    `envPrefix:"TAA_SES_"`
}

type StrategyWeights struct {
	ODM float64 `env:"ODM" envDefault:"0.333"`
	VAA float64 `env:"VAA" envDefault:"0.333"`
	LAA float64 `env:"LAA" envDefault:"0.334"`
}

type AlpacaSecrets struct {
	ApiKey    string `env:"API_KEY" json:"apiKey"`
	ApiSecret string `env:"API_SECRET" json:"apiSecret"`
	Endpoint  string `env:"ENDPOINT" json:"endpoint"`
}

func (a AlpacaSecrets) Enabled() bool {
	return a.ApiKey != "" && a.ApiSecret != ""
}

type SESSecrets struct {
	Region    string `env:"REGION" json:"region"`
	FromEmail string `env:"FROM_EMAIL" json:"fromEmail"`
	ToEmail   string `env:"TO_EMAIL" json:"toEmail"`
}

func (s SESSecrets) Enabled() bool {
	return s.Region != "" && s.FromEmail != "" && s.ToEmail != ""
}

type secrets struct {
	Alpaca AlpacaSecrets `json:"alpaca"`
	SES    SESSecrets    `json:"ses"`
}

// LoadConfig reads .env (if present) and the environment, then fills any
// secret the environment left empty from the secrets file for TAA_ENV
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from env: %w", err)
	}

	s, err := loadSecrets(secretsFile(cfg.Env))
	if err != nil {
		return nil, err
	}
	if s != nil {
		cfg.Alpaca = mergeAlpaca(cfg.Alpaca, s.Alpaca)
		cfg.SES = mergeSES(cfg.SES, s.SES)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) Validate() error {
	if c.FetchWorkers < 1 {
		return fmt.Errorf("TAA_FETCH_WORKERS must be at least 1, got %d", c.FetchWorkers)
	}
	if c.FetchAttempts < 1 {
		return fmt.Errorf("TAA_FETCH_ATTEMPTS must be at least 1, got %d", c.FetchAttempts)
	}
	for name, w := range map[string]float64{"ODM": c.Weights.ODM, "VAA": c.Weights.VAA, "LAA": c.Weights.LAA} {
		if w < 0 {
			return fmt.Errorf("weight for %s cannot be negative, got %f", name, w)
		}
	}
	sum := c.Weights.ODM + c.Weights.VAA + c.Weights.LAA
	if sum > 1.000001 {
		return fmt.Errorf("strategy weights should sum to at most 1, got %f", sum)
	}
	return nil
}

func secretsFile(appEnv string) string {
	switch strings.ToLower(appEnv) {
	case "test":
		return "secrets-test.json"
	case "dev":
		return "secrets-dev.json"
	default:
		return "secrets.json"
	}
}

func loadSecrets(path string) (*secrets, error) {
	f, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	s := secrets{}
	err = json.Unmarshal(f, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &s, nil
}

func mergeAlpaca(fromEnv, fromFile AlpacaSecrets) AlpacaSecrets {
	if fromEnv.ApiKey == "" {
		fromEnv.ApiKey = fromFile.ApiKey
	}
	if fromEnv.ApiSecret == "" {
		fromEnv.ApiSecret = fromFile.ApiSecret
	}
	if fromEnv.Endpoint == "" {
		fromEnv.Endpoint = fromFile.Endpoint
	}
	return fromEnv
}

func mergeSES(fromEnv, fromFile SESSecrets) SESSecrets {
	if fromEnv.Region == "" {
		fromEnv.Region = fromFile.Region
	}
	if fromEnv.FromEmail == "" {
		fromEnv.FromEmail = fromFile.FromEmail
	}
	if fromEnv.ToEmail == "" {
		fromEnv.ToEmail = fromFile.ToEmail
	}
	return fromEnv
}
