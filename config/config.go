// Package config loads neoxbridge settings from defaults, an optional YAML
// file, an optional .env file, the process environment and command-line
// flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// ErrIncomplete indicates a required setting is missing.
	ErrIncomplete = errors.New("config: incomplete")

	// ErrInvalid indicates a setting has an unusable value.
	ErrInvalid = errors.New("config: invalid")
)

// Supported LLM providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Config is the full runtime configuration.
type Config struct {
	LLM      LLM
	Neo      Neo
	Security Security
	Transfer Transfer
	Price    Price
	Log      Log
}

// LLM selects and tunes the language model provider.
type LLM struct {
	Provider    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
}

// Neo configures the blockchain explorer and the optional wallet.
type Neo struct {
	Network    string
	RPCURL     string
	Timeout    time.Duration
	PrivateKey string
}

// Security configures the GoPlus Labs checker.
type Security struct {
	Enabled bool
	AppKey  string
	BaseURL string
	Timeout time.Duration
}

// Transfer holds the send safeguards.
type Transfer struct {
	RequireConfirmation bool
	MaxAmount           float64
	ConfirmTTL          time.Duration
	Demo                bool
}

// Price configures the price source and alert book.
type Price struct {
	BaseURL   string
	CacheTTL  time.Duration
	MaxAlerts int
	AlertTTL  time.Duration
}

// Log configures the process logger. An empty File means stderr.
type Log struct {
	Level string
	File  string
}

// Sources names the optional layers read by [Load].
type Sources struct {
	// File is a YAML config file. Empty skips it.
	File string
	// EnvFile is a dotenv file. A missing file is not an error.
	EnvFile string
	// Flags are bound by name: "log-level" overrides LOG_LEVEL.
	Flags *pflag.FlagSet
}

var defaults = map[string]any{
	"llm_provider":           ProviderOpenAI,
	"openai_max_tokens":      2000,
	"openai_temperature":     0.7,
	"neo_network":            "testnet",
	"neo_timeout":            "30s",
	"go_plus_labs_base_url":  "https://api.gopluslabs.io",
	"go_plus_labs_timeout":   "10s",
	"enable_security_checks": true,
	"require_confirmation":   true,
	"max_transfer_amount":    1000.0,
	"confirm_ttl":            "5m",
	"demo_mode":              true,
	"coingecko_base_url":     "https://api.coingecko.com/api/v3",
	"price_cache_ttl":        "60s",
	"max_price_alerts":       20,
	"price_alert_ttl":        "24h",
	"log_level":              "info",
}

// keys lists every setting, including those without a default, so the
// environment is consulted for all of them.
var keys = []string{
	"llm_provider", "llm_model", "openai_model", "openai_max_tokens", "openai_temperature",
	"openai_api_key", "anthropic_api_key", "gemini_api_key",
	"neo_network", "neo_rpc_url", "neo_timeout", "neo_private_key",
	"go_plus_labs_app_key", "go_plus_labs_base_url", "go_plus_labs_timeout",
	"enable_security_checks", "require_confirmation", "max_transfer_amount", "confirm_ttl", "demo_mode",
	"coingecko_base_url", "price_cache_ttl", "max_price_alerts", "price_alert_ttl",
	"log_level", "log_file",
}

// Load reads the configuration and validates it.
func Load(src Sources) (*Config, error) {
	v := viper.New()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	if src.File != "" {
		v.SetConfigFile(src.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", src.File, err)
		}
	}
	if src.EnvFile != "" {
		env, err := godotenv.Read(src.EnvFile)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", src.EnvFile, err)
		default:
			layer := make(map[string]any, len(env))
			for k, val := range env {
				layer[strings.ToLower(k)] = val
			}
			if err := v.MergeConfigMap(layer); err != nil {
				return nil, fmt.Errorf("config: merge %s: %w", src.EnvFile, err)
			}
		}
	}
	for _, k := range keys {
		if err := v.BindEnv(k, strings.ToUpper(k)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", k, err)
		}
	}
	if src.Flags != nil {
		var bindErr error
		src.Flags.VisitAll(func(f *pflag.Flag) {
			if bindErr == nil {
				bindErr = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("config: bind flags: %w", bindErr)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var errs []error
	dur := func(key string) time.Duration {
		d, err := parseDuration(v.GetString(key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalid, strings.ToUpper(key), err))
		}
		return d
	}

	provider := strings.ToLower(strings.TrimSpace(v.GetString("llm_provider")))
	model := v.GetString("llm_model")
	if model == "" && provider == ProviderOpenAI {
		model = v.GetString("openai_model")
	}
	network := strings.ToLower(strings.TrimSpace(v.GetString("neo_network")))

	cfg := &Config{
		LLM: LLM{
			Provider:    provider,
			APIKey:      v.GetString(provider + "_api_key"),
			Model:       model,
			MaxTokens:   v.GetInt("openai_max_tokens"),
			Temperature: v.GetFloat64("openai_temperature"),
		},
		Neo: Neo{
			Network:    network,
			RPCURL:     v.GetString("neo_rpc_url"),
			Timeout:    dur("neo_timeout"),
			PrivateKey: v.GetString("neo_private_key"),
		},
		Security: Security{
			Enabled: v.GetBool("enable_security_checks"),
			AppKey:  v.GetString("go_plus_labs_app_key"),
			BaseURL: v.GetString("go_plus_labs_base_url"),
			Timeout: dur("go_plus_labs_timeout"),
		},
		Transfer: Transfer{
			RequireConfirmation: v.GetBool("require_confirmation"),
			MaxAmount:           v.GetFloat64("max_transfer_amount"),
			ConfirmTTL:          dur("confirm_ttl"),
			Demo:                v.GetBool("demo_mode"),
		},
		Price: Price{
			BaseURL:   v.GetString("coingecko_base_url"),
			CacheTTL:  dur("price_cache_ttl"),
			MaxAlerts: v.GetInt("max_price_alerts"),
			AlertTTL:  dur("price_alert_ttl"),
		},
		Log: Log{
			Level: strings.ToLower(v.GetString("log_level")),
			File:  v.GetString("log_file"),
		},
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseDuration accepts Go duration syntax or a bare number of seconds.
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if secs, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(secs * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderGemini:
	default:
		return fmt.Errorf("%w: LLM_PROVIDER %q is not one of openai, anthropic, gemini", ErrInvalid, c.LLM.Provider)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("%w: %s_API_KEY is required for provider %s", ErrIncomplete, strings.ToUpper(c.LLM.Provider), c.LLM.Provider)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("%w: OPENAI_TEMPERATURE must be between 0 and 2, got %v", ErrInvalid, c.LLM.Temperature)
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("%w: OPENAI_MAX_TOKENS must be positive", ErrInvalid)
	}
	if c.Neo.Network != "mainnet" && c.Neo.Network != "testnet" {
		return fmt.Errorf("%w: NEO_NETWORK %q is not mainnet or testnet", ErrInvalid, c.Neo.Network)
	}
	if c.Transfer.MaxAmount <= 0 {
		return fmt.Errorf("%w: MAX_TRANSFER_AMOUNT must be positive", ErrInvalid)
	}
	if c.Price.MaxAlerts <= 0 {
		return fmt.Errorf("%w: MAX_PRICE_ALERTS must be positive", ErrInvalid)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: LOG_LEVEL %q is not one of debug, info, warn, error", ErrInvalid, c.Log.Level)
	}
	return nil
}
