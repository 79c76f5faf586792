package config

import (
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// History sources selectable with HISTORY_SOURCE.
const (
	HistorySourcePgsql      = "pgsql"
	HistorySourceBillingAPI = "billing_api"
)

const (
	defaultPort             = "8080"
	defaultJWTSecret        = "a-very-secret-key-should-be-longer-and-random"
	defaultRateLimit        = "100-M"
	defaultBillingAPITimeout = 10 * time.Second
	defaultMigrationsPath   = "file://migrations"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	LogLevel      slog.Level

	JWTSecret string
	JWTIssuer string // empty accepts any issuer

	RateLimit          string // ulule formatted rate, e.g. "100-M"
	CORSAllowedOrigins []string

	HistorySource     string
	BillingAPIBaseURL string
	BillingAPIToken   string
	BillingAPITimeout time.Duration

	MigrationsPath string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("HISTORY_SOURCE", HistorySourcePgsql)
	v.SetDefault("BILLING_API_BASE_URL", "")
	v.SetDefault("BILLING_API_TOKEN", "")
	v.SetDefault("BILLING_API_TIMEOUT", defaultBillingAPITimeout.String())
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:       v.GetString("PGSQL_URL"),
		Port:              v.GetString("PORT"),
		IsProduction:      v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		JWTIssuer:         v.GetString("JWT_ISSUER"),
		RateLimit:         v.GetString("RATE_LIMIT"),
		HistorySource:     strings.ToLower(strings.TrimSpace(v.GetString("HISTORY_SOURCE"))),
		BillingAPIBaseURL: v.GetString("BILLING_API_BASE_URL"),
		BillingAPIToken:   v.GetString("BILLING_API_TOKEN"),
		MigrationsPath:    v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	if cfg.RateLimit == "" {
		cfg.RateLimit = defaultRateLimit
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	switch cfg.HistorySource {
	case HistorySourcePgsql, HistorySourceBillingAPI:
	case "":
		cfg.HistorySource = HistorySourcePgsql
	default:
		log.Printf("Warning: Invalid value for HISTORY_SOURCE ('%s'). Defaulting to %s.\n", cfg.HistorySource, HistorySourcePgsql)
		cfg.HistorySource = HistorySourcePgsql
	}

	timeoutStr := v.GetString("BILLING_API_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		timeout = defaultBillingAPITimeout
		log.Printf("Warning: Invalid value for BILLING_API_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.BillingAPITimeout = timeout

	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	if cfg.DatabaseURL == "" && cfg.HistorySource == HistorySourcePgsql {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.BillingAPIBaseURL == "" && cfg.HistorySource == HistorySourceBillingAPI {
		log.Println("Warning: BILLING_API_BASE_URL not set. The billing api history source will not start.")
	}

	return cfg
}
