package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg := fromViper(viper.New())

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, HistorySourcePgsql, cfg.HistorySource)
	assert.Equal(t, 10*time.Second, cfg.BillingAPITimeout)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("HISTORY_SOURCE", " Billing_API ")
	v.Set("BILLING_API_BASE_URL", "https://billing.example.com/v1")
	v.Set("BILLING_API_TIMEOUT", "3s")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,,")
	v.Set("LOG_LEVEL", "debug")
	v.Set("IS_PRODUCTION", "true")

	cfg := fromViper(v)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, HistorySourceBillingAPI, cfg.HistorySource)
	assert.Equal(t, 3*time.Second, cfg.BillingAPITimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.IsProduction)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	v.Set("HISTORY_SOURCE", "mongodb")
	v.Set("BILLING_API_TIMEOUT", "soon")
	v.Set("LOG_LEVEL", "chatty")

	cfg := fromViper(v)

	assert.Equal(t, HistorySourcePgsql, cfg.HistorySource)
	assert.Equal(t, 10*time.Second, cfg.BillingAPITimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
