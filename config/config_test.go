package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Analytics.TopN)
	assert.Equal(t, 7, cfg.Analytics.RecentActivity)
	assert.Equal(t, 24*time.Hour, cfg.Analytics.ReportCacheTTL)
	assert.Equal(t, time.UTC, cfg.Analytics.Location())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ANALYTICS_TOP_N", "10")
	t.Setenv("ANALYTICS_TIMEZONE", "Africa/Lagos")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("EMAIL_WORKER_ENABLED", "false")
	t.Setenv("SERVER_PORT", "not-a-number")

	cfg := Load()

	assert.Equal(t, 10, cfg.Analytics.TopN)
	assert.Equal(t, "Africa/Lagos", cfg.Analytics.Location().String())
	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.False(t, cfg.Email.WorkerEnabled)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestAnalyticsConfig_UnknownTimezone(t *testing.T) {
	cfg := AnalyticsConfig{Timezone: "Mars/Olympus"}
	assert.Equal(t, time.UTC, cfg.Location())
}
