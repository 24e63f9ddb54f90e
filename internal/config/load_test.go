package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setRequiredEnv puts the minimum viable configuration into the environment.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TODOSUM_LLM_GEMINI_API_KEY", "test-api-key")
	t.Setenv("TODOSUM_SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/X")
}

func TestLoadAppliesDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "", cfg.Database.URL)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.ModelName)
	assert.Equal(t, "#general", cfg.Slack.DefaultChannel)
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TODOSUM_SERVER_PORT", "9090")
	t.Setenv("TODOSUM_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TODOSUM_DATABASE_URL", "postgres://localhost:5432/todosum")
	t.Setenv("TODOSUM_LLM_MODEL_NAME", "gemini-2.0-flash")
	t.Setenv("TODOSUM_SLACK_DEFAULT_CHANNEL", "#reports")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://localhost:5432/todosum", cfg.Database.URL)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.Equal(t, "#reports", cfg.Slack.DefaultChannel)
}

func TestLoadFailsWithoutGeminiAPIKey(t *testing.T) {
	t.Setenv("TODOSUM_SLACK_WEBHOOK_URL", "https://hooks.slack.com/services/T/B/X")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gemini_api_key")
}

func TestLoadFailsWithoutSlackWebhook(t *testing.T) {
	t.Setenv("TODOSUM_LLM_GEMINI_API_KEY", "test-api-key")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "webhook_url")
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TODOSUM_SERVER_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}
