package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// External credentials live here and are validated eagerly at startup,
// never read lazily from the process environment at call time.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
	Slack    SlackConfig    `mapstructure:"slack"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// An empty URL selects the in-memory task store instead of PostgreSQL.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

// LLMConfig contains all settings for the text-generation integration.
type LLMConfig struct {
	GeminiAPIKey string `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
}

// SlackConfig contains all settings for the Slack notification channel.
type SlackConfig struct {
	WebhookURL     string `mapstructure:"webhook_url"     validate:"required,url"`
	DefaultChannel string `mapstructure:"default_channel" validate:"required"`
}
