package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by the
// application, e.g. TODOSUM_LLM_GEMINI_API_KEY or TODOSUM_DATABASE_URL.
const envPrefix = "TODOSUM"

// Load reads configuration from environment variables and optionally a
// config.yaml in the working directory. Environment variables take
// precedence over values from the config file. The resulting Config is
// validated before it is returned, so a missing credential fails startup
// rather than the first request that needs it.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for everything that has a sensible one. Credentials have no
	// default on purpose.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.url", "")
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-1.5-flash")
	v.SetDefault("slack.webhook_url", "")
	v.SetDefault("slack.default_channel", "#general")

	// Optional config file; absence is not an error.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with the TODOSUM_ prefix override everything.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate runs struct validation and translates validator output into a
// startup error listing every invalid setting by its configuration key.
func validate(cfg *Config) error {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" {
			return fld.Name
		}
		return name
	})

	err := v.Struct(cfg)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	problems := make([]string, 0, len(invalid))
	for _, fe := range invalid {
		problems = append(problems, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, ", "))
}
