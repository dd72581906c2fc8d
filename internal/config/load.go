package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key when read from the
// environment, e.g. QUIZAPI_SERVER_PORT.
const EnvPrefix = "QUIZAPI"

// configFileEnv names an explicit config file path.
const configFileEnv = "QUIZAPI_CONFIG_FILE"

// Load reads configuration from defaults, an optional config.yaml and the
// environment, in increasing order of precedence, then validates it.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path := os.Getenv(configFileEnv); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnvironment(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks struct tags on a loaded or hand-built Config.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 90)
	v.SetDefault("server.max_upload_bytes", 10<<20)

	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 1)

	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("llm.backend", "rest")
	v.SetDefault("llm.model_name", "gemini-pro")
	v.SetDefault("llm.max_output_tokens", 2048)
	v.SetDefault("llm.temperature", 0.4)
	v.SetDefault("llm.top_p", 1.0)
	v.SetDefault("llm.top_k", 32)
	v.SetDefault("llm.request_timeout_seconds", 60)
}

// bindEnvironment makes every key visible to Unmarshal even when it has
// no default, and accepts the unprefixed deployment variables used by the
// model endpoint tooling.
func bindEnvironment(v *viper.Viper) error {
	keys := []string{
		"server.port", "server.log_level", "server.read_timeout_seconds",
		"server.write_timeout_seconds", "server.max_upload_bytes",
		"database.url", "database.max_conns", "database.min_conns",
		"auth.jwt_secret", "auth.token_lifetime_minutes", "auth.bcrypt_cost",
		"llm.backend", "llm.model_name", "llm.max_output_tokens", "llm.temperature",
		"llm.top_p", "llm.top_k", "llm.request_timeout_seconds",
	}
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	deployment := map[string]string{
		"llm.api_endpoint": "API_ENDPOINT",
		"llm.project_id":   "PROJECT_ID",
		"llm.location_id":  "LOCATION_ID",
	}
	for key, legacy := range deployment {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return fmt.Errorf("error binding %s: %w", key, err)
		}
	}
	return nil
}
