package config

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm"      validate:"required"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                int    `mapstructure:"port"                  validate:"required,gt=0,lt=65536"`
	LogLevel            string `mapstructure:"log_level"             validate:"required,oneof=debug info warn error"`
	ReadTimeoutSeconds  int    `mapstructure:"read_timeout_seconds"  validate:"gte=0"`
	WriteTimeoutSeconds int    `mapstructure:"write_timeout_seconds" validate:"gte=0"`
	// MaxUploadBytes caps multipart bodies on the generate endpoints.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"gt=0"`
}

// DatabaseConfig contains the owner store connection settings.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"       validate:"required"`
	MaxConns int32  `mapstructure:"max_conns" validate:"gte=1"`
	MinConns int32  `mapstructure:"min_conns" validate:"gte=0,ltefield=MaxConns"`
}

// AuthConfig contains password hashing and token settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret"             validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0,lte=44640"`
	BCryptCost           int    `mapstructure:"bcrypt_cost"            validate:"gte=4,lte=31"`
}

// LLMConfig describes the generative model deployment. APIEndpoint,
// ProjectID and LocationID have no defaults; a deployment that does not
// provide them fails at startup.
type LLMConfig struct {
	Backend               string  `mapstructure:"backend"                 validate:"required,oneof=rest genai"`
	APIEndpoint           string  `mapstructure:"api_endpoint"            validate:"required"`
	ProjectID             string  `mapstructure:"project_id"              validate:"required"`
	LocationID            string  `mapstructure:"location_id"             validate:"required"`
	ModelName             string  `mapstructure:"model_name"              validate:"required"`
	MaxOutputTokens       int32   `mapstructure:"max_output_tokens"       validate:"gt=0"`
	Temperature           float32 `mapstructure:"temperature"             validate:"gte=0,lte=2"`
	TopP                  float32 `mapstructure:"top_p"                   validate:"gte=0,lte=1"`
	TopK                  float32 `mapstructure:"top_k"                   validate:"gte=1"`
	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" validate:"gt=0"`
}
