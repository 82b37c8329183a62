package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Session  SessionConfig  `mapstructure:"session" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Document DocumentConfig `mapstructure:"document" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigins lists the origins the single-page front end is served from.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}

// SessionConfig controls how long an idle study session is kept in memory.
type SessionConfig struct {
	TTLMinutes int `mapstructure:"ttl_minutes" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	GeminiAPIKey string  `mapstructure:"gemini_api_key" validate:"required"`
	ModelName    string  `mapstructure:"model_name" validate:"required"`
	Temperature  float64 `mapstructure:"temperature" validate:"gte=0,lte=2"`
}

// DocumentConfig bounds uploaded documents and the text embedded into prompts.
type DocumentConfig struct {
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"required,gt=0"`
	MaxPromptChars int   `mapstructure:"max_prompt_chars" validate:"required,gt=0"`
}
