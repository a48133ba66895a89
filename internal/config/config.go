package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Auth       AuthConfig
	Log        LogConfig
	LLM        LLMConfig
	Storage    StorageConfig
	Upload     UploadConfig
	CORS       CORSConfig
	Checklists ChecklistsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// AuthConfig holds the shared-password gate and session token settings.
type AuthConfig struct {
	Password      string        `mapstructure:"password"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionTTL    time.Duration `mapstructure:"session_ttl"`
	CookieName    string        `mapstructure:"cookie_name"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LLMConfig holds settings for the text-generation backend.
type LLMConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	BaseURL     string `mapstructure:"base_url"`
	MaxTokens   int    `mapstructure:"max_tokens"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`

	// Fallback is tried when this backend fails. Nil when unset.
	Fallback *LLMConfig `mapstructure:"fallback"`
}

// Timeout returns the per-call timeout, or zero for none.
func (l *LLMConfig) Timeout() time.Duration {
	return time.Duration(l.TimeoutSecs) * time.Second
}

// StorageConfig selects and configures the key/value backend for history and checklists.
type StorageConfig struct {
	Backend string      `mapstructure:"backend"`
	Dir     string      `mapstructure:"dir"`
	S3      S3Config    `mapstructure:"s3"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// UploadConfig limits uploaded documents.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxBytes returns the upload limit in bytes.
func (u *UploadConfig) MaxBytes() int64 {
	return u.MaxFileSizeMB * 1024 * 1024
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ChecklistsConfig points at optional checklist presets.
type ChecklistsConfig struct {
	PresetsFile string `mapstructure:"presets_file"`
}

// Load reads an optional .env file and then configuration from environment
// variables with the PDFCHECK_ prefix.
func Load() (*Config, error) {
	envFile := os.Getenv("PDFCHECK_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetEnvPrefix("PDFCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":9002")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "10m")
	v.SetDefault("server.environment", "development")

	// Auth defaults
	v.SetDefault("auth.password", "")
	v.SetDefault("auth.session_ttl", "168h")
	v.SetDefault("auth.cookie_name", "pdf-auth-token")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// LLM defaults
	v.SetDefault("llm.provider", "ollama")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.max_tokens", 8192)
	v.SetDefault("llm.timeout_secs", 600)
	v.SetDefault("llm.fallback.provider", "")

	// Storage defaults
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.dir", "data")
	v.SetDefault("storage.s3.region", "us-east-1")
	v.SetDefault("storage.s3.bucket", "pdfcheck")
	v.SetDefault("storage.s3.prefix", "pdfcheck/")
	v.SetDefault("storage.s3.endpoint", "")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "pdfcheck:")

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 20)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:9002,http://127.0.0.1:9002")

	v.SetDefault("checklists.presets_file", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":             "PDFCHECK_SERVER_PORT",
		"server.read_timeout":     "PDFCHECK_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "PDFCHECK_SERVER_WRITE_TIMEOUT",
		"server.environment":      "PDFCHECK_SERVER_ENVIRONMENT",
		"auth.password":           "PDFCHECK_AUTH_PASSWORD",
		"auth.session_secret":     "PDFCHECK_AUTH_SESSION_SECRET",
		"auth.session_ttl":        "PDFCHECK_AUTH_SESSION_TTL",
		"auth.cookie_name":        "PDFCHECK_AUTH_COOKIE_NAME",
		"log.level":               "PDFCHECK_LOG_LEVEL",
		"log.format":              "PDFCHECK_LOG_FORMAT",
		"llm.provider":            "PDFCHECK_LLM_PROVIDER",
		"llm.api_key":             "PDFCHECK_LLM_API_KEY",
		"llm.model":               "PDFCHECK_LLM_MODEL",
		"llm.base_url":            "PDFCHECK_LLM_BASE_URL",
		"llm.max_tokens":          "PDFCHECK_LLM_MAX_TOKENS",
		"llm.timeout_secs":        "PDFCHECK_LLM_TIMEOUT_SECS",
		"llm.fallback.provider":   "PDFCHECK_LLM_FALLBACK_PROVIDER",
		"llm.fallback.api_key":    "PDFCHECK_LLM_FALLBACK_API_KEY",
		"llm.fallback.model":      "PDFCHECK_LLM_FALLBACK_MODEL",
		"llm.fallback.base_url":   "PDFCHECK_LLM_FALLBACK_BASE_URL",
		"storage.backend":         "PDFCHECK_STORAGE_BACKEND",
		"storage.dir":             "PDFCHECK_STORAGE_DIR",
		"storage.s3.region":       "PDFCHECK_STORAGE_S3_REGION",
		"storage.s3.bucket":       "PDFCHECK_STORAGE_S3_BUCKET",
		"storage.s3.prefix":       "PDFCHECK_STORAGE_S3_PREFIX",
		"storage.s3.endpoint":     "PDFCHECK_STORAGE_S3_ENDPOINT",
		"storage.s3.access_key":   "PDFCHECK_STORAGE_S3_ACCESS_KEY",
		"storage.s3.secret_key":   "PDFCHECK_STORAGE_S3_SECRET_KEY",
		"storage.redis.addr":      "PDFCHECK_STORAGE_REDIS_ADDR",
		"storage.redis.password":  "PDFCHECK_STORAGE_REDIS_PASSWORD",
		"storage.redis.db":        "PDFCHECK_STORAGE_REDIS_DB",
		"storage.redis.prefix":    "PDFCHECK_STORAGE_REDIS_PREFIX",
		"upload.max_file_size_mb": "PDFCHECK_UPLOAD_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":    "PDFCHECK_CORS_ALLOWED_ORIGINS",
		"checklists.presets_file": "PDFCHECK_CHECKLISTS_PRESETS_FILE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PDFCHECK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PDFCHECK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}

	// APP_PASSWORD is the variable name older deployments use.
	password := v.GetString("auth.password")
	if password == "" {
		password = os.Getenv("APP_PASSWORD")
	}
	cfg.Auth = AuthConfig{
		Password:      password,
		SessionSecret: v.GetString("auth.session_secret"),
		SessionTTL:    v.GetDuration("auth.session_ttl"),
		CookieName:    v.GetString("auth.cookie_name"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	baseURL := v.GetString("llm.base_url")
	if baseURL == "" && v.GetString("llm.provider") == "ollama" {
		baseURL = os.Getenv("OLLAMA_HOST")
	}
	cfg.LLM = LLMConfig{
		Provider:    v.GetString("llm.provider"),
		APIKey:      v.GetString("llm.api_key"),
		Model:       v.GetString("llm.model"),
		BaseURL:     baseURL,
		MaxTokens:   v.GetInt("llm.max_tokens"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
	}
	if fb := v.GetString("llm.fallback.provider"); fb != "" {
		cfg.LLM.Fallback = &LLMConfig{
			Provider:    fb,
			APIKey:      v.GetString("llm.fallback.api_key"),
			Model:       v.GetString("llm.fallback.model"),
			BaseURL:     v.GetString("llm.fallback.base_url"),
			MaxTokens:   cfg.LLM.MaxTokens,
			TimeoutSecs: cfg.LLM.TimeoutSecs,
		}
	}

	cfg.Storage = StorageConfig{
		Backend: v.GetString("storage.backend"),
		Dir:     v.GetString("storage.dir"),
		S3: S3Config{
			Region:    v.GetString("storage.s3.region"),
			Bucket:    v.GetString("storage.s3.bucket"),
			Prefix:    v.GetString("storage.s3.prefix"),
			Endpoint:  v.GetString("storage.s3.endpoint"),
			AccessKey: v.GetString("storage.s3.access_key"),
			SecretKey: v.GetString("storage.s3.secret_key"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("storage.redis.addr"),
			Password: v.GetString("storage.redis.password"),
			DB:       v.GetInt("storage.redis.db"),
			Prefix:   v.GetString("storage.redis.prefix"),
		},
	}

	cfg.Upload = UploadConfig{
		MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb"),
	}

	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	cfg.Checklists = ChecklistsConfig{
		PresetsFile: v.GetString("checklists.presets_file"),
	}

	if cfg.Server.IsProduction() && cfg.Auth.SessionSecret == "" {
		return nil, errors.New("auth.session_secret is required in production")
	}

	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
