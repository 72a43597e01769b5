package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

type HTTPConfig struct {
	Addr string
}

// GenAIConfig holds connection settings for the generative-text collaborator
// used by search and moderation. An empty APIKey is a defined condition:
// the collaborator is disabled and every call degrades to its local fallback.
type GenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type UploadConfig struct {
	TickInterval time.Duration
}

type SessionConfig struct {
	JWTSecret  []byte
	TokenTTL   time.Duration
	LoginDelay time.Duration
}

type AppConfig struct {
	ServiceName string
	LogLevel    string
	HTTP        HTTPConfig
	GenAI       GenAIConfig
	Upload      UploadConfig
	Session     SessionConfig
	NATSURL     string
}

func Load() (AppConfig, error) {
	cfg := AppConfig{
		ServiceName: strings.TrimSpace(os.Getenv("SERVICE_NAME")),
		LogLevel:    strings.TrimSpace(os.Getenv("LOG_LEVEL")),
		HTTP: HTTPConfig{
			Addr: strings.TrimSpace(os.Getenv("HTTP_ADDR")),
		},
		GenAI: GenAIConfig{
			APIKey:  strings.TrimSpace(os.Getenv("GENAI_API_KEY")),
			BaseURL: strings.TrimSpace(os.Getenv("GENAI_BASE_URL")),
			Model:   strings.TrimSpace(os.Getenv("GENAI_MODEL")),
			Timeout: envDuration("GENAI_TIMEOUT", 10*time.Second),
		},
		Upload: UploadConfig{
			TickInterval: envDuration("UPLOAD_TICK_INTERVAL", 200*time.Millisecond),
		},
		Session: SessionConfig{
			JWTSecret:  []byte(strings.TrimSpace(os.Getenv("JWT_SECRET"))),
			TokenTTL:   envDuration("SESSION_TOKEN_TTL", 24*time.Hour),
			LoginDelay: envDuration("LOGIN_DELAY", 1500*time.Millisecond),
		},
		NATSURL: strings.TrimSpace(os.Getenv("NATS_URL")),
	}
	if len(cfg.Session.JWTSecret) == 0 {
		return AppConfig{}, errors.New("JWT_SECRET is required")
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "utg-stodio"
	}
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.GenAI.Model == "" {
		cfg.GenAI.Model = "gpt-4o-mini"
	}
	return cfg, nil
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
