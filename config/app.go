package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type ServerConfig struct {
	Port    string
	GinMode string
	// Per-user admission control on /api/ai. Zero disables it.
	RateLimitPerMinute int
	RateLimitBurst     int
	// Bucket for archiving uploaded resume files. Empty disables archiving.
	GCSBucket string
}

type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

type AIConfig struct {
	Provider string // openai | gemini | vertex
	Model    string
	Timeout  time.Duration
	CacheTTL time.Duration

	OpenAIKey     string
	OpenAIBaseURL string

	GeminiKey string

	VertexProject  string
	VertexLocation string
}

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderVertex = "vertex"
)

func LoadServer() ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return ServerConfig{
		Port:               port,
		GinMode:            os.Getenv("GIN_MODE"),
		RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", 0),
		RateLimitBurst:     envInt("RATE_LIMIT_BURST", 5),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
	}
}

func LoadAuth() AuthConfig {
	return AuthConfig{
		Secret:   os.Getenv("JWT_SECRET"),
		Issuer:   os.Getenv("JWT_ISSUER"),
		Audience: os.Getenv("JWT_AUDIENCE"),
		TokenTTL: envDuration("JWT_TTL", 7*24*time.Hour),
	}
}

func LoadAI() AIConfig {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("AI_PROVIDER")))
	if provider == "" {
		provider = ProviderOpenAI
	}

	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = os.Getenv("OPENAI_MODEL")
	}

	location := os.Getenv("VERTEX_LOCATION")
	if location == "" {
		location = "us-central1"
	}

	return AIConfig{
		Provider:       provider,
		Model:          model,
		Timeout:        envDuration("AI_TIMEOUT", 2*time.Minute),
		CacheTTL:       envDuration("AI_CACHE_TTL", 0),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:  os.Getenv("OPENAI_BASE_URL"),
		GeminiKey:      os.Getenv("GEMINI_API_KEY"),
		VertexProject:  os.Getenv("VERTEX_PROJECT"),
		VertexLocation: location,
	}
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// envDuration accepts Go durations ("90s") or plain seconds ("90").
func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
