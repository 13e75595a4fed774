// Package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	DatabaseURL string

	RedisAddr       string
	RedisPassword   string
	RedisTLS        bool
	TenantCacheTTL  time.Duration
	BookingWriteTTL time.Duration

	// Telephony gateway (Twilio-compatible) settings.
	TwilioAuthToken string
	GatherTimeout   time.Duration
	SpeechTimeout   string
	DefaultVoice    string
	DefaultLanguage string

	// Completion service settings.
	LLMProvider         string
	GeminiAPIKey        string
	GeminiModelID       string
	BedrockModelID      string
	CompletionTimeout   time.Duration
	CompletionMaxTokens int

	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string

	// Booking notification settings.
	EmailProvider     string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	SESFromEmail      string
	SESFromName       string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:       getEnv("REDIS_ADDR", "redis:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisTLS:        getEnvAsBool("REDIS_TLS", false),
		TenantCacheTTL:  getEnvAsDuration("TENANT_CACHE_TTL", 5*time.Minute),
		BookingWriteTTL: getEnvAsDuration("BOOKING_WRITE_TIMEOUT", 5*time.Second),

		TwilioAuthToken: getEnv("TWILIO_AUTH_TOKEN", ""),
		GatherTimeout:   getEnvAsDuration("GATHER_TIMEOUT", 2*time.Second),
		SpeechTimeout:   getEnv("SPEECH_TIMEOUT", "auto"),
		DefaultVoice:    getEnv("DEFAULT_VOICE", "Polly.Joanna-Neural"),
		DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en-US"),

		LLMProvider:         strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", "auto"))),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:       getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		BedrockModelID:      getEnv("BEDROCK_MODEL_ID", ""),
		CompletionTimeout:   getEnvAsDuration("COMPLETION_TIMEOUT", 10*time.Second),
		CompletionMaxTokens: getEnvAsInt("COMPLETION_MAX_TOKENS", 200),

		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", ""))),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Agent IA"),
		SESFromEmail:      getEnv("SES_FROM_EMAIL", ""),
		SESFromName:       getEnv("SES_FROM_NAME", "Agent IA"),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
