package bootstrap

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServerAddr string
	LogLevel   string

	JWTSecret         []byte
	AccessTokenTTLMin int

	DatabaseDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	QdrantHost   string
	QdrantPort   int
	QdrantAPIKey string

	OpenAIKeys []string

	TwilioAccountSID string
	TwilioAuthToken  string

	AssemblyAIKey string

	CloudflareAccountID string
	CloudflareAPIToken  string
	ImageDeliveryURL    string

	StripeAPIKey        string
	StripeWebhookSecret string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	LiveKitAPIKey    string
	LiveKitAPISecret string
	LiveKitURL       string

	FrontendURL string
	CORSOrigins []string

	CookieSecure bool
	CookieDomain string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddr: getEnv("SERVER_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		JWTSecret:         []byte(getEnv("JWT_SECRET", "")),
		AccessTokenTTLMin: getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 11520),

		DatabaseDSN: getEnv("DATABASE_DSN", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		QdrantHost:   getEnv("QDRANT_HOST", ""),
		QdrantPort:   getEnvInt("QDRANT_PORT", 6334),
		QdrantAPIKey: getEnv("QDRANT_API_KEY", ""),

		OpenAIKeys: parseKeyList(os.Getenv("OPENAI_API_KEYS"), os.Getenv("OPENAI_API_KEY")),

		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),

		AssemblyAIKey: getEnv("ASSEMBLY_AI_API_KEY", ""),

		CloudflareAccountID: getEnv("CLOUDFLARE_ACCOUNT_ID", ""),
		CloudflareAPIToken:  getEnv("CLOUDFLARE_API_KEY", ""),
		ImageDeliveryURL:    getEnv("IMAGE_DELIVERY_URL", ""),

		StripeAPIKey:        getEnv("STRIPE_API_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),

		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),

		LiveKitAPIKey:    getEnv("LIVEKIT_API_KEY", ""),
		LiveKitAPISecret: getEnv("LIVEKIT_API_SECRET", ""),
		LiveKitURL:       getEnv("LIVEKIT_URL", ""),

		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins: parseList(getEnv("CORS_ORIGINS", "*")),

		CookieSecure: getEnv("COOKIE_SECURE", "false") == "true",
		CookieDomain: getEnv("COOKIE_DOMAIN", ""),
	}

	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWT_SECRET is required")
	}
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DATABASE_DSN is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func parseList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseKeyList reads the comma-separated pool first and falls back to the
// single-key variable so either form configures the ring.
func parseKeyList(pool, single string) []string {
	if pool != "" {
		return parseList(pool)
	}
	if single != "" {
		return []string{single}
	}
	return nil
}
