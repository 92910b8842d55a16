package bootstrap

import (
	"strings"
	"testing"
)

// clearConfigEnv blanks every variable LoadConfig reads so values from the
// test runner's environment cannot leak into assertions.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "LOG_LEVEL",
		"JWT_SECRET", "ACCESS_TOKEN_TTL_MINUTES",
		"DATABASE_DSN",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
		"QDRANT_HOST", "QDRANT_PORT", "QDRANT_API_KEY",
		"OPENAI_API_KEYS", "OPENAI_API_KEY",
		"TWILIO_ACCOUNT_SID", "TWILIO_AUTH_TOKEN",
		"ASSEMBLY_AI_API_KEY",
		"CLOUDFLARE_ACCOUNT_ID", "CLOUDFLARE_API_KEY", "IMAGE_DELIVERY_URL",
		"STRIPE_API_KEY", "STRIPE_WEBHOOK_SECRET",
		"GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_SECRET", "GOOGLE_REDIRECT_URL",
		"LIVEKIT_API_KEY", "LIVEKIT_API_SECRET", "LIVEKIT_URL",
		"FRONTEND_URL", "CORS_ORIGINS",
		"COOKIE_SECURE", "COOKIE_DOMAIN",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DSN", "host=localhost user=app dbname=app")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.AccessTokenTTLMin != 11520 {
		t.Errorf("AccessTokenTTLMin = %d, want 11520", cfg.AccessTokenTTLMin)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q, want localhost:6379", cfg.RedisAddr)
	}
	if cfg.QdrantPort != 6334 {
		t.Errorf("QdrantPort = %d, want 6334", cfg.QdrantPort)
	}
	if cfg.FrontendURL != "http://localhost:3000" {
		t.Errorf("FrontendURL = %q, want http://localhost:3000", cfg.FrontendURL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.CORSOrigins)
	}
	if cfg.CookieSecure {
		t.Error("CookieSecure = true, want false")
	}
	if cfg.OpenAIKeys != nil {
		t.Errorf("OpenAIKeys = %v, want nil", cfg.OpenAIKeys)
	}
}

func TestLoadConfigRequiredVars(t *testing.T) {
	clearConfigEnv(t)

	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("missing JWT_SECRET: err = %v, want JWT_SECRET error", err)
	}

	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := LoadConfig(); err == nil || !strings.Contains(err.Error(), "DATABASE_DSN") {
		t.Errorf("missing DATABASE_DSN: err = %v, want DATABASE_DSN error", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DSN", "host=localhost user=app dbname=app")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "60")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://staging.example.com")
	t.Setenv("OPENAI_API_KEY", "sk-single")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.AccessTokenTTLMin != 60 {
		t.Errorf("AccessTokenTTLMin = %d, want 60", cfg.AccessTokenTTLMin)
	}
	if !cfg.CookieSecure {
		t.Error("CookieSecure = false, want true")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://app.example.com" {
		t.Errorf("CORSOrigins = %v, want two trimmed origins", cfg.CORSOrigins)
	}
	if len(cfg.OpenAIKeys) != 1 || cfg.OpenAIKeys[0] != "sk-single" {
		t.Errorf("OpenAIKeys = %v, want [sk-single]", cfg.OpenAIKeys)
	}
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DSN", "host=localhost user=app dbname=app")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "eight-days")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AccessTokenTTLMin != 11520 {
		t.Errorf("AccessTokenTTLMin = %d, want default 11520", cfg.AccessTokenTTLMin)
	}
}

func TestParseList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace only", " , ", nil},
		{"trims entries", "a, b ,c", []string{"a", "b", "c"}},
		{"single", "https://app.example.com", []string{"https://app.example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseList(tt.value)
			if len(got) != len(tt.want) {
				t.Fatalf("parseList(%q) = %v, want %v", tt.value, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseList(%q)[%d] = %q, want %q", tt.value, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseKeyList(t *testing.T) {
	tests := []struct {
		name   string
		pool   string
		single string
		want   []string
	}{
		{"pool wins", "sk-1,sk-2", "sk-3", []string{"sk-1", "sk-2"}},
		{"single fallback", "", "sk-3", []string{"sk-3"}},
		{"neither", "", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseKeyList(tt.pool, tt.single)
			if len(got) != len(tt.want) {
				t.Fatalf("parseKeyList(%q, %q) = %v, want %v", tt.pool, tt.single, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("parseKeyList(%q, %q)[%d] = %q, want %q", tt.pool, tt.single, i, got[i], tt.want[i])
				}
			}
		})
	}
}
