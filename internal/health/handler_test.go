package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	return db
}

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func allVendors() VendorConfig {
	return VendorConfig{
		OpenAI:     true,
		Twilio:     true,
		AssemblyAI: true,
		Cloudflare: true,
		Stripe:     true,
	}
}

func healthRequest(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHealthRegisterRoutes(t *testing.T) {
	h := NewHandler(nil, nil, nil, VendorConfig{}, "test")
	e := echo.New()
	h.RegisterRoutes(e)

	want := []string{
		"GET /",
		"GET /health",
		"GET /health/ready",
	}
	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("expected route %s to be registered", w)
		}
	}
}

func TestRoot(t *testing.T) {
	h := NewHandler(nil, nil, nil, VendorConfig{}, "test")
	c, rec := healthRequest("/")

	if err := h.Root(c); err != nil {
		t.Fatalf("Root returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
	if resp["message"] != "Case interview practice API" {
		t.Errorf("unexpected message %q", resp["message"])
	}
}

func TestLiveness(t *testing.T) {
	h := NewHandler(nil, nil, nil, VendorConfig{}, "test")
	c, rec := healthRequest("/health")

	if err := h.Liveness(c); err != nil {
		t.Fatalf("Liveness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status ok, got %q", resp["status"])
	}
}

func TestReadinessHealthy(t *testing.T) {
	db := setupTestDB(t)
	rdb, _ := setupTestRedis(t)
	h := NewHandler(db, rdb, nil, allVendors(), "1.0.0")

	h.IncrementRequests()
	h.IncrementRequests()
	h.IncrementConnections()

	c, rec := healthRequest("/health/ready")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != StatusHealthy {
		t.Errorf("expected healthy status, got %q", resp.Status)
	}
	if resp.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", resp.Version)
	}
	if resp.Components["database"].Status != StatusHealthy {
		t.Errorf("expected healthy database, got %+v", resp.Components["database"])
	}
	if resp.Components["redis"].Status != StatusHealthy {
		t.Errorf("expected healthy redis, got %+v", resp.Components["redis"])
	}
	if _, ok := resp.Components["qdrant"]; ok {
		t.Error("expected no qdrant component when unconfigured")
	}
	for _, vendor := range []string{"openai", "twilio", "assemblyai", "cloudflare", "stripe"} {
		if resp.Components[vendor].Status != StatusHealthy {
			t.Errorf("expected healthy %s, got %+v", vendor, resp.Components[vendor])
		}
	}
	if resp.Stats.Requests.TotalRequests != 2 {
		t.Errorf("expected 2 total requests, got %d", resp.Stats.Requests.TotalRequests)
	}
	if resp.Stats.Requests.ActiveConnections != 1 {
		t.Errorf("expected 1 active connection, got %d", resp.Stats.Requests.ActiveConnections)
	}
	if resp.Stats.Runtime.Goroutines == 0 {
		t.Error("expected goroutine count in runtime stats")
	}
}

func TestReadinessDegradedVendors(t *testing.T) {
	db := setupTestDB(t)
	rdb, _ := setupTestRedis(t)
	h := NewHandler(db, rdb, nil, VendorConfig{}, "test")

	c, rec := healthRequest("/health/ready")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for degraded service, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != StatusDegraded {
		t.Errorf("expected degraded status, got %q", resp.Status)
	}
	if resp.Components["openai"].Status != StatusDegraded {
		t.Errorf("expected degraded openai, got %+v", resp.Components["openai"])
	}
	if resp.Components["openai"].Error != "not configured" {
		t.Errorf("unexpected openai error %q", resp.Components["openai"].Error)
	}
}

func TestReadinessRedisDown(t *testing.T) {
	db := setupTestDB(t)
	rdb, mr := setupTestRedis(t)
	mr.Close()

	h := NewHandler(db, rdb, nil, allVendors(), "test")

	c, rec := healthRequest("/health/ready")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 when only redis is down, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != StatusDegraded {
		t.Errorf("expected degraded status, got %q", resp.Status)
	}
	if resp.Components["redis"].Status != StatusUnhealthy {
		t.Errorf("expected unhealthy redis, got %+v", resp.Components["redis"])
	}
}

func TestReadinessDatabaseDown(t *testing.T) {
	rdb, _ := setupTestRedis(t)
	h := NewHandler(nil, rdb, nil, allVendors(), "test")

	c, rec := healthRequest("/health/ready")
	if err := h.Readiness(c); err != nil {
		t.Fatalf("Readiness returned error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503 when database is down, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy status, got %q", resp.Status)
	}
	if resp.Components["database"].Status != StatusUnhealthy {
		t.Errorf("expected unhealthy database, got %+v", resp.Components["database"])
	}
}
