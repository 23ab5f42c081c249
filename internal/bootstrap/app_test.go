package bootstrap_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/bootstrap"
	"resume-builder-backend/internal/shared/config"
)

func buildTestApp(t *testing.T) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		ResumeStoreType: "file",
		ResumeDir:       t.TempDir(),
		PublicBaseURL:   "http://localhost:8080",
		Env:             "dev",
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func TestBuildWiresFileStoreRoundtrip(t *testing.T) {
	app := buildTestApp(t)
	router := app.Router

	body := `{"resumeData":{"name":"Ada","projects":[{"title":"Payments Platform"}]}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/5551234567", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/5551234567", nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}

	var got struct {
		PhoneNumber string `json:"phoneNumber"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.PhoneNumber != "5551234567" {
		t.Fatalf("unexpected phoneNumber: %s", got.PhoneNumber)
	}
}

func TestBuildHealthEndpoint(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var payload struct {
		OK    bool   `json:"ok"`
		Store string `json:"store"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.OK {
		t.Fatalf("expected ok=true")
	}
	if payload.Store != "file" {
		t.Fatalf("expected store=file, got %q", payload.Store)
	}
}

func TestBuildPostgresWithoutURLFallsBackInDev(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		ResumeStoreType: "postgres",
		Env:             "dev",
	}
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}

	body := `{"resumeData":{"name":"Grace"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/5559876543", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected memory fallback to serve writes, got %d", resp.Code)
	}
}

func TestBuildPostgresWithoutURLFailsInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		ResumeStoreType: "postgres",
		Env:             "production",
	}
	if _, err := bootstrap.Build(cfg); err == nil {
		t.Fatalf("expected error for missing DATABASE_URL in production")
	}
}

func TestBuildSummariesEndToEnd(t *testing.T) {
	app := buildTestApp(t)

	body := `{
		"overallYears": 6,
		"projects": [{
			"title": "Payments Platform",
			"description": "Developed a payments platform and led a team of engineers through delivery.",
			"programmingLanguages": "Python, Go",
			"cloudPlatform": "AWS"
		}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/summaries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var payload struct {
		Summary struct {
			Narrative string `json:"narrative"`
		} `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Summary.Narrative == "" {
		t.Fatalf("expected a narrative")
	}
}
