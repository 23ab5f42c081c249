package resumes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-builder-backend/internal/resumes"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := resumes.NewService(resumes.NewMemoryRepo(), "https://resumes.example.com")
	handler := resumes.NewHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	handler.RegisterRoutes(api)
	return r
}

func TestPutThenGetResume(t *testing.T) {
	router := newTestRouter()

	body := `{"resumeData":{"name":"Ada","skills":["Go","AWS"]}}`
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
		PhoneNumber string          `json:"phoneNumber"`
		ResumeData  json.RawMessage `json:"resumeData"`
	}
	if err := json.NewDecoder(respGet.Body).Decode(&got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.PhoneNumber != "5551234567" {
		t.Fatalf("unexpected phoneNumber: %s", got.PhoneNumber)
	}

	var data struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(got.ResumeData, &data); err != nil {
		t.Fatalf("decode resumeData: %v", err)
	}
	if data.Name != "Ada" {
		t.Fatalf("unexpected name: %s", data.Name)
	}
}

func TestPutResumeInvalidPhone(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/123", strings.NewReader(`{"resumeData":{}}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Error.Code != "validation_error" {
		t.Fatalf("expected validation_error, got %q", payload.Error.Code)
	}
}

func TestPutResumeMissingData(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/5551234567", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestCreateResumeLegacyForm(t *testing.T) {
	router := newTestRouter()

	body := `{"mobileNumber":"5559876543","resumeData":{"name":"Grace"},"qrCodeDataUrl":"data:image/png;base64,AAAA"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/5559876543", nil)
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respGet.Code)
	}
}

func TestGetResumeNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/5550000000", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetResumeQRCode(t *testing.T) {
	router := newTestRouter()

	body := `{"resumeData":{"name":"Ada"}}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/resumes/5551234567", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	reqQR := httptest.NewRequest(http.MethodGet, "/api/v1/resumes/5551234567/qr", nil)
	respQR := httptest.NewRecorder()
	router.ServeHTTP(respQR, reqQR)

	if respQR.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", respQR.Code)
	}

	var payload struct {
		QRCodeDataURL string `json:"qrCodeDataUrl"`
	}
	if err := json.NewDecoder(respQR.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(payload.QRCodeDataURL, "data:image/png;base64,") {
		t.Fatalf("expected png data url, got %q", payload.QRCodeDataURL)
	}
}
