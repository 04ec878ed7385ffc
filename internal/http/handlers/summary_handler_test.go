// README: Handler tests for trip summary generation and health.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"tripsummary/internal/ai"
	"tripsummary/internal/http/handlers"
	"tripsummary/internal/service"
)

// stubGenerator is a test double for ai.Generator.
type stubGenerator struct {
	reply string
	err   error
	calls int
	last  ai.Request
}

func (s *stubGenerator) Generate(_ context.Context, req ai.Request) (string, error) {
	s.calls++
	s.last = req
	return s.reply, s.err
}

func buildTestRouter(gen ai.Generator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewSummaryHandler(service.NewSummarizer(gen, 0))
	r := gin.New()
	r.POST("/api/generate-summary", h.Generate)
	r.GET("/health", handlers.Health)
	return r
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return out
}

func assertExactError(t *testing.T, w *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d (%s)", status, w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	if len(body) != 1 || body["error"] != msg {
		t.Errorf("expected {\"error\": %q}, got %v", msg, body)
	}
}

func TestGenerate_MissingBody(t *testing.T) {
	gen := &stubGenerator{}
	for _, body := range []string{"", "null", "{}", "  ", "[]", `""`, "false"} {
		w := doRequest(buildTestRouter(gen), http.MethodPost, "/api/generate-summary", body)
		assertExactError(t, w, http.StatusBadRequest, "Request body is required")
	}
	if gen.calls != 0 {
		t.Errorf("generator must not be called, got %d calls", gen.calls)
	}
}

func TestGenerate_MissingTrip(t *testing.T) {
	gen := &stubGenerator{}
	for _, body := range []string{`{"model": "x"}`, `{"trip": null}`, `{"trip": {}}`, `{"trip": []}`, `{"trip": ""}`, `{"trip": false}`} {
		w := doRequest(buildTestRouter(gen), http.MethodPost, "/api/generate-summary", body)
		assertExactError(t, w, http.StatusBadRequest, "Trip data is required")
	}
	if gen.calls != 0 {
		t.Errorf("generator must not be called, got %d calls", gen.calls)
	}
}

func TestGenerate_ExternalFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("anthropic: create message: 529 overloaded")}
	w := doRequest(buildTestRouter(gen), http.MethodPost, "/api/generate-summary", `{"trip": {"trip_title": "Rome"}}`)

	assertExactError(t, w, http.StatusInternalServerError, "anthropic: create message: 529 overloaded")
	if gen.calls != 1 {
		t.Errorf("expected exactly one generator call, got %d", gen.calls)
	}
}

func TestGenerate_MalformedJSON(t *testing.T) {
	gen := &stubGenerator{}
	w := doRequest(buildTestRouter(gen), http.MethodPost, "/api/generate-summary", `{"trip": `)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if msg, _ := decodeBody(t, w)["error"].(string); msg == "" {
		t.Errorf("expected an error message")
	}
	if gen.calls != 0 {
		t.Errorf("generator must not be called")
	}
}

func TestGenerate_InvalidTripShape(t *testing.T) {
	gen := &stubGenerator{}
	w := doRequest(buildTestRouter(gen), http.MethodPost, "/api/generate-summary", `{"trip": {"events": "tomorrow"}}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if gen.calls != 0 {
		t.Errorf("generator must not be called")
	}
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{reply: "\n  You start the morning at the Colosseum.  \n"}
	body := `{"trip": {
		"trip_title": "Rome",
		"user_id": 3,
		"events": [{"event_title": "Colosseum", "event_duration": {"startDate": "2025-05-01"}}]
	}}`
	w := doRequest(buildTestRouter(gen), http.MethodPost, "/api/generate-summary", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["summary"] != "You start the morning at the Colosseum." {
		t.Errorf("summary = %v", resp["summary"])
	}
	if resp["model"] != service.DefaultModel {
		t.Errorf("model = %v", resp["model"])
	}
	if gen.last.MaxTokens != service.DefaultMaxTokens || gen.last.Temperature != service.DefaultTemperature {
		t.Errorf("defaults not applied: %+v", gen.last)
	}
	if !strings.Contains(gen.last.Prompt, "Colosseum") || !strings.Contains(gen.last.Prompt, "Owner: User 3") {
		t.Errorf("prompt missing trip data:\n%s", gen.last.Prompt)
	}
}

func TestGenerate_ParamOverrides(t *testing.T) {
	gen := &stubGenerator{reply: "ok"}
	body := `{"trip": {"name": "Oslo"}, "model": "claude-3-5-sonnet-latest", "max_tokens": 500, "temperature": 0.3}`
	w := doRequest(buildTestRouter(gen), http.MethodPost, "/api/generate-summary", body)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decodeBody(t, w)["model"]; got != "claude-3-5-sonnet-latest" {
		t.Errorf("model = %v", got)
	}
	if gen.last.Model != "claude-3-5-sonnet-latest" || gen.last.MaxTokens != 500 || gen.last.Temperature != 0.3 {
		t.Errorf("overrides not forwarded: %+v", gen.last)
	}
}

func TestHealth_AlwaysHealthy(t *testing.T) {
	r := buildTestRouter(&stubGenerator{err: errors.New("down")})
	doRequest(r, http.MethodPost, "/api/generate-summary", `{"trip": {"name": "x"}}`)
	doRequest(r, http.MethodPost, "/api/generate-summary", "")

	w := doRequest(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if len(body) != 1 || body["status"] != "healthy" {
		t.Errorf("unexpected body %v", body)
	}
}
