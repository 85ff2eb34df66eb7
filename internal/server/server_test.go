package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanzar/internal/config"
	"lanzar/internal/database"
	"lanzar/internal/server"
	"lanzar/internal/services"
)

type captureSink struct {
	mu   sync.Mutex
	subs []services.Submission
}

func (c *captureSink) Record(_ context.Context, s services.Submission) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, s)
}

func (c *captureSink) submissions() []services.Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]services.Submission(nil), c.subs...)
}

type testEnv struct {
	handler http.Handler
	sink    *captureSink
	faults  []error
}

func setupTestServer(t *testing.T, cfgFn ...func(*config.Config)) *testEnv {
	t.Helper()
	cfg := &config.Config{
		App: config.AppConfig{Name: "Lanzar EOR API", Version: "test", Debug: true, Port: "0"},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         600,
		},
		Contact: config.ContactConfig{MaxBodyBytes: 64 << 10, Sink: config.SinkDiscard},
	}
	for _, fn := range cfgFn {
		fn(cfg)
	}

	db, err := database.Open(config.DatabaseConfig{URL: "sqlite:///:memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, database.Seed(context.Background(), db))

	env := &testEnv{sink: &captureSink{}}
	svcs := server.Services{
		Health:  services.NewHealthService(cfg.App.Name, cfg.App.Version),
		Contact: services.NewContactService(env.sink, cfg.Contact.ProcessingDelay),
		Site:    services.NewSiteService(),
		Catalog: services.NewCatalogService(db),
	}
	env.handler = server.NewHandler(cfg, svcs, func(ctx context.Context, w http.ResponseWriter, err error) {
		env.faults = append(env.faults, err)
	})
	return env
}

func validBody() map[string]any {
	return map[string]any{
		"name":            "Maria Lopez",
		"email":           "maria.lopez@example.es",
		"company":         "Lopez Logistics",
		"companyLocation": "Spain",
		"employeeCount":   "11-25",
		"timeline":        "immediate",
		"subject":         "Hiring our first engineers",
		"message":         "We want to hire three engineers in Bangalore quickly.",
		"inquiryType":     "hiring",
	}
}

func (e *testEnv) do(method, path string, body []byte, headers ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	return w
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestContact_Submit_Success(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(http.MethodPost, "/api/contact", mustJSON(t, validBody()),
		"X-Forwarded-For", "203.0.113.50", "User-Agent", "contact-test")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")

	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, services.SuccessMessage, resp["message"])

	data := resp["data"].(map[string]any)
	assert.Regexp(t, regexp.MustCompile(`^EOR-\d+$`), data["leadId"])
	assert.Equal(t, "high", data["priority"])
	assert.Equal(t, "Sales Team", data["assignedTeam"])
	assert.Equal(t, "hiring", data["inquiryType"])
	assert.Equal(t, "Hiring our first engineers", data["subject"])
	assert.NotEmpty(t, data["submittedAt"])

	subs := env.sink.submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, "203.0.113.50", subs[0].IP)
	assert.Equal(t, "contact-test", subs[0].UserAgent)
	assert.NotEmpty(t, subs[0].RequestID)
	assert.Equal(t, data["leadId"], subs[0].LeadID)
}

func TestContact_Submit_MissingName(t *testing.T) {
	env := setupTestServer(t)
	body := validBody()
	delete(body, "name")

	w := env.do(http.MethodPost, "/api/contact", mustJSON(t, body))

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Validation failed", resp["error"])

	details := resp["details"].([]any)
	require.Len(t, details, 1)
	detail := details[0].(map[string]any)
	assert.Equal(t, "name", detail["field"])
	assert.Contains(t, detail["message"], "Name")

	assert.Empty(t, env.sink.submissions())
	assert.Empty(t, env.faults)
}

func TestContact_Submit_NotAnObject(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(http.MethodPost, "/api/contact", []byte(`["name"]`))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Validation failed", decode(t, w)["error"])
}

func TestContact_Submit_UnparseableBodyIsGenericFault(t *testing.T) {
	tests := map[string][]byte{
		"malformed":     []byte(`{"name": "Maria"`),
		"empty":         nil,
		"trailing text": append(mustJSON(t, validBody()), []byte(" this is not json")...),
		"second value":  append(mustJSON(t, validBody()), []byte(` {}`)...),
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			env := setupTestServer(t)

			w := env.do(http.MethodPost, "/api/contact", body)

			require.Equal(t, http.StatusInternalServerError, w.Code)
			resp := decode(t, w)
			assert.Equal(t, map[string]any{
				"success": false,
				"error":   "Internal server error. Please try again later.",
			}, resp)
			require.Len(t, env.faults, 1)
			assert.Contains(t, env.faults[0].Error(), "failed to decode contact payload")
			assert.Empty(t, env.sink.submissions())
		})
	}
}

func TestContact_Submit_IgnoresContentType(t *testing.T) {
	for _, contentType := range []string{"text/plain", "application/x-www-form-urlencoded", ""} {
		t.Run(contentType, func(t *testing.T) {
			env := setupTestServer(t)

			w := env.do(http.MethodPost, "/api/contact", mustJSON(t, validBody()), "Content-Type", contentType)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, true, decode(t, w)["success"])
			assert.Len(t, env.sink.submissions(), 1)
		})
	}
}

func TestContact_Submit_OversizedBody(t *testing.T) {
	env := setupTestServer(t, func(cfg *config.Config) { cfg.Contact.MaxBodyBytes = 32 })

	w := env.do(http.MethodPost, "/api/contact", mustJSON(t, validBody()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "too large")
}

func TestContact_MethodNotAllowed(t *testing.T) {
	env := setupTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			w := env.do(method, "/api/contact", []byte(`{not even json`))

			assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
			assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
		})
	}
	assert.Empty(t, env.sink.submissions())
}

func TestCORS_Preflight(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(http.MethodOptions, "/api/contact", nil,
		"Origin", "https://lanzar.in", "Access-Control-Request-Method", "POST")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://lanzar.in", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORS_PreflightForUnsupportedMethod(t *testing.T) {
	env := setupTestServer(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		w := env.do(http.MethodOptions, "/api/contact", nil,
			"Origin", "https://lanzar.in", "Access-Control-Request-Method", method)

		assert.Equal(t, http.StatusForbidden, w.Code, method)
	}
}

func TestCORS_RejectsUnknownOriginInProduction(t *testing.T) {
	env := setupTestServer(t, func(cfg *config.Config) {
		cfg.App.Debug = false
		cfg.CORS.AllowedOrigins = []string{"https://lanzar.in"}
	})

	w := env.do(http.MethodPost, "/api/contact", mustJSON(t, validBody()), "Origin", "https://evil.example")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, env.sink.submissions())
}

func TestSecurityHeaders(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(http.MethodGet, "/health", nil)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestHealth(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "Lanzar EOR API", resp["service"])
}

func TestSite_InquiryOptions(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(http.MethodGet, "/api/contact/options", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Len(t, resp["employeeCount"], 5)
	assert.Len(t, resp["timeline"], 5)
	inquiryTypes := resp["inquiryType"].([]any)
	require.Len(t, inquiryTypes, 4)
	assert.Equal(t, "hiring", inquiryTypes[0].(map[string]any)["value"])
}

func TestSite_ContactInfo(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(http.MethodGet, "/api/contact/info", nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "contact@lanzar.in", resp["email"])
	assert.Equal(t, "India", resp["address"].(map[string]any)["country"])
}

func TestMetricsEndpoint(t *testing.T) {
	env := setupTestServer(t)
	env.do(http.MethodPost, "/api/contact", mustJSON(t, validBody()))

	w := env.do(http.MethodGet, "/metrics", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "contact_submissions_total"))
}
