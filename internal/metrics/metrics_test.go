package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordContactSubmission(t *testing.T) {
	before := testutil.ToFloat64(contactSubmissionsTotal.WithLabelValues("hiring", "high"))
	RecordContactSubmission("hiring", "high")
	assert.Equal(t, before+1, testutil.ToFloat64(contactSubmissionsTotal.WithLabelValues("hiring", "high")))
}

func TestRecordValidationFailure_EmptyFieldIsBody(t *testing.T) {
	before := testutil.ToFloat64(contactValidationFailuresTotal.WithLabelValues("body"))
	RecordValidationFailure("")
	assert.Equal(t, before+1, testutil.ToFloat64(contactValidationFailuresTotal.WithLabelValues("body")))
}

func TestPrometheusMiddleware_RecordsStatus(t *testing.T) {
	handler := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write([]byte(`{"error":"Method not allowed"}`))
	}), nil)

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/contact", "405"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/contact", "405")))
}

func TestPrometheusMiddleware_UsesLabel(t *testing.T) {
	handler := PrometheusMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}), func(r *http.Request) string { return "/api/products/{id}" })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/products/{id}", "404"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/unknown", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/products/{id}", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/products/unknown", "404")))
}
