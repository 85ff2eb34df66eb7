package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lanzar/internal/config"
	"lanzar/internal/domain"
	"lanzar/internal/server"
	"lanzar/internal/services"
	apperrors "lanzar/pkg/errors"
)

func validInquiry() domain.Inquiry {
	return domain.Inquiry{
		Name:            "Priya Sharma",
		Email:           "priya@example.com",
		Company:         "Sharma Consulting",
		CompanyLocation: "United Kingdom",
		EmployeeCount:   domain.EmployeeCount51Plus,
		Timeline:        domain.TimelineExploring,
		Subject:         "Partnership proposal",
		Message:         "We would like to explore a referral partnership.",
		InquiryType:     domain.InquiryPartnership,
	}
}

func respond(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestHTTPSubmitter_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, ContactPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(http.StatusOK, `{"success":true,"message":"Thanks!","data":{"leadId":"EOR-42","priority":"medium","assignedTeam":"Business Development"}}`)(w, r)
	}))
	defer srv.Close()

	resp, err := NewHTTPSubmitter(srv.URL+"/").Submit(context.Background(), validInquiry())

	require.NoError(t, err)
	assert.Equal(t, "Thanks!", resp.Message)
	require.NotNil(t, resp.Lead)
	assert.Equal(t, "EOR-42", resp.Lead.LeadID)
	assert.Equal(t, domain.PriorityMedium, resp.Lead.Priority)
	assert.Equal(t, "Priya Sharma", got["name"])
	assert.Equal(t, "partnership", got["inquiryType"])
}

func TestHTTPSubmitter_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		code    apperrors.ErrorCode
		message string
	}{
		{
			name: "validation details",
			handler: respond(http.StatusBadRequest,
				`{"success":false,"error":"Validation failed","details":[{"field":"name","code":"invalid_type","message":"Name is required"},{"field":"email","code":"invalid_string","message":"Please enter a valid email address"}]}`),
			code:    apperrors.ErrCodeValidation,
			message: "Validation error: Name is required, Please enter a valid email address",
		},
		{
			name:    "bad request without details",
			handler: respond(http.StatusBadRequest, `{"success":false,"error":"Bad request"}`),
			code:    apperrors.ErrCodeInternalError,
			message: "Bad request",
		},
		{
			name:    "server error",
			handler: respond(http.StatusInternalServerError, `{"success":false,"error":"Internal server error. Please try again later."}`),
			code:    apperrors.ErrCodeInternalError,
			message: "Internal server error. Please try again later.",
		},
		{
			name:    "server error without message",
			handler: respond(http.StatusBadGateway, `{}`),
			code:    apperrors.ErrCodeInternalError,
			message: "Failed to submit form",
		},
		{
			name:    "ok status but not successful",
			handler: respond(http.StatusOK, `{"success":false}`),
			code:    apperrors.ErrCodeInternalError,
			message: "Form submission failed",
		},
		{
			name:    "unreadable body",
			handler: respond(http.StatusOK, `<html>`),
			code:    apperrors.ErrCodeInternalError,
			message: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), validInquiry())

			require.Error(t, err)
			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.code, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
		})
	}
}

func TestHTTPSubmitter_ValidationKeepsDetails(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusBadRequest,
		`{"success":false,"error":"Validation failed","details":[{"field":"email","code":"invalid_string","message":"Please enter a valid email address"}]}`))
	defer srv.Close()

	_, err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), validInquiry())

	var violations domain.Violations
	require.True(t, errors.As(err, &violations))
	require.Len(t, violations, 1)
	assert.Equal(t, domain.FieldEmail, violations[0].Field)
}

func TestHTTPSubmitter_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPSubmitter(srv.URL, WithTimeout(20*time.Millisecond)).Submit(context.Background(), validInquiry())

	require.Error(t, err)
	assert.True(t, apperrors.IsTimeout(err), err.Error())
}

func TestHTTPSubmitter_NetworkError(t *testing.T) {
	srv := httptest.NewServer(respond(http.StatusOK, `{}`))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPSubmitter(url).Submit(context.Background(), validInquiry())

	require.Error(t, err)
	assert.True(t, apperrors.IsNetwork(err), err.Error())
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestHTTPSubmitter_UsesGivenHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "custom-agent", r.Header.Get("User-Agent"))
		respond(http.StatusOK, `{"success":true,"message":"ok"}`)(w, r)
	}))
	defer srv.Close()

	used := false
	httpClient := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		used = true
		r.Header.Set("User-Agent", "custom-agent")
		return http.DefaultTransport.RoundTrip(r)
	})}

	_, err := NewHTTPSubmitter(srv.URL, WithHTTPClient(httpClient)).Submit(context.Background(), validInquiry())

	require.NoError(t, err)
	assert.True(t, used)
}

func TestHTTPSubmitter_AgainstContactServer(t *testing.T) {
	cfg := &config.Config{
		App:     config.AppConfig{Name: "Lanzar EOR API", Debug: true},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"*"}},
		Contact: config.ContactConfig{MaxBodyBytes: 64 << 10},
	}
	handler := server.NewHandler(cfg, server.Services{
		Health:  services.NewHealthService(cfg.App.Name, "test"),
		Contact: services.NewContactService(services.DiscardSink{}, 0),
		Site:    services.NewSiteService(),
	}, nil)
	srv := httptest.NewServer(handler)
	defer srv.Close()

	form := NewForm(NewHTTPSubmitter(srv.URL, WithHTTPClient(srv.Client())), WithClock(&fakeClock{}))
	for field, value := range validValues {
		form.SetField(field, value)
	}

	require.NoError(t, form.Submit(context.Background()))

	got, ok := form.Status().(Succeeded)
	require.True(t, ok)
	assert.Equal(t, services.SuccessMessage, got.Message)
	require.NotNil(t, got.Lead)
	assert.True(t, len(got.Lead.LeadID) > len("EOR-"))
	assert.Equal(t, domain.PriorityHigh, got.Lead.Priority, "51+ employees")
	assert.Equal(t, domain.TeamBusinessDevelopment, got.Lead.AssignedTeam)
}
