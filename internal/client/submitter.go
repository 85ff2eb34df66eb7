package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lanzar/internal/domain"
	apperrors "lanzar/pkg/errors"
)

// DefaultTimeout bounds how long a submission waits for the server
const DefaultTimeout = 10 * time.Second

// ContactPath is the path of the contact endpoint relative to the site root
const ContactPath = "/api/contact"

// LeadData describes the lead created for an accepted inquiry
type LeadData struct {
	SubmittedAt  time.Time          `json:"submittedAt"`
	InquiryType  domain.InquiryType `json:"inquiryType"`
	Subject      string             `json:"subject"`
	LeadID       string             `json:"leadId"`
	Priority     domain.Priority    `json:"priority"`
	AssignedTeam string             `json:"assignedTeam"`
}

// SubmitResponse is a successful server answer
type SubmitResponse struct {
	Message string
	Lead    *LeadData
}

// Submitter sends a validated inquiry to the server.
// Errors carry a pkg/errors code: TIMEOUT, NETWORK_ERROR, VALIDATION_ERROR or INTERNAL_ERROR.
type Submitter interface {
	Submit(ctx context.Context, inquiry domain.Inquiry) (*SubmitResponse, error)
}

type responseBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Details domain.Violations `json:"details"`
	Data    *LeadData         `json:"data"`
}

// HTTPSubmitter posts inquiries to the contact endpoint
type HTTPSubmitter struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
}

// SubmitterOption configures an HTTPSubmitter
type SubmitterOption func(*HTTPSubmitter)

// WithHTTPClient sets the client used for requests
func WithHTTPClient(c *http.Client) SubmitterOption {
	return func(s *HTTPSubmitter) { s.httpClient = c }
}

// WithTimeout sets how long a submission may take before it is abandoned
func WithTimeout(d time.Duration) SubmitterOption {
	return func(s *HTTPSubmitter) { s.timeout = d }
}

// NewHTTPSubmitter creates a submitter for the site at baseURL
func NewHTTPSubmitter(baseURL string, opts ...SubmitterOption) *HTTPSubmitter {
	s := &HTTPSubmitter{
		endpoint:   strings.TrimRight(baseURL, "/") + ContactPath,
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit implements Submitter
func (s *HTTPSubmitter) Submit(ctx context.Context, inquiry domain.Inquiry) (*SubmitResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	payload, err := json.Marshal(inquiry)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to encode inquiry", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(ctx, err)
	}

	var body responseBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternalError, "", fmt.Errorf("unreadable response (status %d): %w", resp.StatusCode, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusBadRequest && len(body.Details) > 0 {
			msg := "Validation error: " + strings.Join(body.Details.Messages(), ", ")
			return nil, apperrors.Wrap(apperrors.ErrCodeValidation, msg, body.Details)
		}
		return nil, apperrors.New(apperrors.ErrCodeInternalError, orDefault(body.Error, "Failed to submit form"))
	}

	if !body.Success {
		return nil, apperrors.New(apperrors.ErrCodeInternalError, orDefault(body.Error, "Form submission failed"))
	}

	return &SubmitResponse{Message: body.Message, Lead: body.Data}, nil
}

// transportError tells a timeout apart from any other failure to talk to the server
func transportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return apperrors.Wrap(apperrors.ErrCodeTimeout, "Request timeout", err)
	}
	return apperrors.Wrap(apperrors.ErrCodeNetwork, "Failed to fetch", err)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
