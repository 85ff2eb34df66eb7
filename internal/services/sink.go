package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"lanzar/internal/config"
	"lanzar/internal/domain"
)

// RequestMeta is best-effort information about the caller of a submission
type RequestMeta struct {
	IP        string `json:"ip"`
	UserAgent string `json:"userAgent"`
	RequestID string `json:"requestId,omitempty"`
}

// Submission is the record handed to a SubmissionSink for every accepted inquiry
type Submission struct {
	domain.Inquiry
	domain.Classification
	RequestMeta
	LeadID    string    `json:"leadId"`
	Timestamp time.Time `json:"timestamp"`
}

// SubmissionSink receives accepted submissions. Recording is fire-and-forget:
// a sink must not block the request for long and cannot fail it.
// Durable storage, CRM routing and email notification plug in here.
type SubmissionSink interface {
	Record(ctx context.Context, s Submission)
}

// LogSink writes one JSON line per submission
type LogSink struct {
	logger *log.Logger
}

// NewLogSink creates a sink writing to logger, or to stdout when logger is nil
func NewLogSink(logger *log.Logger) *LogSink {
	if logger == nil {
		logger = log.New(os.Stdout, "[CONTACT] ", log.Ldate|log.Ltime)
	}
	return &LogSink{logger: logger}
}

// Record implements SubmissionSink
func (s *LogSink) Record(_ context.Context, sub Submission) {
	line, err := json.Marshal(sub)
	if err != nil {
		s.logger.Printf("Failed to encode submission %s: %v", sub.LeadID, err)
		return
	}
	s.logger.Printf("EOR contact form submission: %s", line)
}

// DiscardSink drops every submission
type DiscardSink struct{}

// Record implements SubmissionSink
func (DiscardSink) Record(context.Context, Submission) {}

// MultiSink fans a submission out to several sinks in order
type MultiSink []SubmissionSink

// Record implements SubmissionSink
func (m MultiSink) Record(ctx context.Context, sub Submission) {
	for _, sink := range m {
		sink.Record(ctx, sub)
	}
}

// NewSink builds the sink named by the submission sink provider setting
func NewSink(provider string, logger *log.Logger) (SubmissionSink, error) {
	switch strings.ToLower(provider) {
	case config.SinkLog, "console", "":
		return NewLogSink(logger), nil
	case config.SinkDiscard, "none":
		return DiscardSink{}, nil
	default:
		return nil, fmt.Errorf("unsupported submission sink: %s", provider)
	}
}
