package services

import (
	"context"
	"errors"
	"log"
	"time"

	"lanzar/internal/domain"
	"lanzar/internal/metrics"
	"lanzar/internal/util"
)

// SuccessMessage acknowledges an accepted inquiry
const SuccessMessage = "Thank you for your EOR inquiry! Our specialists will contact you within 24 hours to discuss your India expansion plans."

// SubmitResult is returned for an accepted inquiry
type SubmitResult struct {
	Message     string             `json:"-"`
	SubmittedAt time.Time          `json:"submittedAt"`
	InquiryType domain.InquiryType `json:"inquiryType"`
	Subject     string             `json:"subject"`
	LeadID      string             `json:"leadId"`
	Priority    domain.Priority    `json:"priority"`
	// AssignedTeam is the team the lead is routed to
	AssignedTeam string `json:"assignedTeam"`
}

// ContactService implements the contact service
type ContactService struct {
	sink  SubmissionSink
	delay time.Duration
	now   func() time.Time
}

// NewContactService creates a new contact service. delay is the fixed pause before
// an accepted submission is answered.
func NewContactService(sink SubmissionSink, delay time.Duration) *ContactService {
	if sink == nil {
		sink = DiscardSink{}
	}
	return &ContactService{
		sink:  sink,
		delay: delay,
		now:   time.Now,
	}
}

// Submit validates, classifies and records one inquiry.
// A Violations payload yields a validation ServiceError and nothing is recorded.
func (s *ContactService) Submit(ctx context.Context, payload any, meta RequestMeta) (*SubmitResult, error) {
	inquiry, err := domain.ValidateInquiry(payload)
	if err != nil {
		var violations domain.Violations
		if !errors.As(err, &violations) {
			return nil, NewInternalError("failed to validate inquiry", err)
		}
		for _, v := range violations {
			metrics.RecordValidationFailure(v.Field)
		}
		log.Printf("[CONTACT] Submit failed: validation error: %v", violations)
		return nil, NewValidationError(violations)
	}

	submittedAt := s.now().UTC()
	lead := domain.Lead{
		Inquiry:        *inquiry,
		Classification: domain.Classify(*inquiry),
		ID:             util.NewLeadID(submittedAt),
		SubmittedAt:    submittedAt,
	}

	s.sink.Record(ctx, Submission{
		Inquiry:        lead.Inquiry,
		Classification: lead.Classification,
		RequestMeta:    meta,
		LeadID:         lead.ID,
		Timestamp:      lead.SubmittedAt,
	})
	metrics.RecordContactSubmission(string(lead.InquiryType), string(lead.Priority))

	if err := s.wait(ctx); err != nil {
		log.Printf("[CONTACT] Submit aborted: lead=%s: %v", lead.ID, err)
		return nil, NewInternalError("submission interrupted", err)
	}

	log.Printf("[CONTACT] Submit successful: lead=%s, type=%s, priority=%s, team=%s",
		lead.ID, lead.InquiryType, lead.Priority, lead.AssignedTeam)

	return &SubmitResult{
		Message:      SuccessMessage,
		SubmittedAt:  lead.SubmittedAt,
		InquiryType:  lead.InquiryType,
		Subject:      lead.Subject,
		LeadID:       lead.ID,
		Priority:     lead.Priority,
		AssignedTeam: lead.AssignedTeam,
	}, nil
}

func (s *ContactService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
