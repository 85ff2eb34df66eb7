package client

import (
	apperrors "lanzar/pkg/errors"
)

// Status is the visible state of a contact form submission.
// It is always one of Idle, Loading, Succeeded or Failed.
type Status interface {
	status()
}

// Idle means nothing is in flight and no message is shown
type Idle struct{}

// Loading means a submission is in flight; submitting again is refused
type Loading struct{}

// Succeeded means the server accepted the inquiry
type Succeeded struct {
	Message string
	Lead    *LeadData
}

// Failed means the last submission did not go through
type Failed struct {
	Message  string
	Code     apperrors.ErrorCode
	CanRetry bool
}

func (Idle) status()      {}
func (Loading) status()   {}
func (Succeeded) status() {}
func (Failed) status()    {}
