package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"lanzar/internal/domain"
	apperrors "lanzar/pkg/errors"
)

const (
	// SuccessClearDelay is how long a success message stays before the form goes idle
	SuccessClearDelay = 5 * time.Second
	// FailureClearDelay is how long an error message stays before the form goes idle
	FailureClearDelay = 8 * time.Second
	// MaxRetries caps explicit retries between successful submissions
	MaxRetries = 3
)

// Messages shown for failed submissions
const (
	MsgDefaultSuccess = "Thank you for your inquiry! Our EOR experts will get back to you within 24 hours to discuss your India expansion plans."
	MsgTimeout        = "Request timed out. Please check your connection and try again."
	MsgNetwork        = "Network error. Please check your connection and try again."
	MsgGeneric        = "Something went wrong. Please try again or contact us directly."
)

var (
	// ErrSubmissionInFlight is returned when submitting while a submission is loading
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	// ErrRetryNotAllowed is returned when retrying without a retryable failure
	ErrRetryNotAllowed = errors.New("retry is not available")
)

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	Stop() bool
}

// Clock schedules the auto-clear callbacks
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// FormOption configures a Form
type FormOption func(*Form)

// WithClock replaces the wall clock used for auto-clear timers
func WithClock(c Clock) FormOption {
	return func(f *Form) { f.clock = c }
}

// WithStatusListener registers a callback invoked after every status change.
// It is called without the form lock held.
func WithStatusListener(fn func(Status)) FormOption {
	return func(f *Form) { f.listener = fn }
}

// Form holds contact form values and drives the submission status:
// Idle -> Loading -> Succeeded | Failed, with Failed -> Loading on retry and
// both outcomes returning to Idle on their own after a fixed delay.
type Form struct {
	mu        sync.Mutex
	submitter Submitter
	clock     Clock
	listener  func(Status)

	values      map[string]string
	fieldErrors map[string]domain.Violations
	dirty       map[string]bool

	status  Status
	retries int
	// generation invalidates auto-clear timers scheduled for an older status
	generation uint64
	timer      Timer
}

// NewForm creates an empty, idle form
func NewForm(submitter Submitter, opts ...FormOption) *Form {
	f := &Form{
		submitter: submitter,
		clock:     realClock{},
		status:    Idle{},
	}
	for _, opt := range opts {
		opt(f)
	}
	f.resetFields()
	return f
}

func (f *Form) resetFields() {
	f.values = make(map[string]string)
	for _, name := range domain.FieldNames() {
		f.values[name] = ""
	}
	f.fieldErrors = make(map[string]domain.Violations)
	f.dirty = make(map[string]bool)
}

// SetField stores a value and validates it immediately. It returns the field's
// violations, nil when the value is acceptable. Unknown fields are not stored.
func (f *Form) SetField(field, value string) domain.Violations {
	violations := domain.ValidateField(field, value)

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, known := f.values[field]; !known {
		return violations
	}
	f.values[field] = value
	f.dirty[field] = true
	if len(violations) == 0 {
		delete(f.fieldErrors, field)
	} else {
		f.fieldErrors[field] = violations
	}
	return violations
}

// Value returns the current value of field
func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Values returns a copy of every field value
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// FieldErrors returns the current violations of field
func (f *Form) FieldErrors(field string) domain.Violations {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append(domain.Violations(nil), f.fieldErrors[field]...)
}

// FieldValid reports whether field was edited, is non-empty and passes validation
func (f *Form) FieldValid(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dirty[field] && len(f.fieldErrors[field]) == 0 && f.values[field] != ""
}

// Status returns the current submission status
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// RetryCount returns the number of retries since the last success
func (f *Form) RetryCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.retries
}

// CanSubmit reports whether the submit action is enabled
func (f *Form) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, loading := f.status.(Loading)
	return !loading
}

// Submit validates the whole form and, if it passes, sends it. Invalid forms are
// not sent: the violations are stored per field and returned as the error.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	inquiry, err := f.begin()
	f.mu.Unlock()
	if err != nil {
		return err
	}
	f.notify(Loading{})
	return f.send(ctx, *inquiry)
}

// Retry resubmits the held values after a retryable failure. If the values
// were edited into an invalid state the retry is refused without counting.
func (f *Form) Retry(ctx context.Context) error {
	f.mu.Lock()
	failed, ok := f.status.(Failed)
	if !ok || !failed.CanRetry {
		f.mu.Unlock()
		return ErrRetryNotAllowed
	}
	inquiry, err := f.begin()
	if err != nil {
		f.mu.Unlock()
		return err
	}
	f.retries++
	f.mu.Unlock()
	f.notify(Loading{})
	return f.send(ctx, *inquiry)
}

// Reset clears values, field errors and status
func (f *Form) Reset() {
	f.mu.Lock()
	f.resetFields()
	f.retries = 0
	f.cancelTimer()
	f.status = Idle{}
	f.mu.Unlock()
	f.notify(Idle{})
}

// begin moves the form to Loading. Callers hold f.mu.
func (f *Form) begin() (*domain.Inquiry, error) {
	if _, loading := f.status.(Loading); loading {
		return nil, ErrSubmissionInFlight
	}

	inquiry, err := domain.ValidateValues(f.values)
	if err != nil {
		var violations domain.Violations
		if errors.As(err, &violations) {
			for _, name := range domain.FieldNames() {
				if v := violations.ForField(name); len(v) > 0 {
					f.fieldErrors[name] = v
				}
			}
		}
		return nil, err
	}

	f.cancelTimer()
	f.status = Loading{}
	return inquiry, nil
}

func (f *Form) send(ctx context.Context, inquiry domain.Inquiry) error {
	resp, err := f.submitter.Submit(ctx, inquiry)

	f.mu.Lock()
	var next Status
	if err != nil {
		next = f.failed(err)
		f.schedule(FailureClearDelay)
	} else {
		next = Succeeded{Message: orDefault(resp.Message, MsgDefaultSuccess), Lead: resp.Lead}
		f.resetFields()
		f.retries = 0
		f.schedule(SuccessClearDelay)
	}
	f.status = next
	f.mu.Unlock()

	f.notify(next)
	return err
}

// failed builds the Failed status for err. Callers hold f.mu.
func (f *Form) failed(err error) Failed {
	code := apperrors.CodeOf(err)
	msg := MsgGeneric
	switch code {
	case apperrors.ErrCodeTimeout:
		msg = MsgTimeout
	case apperrors.ErrCodeNetwork:
		msg = MsgNetwork
	default:
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
	}
	return Failed{
		Message: msg,
		Code:    code,
		// the same values would be rejected again
		CanRetry: code != apperrors.ErrCodeValidation && f.retries < MaxRetries,
	}
}

// schedule arranges for the current outcome to clear after d. Callers hold f.mu.
func (f *Form) schedule(d time.Duration) {
	f.cancelTimer()
	gen := f.generation
	f.timer = f.clock.AfterFunc(d, func() { f.clear(gen) })
}

// cancelTimer stops any pending auto-clear. Callers hold f.mu.
func (f *Form) cancelTimer() {
	f.generation++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

func (f *Form) clear(gen uint64) {
	f.mu.Lock()
	if gen != f.generation {
		f.mu.Unlock()
		return
	}
	f.timer = nil
	f.status = Idle{}
	f.mu.Unlock()
	f.notify(Idle{})
}

func (f *Form) notify(s Status) {
	if f.listener != nil {
		f.listener(s)
	}
}
