package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"lanzar/internal/client"
	"lanzar/internal/domain"
	apperrors "lanzar/pkg/errors"
)

const userAgent = "lanzar-contact/1.0"

var (
	baseURL     = flag.String("url", "http://localhost:8000", "Base URL of the API")
	timeout     = flag.Duration("timeout", client.DefaultTimeout, "Request timeout")
	retry       = flag.Bool("retry", false, "Resubmit immediately after a retryable failure, up to the retry limit")
	name        = flag.String("name", "", "Full name")
	email       = flag.String("email", "", "Email address")
	company     = flag.String("company", "", "Company name")
	location    = flag.String("location", "", "Company location")
	employees   = flag.String("employees", "", "Employee count: 1-5, 6-10, 11-25, 26-50, 51+")
	timeline    = flag.String("timeline", "", "Hiring timeline: immediate, 1month, 3months, 6months, exploring")
	subject     = flag.String("subject", "", "Subject")
	message     = flag.String("message", "", "Message")
	inquiryType = flag.String("type", "", "Inquiry type: hiring, services, compliance, partnership")
)

func main() {
	log.SetPrefix("[CONTACT] ")
	log.SetFlags(0)
	flag.Parse()

	httpClient := &http.Client{Transport: userAgentTransport{next: http.DefaultTransport}}
	form := client.NewForm(
		client.NewHTTPSubmitter(*baseURL, client.WithTimeout(*timeout), client.WithHTTPClient(httpClient)),
		client.WithStatusListener(printStatus),
	)

	values := map[string]string{
		domain.FieldName:            *name,
		domain.FieldEmail:           *email,
		domain.FieldCompany:         *company,
		domain.FieldCompanyLocation: *location,
		domain.FieldEmployeeCount:   *employees,
		domain.FieldTimeline:        *timeline,
		domain.FieldSubject:         *subject,
		domain.FieldMessage:         *message,
		domain.FieldInquiryType:     *inquiryType,
	}
	for _, field := range domain.FieldNames() {
		form.SetField(field, values[field])
	}

	ctx := context.Background()
	err := form.Submit(ctx)

	var violations domain.Violations
	if errors.As(err, &violations) {
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", v.Field, v.Message)
		}
		os.Exit(2)
	}

	for *retry && err != nil {
		failed, ok := form.Status().(client.Failed)
		if !ok || !failed.CanRetry {
			break
		}
		log.Printf("Retrying (attempt %d of %d)", form.RetryCount()+1, client.MaxRetries)
		err = form.Retry(ctx)
	}

	switch {
	case err == nil:
	case apperrors.IsValidation(err):
		// rejected by the server; resubmitting the same values cannot help
		os.Exit(2)
	default:
		os.Exit(1)
	}
}

// userAgentTransport identifies the CLI in the server's submission records
type userAgentTransport struct {
	next http.RoundTripper
}

func (t userAgentTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("User-Agent", userAgent)
	return t.next.RoundTrip(r)
}

func printStatus(s client.Status) {
	switch s := s.(type) {
	case client.Loading:
		log.Println("Submitting...")
	case client.Succeeded:
		log.Println(s.Message)
		if s.Lead != nil {
			fmt.Printf("Lead %s: priority=%s team=%q\n", s.Lead.LeadID, s.Lead.Priority, s.Lead.AssignedTeam)
		}
	case client.Failed:
		log.Printf("Failed (%s): %s", s.Code, s.Message)
	}
}
