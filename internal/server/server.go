// Package server exposes the services over HTTP. Each service gets a server
// value holding its endpoint handlers; handlers are mounted on a goa muxer and
// can be wrapped with middleware through Use before mounting.
package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"

	"lanzar/internal/domain"
	"lanzar/internal/services"
)

type (
	// Encoder creates a response body encoder
	Encoder func(ctx context.Context, w http.ResponseWriter) goahttp.Encoder

	// ErrorHandler is called with every unexpected fault before the generic response is written
	ErrorHandler func(ctx context.Context, w http.ResponseWriter, err error)
)

// MountPoint holds information about a mounted endpoint
type MountPoint struct {
	// Method is the name of the service method served by the mounted HTTP handler.
	Method string
	// Verb is the HTTP method used to match requests to the mounted handler.
	Verb string
	// Pattern is the HTTP request path pattern used to match requests to the mounted handler.
	Pattern string
}

// errorResponseBody is the body of every 400, 404 and 500 response
type errorResponseBody struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Details domain.Violations `json:"details,omitempty"`
}

// methodNotAllowedResponseBody is the fixed body of 405 responses
type methodNotAllowedResponseBody struct {
	Error string `json:"error"`
}

// LogErrorHandler logs faults, including the goa error id when there is one
func LogErrorHandler(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *goa.ServiceError
	if errors.As(err, &gerr) && gerr.ID != "" {
		log.Printf("[ERROR] %v (id=%s)", err, gerr.ID)
		return
	}
	log.Printf("[ERROR] %v", err)
}

func encodeResponse(ctx context.Context, w http.ResponseWriter, encoder Encoder, status int, v any) error {
	enc := encoder(ctx, w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return enc.Encode(v)
}

// encodeError maps a service error onto the HTTP contract. Anything that is not
// a known client error is a fault: the full error goes to errhandler and the
// caller only sees a generic message.
func encodeError(ctx context.Context, w http.ResponseWriter, encoder Encoder, errhandler ErrorHandler, err error) {
	var (
		status int
		body   any
	)

	var svcErr *services.ServiceError
	switch {
	case errors.As(err, &svcErr) && svcErr.Type == services.ErrTypeValidation:
		status = http.StatusBadRequest
		body = &errorResponseBody{Error: services.MsgValidationFailed, Details: svcErr.Violations}
	case errors.As(err, &svcErr) && svcErr.Type == services.ErrTypeBadRequest:
		status = http.StatusBadRequest
		body = &errorResponseBody{Error: svcErr.Message}
	case errors.As(err, &svcErr) && svcErr.Type == services.ErrTypeNotFound:
		status = http.StatusNotFound
		body = &errorResponseBody{Error: svcErr.Message}
	case errors.As(err, &svcErr) && svcErr.Type == services.ErrTypeMethodNotAllowed:
		status = http.StatusMethodNotAllowed
		body = &methodNotAllowedResponseBody{Error: services.MsgMethodNotAllowed}
	default:
		if errhandler != nil {
			errhandler(ctx, w, err)
		}
		status = http.StatusInternalServerError
		body = &errorResponseBody{Error: services.MsgInternal}
	}

	if encErr := encodeResponse(ctx, w, encoder, status, body); encErr != nil && errhandler != nil {
		errhandler(ctx, w, encErr)
	}
}

// isFault reports whether err would be answered with a 500
func isFault(err error) bool {
	var svcErr *services.ServiceError
	if !errors.As(err, &svcErr) {
		return true
	}
	return svcErr.Type == services.ErrTypeInternal
}

// handleMethodNotAllowed answers with the fixed 405 body without reading the request
func handleMethodNotAllowed(encoder Encoder, errhandler ErrorHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		encodeError(r.Context(), w, encoder, errhandler, services.NewMethodNotAllowedError())
	})
}
