package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	goahttp "goa.design/goa/v3/http"
	goamiddleware "goa.design/goa/v3/middleware"

	"lanzar/internal/metrics"
	"lanzar/internal/services"
	"lanzar/internal/util"
)

// ContactPath is the contact form endpoint
const ContactPath = "/api/contact"

// ContactServer lists the contact service endpoint HTTP handlers
type ContactServer struct {
	Mounts           []*MountPoint
	Submit           http.Handler
	MethodNotAllowed http.Handler
}

// submitResponseBody is the body of a successful submission
type submitResponseBody struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Data    *services.SubmitResult `json:"data"`
}

// NewContactServer instantiates HTTP handlers for the contact service.
// maxBodyBytes caps the accepted request body. The body is always parsed as
// JSON, so unlike the other servers there is no request decoder.
func NewContactServer(
	svc *services.ContactService,
	maxBodyBytes int64,
	encoder Encoder,
	errhandler ErrorHandler,
) *ContactServer {
	return &ContactServer{
		Mounts: []*MountPoint{
			{"Submit", "POST", ContactPath},
			{"MethodNotAllowed", "GET", ContactPath},
			{"MethodNotAllowed", "PUT", ContactPath},
			{"MethodNotAllowed", "DELETE", ContactPath},
		},
		Submit:           newSubmitHandler(svc, maxBodyBytes, encoder, errhandler),
		MethodNotAllowed: handleMethodNotAllowed(encoder, errhandler),
	}
}

// Use wraps the server handlers with the given middleware
func (s *ContactServer) Use(m func(http.Handler) http.Handler) {
	s.Submit = m(s.Submit)
	s.MethodNotAllowed = m(s.MethodNotAllowed)
}

// Mount configures the mux to serve the contact endpoints
func (s *ContactServer) Mount(mux goahttp.Muxer) {
	mux.Handle("POST", ContactPath, s.Submit.ServeHTTP)
	mux.Handle("GET", ContactPath, s.MethodNotAllowed.ServeHTTP)
	mux.Handle("PUT", ContactPath, s.MethodNotAllowed.ServeHTTP)
	mux.Handle("DELETE", ContactPath, s.MethodNotAllowed.ServeHTTP)
}

func newSubmitHandler(
	svc *services.ContactService,
	maxBodyBytes int64,
	encoder Encoder,
	errhandler ErrorHandler,
) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		payload, err := decodeSubmitRequest(w, r, maxBodyBytes)
		if err != nil {
			metrics.RecordSubmissionFault()
			encodeError(ctx, w, encoder, errhandler, err)
			return
		}

		res, err := svc.Submit(ctx, payload, requestMeta(ctx, r))
		if err != nil {
			if isFault(err) {
				metrics.RecordSubmissionFault()
			}
			encodeError(ctx, w, encoder, errhandler, err)
			return
		}

		body := &submitResponseBody{Success: true, Message: res.Message, Data: res}
		if err := encodeResponse(ctx, w, encoder, http.StatusOK, body); err != nil && errhandler != nil {
			errhandler(ctx, w, err)
		}
	})
}

// decodeSubmitRequest reads the whole body and parses it as one JSON value,
// whatever the Content-Type. A body that cannot be read or parsed, or that has
// anything after the value, is a fault, not a validation failure.
func decodeSubmitRequest(w http.ResponseWriter, r *http.Request, maxBodyBytes int64) (any, error) {
	if maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, services.Fault("failed to read contact payload: %v", err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, services.Fault("failed to decode contact payload: %v", err)
	}
	return payload, nil
}

func requestMeta(ctx context.Context, r *http.Request) services.RequestMeta {
	meta := services.RequestMeta{
		IP:        util.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	if meta.UserAgent == "" {
		meta.UserAgent = "unknown"
	}
	if id, ok := ctx.Value(goamiddleware.RequestIDKey).(string); ok {
		meta.RequestID = id
	}
	return meta
}
