package server

import (
	"context"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"lanzar/internal/services"
)

// HealthPath is the liveness endpoint
const HealthPath = "/health"

// HealthServer lists the health service endpoint HTTP handlers
type HealthServer struct {
	Mounts []*MountPoint
	Check  http.Handler
}

// NewHealthServer instantiates HTTP handlers for the health service
func NewHealthServer(svc *services.HealthService, encoder Encoder, errhandler ErrorHandler) *HealthServer {
	return &HealthServer{
		Mounts: []*MountPoint{
			{"Check", "GET", HealthPath},
		},
		Check: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Check(ctx)
		}, encoder, errhandler),
	}
}

// Use wraps the server handlers with the given middleware
func (s *HealthServer) Use(m func(http.Handler) http.Handler) {
	s.Check = m(s.Check)
}

// Mount configures the mux to serve the health endpoints
func (s *HealthServer) Mount(mux goahttp.Muxer) {
	mux.Handle("GET", HealthPath, s.Check.ServeHTTP)
}
