package server

import (
	"context"
	"net/http"

	goahttp "goa.design/goa/v3/http"

	"lanzar/internal/services"
)

const (
	// ContactOptionsPath serves the contact form choices
	ContactOptionsPath = "/api/contact/options"
	// ContactInfoPath serves the company contact details
	ContactInfoPath = "/api/contact/info"
)

// SiteServer lists the site service endpoint HTTP handlers
type SiteServer struct {
	Mounts         []*MountPoint
	InquiryOptions http.Handler
	ContactInfo    http.Handler
}

// NewSiteServer instantiates HTTP handlers for the site service
func NewSiteServer(svc *services.SiteService, encoder Encoder, errhandler ErrorHandler) *SiteServer {
	return &SiteServer{
		Mounts: []*MountPoint{
			{"InquiryOptions", "GET", ContactOptionsPath},
			{"ContactInfo", "GET", ContactInfoPath},
		},
		InquiryOptions: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.InquiryOptions(ctx)
		}, encoder, errhandler),
		ContactInfo: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.ContactInfo(ctx)
		}, encoder, errhandler),
	}
}

// Use wraps the server handlers with the given middleware
func (s *SiteServer) Use(m func(http.Handler) http.Handler) {
	s.InquiryOptions = m(s.InquiryOptions)
	s.ContactInfo = m(s.ContactInfo)
}

// Mount configures the mux to serve the site endpoints
func (s *SiteServer) Mount(mux goahttp.Muxer) {
	mux.Handle("GET", ContactOptionsPath, s.InquiryOptions.ServeHTTP)
	mux.Handle("GET", ContactInfoPath, s.ContactInfo.ServeHTTP)
}

func newGetHandler(endpoint func(context.Context) (any, error), encoder Encoder, errhandler ErrorHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		res, err := endpoint(ctx)
		if err != nil {
			encodeError(ctx, w, encoder, errhandler, err)
			return
		}
		if err := encodeResponse(ctx, w, encoder, http.StatusOK, res); err != nil && errhandler != nil {
			errhandler(ctx, w, err)
		}
	})
}
