package server

import (
	"log"
	"net/http"
	"strings"

	goahttp "goa.design/goa/v3/http"
	"goa.design/goa/v3/http/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lanzar/internal/config"
	"lanzar/internal/metrics"
	"lanzar/internal/services"
)

// MetricsPath serves the Prometheus exposition
const MetricsPath = "/metrics"

// Services groups the service implementations exposed over HTTP
type Services struct {
	Health  *services.HealthService
	Contact *services.ContactService
	Site    *services.SiteService
	// Catalog is optional; the catalog endpoints are not mounted without it
	Catalog *services.CatalogService
}

// NewHandler mounts every service on a goa muxer and wraps the result with the
// middleware chain: security headers -> CORS -> logging -> Prometheus -> handler.
func NewHandler(cfg *config.Config, svcs Services, errhandler ErrorHandler) http.Handler {
	mux := goahttp.NewMuxer()

	healthServer := NewHealthServer(svcs.Health, goahttp.ResponseEncoder, errhandler)
	contactServer := NewContactServer(svcs.Contact, cfg.Contact.MaxBodyBytes, goahttp.ResponseEncoder, errhandler)
	siteServer := NewSiteServer(svcs.Site, goahttp.ResponseEncoder, errhandler)

	healthServer.Use(middleware.RequestID())
	healthServer.Mount(mux)

	contactServer.Use(middleware.RequestID())
	contactServer.Use(middleware.PopulateRequestContext())
	contactServer.Mount(mux)

	siteServer.Use(middleware.RequestID())
	siteServer.Mount(mux)

	mounts := [][]*MountPoint{healthServer.Mounts, contactServer.Mounts, siteServer.Mounts}
	if svcs.Catalog != nil {
		catalogServer := NewCatalogServer(svcs.Catalog, mux, goahttp.ResponseEncoder, errhandler)
		catalogServer.Use(middleware.RequestID())
		catalogServer.Mount(mux)
		mounts = append(mounts, catalogServer.Mounts)
	}

	for _, group := range mounts {
		for _, m := range group {
			log.Printf("HTTP %q mounted on %s %s", m.Method, m.Verb, m.Pattern)
		}
	}

	// Route /metrics to Prometheus and everything else to the goa mux
	rootHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == MetricsPath {
			promhttp.Handler().ServeHTTP(w, r)
			return
		}
		mux.ServeHTTP(w, r)
	})

	instrumented := metrics.PrometheusMiddleware(rootHandler, endpointLabel(mounts))
	return SecurityHeaders(CORS(RequestLogging(instrumented), cfg), cfg)
}

// UnmatchedEndpoint labels metrics of requests that match no mounted pattern
const UnmatchedEndpoint = "unmatched"

// endpointLabel maps a request path onto the mounted pattern it matches, so
// path parameters never become metric label values. Literal patterns win over
// patterns with parameters.
func endpointLabel(groups [][]*MountPoint) metrics.LabelFunc {
	var literal, parameterized []string
	for _, group := range groups {
		for _, m := range group {
			if strings.Contains(m.Pattern, "{") {
				parameterized = append(parameterized, m.Pattern)
			} else {
				literal = append(literal, m.Pattern)
			}
		}
	}

	return func(r *http.Request) string {
		path := strings.TrimSuffix(r.URL.Path, "/")
		if path == "" {
			path = "/"
		}
		for _, p := range literal {
			if p == path {
				return p
			}
		}
		segments := strings.Split(path, "/")
		for _, p := range parameterized {
			if matchPattern(strings.Split(p, "/"), segments) {
				return p
			}
		}
		return UnmatchedEndpoint
	}
}

func matchPattern(pattern, segments []string) bool {
	if len(pattern) != len(segments) {
		return false
	}
	for i, p := range pattern {
		if strings.HasPrefix(p, "{") {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if p != segments[i] {
			return false
		}
	}
	return true
}
