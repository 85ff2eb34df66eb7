package server

import (
	"context"
	"net/http"
	"strconv"

	goahttp "goa.design/goa/v3/http"

	"lanzar/internal/services"
)

// MsgInvalidYear is returned when the year path segment is not a year
const MsgInvalidYear = "Year must be a positive number"

// CatalogServer lists the catalog service endpoint HTTP handlers
type CatalogServer struct {
	Mounts           []*MountPoint
	Company          http.Handler
	CompanyStats     http.Handler
	Services         http.Handler
	Categories       http.Handler
	Locations        http.Handler
	Service          http.Handler
	Products         http.Handler
	Product          http.Handler
	Pricing          http.Handler
	ServicePricing   http.Handler
	Compliance       http.Handler
	Framework        http.Handler
	Statements       http.Handler
	LatestStatement  http.Handler
	StatementForYear http.Handler
}

// NewCatalogServer instantiates HTTP handlers for the catalog service. mux
// resolves the path parameters of the lookup endpoints.
func NewCatalogServer(svc *services.CatalogService, mux goahttp.Muxer, encoder Encoder, errhandler ErrorHandler) *CatalogServer {
	byID := func(name string, endpoint func(context.Context, string) (any, error)) http.Handler {
		return newParamHandler(mux, name, endpoint, encoder, errhandler)
	}

	return &CatalogServer{
		Mounts: []*MountPoint{
			{"Company", "GET", "/api/company"},
			{"CompanyStats", "GET", "/api/company/stats"},
			{"Services", "GET", "/api/services"},
			{"Categories", "GET", "/api/services/categories"},
			{"Locations", "GET", "/api/services/locations"},
			{"Service", "GET", "/api/services/{id}"},
			{"Products", "GET", "/api/products"},
			{"Product", "GET", "/api/products/{id}"},
			{"Pricing", "GET", "/api/pricing"},
			{"ServicePricing", "GET", "/api/pricing/{id}"},
			{"Compliance", "GET", "/api/compliance"},
			{"Framework", "GET", "/api/compliance/frameworks/{id}"},
			{"Statements", "GET", "/api/financials"},
			{"LatestStatement", "GET", "/api/financials/latest"},
			{"StatementForYear", "GET", "/api/financials/{year}"},
		},
		Company: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Company(ctx)
		}, encoder, errhandler),
		CompanyStats: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Stats(ctx)
		}, encoder, errhandler),
		Services: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Services(ctx)
		}, encoder, errhandler),
		Categories: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Categories(ctx)
		}, encoder, errhandler),
		Locations: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Locations(ctx)
		}, encoder, errhandler),
		Service: byID("id", func(ctx context.Context, id string) (any, error) {
			return svc.Service(ctx, id)
		}),
		Products: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Products(ctx)
		}, encoder, errhandler),
		Product: byID("id", func(ctx context.Context, id string) (any, error) {
			return svc.Product(ctx, id)
		}),
		Pricing: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Pricing(ctx)
		}, encoder, errhandler),
		ServicePricing: byID("id", func(ctx context.Context, id string) (any, error) {
			return svc.ServicePricing(ctx, id)
		}),
		Compliance: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Compliance(ctx)
		}, encoder, errhandler),
		Framework: byID("id", func(ctx context.Context, id string) (any, error) {
			return svc.Framework(ctx, id)
		}),
		Statements: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.Statements(ctx)
		}, encoder, errhandler),
		LatestStatement: newGetHandler(func(ctx context.Context) (any, error) {
			return svc.LatestStatement(ctx)
		}, encoder, errhandler),
		StatementForYear: byID("year", func(ctx context.Context, raw string) (any, error) {
			year, err := strconv.Atoi(raw)
			if err != nil || year <= 0 {
				return nil, services.NewBadRequestError(MsgInvalidYear)
			}
			return svc.StatementForYear(ctx, year)
		}),
	}
}

// handlers returns the handler fields in Mounts order
func (s *CatalogServer) handlers() []*http.Handler {
	return []*http.Handler{
		&s.Company, &s.CompanyStats,
		&s.Services, &s.Categories, &s.Locations, &s.Service,
		&s.Products, &s.Product,
		&s.Pricing, &s.ServicePricing,
		&s.Compliance, &s.Framework,
		&s.Statements, &s.LatestStatement, &s.StatementForYear,
	}
}

// Use wraps the server handlers with the given middleware
func (s *CatalogServer) Use(m func(http.Handler) http.Handler) {
	for _, h := range s.handlers() {
		*h = m(*h)
	}
}

// Mount configures the mux to serve the catalog endpoints
func (s *CatalogServer) Mount(mux goahttp.Muxer) {
	for i, h := range s.handlers() {
		mux.Handle(s.Mounts[i].Verb, s.Mounts[i].Pattern, (*h).ServeHTTP)
	}
}

// newParamHandler serves a lookup keyed by the named path parameter
func newParamHandler(mux goahttp.Muxer, name string, endpoint func(context.Context, string) (any, error), encoder Encoder, errhandler ErrorHandler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		res, err := endpoint(ctx, mux.Vars(r)[name])
		if err != nil {
			encodeError(ctx, w, encoder, errhandler, err)
			return
		}
		if err := encodeResponse(ctx, w, encoder, http.StatusOK, res); err != nil && errhandler != nil {
			errhandler(ctx, w, err)
		}
	})
}
