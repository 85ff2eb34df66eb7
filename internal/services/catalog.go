package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"lanzar/internal/catalog"
	"lanzar/internal/domain"
)

// Not found messages
const (
	MsgServiceNotFound   = "Service not found"
	MsgProductNotFound   = "Product not found"
	MsgPricingNotFound   = "Pricing not found for this service"
	MsgFrameworkNotFound = "Compliance framework not found"
	MsgStatementNotFound = "Financial statement not found"
)

// CompanyProfile is the company profile with its headline figures
type CompanyProfile struct {
	Company domain.Company       `json:"company"`
	Stats   []domain.CompanyStat `json:"stats"`
}

// CategoryServices is a service category with its services
type CategoryServices struct {
	domain.ServiceCategory
	Services []domain.Service `json:"services"`
}

// ServiceDetail is a service with its pricing
type ServiceDetail struct {
	domain.Service
	Tiers       []domain.PricingTier `json:"tiers"`
	PrimaryTier *domain.PricingTier  `json:"primaryTier,omitempty"`
}

// PricingCatalog lists the pricing of every service and the enterprise plan
type PricingCatalog struct {
	Services   []domain.ServicePricing `json:"services"`
	Enterprise domain.PricingTier      `json:"enterprise"`
}

// ComplianceOverview gathers everything shown on the compliance page
type ComplianceOverview struct {
	Frameworks     []domain.ComplianceFramework `json:"frameworks"`
	Coverage       []domain.RegionCoverage      `json:"coverage"`
	LegalDocuments []domain.LegalDocument       `json:"legalDocuments"`
	Certifications []domain.Certification       `json:"certifications"`
}

// CatalogService serves the site catalog. Services, pricing, products,
// compliance frameworks and financial statements are read from the database;
// the company profile and reference lists are static.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new catalog service
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// Company returns the company profile
func (s *CatalogService) Company(ctx context.Context) (*CompanyProfile, error) {
	return &CompanyProfile{Company: catalog.Company, Stats: catalog.Stats}, nil
}

// Stats returns the headline figures
func (s *CatalogService) Stats(ctx context.Context) ([]domain.CompanyStat, error) {
	return catalog.Stats, nil
}

// Services lists the services in display order
func (s *CatalogService) Services(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	if err := s.db.WithContext(ctx).Order("position").Find(&services).Error; err != nil {
		return nil, NewInternalError("failed to list services", err)
	}
	return services, nil
}

// Service returns one service with its pricing tiers
func (s *CatalogService) Service(ctx context.Context, id string) (*ServiceDetail, error) {
	var service domain.Service
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&service).Error; err != nil {
		return nil, notFoundOr(err, MsgServiceNotFound, "failed to get service")
	}

	pricing, err := s.servicePricing(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ServiceDetail{Service: service, Tiers: pricing.Tiers, PrimaryTier: pricing.PrimaryTier()}, nil
}

// Categories lists the service categories, each with its services
func (s *CatalogService) Categories(ctx context.Context) ([]CategoryServices, error) {
	services, err := s.Services(ctx)
	if err != nil {
		return nil, err
	}

	categories := make([]CategoryServices, len(catalog.Categories))
	for i, c := range catalog.Categories {
		categories[i] = CategoryServices{ServiceCategory: c, Services: []domain.Service{}}
		for _, svc := range services {
			if svc.Category == c.ID {
				categories[i].Services = append(categories[i].Services, svc)
			}
		}
	}
	return categories, nil
}

// Locations lists the regions where hiring is supported
func (s *CatalogService) Locations(ctx context.Context) ([]domain.Region, error) {
	return catalog.Locations, nil
}

// Products lists the products in display order
func (s *CatalogService) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.WithContext(ctx).Order("position").Find(&products).Error; err != nil {
		return nil, NewInternalError("failed to list products", err)
	}
	return products, nil
}

// Product returns one product
func (s *CatalogService) Product(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, notFoundOr(err, MsgProductNotFound, "failed to get product")
	}
	return &product, nil
}

// Pricing lists the tiers of every service in service display order
func (s *CatalogService) Pricing(ctx context.Context) (*PricingCatalog, error) {
	var tiers []domain.PricingTier
	err := s.db.WithContext(ctx).
		Joins("JOIN services ON services.id = pricing_tiers.service_id").
		Order("services.position").
		Order("pricing_tiers.position").
		Find(&tiers).Error
	if err != nil {
		return nil, NewInternalError("failed to list pricing", err)
	}

	out := &PricingCatalog{Services: []domain.ServicePricing{}, Enterprise: catalog.EnterpriseTier}
	for _, tier := range tiers {
		n := len(out.Services)
		if n == 0 || out.Services[n-1].ServiceID != tier.ServiceID {
			out.Services = append(out.Services, domain.ServicePricing{ServiceID: tier.ServiceID})
			n++
		}
		out.Services[n-1].Tiers = append(out.Services[n-1].Tiers, tier)
	}
	return out, nil
}

// ServicePricing returns the tiers of one service
func (s *CatalogService) ServicePricing(ctx context.Context, serviceID string) (*domain.ServicePricing, error) {
	pricing, err := s.servicePricing(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if len(pricing.Tiers) == 0 {
		return nil, NewNotFoundError(MsgPricingNotFound)
	}
	return pricing, nil
}

func (s *CatalogService) servicePricing(ctx context.Context, serviceID string) (*domain.ServicePricing, error) {
	tiers := []domain.PricingTier{}
	err := s.db.WithContext(ctx).Where("service_id = ?", serviceID).Order("position").Find(&tiers).Error
	if err != nil {
		return nil, NewInternalError("failed to get service pricing", err)
	}
	return &domain.ServicePricing{ServiceID: serviceID, Tiers: tiers}, nil
}

// Compliance returns the frameworks with the coverage, documents and certificates
func (s *CatalogService) Compliance(ctx context.Context) (*ComplianceOverview, error) {
	var frameworks []domain.ComplianceFramework
	if err := s.db.WithContext(ctx).Order("position").Find(&frameworks).Error; err != nil {
		return nil, NewInternalError("failed to list compliance frameworks", err)
	}
	return &ComplianceOverview{
		Frameworks:     frameworks,
		Coverage:       catalog.Coverage,
		LegalDocuments: catalog.LegalDocuments,
		Certifications: catalog.Certifications,
	}, nil
}

// Framework returns one compliance framework
func (s *CatalogService) Framework(ctx context.Context, id string) (*domain.ComplianceFramework, error) {
	var framework domain.ComplianceFramework
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&framework).Error; err != nil {
		return nil, notFoundOr(err, MsgFrameworkNotFound, "failed to get compliance framework")
	}
	return &framework, nil
}

// Statements lists financial statements, newest period first
func (s *CatalogService) Statements(ctx context.Context) ([]domain.FinancialStatement, error) {
	var statements []domain.FinancialStatement
	if err := s.newestFirst(ctx).Find(&statements).Error; err != nil {
		return nil, NewInternalError("failed to list financial statements", err)
	}
	return statements, nil
}

// LatestStatement returns the statement for the newest period
func (s *CatalogService) LatestStatement(ctx context.Context) (*domain.FinancialStatement, error) {
	var statement domain.FinancialStatement
	if err := s.newestFirst(ctx).First(&statement).Error; err != nil {
		return nil, notFoundOr(err, MsgStatementNotFound, "failed to get latest financial statement")
	}
	return &statement, nil
}

// StatementForYear returns the newest statement published for year
func (s *CatalogService) StatementForYear(ctx context.Context, year int) (*domain.FinancialStatement, error) {
	var statement domain.FinancialStatement
	if err := s.newestFirst(ctx).Where("year = ?", year).First(&statement).Error; err != nil {
		return nil, notFoundOr(err, MsgStatementNotFound, fmt.Sprintf("failed to get financial statement for %d", year))
	}
	return &statement, nil
}

// newestFirst orders statements by period. A full-year statement (quarter 0)
// counts as newer than the quarters of its year.
func (s *CatalogService) newestFirst(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Order("year DESC").
		Order("CASE WHEN quarter = 0 THEN 5 ELSE quarter END DESC").
		Order("type")
}

func notFoundOr(err error, notFound, internal string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError(notFound)
	}
	return NewInternalError(internal, err)
}
