package domain

import "time"

// Catalog entries are stored through gorm. Nested values are kept as JSON
// columns so the same tables work on SQLite and PostgreSQL.

// Service categories
const (
	CategoryCore          = "core"
	CategorySupplementary = "supplementary"
	CategoryProtection    = "protection"
)

// Feature is a highlighted capability of a service or product
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Image is an illustration shown next to a catalog entry
type Image struct {
	URL  string `json:"url"`
	Alt  string `json:"alt"`
	Type string `json:"type"` // hero, screenshot, diagram, feature or logo
}

// PriceHint is the "starting at" price shown on a service card
type PriceHint struct {
	Type          string `json:"type"` // per_employee, flat_rate or custom
	StartingPrice string `json:"startingPrice"`
	BillingCycle  string `json:"billingCycle"`
	CustomPricing bool   `json:"customPricing,omitempty"`
}

// Service is an EOR service offered to clients
type Service struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Position    int       `gorm:"not null" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Tagline     string    `json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	Features    []Feature `gorm:"type:text;serializer:json" json:"features"`
	Category    string    `gorm:"not null;index" json:"category"`
	Status      string    `gorm:"not null" json:"status"`
	Coverage    []string  `gorm:"type:text;serializer:json" json:"coverage"`
	Pricing     PriceHint `gorm:"type:text;serializer:json" json:"pricing"`
	Images      []Image   `gorm:"type:text;serializer:json" json:"images"`
}

// TableName specifies the table name
func (Service) TableName() string {
	return "services"
}

// Product is a software product built by the company
type Product struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Position    int       `gorm:"not null" json:"-"`
	Name        string    `gorm:"not null" json:"name"`
	Tagline     string    `json:"tagline"`
	Description string    `gorm:"type:text" json:"description"`
	Features    []Feature `gorm:"type:text;serializer:json" json:"features"`
	Website     string    `json:"website"`
	Category    string    `gorm:"not null;index" json:"category"` // hr, storytelling or development
	Status      string    `gorm:"not null" json:"status"`
	Images      []Image   `gorm:"type:text;serializer:json" json:"images"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// PricingTier is a priced plan. Amounts are whole currency units.
type PricingTier struct {
	ID          string   `gorm:"primaryKey;size:64" json:"id"`
	ServiceID   string   `gorm:"not null;index;size:64" json:"-"`
	Position    int      `gorm:"not null" json:"-"`
	Name        string   `gorm:"not null" json:"name"`
	Amount      int64    `gorm:"not null" json:"amount"`
	Currency    string   `gorm:"not null;size:3" json:"currency"`
	Period      string   `gorm:"not null" json:"period"` // month, year or one-time
	Unit        string   `gorm:"not null" json:"unit"`   // employee, project or service
	Description string   `gorm:"type:text" json:"description,omitempty"`
	Features    []string `gorm:"type:text;serializer:json" json:"features,omitempty"`
	Popular     bool     `gorm:"not null" json:"popular,omitempty"`
}

// TableName specifies the table name
func (PricingTier) TableName() string {
	return "pricing_tiers"
}

// ServicePricing groups the tiers of one service
type ServicePricing struct {
	ServiceID string        `json:"serviceId"`
	Tiers     []PricingTier `json:"tiers"`
}

// PrimaryTier returns the popular tier, falling back to the first one.
// It returns nil when there are no tiers.
func (p ServicePricing) PrimaryTier() *PricingTier {
	for i := range p.Tiers {
		if p.Tiers[i].Popular {
			return &p.Tiers[i]
		}
	}
	if len(p.Tiers) == 0 {
		return nil
	}
	return &p.Tiers[0]
}

// FinancialItem is one line of a financial statement
type FinancialItem struct {
	Category string   `json:"category"`
	Amount   int64    `json:"amount"`
	Currency string   `json:"currency"`
	Change   *float64 `json:"change,omitempty"`
}

// FinancialData holds the sections of a statement
type FinancialData struct {
	Assets      []FinancialItem `json:"assets"`
	Liabilities []FinancialItem `json:"liabilities"`
	Equity      []FinancialItem `json:"equity"`
	Revenue     []FinancialItem `json:"revenue,omitempty"`
	Expenses    []FinancialItem `json:"expenses,omitempty"`
}

// Statement types
const (
	StatementBalanceSheet = "balance-sheet"
	StatementIncome       = "income"
	StatementCashFlow     = "cash-flow"
)

// FinancialStatement is a published statement for a year and optional quarter.
// Quarter 0 means a full-year statement.
type FinancialStatement struct {
	ID          uint          `gorm:"primaryKey" json:"-"`
	Year        int           `gorm:"not null;uniqueIndex:idx_statement_period" json:"year"`
	Quarter     int           `gorm:"not null;uniqueIndex:idx_statement_period" json:"quarter,omitempty"`
	Type        string        `gorm:"not null;size:32;uniqueIndex:idx_statement_period" json:"type"`
	Data        FinancialData `gorm:"type:text;serializer:json" json:"data"`
	DocumentURL string        `json:"documentUrl,omitempty"`
	CreatedAt   time.Time     `json:"-"`
	UpdatedAt   time.Time     `json:"-"`
}

// TableName specifies the table name
func (FinancialStatement) TableName() string {
	return "financial_statements"
}

// ComplianceFramework is a standard or regulation the company adheres to
type ComplianceFramework struct {
	ID          string    `gorm:"primaryKey;size:64" json:"id"`
	Position    int       `gorm:"not null" json:"-"`
	Framework   string    `gorm:"not null" json:"framework"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"not null" json:"status"` // certified, compliant or audited
	LastUpdated time.Time `json:"lastUpdated"`
	Coverage    []string  `gorm:"type:text;serializer:json" json:"coverage"`
	Details     []string  `gorm:"type:text;serializer:json" json:"details"`
}

// TableName specifies the table name
func (ComplianceFramework) TableName() string {
	return "compliance_frameworks"
}

// Address is a postal address
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}

// SocialLink is a profile on an external platform
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
}

// Leader is a member of the leadership team
type Leader struct {
	Name        string       `json:"name"`
	Position    string       `json:"position"`
	Bio         string       `json:"bio"`
	Image       string       `json:"image"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

// Company is the public company profile
type Company struct {
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	Description  string    `json:"description"`
	Founded      time.Time `json:"founded"`
	Headquarters Address   `json:"headquarters"`
	Leadership   []Leader  `json:"leadership"`
	Values       []string  `json:"values"`
	Phone        string    `json:"phone"`
	CIN          string    `json:"cin"`
	Email        string    `json:"email"`
}

// CompanyStat is a headline figure
type CompanyStat struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// ServiceCategory describes a group of services
type ServiceCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Region is a group of Indian states and union territories
type Region struct {
	Region string   `json:"region"`
	States []string `json:"states"`
}

// ComplianceFlags lists which regulations are covered in a region
type ComplianceFlags struct {
	LaborLaws      bool `json:"laborLaws"`
	TaxRegulations bool `json:"taxRegulations"`
	SocialSecurity bool `json:"socialSecurity"`
	DataProtection bool `json:"dataProtection"`
}

// RegionCoverage is the compliance coverage of a region
type RegionCoverage struct {
	Region       string          `json:"region"`
	Countries    []string        `json:"countries"`
	States       []string        `json:"states,omitempty"`
	Compliance   ComplianceFlags `json:"compliance"`
	LocalSupport bool            `json:"localSupport"`
}

// LegalDocument is a published legal template or policy
type LegalDocument struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Scope       string    `json:"scope"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Certification is a certificate held by the company
type Certification struct {
	Name          string    `json:"name"`
	Issuer        string    `json:"issuer"`
	ValidUntil    time.Time `json:"validUntil"`
	Scope         string    `json:"scope"`
	CertificateID string    `json:"certificateId"`
}
