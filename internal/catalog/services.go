// Package catalog holds the published site content: the service, product,
// pricing, compliance and financial records seeded into the database, and the
// company profile served as-is.
package catalog

import "lanzar/internal/domain"

// Categories describes the service groups in display order
var Categories = []domain.ServiceCategory{
	{ID: domain.CategoryCore, Name: "Core EOR Services", Description: "Essential services for employment and compliance"},
	{ID: domain.CategorySupplementary, Name: "Supplementary Services", Description: "Additional HR and benefits support"},
	{ID: domain.CategoryProtection, Name: "Risk Protection", Description: "Legal and liability protection services"},
}

// Locations are the regions where hiring is supported
var Locations = []domain.Region{
	{Region: "North India", States: []string{"Delhi", "Haryana", "Punjab", "Uttar Pradesh", "Uttarakhand", "Himachal Pradesh", "Jammu & Kashmir", "Ladakh"}},
	{Region: "West India", States: []string{"Maharashtra", "Gujarat", "Rajasthan", "Goa", "Madhya Pradesh", "Chhattisgarh", "Daman & Diu", "Dadra & Nagar Haveli"}},
	{Region: "South India", States: []string{"Karnataka", "Tamil Nadu", "Andhra Pradesh", "Telangana", "Kerala", "Puducherry", "Lakshadweep"}},
	{Region: "East India", States: []string{"West Bengal", "Odisha", "Jharkhand", "Bihar", "Sikkim", "Andaman & Nicobar Islands"}},
	{Region: "Northeast India", States: []string{"Assam", "Arunachal Pradesh", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Tripura"}},
}

func hero(url, alt string) []domain.Image {
	return []domain.Image{{URL: url, Alt: alt, Type: "hero"}}
}

func perEmployee(price string) domain.PriceHint {
	return domain.PriceHint{Type: "per_employee", StartingPrice: price, BillingCycle: "monthly"}
}

// Services are the EOR services in display order
var Services = []domain.Service{
	{
		ID:          "employment",
		Name:        "Employment Services",
		Tagline:     "Compliant Hiring Across India",
		Description: "Hire top talent anywhere in India without establishing a local entity. We handle all employment contracts, onboarding, and legal compliance, ensuring your team is properly employed according to Indian labor laws.",
		Features: []domain.Feature{
			{Title: "Employment Contracts", Description: "Legally compliant Indian employment contracts", Icon: "contract"},
			{Title: "Employee Onboarding", Description: "Streamlined onboarding process and documentation", Icon: "user-plus"},
			{Title: "Labor Law Compliance", Description: "Full adherence to Indian labor regulations", Icon: "shield-check"},
			{Title: "Employee Relations", Description: "Professional HR support and conflict resolution", Icon: "users"},
		},
		Category: domain.CategoryCore,
		Status:   "active",
		Coverage: []string{"All Indian States", "Union Territories"},
		Pricing:  perEmployee("$80"),
		Images:   hero("https://images.unsplash.com/photo-1521791136064-7986c2920216?w=800&h=600&fit=crop&crop=center", "Employment Services India"),
	},
	{
		ID:          "payroll",
		Name:        "Payroll Management",
		Tagline:     "Accurate Indian Payroll Processing",
		Description: "Complete payroll management service including salary processing, tax deductions, EPF, ESI, and statutory compliance. Ensure timely and accurate payments while maintaining full compliance with Indian payroll regulations.",
		Features: []domain.Feature{
			{Title: "Salary Processing", Description: "Monthly salary calculations and disbursements", Icon: "calculator"},
			{Title: "Tax Management", Description: "TDS calculations and Form 16 generation", Icon: "receipt-tax"},
			{Title: "Statutory Compliance", Description: "EPF, ESI, Professional Tax management", Icon: "file-check"},
			{Title: "Payroll Reports", Description: "Detailed payroll analytics and reporting", Icon: "chart-bar"},
		},
		Category: domain.CategoryCore,
		Status:   "active",
		Coverage: []string{"Pan India", "All States & UTs"},
		Pricing:  perEmployee("$30"),
		Images:   hero("https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=800&h=600&fit=crop&crop=center", "Payroll Management India"),
	},
	{
		ID:          "compliance",
		Name:        "Legal & Compliance",
		Tagline:     "Complete Regulatory Compliance",
		Description: "Navigate India's complex regulatory landscape with confidence. We ensure full compliance with labor laws, tax regulations, and statutory requirements across all states and union territories.",
		Features: []domain.Feature{
			{Title: "Labor Law Compliance", Description: "Shops & Establishments, Contract Labor Act", Icon: "scale"},
			{Title: "Tax Compliance", Description: "Income Tax, GST, and state tax obligations", Icon: "receipt"},
			{Title: "Statutory Filings", Description: "Timely submission of all required forms", Icon: "file-text"},
			{Title: "Legal Updates", Description: "Stay updated with changing regulations", Icon: "bell"},
		},
		Category: domain.CategoryCore,
		Status:   "active",
		Coverage: []string{"Central Laws", "State Regulations", "Local Compliance"},
		Pricing:  perEmployee("$18"),
		Images:   hero("https://images.unsplash.com/photo-1589829545856-d10d557cf95f?w=800&h=600&fit=crop&crop=center", "Legal Compliance India"),
	},
	{
		ID:          "benefits",
		Name:        "Benefits Administration",
		Tagline:     "Comprehensive Employee Benefits",
		Description: "Manage employee benefits including health insurance, provident fund, gratuity, and other statutory and voluntary benefits. Provide competitive benefit packages that attract and retain top talent.",
		Features: []domain.Feature{
			{Title: "Health Insurance", Description: "Group health insurance plans and claims", Icon: "heart"},
			{Title: "Provident Fund", Description: "EPF account management and tracking", Icon: "piggy-bank"},
			{Title: "Gratuity Management", Description: "Gratuity calculations and fund management", Icon: "gift"},
			{Title: "Leave Management", Description: "Annual, sick, and statutory leave tracking", Icon: "calendar"},
		},
		Category: domain.CategorySupplementary,
		Status:   "active",
		Coverage: []string{"Insurance Partners", "EPF Organization", "Gratuity Trust"},
		Pricing:  perEmployee("$36"),
		Images:   hero("https://images.unsplash.com/photo-1576091160399-112ba8d25d1f?w=800&h=600&fit=crop&crop=center", "Employee Benefits India"),
	},
	{
		ID:          "hr-support",
		Name:        "HR Support Services",
		Tagline:     "Dedicated HR Partnership",
		Description: "Get dedicated HR support for performance management, employee engagement, policy development, and workforce planning. Scale your team with professional HR expertise.",
		Features: []domain.Feature{
			{Title: "Performance Management", Description: "Appraisal systems and goal tracking", Icon: "target"},
			{Title: "Policy Development", Description: "HR policies aligned with Indian laws", Icon: "book-open"},
			{Title: "Employee Engagement", Description: "Surveys, feedback, and engagement programs", Icon: "heart-handshake"},
			{Title: "Workforce Planning", Description: "Strategic hiring and resource planning", Icon: "users-cog"},
		},
		Category: domain.CategorySupplementary,
		Status:   "active",
		Coverage: []string{"Remote HR Support", "On-site Consultations", "Training Programs"},
		Pricing:  perEmployee("$24"),
		Images:   hero("https://images.unsplash.com/photo-1600880292203-757bb62b4baf?w=800&h=600&fit=crop&crop=center", "HR Support Services"),
	},
	{
		ID:          "risk-management",
		Name:        "Risk & Liability Management",
		Tagline:     "Protect Your Business Interests",
		Description: "Minimize employment-related risks and liabilities with our comprehensive risk management services. We assume legal responsibilities and provide insurance coverage for employment disputes.",
		Features: []domain.Feature{
			{Title: "Employment Liability", Description: "We assume employment-related legal risks", Icon: "shield"},
			{Title: "Dispute Resolution", Description: "Professional handling of employment disputes", Icon: "gavel"},
			{Title: "Insurance Coverage", Description: "Comprehensive employment liability insurance", Icon: "umbrella"},
			{Title: "Legal Support", Description: "Expert legal counsel for employment matters", Icon: "balance-scale"},
		},
		Category: domain.CategoryProtection,
		Status:   "active",
		Coverage: []string{"Employment Disputes", "Labor Court", "Legal Consultation"},
		Pricing:  perEmployee("$12"),
		Images:   hero("https://images.unsplash.com/photo-1551836022-deb4988cc6c0?w=800&h=600&fit=crop&crop=center", "Risk Management Services"),
	},
}
