package catalog

import (
	"time"

	"lanzar/internal/domain"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Frameworks are the compliance frameworks in display order
var Frameworks = []domain.ComplianceFramework{
	{
		ID:          "iso-27001",
		Framework:   "ISO 27001",
		Description: "Information Security Management System",
		Status:      "certified",
		LastUpdated: date(2024, time.December, 1),
		Coverage:    []string{"Global"},
		Details: []string{
			"Internationally recognized standard for information security management",
			"Annual third-party audits and assessments",
			"Comprehensive risk management framework",
			"Continuous monitoring and improvement",
		},
	},
	{
		ID:          "soc-2-type-ii",
		Framework:   "SOC 2 Type II",
		Description: "Security, Availability, and Confidentiality",
		Status:      "audited",
		LastUpdated: date(2024, time.November, 15),
		Coverage:    []string{"United States", "Europe"},
		Details: []string{
			"Regular third-party audits for security and availability controls",
			"Comprehensive evaluation of security policies and procedures",
			"Annual compliance verification and reporting",
			"Focus on data protection and system availability",
		},
	},
	{
		ID:          "gdpr",
		Framework:   "GDPR",
		Description: "General Data Protection Regulation",
		Status:      "compliant",
		LastUpdated: date(2024, time.December, 1),
		Coverage:    []string{"European Union", "Global Operations"},
		Details: []string{
			"Full compliance with European data protection requirements",
			"Data minimization and purpose limitation practices",
			"Individual rights management and data portability",
			"Privacy by design implementation",
		},
	},
	{
		ID:          "pci-dss",
		Framework:   "PCI DSS",
		Description: "Payment Card Industry Data Security Standard",
		Status:      "compliant",
		LastUpdated: date(2024, time.October, 30),
		Coverage:    []string{"Global"},
		Details: []string{
			"Secure handling of payment and financial information",
			"Regular security assessments and penetration testing",
			"Encrypted data transmission and storage",
			"Comprehensive access control measures",
		},
	},
	{
		ID:          "india-labour-laws",
		Framework:   "India Labour Laws",
		Description: "Complete Indian Employment Law Compliance",
		Status:      "certified",
		LastUpdated: date(2024, time.December, 15),
		Coverage:    []string{"All Indian States and Union Territories"},
		Details: []string{
			"Industrial Relations Code, 2020 compliance",
			"Wages Code, 2019 implementation",
			"Social Security Code, 2020 adherence",
			"Occupational Safety Code, 2020 compliance",
			"State-specific regulations and requirements",
			"Regular updates for changing regulations",
		},
	},
}

var fullCompliance = domain.ComplianceFlags{LaborLaws: true, TaxRegulations: true, SocialSecurity: true, DataProtection: true}

func indianRegion(name string, states ...string) domain.RegionCoverage {
	return domain.RegionCoverage{
		Region:       name,
		Countries:    []string{"India"},
		States:       states,
		Compliance:   fullCompliance,
		LocalSupport: true,
	}
}

// Coverage is the compliance coverage per region
var Coverage = []domain.RegionCoverage{
	indianRegion("North India", "Delhi", "Punjab", "Haryana", "Himachal Pradesh", "Uttarakhand", "Uttar Pradesh", "Rajasthan", "Jammu and Kashmir", "Ladakh"),
	indianRegion("South India", "Karnataka", "Tamil Nadu", "Andhra Pradesh", "Telangana", "Kerala", "Puducherry"),
	indianRegion("West India", "Maharashtra", "Gujarat", "Goa", "Rajasthan", "Dadra and Nagar Haveli and Daman and Diu"),
	indianRegion("East India", "West Bengal", "Bihar", "Jharkhand", "Odisha"),
	indianRegion("Northeast India", "Assam", "Arunachal Pradesh", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Sikkim", "Tripura"),
	indianRegion("Central India", "Madhya Pradesh", "Chhattisgarh"),
}

// LegalDocuments are the published legal templates and policies
var LegalDocuments = []domain.LegalDocument{
	{
		Title:       "Employment Agreement Templates",
		Description: "Standard employment contracts compliant with Indian labor laws",
		Scope:       "All Indian states and union territories",
		LastUpdated: date(2024, time.December, 1),
	},
	{
		Title:       "Privacy Policy Framework",
		Description: "Comprehensive privacy policies for employee data protection",
		Scope:       "Global with India-specific provisions",
		LastUpdated: date(2024, time.November, 15),
	},
	{
		Title:       "Data Processing Agreements",
		Description: "GDPR-compliant data processing agreements for international clients",
		Scope:       "European Union and global clients",
		LastUpdated: date(2024, time.October, 30),
	},
	{
		Title:       "Terms of Service",
		Description: "Service agreements covering EOR services and responsibilities",
		Scope:       "Global EOR services",
		LastUpdated: date(2024, time.December, 10),
	},
}

// Certifications are the certificates currently held
var Certifications = []domain.Certification{
	{
		Name:          "ISO 27001:2013",
		Issuer:        "BSI (British Standards Institution)",
		ValidUntil:    date(2025, time.December, 1),
		Scope:         "Information Security Management System",
		CertificateID: "ISO27001-2024-LZ-001",
	},
	{
		Name:          "SOC 2 Type II",
		Issuer:        "Ernst & Young",
		ValidUntil:    date(2025, time.November, 15),
		Scope:         "Security, Availability, and Confidentiality",
		CertificateID: "SOC2-2024-EY-002",
	},
	{
		Name:          "India Labour Compliance Certificate",
		Issuer:        "Ministry of Labour and Employment, Government of India",
		ValidUntil:    date(2025, time.December, 31),
		Scope:         "All Indian Labour Laws and Regulations",
		CertificateID: "IND-LAB-2024-003",
	},
}
