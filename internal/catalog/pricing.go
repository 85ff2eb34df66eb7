package catalog

import "lanzar/internal/domain"

func monthlyPerEmployee(serviceID, id, name string, amount int64, description string, popular bool, features ...string) domain.PricingTier {
	return domain.PricingTier{
		ID:          id,
		ServiceID:   serviceID,
		Name:        name,
		Amount:      amount,
		Currency:    "INR",
		Period:      "month",
		Unit:        "employee",
		Description: description,
		Features:    features,
		Popular:     popular,
	}
}

// PricingTiers are the priced plans of every service
var PricingTiers = []domain.PricingTier{
	monthlyPerEmployee("employment", "employment-standard", "Standard Employment", 5000,
		"Complete employment management for your Indian workforce", true,
		"Employment contract creation",
		"HR administration",
		"Onboarding & offboarding",
		"Performance management support",
		"Employee helpdesk",
		"Compliance monitoring",
	),
	monthlyPerEmployee("payroll", "payroll-standard", "Payroll Management", 2500,
		"Comprehensive payroll processing and tax management", false,
		"Monthly payroll processing",
		"Tax calculations and filings",
		"Statutory compliance (EPF, ESI)",
		"Salary slips and certificates",
		"Year-end tax documents",
		"Payroll analytics and reporting",
	),
	monthlyPerEmployee("compliance", "compliance-standard", "Legal & Compliance", 1500,
		"Full legal compliance and regulatory management", false,
		"Labour law compliance",
		"Regulatory filings",
		"Legal documentation",
		"Compliance audits",
		"Risk assessments",
		"Legal advisory support",
	),
	monthlyPerEmployee("benefits", "benefits-standard", "Benefits Administration", 3000,
		"Comprehensive employee benefits management", false,
		"Health insurance management",
		"Retirement planning (EPF/NPS)",
		"Leave management",
		"Wellness programs",
		"Employee assistance programs",
		"Benefits enrollment and claims",
	),
	monthlyPerEmployee("hr-support", "hr-support-standard", "HR Support Services", 2000,
		"Dedicated HR support and employee relations", false,
		"Employee relations management",
		"Performance review coordination",
		"Training and development",
		"Conflict resolution",
		"Policy development",
		"HR analytics and insights",
	),
	monthlyPerEmployee("risk-management", "risk-management-standard", "Risk Management", 1000,
		"Comprehensive risk assessment and mitigation", false,
		"Employment risk assessment",
		"Insurance coverage management",
		"Liability protection",
		"Incident management",
		"Risk reporting and analytics",
		"Emergency response planning",
	),
}

// EnterpriseTier is the contact-us plan. An amount of 0 means custom pricing.
var EnterpriseTier = domain.PricingTier{
	ID:          "enterprise",
	Name:        "Enterprise",
	Currency:    "INR",
	Period:      "month",
	Unit:        "service",
	Description: "Custom solutions for large organizations",
	Features: []string{
		"Custom service configurations",
		"Dedicated account management",
		"Advanced compliance support",
		"Priority support and SLAs",
		"Custom integrations",
		"Volume discounts available",
	},
}
