package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("lanzar", func() {
	Title("Lanzar EOR API")
	Description("Contact intake for the Lanzar Employer of Record site: validates inquiries, scores and routes leads")
	Version("1.0.0")
	Server("api", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

// Common error types
var FieldViolation = Type("FieldViolation", func() {
	Description("A single failed validation rule")
	Attribute("field", String, "Offending field, empty when the body itself is invalid", func() {
		Example("email")
	})
	Attribute("code", String, "Violation kind", func() {
		Enum("invalid_type", "too_small", "too_big", "invalid_string", "invalid_enum_value", "unrecognized_keys")
	})
	Attribute("message", String, "Human-readable message", func() {
		Example("Please enter a valid email address")
	})
	Required("field", "code", "message")
})

var ValidationFailed = Type("ValidationFailed", func() {
	Description("Validation failure")
	Attribute("success", Boolean, "Always false", func() {
		Example(false)
	})
	Attribute("error", String, "Error message", func() {
		Example("Validation failed")
	})
	Attribute("details", ArrayOf(FieldViolation), "Every violation found")
	Required("success", "error", "details")
})

var InternalError = Type("InternalError", func() {
	Description("Generic failure; internal details are never exposed")
	Attribute("success", Boolean, "Always false")
	Attribute("error", String, "Error message", func() {
		Example("Internal server error. Please try again later.")
	})
	Required("success", "error")
})

var MethodNotAllowed = Type("MethodNotAllowed", func() {
	Attribute("error", String, "Error message", func() {
		Example("Method not allowed")
	})
	Required("error")
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "Service status", func() {
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("Lanzar EOR API")
	})
	Attribute("version", String, "Service version")
})

// Contact service
var _ = Service("contact", func() {
	Description("EOR contact form intake")
	Error("validation_failed", ValidationFailed)
	Error("method_not_allowed", MethodNotAllowed)
	Error("internal", InternalError)

	Method("submit", func() {
		Description("Validate, classify and record an inquiry")
		Payload(ContactSubmitPayload)
		Result(ContactSubmitResult)
		Error("validation_failed")
		Error("internal")
		HTTP(func() {
			POST("/api/contact")
			Response(StatusOK)
			Response("validation_failed", StatusBadRequest)
			Response("internal", StatusInternalServerError)
		})
	})
})

var ContactSubmitPayload = Type("ContactSubmitPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(2)
		MaxLength(50)
		Pattern(`^[a-zA-Z\s]+$`)
		Example("Maria Lopez")
	})
	Attribute("email", String, "Email address", func() {
		Format(FormatEmail)
		MinLength(5)
		MaxLength(100)
		Example("maria.lopez@example.es")
	})
	Attribute("company", String, "Company name", func() {
		MinLength(2)
		MaxLength(100)
	})
	Attribute("companyLocation", String, "Country or city of the company", func() {
		MinLength(2)
		MaxLength(100)
		Example("Spain")
	})
	Attribute("employeeCount", String, "Planned headcount in India", func() {
		Enum("1-5", "6-10", "11-25", "26-50", "51+")
	})
	Attribute("timeline", String, "Hiring timeline", func() {
		Enum("immediate", "1month", "3months", "6months", "exploring")
	})
	Attribute("subject", String, "Subject", func() {
		MinLength(5)
		MaxLength(100)
	})
	Attribute("message", String, "Message", func() {
		MinLength(10)
		MaxLength(1000)
	})
	Attribute("inquiryType", String, "Reason for getting in touch", func() {
		Enum("hiring", "services", "compliance", "partnership")
	})
	Required("name", "email", "company", "companyLocation", "employeeCount", "timeline", "subject", "message", "inquiryType")
})

var LeadResult = Type("LeadResult", func() {
	Attribute("submittedAt", String, "Acceptance time", func() {
		Format(FormatDateTime)
	})
	Attribute("inquiryType", String, "Inquiry type")
	Attribute("subject", String, "Subject")
	Attribute("leadId", String, "Lead identifier", func() {
		Pattern(`^EOR-\d+$`)
		Example("EOR-1741944413589")
	})
	Attribute("priority", String, "Lead priority", func() {
		Enum("high", "medium", "low")
	})
	Attribute("assignedTeam", String, "Team the lead is routed to", func() {
		Enum("Sales Team", "Solutions Team", "Legal Team", "Business Development", "General Support")
	})
	Required("submittedAt", "inquiryType", "subject", "leadId", "priority", "assignedTeam")
})

var ContactSubmitResult = ResultType("ContactSubmitResult", func() {
	Attribute("success", Boolean, "Always true")
	Attribute("message", String, "Acknowledgement")
	Attribute("data", LeadResult)
	Required("success", "message", "data")
})

// Site content
var _ = Service("site", func() {
	Description("Static contact page content")

	Method("options", func() {
		Description("Selectable values for the contact form")
		Result(InquiryOptionsResult)
		HTTP(func() {
			GET("/api/contact/options")
			Response(StatusOK)
		})
	})

	Method("info", func() {
		Description("Company contact details")
		Result(ContactInfoResult)
		HTTP(func() {
			GET("/api/contact/info")
			Response(StatusOK)
		})
	})
})

var OptionResult = Type("Option", func() {
	Attribute("value", String, "Submitted value")
	Attribute("label", String, "Display label")
	Required("value", "label")
})

var InquiryOptionsResult = ResultType("InquiryOptionsResult", func() {
	Attribute("employeeCount", ArrayOf(OptionResult))
	Attribute("timeline", ArrayOf(OptionResult))
	Attribute("inquiryType", ArrayOf(OptionResult))
})

var ContactInfoResult = ResultType("ContactInfoResult", func() {
	Attribute("email", String, "Contact email")
	Attribute("phone", String, "Contact phone")
	Attribute("address", MapOf(String, String), "Office address")
	Attribute("businessHours", MapOf(String, String), "Office hours")
	Attribute("socialLinks", ArrayOf(MapOf(String, String)), "Social profiles")
})

// Catalog
var NotFound = Type("NotFound", func() {
	Description("Unknown catalog entry")
	Attribute("success", Boolean, "Always false")
	Attribute("error", String, "Error message", func() {
		Example("Service not found")
	})
	Required("success", "error")
})

var BadRequest = Type("BadRequest", func() {
	Description("Malformed path parameter")
	Attribute("success", Boolean, "Always false")
	Attribute("error", String, "Error message", func() {
		Example("Year must be a positive number")
	})
	Required("success", "error")
})

var _ = Service("catalog", func() {
	Description("Company profile, services, products, pricing, compliance and financials")
	Error("not_found", NotFound)
	Error("bad_request", BadRequest)
	Error("internal", InternalError)

	Method("company", func() {
		Result(CompanyProfileResult)
		HTTP(func() {
			GET("/api/company")
			Response(StatusOK)
		})
	})

	Method("companyStats", func() {
		Result(ArrayOf(CompanyStat))
		HTTP(func() {
			GET("/api/company/stats")
			Response(StatusOK)
		})
	})

	Method("services", func() {
		Description("Services in display order")
		Result(ArrayOf(ServiceResult))
		Error("internal")
		HTTP(func() {
			GET("/api/services")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("categories", func() {
		Result(ArrayOf(CategoryResult))
		Error("internal")
		HTTP(func() {
			GET("/api/services/categories")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("locations", func() {
		Result(ArrayOf(RegionResult))
		HTTP(func() {
			GET("/api/services/locations")
			Response(StatusOK)
		})
	})

	Method("service", func() {
		Description("One service with its pricing tiers")
		Payload(func() {
			Attribute("id", String, "Service id", func() {
				Example("employment")
			})
			Required("id")
		})
		Result(ServiceDetailResult)
		Error("not_found")
		Error("internal")
		HTTP(func() {
			GET("/api/services/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("products", func() {
		Result(ArrayOf(ProductResult))
		Error("internal")
		HTTP(func() {
			GET("/api/products")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("product", func() {
		Payload(func() {
			Attribute("id", String, "Product id", func() {
				Example("clavehr")
			})
			Required("id")
		})
		Result(ProductResult)
		Error("not_found")
		Error("internal")
		HTTP(func() {
			GET("/api/products/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("pricing", func() {
		Result(PricingCatalogResult)
		Error("internal")
		HTTP(func() {
			GET("/api/pricing")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("servicePricing", func() {
		Payload(func() {
			Attribute("id", String, "Service id")
			Required("id")
		})
		Result(ServicePricingResult)
		Error("not_found")
		Error("internal")
		HTTP(func() {
			GET("/api/pricing/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("compliance", func() {
		Result(ComplianceOverviewResult)
		Error("internal")
		HTTP(func() {
			GET("/api/compliance")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("framework", func() {
		Payload(func() {
			Attribute("id", String, "Framework id", func() {
				Example("gdpr")
			})
			Required("id")
		})
		Result(FrameworkResult)
		Error("not_found")
		Error("internal")
		HTTP(func() {
			GET("/api/compliance/frameworks/{id}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("statements", func() {
		Description("Financial statements, newest period first")
		Result(ArrayOf(StatementResult))
		Error("internal")
		HTTP(func() {
			GET("/api/financials")
			Response(StatusOK)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("latestStatement", func() {
		Result(StatementResult)
		Error("not_found")
		Error("internal")
		HTTP(func() {
			GET("/api/financials/latest")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
			Response("internal", StatusInternalServerError)
		})
	})

	Method("statementForYear", func() {
		Description("Newest statement published for a year")
		Payload(func() {
			Attribute("year", String, "Four digit year", func() {
				Example("2025")
			})
			Required("year")
		})
		Result(StatementResult)
		Error("bad_request")
		Error("not_found")
		Error("internal")
		HTTP(func() {
			GET("/api/financials/{year}")
			Response(StatusOK)
			Response("bad_request", StatusBadRequest)
			Response("not_found", StatusNotFound)
			Response("internal", StatusInternalServerError)
		})
	})
})

var Feature = Type("Feature", func() {
	Attribute("title", String)
	Attribute("description", String)
	Attribute("icon", String)
	Required("title", "description", "icon")
})

var Image = Type("Image", func() {
	Attribute("url", String)
	Attribute("alt", String)
	Attribute("type", String, func() {
		Enum("hero", "screenshot", "diagram", "feature", "logo")
	})
	Required("url", "alt", "type")
})

var CompanyStat = Type("CompanyStat", func() {
	Attribute("label", String)
	Attribute("value", String, func() {
		Example("50+")
	})
	Attribute("description", String)
	Required("label", "value", "description")
})

var CompanyProfileResult = ResultType("CompanyProfileResult", func() {
	Attribute("company", MapOf(String, Any), "Company profile")
	Attribute("stats", ArrayOf(CompanyStat))
	Required("company", "stats")
})

var ServiceResult = ResultType("ServiceResult", func() {
	Attribute("id", String)
	Attribute("name", String)
	Attribute("tagline", String)
	Attribute("description", String)
	Attribute("features", ArrayOf(Feature))
	Attribute("category", String, func() {
		Enum("core", "supplementary", "protection")
	})
	Attribute("status", String)
	Attribute("coverage", ArrayOf(String))
	Attribute("pricing", MapOf(String, Any), "Starting price hint")
	Attribute("images", ArrayOf(Image))
	Required("id", "name", "category", "status")
})

var PricingTierResult = Type("PricingTier", func() {
	Attribute("id", String)
	Attribute("name", String)
	Attribute("amount", Int64, "Whole currency units; 0 means custom pricing")
	Attribute("currency", String, func() {
		Enum("INR", "USD", "EUR")
	})
	Attribute("period", String, func() {
		Enum("month", "year", "one-time")
	})
	Attribute("unit", String, func() {
		Enum("employee", "project", "service")
	})
	Attribute("description", String)
	Attribute("features", ArrayOf(String))
	Attribute("popular", Boolean)
	Required("id", "name", "amount", "currency", "period", "unit")
})

var ServiceDetailResult = ResultType("ServiceDetailResult", func() {
	Extend(ServiceResult)
	Attribute("tiers", ArrayOf(PricingTierResult))
	Attribute("primaryTier", PricingTierResult, "Popular tier, else the first")
})

var CategoryResult = ResultType("CategoryResult", func() {
	Attribute("id", String)
	Attribute("name", String)
	Attribute("description", String)
	Attribute("services", ArrayOf(ServiceResult))
	Required("id", "name", "services")
})

var RegionResult = Type("Region", func() {
	Attribute("region", String)
	Attribute("states", ArrayOf(String))
	Required("region", "states")
})

var ProductResult = ResultType("ProductResult", func() {
	Attribute("id", String)
	Attribute("name", String)
	Attribute("tagline", String)
	Attribute("description", String)
	Attribute("features", ArrayOf(Feature))
	Attribute("website", String, func() {
		Format(FormatURI)
	})
	Attribute("category", String, func() {
		Enum("hr", "storytelling", "development")
	})
	Attribute("status", String)
	Attribute("images", ArrayOf(Image))
	Required("id", "name", "category", "status")
})

var ServicePricingResult = ResultType("ServicePricingResult", func() {
	Attribute("serviceId", String)
	Attribute("tiers", ArrayOf(PricingTierResult))
	Required("serviceId", "tiers")
})

var PricingCatalogResult = ResultType("PricingCatalogResult", func() {
	Attribute("services", ArrayOf(ServicePricingResult))
	Attribute("enterprise", PricingTierResult)
	Required("services", "enterprise")
})

var FrameworkResult = ResultType("FrameworkResult", func() {
	Attribute("id", String)
	Attribute("framework", String)
	Attribute("description", String)
	Attribute("status", String, func() {
		Enum("certified", "compliant", "audited")
	})
	Attribute("lastUpdated", String, func() {
		Format(FormatDateTime)
	})
	Attribute("coverage", ArrayOf(String))
	Attribute("details", ArrayOf(String))
	Required("id", "framework", "status")
})

var ComplianceOverviewResult = ResultType("ComplianceOverviewResult", func() {
	Attribute("frameworks", ArrayOf(FrameworkResult))
	Attribute("coverage", ArrayOf(MapOf(String, Any)), "Compliance coverage per region")
	Attribute("legalDocuments", ArrayOf(MapOf(String, Any)))
	Attribute("certifications", ArrayOf(MapOf(String, Any)))
	Required("frameworks", "coverage", "legalDocuments", "certifications")
})

var FinancialItem = Type("FinancialItem", func() {
	Attribute("category", String)
	Attribute("amount", Int64)
	Attribute("currency", String)
	Attribute("change", Float64, "Change from the previous period, in percent")
	Required("category", "amount", "currency")
})

var StatementResult = ResultType("StatementResult", func() {
	Attribute("year", Int)
	Attribute("quarter", Int, "Omitted for full-year statements", func() {
		Minimum(1)
		Maximum(4)
	})
	Attribute("type", String, func() {
		Enum("balance-sheet", "income", "cash-flow")
	})
	Attribute("data", func() {
		Attribute("assets", ArrayOf(FinancialItem))
		Attribute("liabilities", ArrayOf(FinancialItem))
		Attribute("equity", ArrayOf(FinancialItem))
		Attribute("revenue", ArrayOf(FinancialItem))
		Attribute("expenses", ArrayOf(FinancialItem))
		Required("assets", "liabilities", "equity")
	})
	Attribute("documentUrl", String)
	Required("year", "type", "data")
})
