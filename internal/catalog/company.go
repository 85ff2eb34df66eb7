package catalog

import (
	"time"

	"lanzar/internal/domain"
)

func linkedIn(profile string) []domain.SocialLink {
	return []domain.SocialLink{{Platform: "LinkedIn", URL: "https://linkedin.com/in/" + profile, Icon: "linkedin"}}
}

// Company is the public company profile
var Company = domain.Company{
	Name:        "Lanzar",
	Tagline:     "Your Gateway to India's Top Talent",
	Description: "Lanzar is an Employer of Record (EOR) service provider in India, designed to support US and European companies that wish to hire talent in India without setting up their own legal entity. By acting as the legal employer, we ensure full compliance with Indian labor laws while you retain complete control over day-to-day work and performance management.",
	Founded:     date(2024, time.November, 29),
	Headquarters: domain.Address{
		Street:     "Vikpalla Software Private Limited, Corporate Membership No 031, WeWork Manyata Mahogany, Embassy Manyata Business Park, F2 Block-Mahogany Outer Ring Road, Nagavara",
		City:       "Bangalore",
		State:      "Karnataka",
		Country:    "India",
		PostalCode: "560077",
	},
	Leadership: []domain.Leader{
		{
			Name:        "Ramya Balendiran",
			Position:    "Founder & CEO",
			Bio:         "Founder of Lanzar, India's trusted Employer of Record service provider for US and European companies. Ramya is a visionary leader with over 10 years of experience in business strategy, HR compliance, and international employment solutions. Passionate about enabling global companies to access India's top talent seamlessly.",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			SocialLinks: linkedIn("ramya-balendiran"),
		},
		{
			Name:        "Manibabu, Pippalla",
			Position:    "Co-Founder & CTO",
			Bio:         "Co-Founder of Lanzar, specializing in HR technology and compliance automation. Manibabu is a technology expert with deep expertise in payroll systems, compliance automation, and scalable HR infrastructure. Also leads the development of Clave HR, our integrated HRMS platform for enhanced workforce engagement.",
			Image:       "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
			SocialLinks: linkedIn("pippalla"),
		},
		{
			Name:        "Visweswara Srinivas, Pippalla",
			Position:    "GM Finance & Strategy",
			Bio:         "GM Finance & Strategy of Lanzar, overseeing financial compliance and regulatory strategy for EOR operations. Visweswara is a finance strategist with expertise in international payroll, tax compliance, and regulatory frameworks. Ensures risk-free operations and maintains perfect compliance records for our global clients.",
			Image:       "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face",
			SocialLinks: linkedIn("visweswara-srinivas-pippalla-636398157"),
		},
	},
	Values: []string{"Compliance", "Transparency", "Reliability", "Innovation", "Integrity", "Excellence"},
	Phone:  "+91 72595 88047",
	CIN:    "U62011KA2024PTC195460",
	Email:  "contact@lanzar.in",
}

// Stats are the headline figures shown with the company profile
var Stats = []domain.CompanyStat{
	{Label: "US & EU Companies", Value: "50+", Description: "Successfully expanded to India"},
	{Label: "Employees Managed", Value: "1000+", Description: "Across India through our EOR services"},
	{Label: "Compliance Rate", Value: "100%", Description: "Risk-free operations guaranteed"},
}
