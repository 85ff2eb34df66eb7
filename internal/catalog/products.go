package catalog

import "lanzar/internal/domain"

func heroAndScreenshot(photo, heroAlt, shotAlt string) []domain.Image {
	const base = "https://images.unsplash.com/"
	return []domain.Image{
		{URL: base + photo + "?w=800&h=600&fit=crop&crop=center", Alt: heroAlt, Type: "hero"},
		{URL: base + photo + "?w=400&h=300&fit=crop&crop=center", Alt: shotAlt, Type: "screenshot"},
	}
}

// Products are the company's software products in display order
var Products = []domain.Product{
	{
		ID:          "clavehr",
		Name:        "ClaveHR",
		Tagline:     "AI-Powered HR Super App",
		Description: "Revolutionary HR management platform that leverages artificial intelligence to streamline recruitment, employee management, and organizational workflows. Transform your HR operations with intelligence and data-driven insights.",
		Features: []domain.Feature{
			{Title: "AI Recruitment", Description: "Intelligent candidate screening and matching", Icon: "brain"},
			{Title: "Employee Analytics", Description: "Data-driven workforce insights", Icon: "chart"},
			{Title: "Automated Workflows", Description: "Streamlined HR processes", Icon: "workflow"},
			{Title: "Performance Tracking", Description: "Real-time employee performance monitoring", Icon: "target"},
		},
		Website:  "https://www.clavehr.in",
		Category: "hr",
		Status:   "active",
		Images:   heroAndScreenshot("photo-1551434678-e076c223a692", "ClaveHR HR Management Dashboard", "ClaveHR Interface Screenshot"),
	},
	{
		ID:          "tymlnkd",
		Name:        "Tymlnkd",
		Tagline:     "Chronological Story Website",
		Description: "Innovative storytelling platform that presents narratives in a unique chronological format. Perfect for personal stories, business journeys, project timelines, and historical documentation with beautiful visual presentation.",
		Features: []domain.Feature{
			{Title: "Timeline View", Description: "Beautiful chronological story presentation", Icon: "timeline"},
			{Title: "Rich Media", Description: "Support for images, videos, and documents", Icon: "media"},
			{Title: "Interactive Elements", Description: "Engaging user interactions", Icon: "interaction"},
			{Title: "Responsive Design", Description: "Perfect on all devices", Icon: "responsive"},
		},
		Website:  "https://www.tymlnkd.com",
		Category: "storytelling",
		Status:   "active",
		Images:   heroAndScreenshot("photo-1611224923853-80b023f02d71", "Tymlnkd Timeline Interface", "Tymlnkd Story View"),
	},
	{
		ID:          "lanzar",
		Name:        "Lanzar",
		Tagline:     "Rapid Software Development",
		Description: "Our elite software development wing that delivers high-quality applications in just one month. From concept to deployment, we accelerate your digital transformation with proven methodologies and cutting-edge technologies.",
		Features: []domain.Feature{
			{Title: "30-Day Delivery", Description: "Complete applications in one month", Icon: "clock"},
			{Title: "Full-Stack Solutions", Description: "End-to-end development services", Icon: "stack"},
			{Title: "Modern Tech Stack", Description: "Latest technologies and frameworks", Icon: "tech"},
			{Title: "Quality Assurance", Description: "Rigorous testing and optimization", Icon: "quality"},
		},
		Website:  "https://www.lanzar.in",
		Category: "development",
		Status:   "active",
		Images:   heroAndScreenshot("photo-1461749280684-dccba630e2f6", "Lanzar Development Process", "Lanzar Project Dashboard"),
	},
}
