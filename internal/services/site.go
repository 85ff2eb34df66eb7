package services

import (
	"context"

	"lanzar/internal/domain"
)

// BusinessHours lists opening hours per weekday; closed days are omitted
type BusinessHours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`
}

// ContactInfo is how visitors can reach the company outside the form
type ContactInfo struct {
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Address       domain.Address      `json:"address"`
	BusinessHours BusinessHours       `json:"businessHours"`
	SocialMedia   []domain.SocialLink `json:"socialMedia"`
}

// InquiryOptions are the choices the contact form offers for its enum fields
type InquiryOptions struct {
	EmployeeCount []domain.Option `json:"employeeCount"`
	Timeline      []domain.Option `json:"timeline"`
	InquiryType   []domain.Option `json:"inquiryType"`
}

var companyContact = ContactInfo{
	Email: "contact@lanzar.in",
	Phone: "+91 72595 88047",
	Address: domain.Address{
		Street:     "Block B, G4, Aparna Maple, Kanarayanapura Main Road, R K Hegde Nagar",
		City:       "Bangalore",
		State:      "Karnataka",
		Country:    "India",
		PostalCode: "560077",
	},
	BusinessHours: BusinessHours{
		Monday:    "9:00 AM - 6:00 PM",
		Tuesday:   "9:00 AM - 6:00 PM",
		Wednesday: "9:00 AM - 6:00 PM",
		Thursday:  "9:00 AM - 6:00 PM",
		Friday:    "9:00 AM - 6:00 PM",
		Saturday:  "10:00 AM - 2:00 PM",
	},
	SocialMedia: []domain.SocialLink{
		{Platform: "LinkedIn", URL: "https://linkedin.com/company/lanzar", Icon: "linkedin"},
		{Platform: "Twitter", URL: "https://twitter.com/lanzareor", Icon: "twitter"},
		{Platform: "GitHub", URL: "https://github.com/lanzar", Icon: "github"},
		{Platform: "Email", URL: "mailto:contact@lanzar.in", Icon: "mail"},
	},
}

// SiteService serves static company content
type SiteService struct{}

// NewSiteService creates a new site service
func NewSiteService() *SiteService {
	return &SiteService{}
}

// ContactInfo returns the company contact details
func (s *SiteService) ContactInfo(ctx context.Context) (*ContactInfo, error) {
	info := companyContact
	info.SocialMedia = append([]domain.SocialLink(nil), companyContact.SocialMedia...)
	return &info, nil
}

// InquiryOptions returns the selectable values for the contact form
func (s *SiteService) InquiryOptions(ctx context.Context) (*InquiryOptions, error) {
	return &InquiryOptions{
		EmployeeCount: append([]domain.Option(nil), domain.EmployeeCountOptions...),
		Timeline:      append([]domain.Option(nil), domain.TimelineOptions...),
		InquiryType:   append([]domain.Option(nil), domain.InquiryTypeOptions...),
	}, nil
}
