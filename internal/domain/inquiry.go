package domain

import (
	"time"
)

// InquiryType is the reason a visitor gives for getting in touch
type InquiryType string

const (
	InquiryHiring      InquiryType = "hiring"
	InquiryServices    InquiryType = "services"
	InquiryCompliance  InquiryType = "compliance"
	InquiryPartnership InquiryType = "partnership"
)

// Employee count buckets offered by the contact form
const (
	EmployeeCount1To5   = "1-5"
	EmployeeCount6To10  = "6-10"
	EmployeeCount11To25 = "11-25"
	EmployeeCount26To50 = "26-50"
	EmployeeCount51Plus = "51+"
)

// Hiring timelines offered by the contact form
const (
	TimelineImmediate = "immediate"
	Timeline1Month    = "1month"
	Timeline3Months   = "3months"
	Timeline6Months   = "6months"
	TimelineExploring = "exploring"
)

// Option is a selectable value with its display label
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// EmployeeCountOptions lists the accepted employeeCount values in display order
var EmployeeCountOptions = []Option{
	{Value: EmployeeCount1To5, Label: "1-5 employees"},
	{Value: EmployeeCount6To10, Label: "6-10 employees"},
	{Value: EmployeeCount11To25, Label: "11-25 employees"},
	{Value: EmployeeCount26To50, Label: "26-50 employees"},
	{Value: EmployeeCount51Plus, Label: "51+ employees"},
}

// TimelineOptions lists the accepted timeline values in display order
var TimelineOptions = []Option{
	{Value: TimelineImmediate, Label: "Immediately (within 1 week)"},
	{Value: Timeline1Month, Label: "Within 1 month"},
	{Value: Timeline3Months, Label: "Within 3 months"},
	{Value: Timeline6Months, Label: "Within 6 months"},
	{Value: TimelineExploring, Label: "Just exploring options"},
}

// InquiryTypeOptions lists the accepted inquiryType values in display order
var InquiryTypeOptions = []Option{
	{Value: string(InquiryHiring), Label: "Start Hiring in India"},
	{Value: string(InquiryServices), Label: "EOR Service Information"},
	{Value: string(InquiryCompliance), Label: "Compliance Questions"},
	{Value: string(InquiryPartnership), Label: "Partnership Opportunity"},
}

// Inquiry represents a validated contact form submission.
// Values are only produced by ValidateInquiry and are never mutated afterwards.
type Inquiry struct {
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Company         string      `json:"company"`
	CompanyLocation string      `json:"companyLocation"`
	EmployeeCount   string      `json:"employeeCount"`
	Timeline        string      `json:"timeline"`
	Subject         string      `json:"subject"`
	Message         string      `json:"message"`
	InquiryType     InquiryType `json:"inquiryType"`
}

// Fields returns the inquiry as a field name to value map, keyed like the JSON payload
func (i Inquiry) Fields() map[string]string {
	return map[string]string{
		FieldName:            i.Name,
		FieldEmail:           i.Email,
		FieldCompany:         i.Company,
		FieldCompanyLocation: i.CompanyLocation,
		FieldEmployeeCount:   i.EmployeeCount,
		FieldTimeline:        i.Timeline,
		FieldSubject:         i.Subject,
		FieldMessage:         i.Message,
		FieldInquiryType:     string(i.InquiryType),
	}
}

// Lead is a classified inquiry. It lives for the duration of one request.
type Lead struct {
	Inquiry
	Classification
	ID          string    `json:"leadId"`
	SubmittedAt time.Time `json:"submittedAt"`
}
