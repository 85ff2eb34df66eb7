package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lanzar/internal/domain"
)

func TestLeadPriority(t *testing.T) {
	tests := []struct {
		name     string
		inquiry  domain.Inquiry
		expected domain.Priority
	}{
		{
			name:     "hiring immediately beats small company",
			inquiry:  domain.Inquiry{InquiryType: domain.InquiryHiring, Timeline: domain.TimelineImmediate, EmployeeCount: domain.EmployeeCount1To5},
			expected: domain.PriorityHigh,
		},
		{
			name:     "large company",
			inquiry:  domain.Inquiry{InquiryType: domain.InquiryServices, Timeline: domain.Timeline3Months, EmployeeCount: domain.EmployeeCount51Plus},
			expected: domain.PriorityHigh,
		},
		{
			name:     "large company with one month timeline is still high",
			inquiry:  domain.Inquiry{InquiryType: domain.InquiryCompliance, Timeline: domain.Timeline1Month, EmployeeCount: domain.EmployeeCount51Plus},
			expected: domain.PriorityHigh,
		},
		{
			name:     "one month timeline",
			inquiry:  domain.Inquiry{InquiryType: domain.InquiryServices, Timeline: domain.Timeline1Month, EmployeeCount: domain.EmployeeCount1To5},
			expected: domain.PriorityMedium,
		},
		{
			name:     "immediate but not hiring",
			inquiry:  domain.Inquiry{InquiryType: domain.InquiryPartnership, Timeline: domain.TimelineImmediate, EmployeeCount: domain.EmployeeCount26To50},
			expected: domain.PriorityLow,
		},
		{
			name:     "exploring",
			inquiry:  domain.Inquiry{InquiryType: domain.InquiryHiring, Timeline: domain.TimelineExploring, EmployeeCount: domain.EmployeeCount11To25},
			expected: domain.PriorityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.LeadPriority(tt.inquiry))
		})
	}
}

func TestAssignTeam(t *testing.T) {
	assert.Equal(t, domain.TeamSales, domain.AssignTeam(domain.InquiryHiring))
	assert.Equal(t, domain.TeamSolutions, domain.AssignTeam(domain.InquiryServices))
	assert.Equal(t, domain.TeamLegal, domain.AssignTeam(domain.InquiryCompliance))
	assert.Equal(t, domain.TeamBusinessDevelopment, domain.AssignTeam(domain.InquiryPartnership))
	assert.Equal(t, domain.TeamGeneralSupport, domain.AssignTeam("general"))
	assert.Equal(t, domain.TeamGeneralSupport, domain.AssignTeam(""))
}

func TestClassify_Deterministic(t *testing.T) {
	for _, it := range domain.InquiryTypeOptions {
		for _, tl := range domain.TimelineOptions {
			for _, ec := range domain.EmployeeCountOptions {
				in := domain.Inquiry{InquiryType: domain.InquiryType(it.Value), Timeline: tl.Value, EmployeeCount: ec.Value}
				first := domain.Classify(in)
				assert.Equal(t, first, domain.Classify(in))
				assert.NotEqual(t, domain.TeamGeneralSupport, first.AssignedTeam)
			}
		}
	}
}
