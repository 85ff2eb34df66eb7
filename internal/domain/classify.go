package domain

// Priority is the routing urgency of a lead
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Teams a lead can be routed to
const (
	TeamSales               = "Sales Team"
	TeamSolutions           = "Solutions Team"
	TeamLegal               = "Legal Team"
	TeamBusinessDevelopment = "Business Development"
	TeamGeneralSupport      = "General Support"
)

// Classification is the routing decision derived from an inquiry
type Classification struct {
	Priority     Priority `json:"priority"`
	AssignedTeam string   `json:"assignedTeam"`
}

// LeadPriority scores an inquiry. Rules are evaluated in order and the first match wins.
func LeadPriority(in Inquiry) Priority {
	switch {
	case in.InquiryType == InquiryHiring && in.Timeline == TimelineImmediate:
		return PriorityHigh
	case in.EmployeeCount == EmployeeCount51Plus:
		return PriorityHigh
	case in.Timeline == Timeline1Month:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// AssignTeam maps an inquiry type to the team that handles it
func AssignTeam(t InquiryType) string {
	switch t {
	case InquiryHiring:
		return TeamSales
	case InquiryServices:
		return TeamSolutions
	case InquiryCompliance:
		return TeamLegal
	case InquiryPartnership:
		return TeamBusinessDevelopment
	default:
		return TeamGeneralSupport
	}
}

// Classify computes priority and team for a validated inquiry
func Classify(in Inquiry) Classification {
	return Classification{
		Priority:     LeadPriority(in),
		AssignedTeam: AssignTeam(in.InquiryType),
	}
}
