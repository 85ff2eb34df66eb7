package util

import (
	"regexp"
	"strconv"
	"time"
)

// LeadIDPrefix marks identifiers issued for contact form leads
const LeadIDPrefix = "EOR-"

var leadIDPattern = regexp.MustCompile(`^EOR-\d+$`)

// NewLeadID returns an opaque lead identifier derived from t in unix milliseconds
func NewLeadID(t time.Time) string {
	return LeadIDPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}

// IsLeadID reports whether id has the shape produced by NewLeadID
func IsLeadID(id string) bool {
	return leadIDPattern.MatchString(id)
}
