package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Payload field names, as they appear in JSON
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldCompany         = "company"
	FieldCompanyLocation = "companyLocation"
	FieldEmployeeCount   = "employeeCount"
	FieldTimeline        = "timeline"
	FieldSubject         = "subject"
	FieldMessage         = "message"
	FieldInquiryType     = "inquiryType"
)

// Violation codes
const (
	CodeInvalidType      = "invalid_type"
	CodeTooSmall         = "too_small"
	CodeTooBig           = "too_big"
	CodeInvalidString    = "invalid_string"
	CodeInvalidEnumValue = "invalid_enum_value"
	CodeUnknownField     = "unrecognized_keys"
)

var (
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// Violation is a single field-level validation failure
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (v Violation) Error() string {
	if v.Field == "" {
		return v.Message
	}
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Violations is the complete list of failures from one validation call
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Error()
	}
	return strings.Join(parts, "; ")
}

// Messages returns the human-readable reasons in order
func (v Violations) Messages() []string {
	msgs := make([]string, len(v))
	for i, violation := range v {
		msgs[i] = violation.Message
	}
	return msgs
}

// ForField returns the violations naming field
func (v Violations) ForField(field string) Violations {
	var out Violations
	for _, violation := range v {
		if violation.Field == field {
			out = append(out, violation)
		}
	}
	return out
}

type rule struct {
	code    string
	message func(value string) string
	fails   func(value string) bool
}

type fieldSchema struct {
	name  string
	label string
	rules []rule
}

func text(msg string) func(string) string {
	return func(string) string { return msg }
}

func minLen(n int, msg string) rule {
	return rule{code: CodeTooSmall, message: text(msg), fails: func(v string) bool { return utf8.RuneCountInString(v) < n }}
}

func maxLen(n int, msg string) rule {
	return rule{code: CodeTooBig, message: text(msg), fails: func(v string) bool { return utf8.RuneCountInString(v) > n }}
}

func pattern(re *regexp.Regexp, msg string) rule {
	return rule{code: CodeInvalidString, message: text(msg), fails: func(v string) bool { return !re.MatchString(v) }}
}

// oneOf only fires on non-empty values; emptiness is reported by minLen.
func oneOf(options []Option, message func(string) string) rule {
	return rule{
		code:    CodeInvalidEnumValue,
		message: message,
		fails: func(v string) bool {
			return v != "" && !hasOption(options, v)
		},
	}
}

func hasOption(options []Option, v string) bool {
	for _, o := range options {
		if o.Value == v {
			return true
		}
	}
	return false
}

func enumMessage(options []Option) func(string) string {
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = "'" + o.Value + "'"
	}
	expected := strings.Join(quoted, " | ")
	return func(v string) string {
		return fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", expected, v)
	}
}

// inquirySchema is the single definition of the contact form rules, in field order.
var inquirySchema = []fieldSchema{
	{name: FieldName, label: "Name", rules: []rule{
		minLen(2, "Name must be at least 2 characters"),
		maxLen(50, "Name must be less than 50 characters"),
		pattern(namePattern, "Name can only contain letters and spaces"),
	}},
	{name: FieldEmail, label: "Email", rules: []rule{
		pattern(emailPattern, "Please enter a valid email address"),
		minLen(5, "Email must be at least 5 characters"),
		maxLen(100, "Email must be less than 100 characters"),
	}},
	{name: FieldCompany, label: "Company name", rules: []rule{
		minLen(2, "Company name is required"),
		maxLen(100, "Company name must be less than 100 characters"),
	}},
	{name: FieldCompanyLocation, label: "Company location", rules: []rule{
		minLen(2, "Company location is required"),
		maxLen(100, "Company location must be less than 100 characters"),
	}},
	{name: FieldEmployeeCount, label: "Employee count", rules: []rule{
		minLen(1, "Please select employee count"),
		oneOf(EmployeeCountOptions, text("Please select a valid employee count")),
	}},
	{name: FieldTimeline, label: "Timeline", rules: []rule{
		minLen(1, "Please select timeline"),
		oneOf(TimelineOptions, text("Please select a valid timeline")),
	}},
	{name: FieldSubject, label: "Subject", rules: []rule{
		minLen(5, "Subject must be at least 5 characters"),
		maxLen(100, "Subject must be less than 100 characters"),
	}},
	{name: FieldMessage, label: "Message", rules: []rule{
		minLen(10, "Message must be at least 10 characters"),
		maxLen(1000, "Message must be less than 1000 characters"),
	}},
	{name: FieldInquiryType, label: "Inquiry type", rules: []rule{
		minLen(1, "Please select an inquiry type"),
		oneOf(InquiryTypeOptions, enumMessage(InquiryTypeOptions)),
	}},
}

// FieldNames returns the inquiry field names in form order
func FieldNames() []string {
	names := make([]string, len(inquirySchema))
	for i, f := range inquirySchema {
		names[i] = f.name
	}
	return names
}

func (f fieldSchema) check(value string) Violations {
	var out Violations
	for _, r := range f.rules {
		if r.fails(value) {
			out = append(out, Violation{Field: f.name, Code: r.code, Message: r.message(value)})
		}
	}
	return out
}

func lookupField(name string) (fieldSchema, bool) {
	for _, f := range inquirySchema {
		if f.name == name {
			return f, true
		}
	}
	return fieldSchema{}, false
}

// ValidateField checks a single field value, as done on change or blur.
// It returns nil when the value is acceptable.
func ValidateField(field, value string) Violations {
	f, ok := lookupField(field)
	if !ok {
		return Violations{{Field: field, Code: CodeUnknownField, Message: fmt.Sprintf("Unrecognized field '%s'", field)}}
	}
	return f.check(value)
}

// ValidateInquiry validates an untyped payload, typically a decoded JSON body.
// It returns either a complete Inquiry or a Violations error listing every failure;
// there is no partial result. Unknown keys are ignored.
func ValidateInquiry(payload any) (*Inquiry, error) {
	raw, ok := payload.(map[string]any)
	if !ok {
		return nil, Violations{{Code: CodeInvalidType, Message: fmt.Sprintf("Expected object, received %s", typeName(payload))}}
	}

	values := make(map[string]string, len(inquirySchema))
	var violations Violations
	for _, f := range inquirySchema {
		v, present := raw[f.name]
		if !present || v == nil {
			violations = append(violations, Violation{Field: f.name, Code: CodeInvalidType, Message: f.label + " is required"})
			continue
		}
		s, isString := v.(string)
		if !isString {
			violations = append(violations, Violation{
				Field:   f.name,
				Code:    CodeInvalidType,
				Message: fmt.Sprintf("%s must be a string, received %s", f.label, typeName(v)),
			})
			continue
		}
		violations = append(violations, f.check(s)...)
		values[f.name] = s
	}
	if len(violations) > 0 {
		return nil, violations
	}

	return &Inquiry{
		Name:            values[FieldName],
		Email:           values[FieldEmail],
		Company:         values[FieldCompany],
		CompanyLocation: values[FieldCompanyLocation],
		EmployeeCount:   values[FieldEmployeeCount],
		Timeline:        values[FieldTimeline],
		Subject:         values[FieldSubject],
		Message:         values[FieldMessage],
		InquiryType:     InquiryType(values[FieldInquiryType]),
	}, nil
}

// ValidateValues validates form values held as strings. Absent keys count as missing.
func ValidateValues(values map[string]string) (*Inquiry, error) {
	raw := make(map[string]any, len(values))
	for k, v := range values {
		raw[k] = v
	}
	return ValidateInquiry(raw)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
