package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// PRN is alphanumeric, as printed on the student ID card
	PRNPattern   = `^[A-Za-z0-9]+$`
	PRNMaxLength = 20

	// PassOutYearFilterPattern matches "All", "Before YYYY" or "YYYY"
	PassOutYearFilterPattern = `^(?i:all|before \d{4}|\d{4})$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	PRN               *regexp.Regexp
	PassOutYearFilter *regexp.Regexp
}{
	PRN:               regexp.MustCompile(PRNPattern),
	PassOutYearFilter: regexp.MustCompile(PassOutYearFilterPattern),
}

// StringValidation is a small builder for single string checks
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	if v.Value == "" {
		return !v.Required
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}

// IsValidPRN reports whether prn, once trimmed, is a well-formed PRN.
// Whether a student with that PRN exists is a separate lookup.
func IsValidPRN(prn string) bool {
	return NewStringValidation(strings.TrimSpace(prn)).
		WithMaxLength(PRNMaxLength).
		WithPattern(CompiledPatterns.PRN).
		Validate()
}

// IsValidPassOutYearFilter reports whether value is an accepted passOutYear filter; empty is accepted
func IsValidPassOutYearFilter(value string) bool {
	return NewStringValidation(strings.TrimSpace(value)).
		WithRequired(false).
		WithPattern(CompiledPatterns.PassOutYearFilter).
		Validate()
}
