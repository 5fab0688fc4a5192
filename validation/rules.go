// Package validation holds the field rules shared by every entity form and
// the per-entity compositions built from them.
package validation

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// FieldError is a single failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string { return e.Message }

// Errors is the error form of a failed Result.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Has reports whether any error targets field (case-insensitive).
func (e Errors) Has(field string) bool {
	_, ok := e.Get(field)
	return ok
}

// Get returns the first message for field (case-insensitive).
func (e Errors) Get(field string) (string, bool) {
	for _, fe := range e {
		if strings.EqualFold(fe.Field, field) {
			return fe.Message, true
		}
	}
	return "", false
}

type Result struct {
	IsValid bool         `json:"is_valid"`
	Errors  []FieldError `json:"errors"`
}

// Err returns nil for a valid result and an Errors value otherwise.
func (r Result) Err() error {
	if r.IsValid {
		return nil
	}
	return Errors(r.Errors)
}

// Rule is a deferred check; nil means it passed.
type Rule func() *FieldError

// Validate runs every rule in order and collects all failures.
func Validate(rules ...Rule) Result {
	errs := []FieldError{}
	for _, rule := range rules {
		if fe := rule(); fe != nil {
			errs = append(errs, *fe)
		}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

func fail(field, format string, args ...interface{}) *FieldError {
	return &FieldError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// Required fails for nil, nil pointers and empty strings. Zero numbers pass.
func Required(value interface{}, field string) *FieldError {
	if value == nil {
		return fail(field, "%s is required", field)
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return fail(field, "%s is required", field)
		}
		return Required(v.Elem().Interface(), field)
	case reflect.String:
		if v.Len() == 0 {
			return fail(field, "%s is required", field)
		}
	}
	return nil
}

func PositiveNumber(value float64, field string) *FieldError {
	if math.IsNaN(value) || value <= 0 {
		return fail(field, "%s must be a positive number", field)
	}
	return nil
}

// AtMost fails with message when value exceeds max.
func AtMost(value, max float64, field, message string) *FieldError {
	if value > max {
		return &FieldError{Field: field, Message: message}
	}
	return nil
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDate accepts an ISO date or timestamp.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeDate reduces an accepted date or timestamp to its YYYY-MM-DD
// day. Values that do not parse are returned unchanged.
func NormalizeDate(value string) string {
	t, ok := ParseDate(value)
	if !ok {
		return value
	}
	return t.Format(time.DateOnly)
}

func ValidDate(value, field string) *FieldError {
	if value == "" {
		return fail(field, "%s is required", field)
	}
	if _, ok := ParseDate(value); !ok {
		return fail(field, "%s must be a valid date", field)
	}
	return nil
}

// DateAfter requires end to fall on a later day than start. Dates are
// stored as days, so times of day are ignored. Missing or unparsable dates
// are left to ValidDate.
func DateAfter(start, end, startField, endField string) *FieldError {
	if start == "" || end == "" {
		return nil
	}
	if _, ok := ParseDate(start); !ok {
		return nil
	}
	if _, ok := ParseDate(end); !ok {
		return nil
	}
	if NormalizeDate(end) <= NormalizeDate(start) {
		return fail(endField, "%s must be after %s", endField, startField)
	}
	return nil
}

func MinLength(value string, min int, field string) *FieldError {
	if value != "" && utf8.RuneCountInString(value) < min {
		return fail(field, "%s must be at least %d characters", field, min)
	}
	return nil
}

func MaxLength(value string, max int, field string) *FieldError {
	if value != "" && utf8.RuneCountInString(value) > max {
		return fail(field, "%s must be at most %d characters", field, max)
	}
	return nil
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	timeRe  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

func Email(value, field string) *FieldError {
	if value != "" && !emailRe.MatchString(value) {
		return fail(field, "%s must be a valid email", field)
	}
	return nil
}

// PhoneNumber accepts digits, spaces, dashes, plus and parentheses, 10+ chars.
func PhoneNumber(value, field string) *FieldError {
	if value != "" && (len(value) < 10 || !phoneRe.MatchString(value)) {
		return fail(field, "%s must be a valid phone number", field)
	}
	return nil
}

// IsClockTime reports whether value is a 24-hour HH:MM time.
func IsClockTime(value string) bool {
	return timeRe.MatchString(value)
}

// OneOf fails when a non-empty value is not in allowed.
func OneOf(value string, allowed []string, field string) *FieldError {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fail(field, "%s must be one of: %s", field, strings.Join(allowed, ", "))
}
