// Package validation implements the declarative per-field request validation
// applied before handler logic runs. A schema maps field names to rules; every
// violated rule produces its own message and all fields are checked before
// returning, so a client sees the full list of problems at once.
package validation

import (
	"fmt"
	"regexp"
	"sort"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule is the set of checks for a single field. Required fires when the field
// is absent, null or an empty string; the remaining checks apply only when a
// value is present.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Email     bool
	Pattern   *regexp.Regexp
}

// Schema maps request body fields to their rules.
type Schema map[string]Rule

// Validate checks body against schema and returns one message per violated
// rule. An empty slice means the body passed.
func Validate(body map[string]any, schema Schema) []string {
	var errs []string

	fields := make([]string, 0, len(schema))
	for field := range schema {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		rules := schema[field]
		value, present := body[field]

		if rules.Required && (!present || value == nil || value == "") {
			errs = append(errs, fmt.Sprintf("%s is required", field))
			continue
		}

		if !present || value == nil {
			continue
		}

		str, isString := value.(string)

		if rules.Email && (!isString || !emailPattern.MatchString(str)) {
			errs = append(errs, fmt.Sprintf("%s must be a valid email address", field))
		}

		if isString {
			// Length limits are in characters, not bytes, so multi-byte
			// input is measured the way users count it.
			length := utf8.RuneCountInString(str)
			if rules.MinLength > 0 && length < rules.MinLength {
				errs = append(errs, fmt.Sprintf("%s must be at least %d characters long", field, rules.MinLength))
			}
			if rules.MaxLength > 0 && length > rules.MaxLength {
				errs = append(errs, fmt.Sprintf("%s cannot exceed %d characters", field, rules.MaxLength))
			}
		}

		if rules.Pattern != nil && (!isString || !rules.Pattern.MatchString(str)) {
			errs = append(errs, fmt.Sprintf("%s format is invalid", field))
		}
	}

	return errs
}
