package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternKind is a closed enumeration of the named input patterns. A
// misspelled pattern is a compile-time error instead of a silent pass.
type PatternKind int

const (
	PatternNone PatternKind = iota
	PatternEmail
	PatternPhone
	PatternURL
)

var patterns = map[PatternKind]*regexp.Regexp{
	PatternEmail: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`),
	PatternPhone: regexp.MustCompile(`^[\d\s\-\+\(\)]{10,}$`),
	PatternURL:   regexp.MustCompile(`^https?://.+`),
}

// Rule declares the constraints for a single field. Rules are stateless:
// the same rule applied to the same value always yields the same verdict.
type Rule struct {
	Required  bool
	MinLength int
	MaxLength int
	Pattern   PatternKind
	// Custom returns an error message, or empty when the value is fine
	Custom func(value string) string
}

// Field evaluates a single value against a rule. Checks run in a fixed
// short-circuiting order (required, minLength, maxLength, pattern, custom)
// and the first failing check's message wins. Returns empty when valid.
func Field(value string, rule Rule) string {
	if rule.Required && strings.TrimSpace(value) == "" {
		return "This field is required"
	}
	if rule.MinLength > 0 && len(value) < rule.MinLength {
		return fmt.Sprintf("Minimum %d characters required", rule.MinLength)
	}
	if rule.MaxLength > 0 && len(value) > rule.MaxLength {
		return fmt.Sprintf("Maximum %d characters allowed", rule.MaxLength)
	}
	if rule.Pattern != PatternNone {
		// An out-of-range kind has no compiled pattern and acts as
		// no-constraint
		if re, ok := patterns[rule.Pattern]; ok && !re.MatchString(value) {
			switch rule.Pattern {
			case PatternEmail:
				return "Invalid email address"
			case PatternPhone:
				return "Invalid phone number"
			default:
				return "Invalid format"
			}
		}
	}
	if rule.Custom != nil {
		return rule.Custom(value)
	}
	return ""
}

// All evaluates every declared rule against its value and returns the full
// error map. Unlike Field there is no short-circuit across fields.
func All(values map[string]string, rules map[string]Rule) map[string]string {
	errs := make(map[string]string, len(rules))
	for name, rule := range rules {
		errs[name] = Field(values[name], rule)
	}
	return errs
}

// Valid reports whether an error map holds no failure
func Valid(errs map[string]string) bool {
	for _, msg := range errs {
		if msg != "" {
			return false
		}
	}
	return true
}
