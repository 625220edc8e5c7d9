// Package validation evaluates declarative rule tables against request
// fields before any workflow executes. Each field maps to an ordered list of
// (rule, message) pairs; all failures are collected, not just the first.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is a single predicate with the message reported on failure.
type Rule struct {
	Check   func(value string) bool
	Message string
}

// Field binds a payload field to its rules.
type Field struct {
	Name  string
	Rules []Rule
}

// Schema is the rule table for one request type.
type Schema []Field

// FieldError reports one failed rule.
type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Validate runs every rule against the supplied values and returns all
// failures in declaration order. A nil result means the payload is valid.
func (s Schema) Validate(values map[string]string) []FieldError {
	var errs []FieldError
	for _, field := range s {
		value := strings.TrimSpace(values[field.Name])
		for _, rule := range field.Rules {
			if !rule.Check(value) {
				errs = append(errs, FieldError{Message: rule.Message, Path: field.Name})
			}
		}
	}
	return errs
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required fails on empty values.
func Required(label string) Rule {
	return Rule{
		Check:   func(v string) bool { return v != "" },
		Message: label + " is required",
	}
}

// MinLen passes empty values through; pair it with Required when the field
// is mandatory.
func MinLen(label string, n int) Rule {
	return Rule{
		Check:   func(v string) bool { return v == "" || len(v) >= n },
		Message: fmt.Sprintf("%s must be at least %d characters", label, n),
	}
}

func MaxLen(label string, n int) Rule {
	return Rule{
		Check:   func(v string) bool { return len(v) <= n },
		Message: fmt.Sprintf("%s must be at most %d characters", label, n),
	}
}

// Email validates the basic shape of an address.
func Email(label string) Rule {
	return Rule{
		Check:   func(v string) bool { return v == "" || emailPattern.MatchString(v) },
		Message: "Invalid " + label,
	}
}

// Pattern validates against a compiled regular expression.
func Pattern(label string, re *regexp.Regexp, hint string) Rule {
	return Rule{
		Check:   func(v string) bool { return v == "" || re.MatchString(v) },
		Message: fmt.Sprintf("%s %s", label, hint),
	}
}

// OneOf restricts the value to a fixed set.
func OneOf(label string, allowed ...string) Rule {
	return Rule{
		Check: func(v string) bool {
			if v == "" {
				return true
			}
			for _, a := range allowed {
				if v == a {
					return true
				}
			}
			return false
		},
		Message: fmt.Sprintf("%s must be either %s", label, strings.Join(allowed, " or ")),
	}
}
