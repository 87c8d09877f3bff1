package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Required fails on empty or whitespace-only strings.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "is required", Code: "validation.required"},
	}
}

// MaxLen counts runes, not bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= max },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", max),
			Code:    "validation.max_length",
		},
	}
}

// Email accepts a bare address with a dotted domain.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != strings.TrimSpace(value) {
				return false
			}
			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return strings.Contains(domain, ".")
		},
		Error: ValidationError{Field: field, Message: "must be a valid email address", Code: "validation.email"},
	}
}

// Positive fails on zero and negative values.
func Positive[T Numeric](field string, value T) Rule {
	var zero T
	return Rule{
		Check: func() bool { return value > zero },
		Error: ValidationError{Field: field, Message: "must be a positive number", Code: "validation.positive"},
	}
}

// Digits fails unless value is a non-empty run of ASCII digits.
func Digits(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if value == "" {
				return false
			}
			for _, r := range value {
				if r < '0' || r > '9' {
					return false
				}
			}
			return true
		},
		Error: ValidationError{Field: field, Message: "must be numeric", Code: "validation.numeric"},
	}
}
