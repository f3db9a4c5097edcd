package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

var alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// ValidEmail validates an address with net/mail and additionally requires a dotted domain.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}
			if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Code:    "validation.email",
		},
	}
}

// ValidAlphanumeric accepts ASCII letters and digits only.
func ValidAlphanumeric(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return alphanumericRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must contain only letters and numbers",
			Code:    "validation.alphanumeric",
		},
	}
}
