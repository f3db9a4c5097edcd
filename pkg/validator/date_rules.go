package validator

import (
	"fmt"
	"strings"
	"time"
)

// DateLayouts are accepted by ParseDate in order.
var DateLayouts = []string{time.DateOnly, time.RFC3339}

// ParseDate parses value using DateLayouts.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidFormat, value)
}

// ValidDate checks that value parses with one of DateLayouts.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := ParseDate(value)
			return err == nil
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a date in YYYY-MM-DD format",
			Code:    "validation.date",
		},
	}
}

// ValidBirthdate ensures the date is not in the future and not more than 150 years ago.
func ValidBirthdate(field string, value time.Time) Rule {
	return Rule{
		Check: func() bool {
			now := time.Now()
			if value.After(now) {
				return false
			}
			return value.After(now.AddDate(-150, 0, 0))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid birthdate not in the future",
			Code:    "validation.birthdate",
		},
	}
}
