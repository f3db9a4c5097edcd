package user

import (
	"strings"
	"time"

	"github.com/dmitrymomot/myflix/pkg/password"
	"github.com/dmitrymomot/myflix/pkg/validator"
)

// MinUsernameLength is the shortest accepted username.
const MinUsernameLength = 5

// Registration is the raw sign-up input.
type Registration struct {
	Username string
	Password string
	Email    string
	// Birthday is optional: YYYY-MM-DD or RFC 3339.
	Birthday string
}

// ChangeRequest is the raw input of a profile update. Nil fields are not changed.
type ChangeRequest struct {
	Username *string
	Password *string
	Email    *string
	Birthday *string
}

// ValidateRegistration returns validator.ValidationErrors describing every invalid field, or nil.
func ValidateRegistration(r Registration) error {
	rules := usernameRules(r.Username)
	rules = append(rules, passwordRules(r.Password)...)
	rules = append(rules, validator.ValidEmail("Email", r.Email))
	rules = append(rules, birthdayRules(r.Birthday)...)
	return validator.Apply(rules...)
}

// ValidateChanges validates only the fields present in c.
func ValidateChanges(c ChangeRequest) error {
	var rules []validator.Rule
	if c.Username != nil {
		rules = append(rules, usernameRules(*c.Username)...)
	}
	if c.Password != nil {
		rules = append(rules, passwordRules(*c.Password)...)
	}
	if c.Email != nil {
		rules = append(rules, validator.ValidEmail("Email", *c.Email))
	}
	if c.Birthday != nil {
		rules = append(rules, birthdayRules(*c.Birthday)...)
	}
	return validator.Apply(rules...)
}

// ParseBirthday parses an optional birthday. Blank input yields nil.
func ParseBirthday(value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	t, err := validator.ParseDate(value)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

func usernameRules(username string) []validator.Rule {
	return []validator.Rule{
		validator.MinLen("Username", username, MinUsernameLength),
		validator.ValidAlphanumeric("Username", username),
	}
}

func passwordRules(plaintext string) []validator.Rule {
	return []validator.Rule{
		validator.Required("Password", plaintext),
		validator.MaxBytes("Password", plaintext, password.MaxLength),
	}
}

func birthdayRules(value string) []validator.Rule {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	t, err := validator.ParseDate(value)
	if err != nil {
		return []validator.Rule{validator.ValidDate("Birthday", value)}
	}
	return []validator.Rule{validator.ValidBirthdate("Birthday", t)}
}
