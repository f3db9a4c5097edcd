package validator

import (
	"fmt"
	"regexp"
)

var hexStringRegex = regexp.MustCompile(`^[0-9A-Fa-f]+$`)

// ValidHexString validates a hexadecimal string of exactly exactLength characters.
func ValidHexString(field, value string, exactLength int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exactLength && hexStringRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a %d character hexadecimal string", exactLength),
			Code:    "validation.hex",
		},
	}
}

// ValidObjectID validates the 24 character hex form of a document identifier.
func ValidObjectID(field, value string) Rule {
	r := ValidHexString(field, value, 24)
	r.Error.Message = "must be a valid identifier"
	r.Error.Code = "validation.object_id"
	return r
}
