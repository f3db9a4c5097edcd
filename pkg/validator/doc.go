// Package validator provides small declarative validation rules.
//
// Each exported helper returns a Rule that pairs a Check function with the
// field error reported when the check fails. Apply evaluates any number of
// rules and aggregates failures into ValidationErrors, which implements error
// and is recognised by the HTTP error handler as a 422 response.
//
//	err := validator.Apply(
//	    validator.MinLen("Username", in.Username, 5),
//	    validator.ValidAlphanumeric("Username", in.Username),
//	    validator.ValidEmail("Email", in.Email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // inspect verrs.Fields(), verrs.Get("Email")
//	}
//
// Rules hold no global state and are safe for concurrent use.
package validator
