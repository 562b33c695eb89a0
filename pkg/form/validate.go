package form

import (
	"slices"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// IsEmailValid reports whether s is an acceptable email address: no
// whitespace, one non-empty local part before "@", and a dotted domain.
func IsEmailValid(s string) bool {
	return validator.IsSiteEmail(s)
}

// ValidationResult is the outcome of validating one set of Fields.
type ValidationResult struct {
	Valid         bool
	InvalidFields map[string]struct{}
	Errors        validator.ValidationErrors
}

// IsInvalid reports whether field failed validation.
func (r ValidationResult) IsInvalid(field string) bool {
	_, ok := r.InvalidFields[field]
	return ok
}

// InvalidFieldNames returns the invalid field names sorted alphabetically.
func (r ValidationResult) InvalidFieldNames() []string {
	names := make([]string, 0, len(r.InvalidFields))
	for name := range r.InvalidFields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Err returns the validation errors as an error, or nil when valid.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return r.Errors
}

// Validate checks fields against the required field names. A required field
// is invalid when empty after trimming; the email field is also invalid when
// it is non-empty but malformed, whether required or not.
func Validate(fields Fields, required []string) ValidationResult {
	rules := make([]validator.Rule, 0, len(required)+1)
	for _, name := range required {
		rules = append(rules, validator.RequiredString(name, fields[name]))
	}

	email := strings.TrimSpace(fields[FieldEmail])
	rules = append(rules, validator.When(email != "", validator.SiteEmail(FieldEmail, email)))

	res := ValidationResult{
		Valid:         true,
		InvalidFields: make(map[string]struct{}),
	}

	errs := validator.ExtractValidationErrors(validator.Apply(rules...))
	if errs.IsEmpty() {
		return res
	}

	res.Valid = false
	res.Errors = errs
	for _, name := range errs.Fields() {
		res.InvalidFields[name] = struct{}{}
	}
	return res
}
