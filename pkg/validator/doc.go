// Package validator provides small, declarative validation rules for form
// input.
//
// A Rule pairs a boolean Check with the ValidationError reported when the check
// fails. Rules are evaluated with Apply, which aggregates failures into a
// ValidationErrors slice that satisfies the error interface, so every invalid
// field of a form can be reported from a single return value.
//
// Rules carry no hidden state: calling them repeatedly with the same input
// always yields the same result, and they never touch the rendered page.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name),
//	    validator.RequiredString("email", email),
//	    validator.SiteEmail("email", email),
//	)
//	if errs := validator.ExtractValidationErrors(err); errs != nil {
//	    for _, field := range errs.Fields() {
//	        // highlight field
//	    }
//	}
//
// # Error Handling
//
// Apply returns nil when every rule passes. Otherwise the returned error is a
// ValidationErrors value; use IsValidationError or ExtractValidationErrors to
// inspect it after it has been wrapped.
package validator
