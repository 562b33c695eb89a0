// Package form describes the two site forms, the contact form and the
// newsletter signup, and turns raw field values into validated payloads.
//
// Validation is pure: Validate reads a Fields map and returns a
// ValidationResult without touching any rendered page. BuildPayload refuses
// to produce a Payload unless validation passes, so a payload always carries
// trimmed, normalized values of a valid submission.
//
//	fields := form.Fields{"email": " ann@example.com "}
//	res := form.Validate(fields, form.RequiredFields(form.Newsletter))
//	if !res.Valid {
//	    // res.InvalidFields lists what to highlight
//	}
//	payload, err := form.BuildPayload(form.Newsletter, fields)
package form
