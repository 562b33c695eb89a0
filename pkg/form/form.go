package form

import (
	"fmt"
)

// Kind identifies one of the site forms.
type Kind string

const (
	Contact    Kind = "contact"
	Newsletter Kind = "newsletter"
)

// Field names shared by both forms.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldCompany = "company"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldRef     = "ref"
)

// Fields maps a field name to its raw, untrimmed value.
type Fields map[string]string

// ParseKind converts s into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Contact, Newsletter:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Valid reports whether k names a known form.
func (k Kind) Valid() bool {
	return k == Contact || k == Newsletter
}

func (k Kind) String() string {
	return string(k)
}

// FieldNames returns every field of the form in payload order.
func FieldNames(k Kind) []string {
	switch k {
	case Contact:
		return []string{FieldName, FieldEmail, FieldPhone, FieldCompany, FieldSubject, FieldMessage, FieldRef}
	case Newsletter:
		return []string{FieldEmail}
	default:
		return nil
	}
}

// RequiredFields returns the names of the fields that must be non-empty.
func RequiredFields(k Kind) []string {
	switch k {
	case Contact:
		return []string{FieldName, FieldEmail, FieldSubject, FieldMessage}
	case Newsletter:
		return []string{FieldEmail}
	default:
		return nil
	}
}
