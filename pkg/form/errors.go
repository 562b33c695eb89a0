package form

import "errors"

var (
	// ErrUnknownKind is returned for a form kind other than Contact or Newsletter.
	ErrUnknownKind = errors.New("form: unknown form kind")
)
