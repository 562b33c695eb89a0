package formserver

import "errors"

var (
	ErrNilSelector     = errors.New("formserver: selector is required")
	ErrInvalidInstance = errors.New("formserver: missing or malformed form instance id")
)
