package feedback

import "errors"

var (
	ErrMissingElement = errors.New("feedback: required element is missing")
	ErrInvalidLayout  = errors.New("feedback: invalid layout")
)
