package formctl

import "errors"

var (
	ErrBusy        = errors.New("formctl: a submission is already in progress")
	ErrNilSelector = errors.New("formctl: selector is nil")
	ErrNilUI       = errors.New("formctl: feedback controller is nil")
)
