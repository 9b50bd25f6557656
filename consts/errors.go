package consts

import "errors"

var (
	// ErrInvalidRequest marks a malformed client request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrNotFound is returned when a record or database does not exist or is not shared.
	ErrNotFound = errors.New("record not found")

	// ErrUpstream marks a failed call to the record store.
	ErrUpstream = errors.New("record store unavailable")

	// ErrRender marks a failure while filling or assembling the document.
	ErrRender = errors.New("render failed")
)
