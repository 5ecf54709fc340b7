package tracker

import "errors"

var (
	// ErrNotFound is returned when no record exists for the requested key
	ErrNotFound = errors.New("record not found")
	// ErrMissingID is returned when a record is saved without an id
	ErrMissingID = errors.New("request id is required")
	// ErrInvalidStatus is returned for an unrecognized status value
	ErrInvalidStatus = errors.New("invalid request status")
	// ErrInvalidBackup is returned when a backup document cannot be parsed
	ErrInvalidBackup = errors.New("invalid backup document")
)
