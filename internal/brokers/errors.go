package brokers

import "errors"

var (
	// ErrMissingID is returned when a directory entry has no id
	ErrMissingID = errors.New("broker entry missing id")
	// ErrDuplicateID is returned when two directory entries share an id
	ErrDuplicateID = errors.New("duplicate broker id")
)
