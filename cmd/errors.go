package cmd

import "errors"

var (
	// ErrFlagRequired is returned when a required flag is missing
	ErrFlagRequired = errors.New("required flag missing")
	// ErrUnknownBrokerID is returned when a broker id is not in the directory
	ErrUnknownBrokerID = errors.New("unknown broker id")
	// ErrUnknownType is returned when a request type code is not recognized
	ErrUnknownType = errors.New("unknown request type")
	// ErrInputRequired is returned when a request type needs free-text details
	ErrInputRequired = errors.New("request type requires details")
)
