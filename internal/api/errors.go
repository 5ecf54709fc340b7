package api

import "errors"

var (
	// ErrInvalidRequestBody is returned when the request body cannot be decoded
	ErrInvalidRequestBody = errors.New("invalid request body")
	// ErrMultipleJSONObjects is returned when the request body contains more than one JSON object
	ErrMultipleJSONObjects = errors.New("request body must contain a single JSON object")
	// ErrUserInfoRequired is returned when letter generation lacks requester identity
	ErrUserInfoRequired = errors.New("user info with name and email required")
	// ErrRequestTypesRequired is returned when no request types are selected
	ErrRequestTypesRequired = errors.New("at least one request type required")
	// ErrBrokersRequired is returned when no brokers are selected
	ErrBrokersRequired = errors.New("at least one broker required")
	// ErrUnknownBroker is returned when a broker id is not in the directory
	ErrUnknownBroker = errors.New("unknown broker id")
	// ErrUnknownRequestType is returned when a request type code is not recognized
	ErrUnknownRequestType = errors.New("unknown request type")
	// ErrInputRequired is returned when a standalone request type lacks its free-text input
	ErrInputRequired = errors.New("request type requires additional details")
	// ErrHTMLRequired is returned when a form endpoint receives no page markup
	ErrHTMLRequired = errors.New("html required")
	// ErrOriginNotAllowed is returned when a session start comes from an unlisted origin
	ErrOriginNotAllowed = errors.New("origin not allowed")
	// ErrNoQueueableBrokers is returned when a session start selects only brokers without portals
	ErrNoQueueableBrokers = errors.New("no selected broker has an opt-out portal")
)
