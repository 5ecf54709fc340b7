package session

import "errors"

var (
	// ErrNoSession is returned when no opt-out session is active
	ErrNoSession = errors.New("no active session")
	// ErrNoBrokers is returned when a session is started with an empty worklist
	ErrNoBrokers = errors.New("session requires at least one broker")
	// ErrInvalidBrokerStatus is returned for an unrecognized per-broker status
	ErrInvalidBrokerStatus = errors.New("invalid broker status")
	// ErrSessionComplete is returned when advancing past the last broker
	ErrSessionComplete = errors.New("session already complete")
)
