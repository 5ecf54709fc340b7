// Package session manages the opt-out worklist the user steps through
// broker by broker.
package session

import (
	"time"

	"github.com/mnprivacy/shield/internal/letter"
)

// BrokerStatus is the per-broker progress marker within a session.
type BrokerStatus string

const (
	// BrokerPending means the broker's portal has not been visited yet
	BrokerPending BrokerStatus = "pending"
	// BrokerDone means the opt-out was submitted
	BrokerDone BrokerStatus = "done"
	// BrokerSkipped means the user chose to skip this broker
	BrokerSkipped BrokerStatus = "skipped"
)

// Valid reports whether s is a known broker status.
func (s BrokerStatus) Valid() bool {
	return s == BrokerPending || s == BrokerDone || s == BrokerSkipped
}

// QueuedBroker is one worklist entry.
type QueuedBroker struct {
	// ID is the broker's directory key
	ID string `json:"id"`
	// Name is the broker's display name
	Name string `json:"name"`
	// Website is the broker's main site
	Website string `json:"website,omitempty"`
	// OptOutURL is the dedicated opt-out portal when known
	OptOutURL string `json:"optOutUrl,omitempty"`
	// Email is the privacy contact
	Email string `json:"email,omitempty"`
	// Status is this broker's progress marker
	Status BrokerStatus `json:"status"`
}

// Session is the persisted opt-out worklist.
type Session struct {
	// UserInfo is the profile used for form autofill
	UserInfo letter.UserInfo `json:"user_info"`
	// Brokers is the ordered worklist
	Brokers []QueuedBroker `json:"brokers"`
	// CreatedAt is when the session was started
	CreatedAt time.Time `json:"created_at"`
}

// Start builds a fresh session, normalizing every broker to pending.
func Start(info letter.UserInfo, brokers []QueuedBroker) Session {
	queued := make([]QueuedBroker, len(brokers))
	for i, b := range brokers {
		b.Status = BrokerPending
		queued[i] = b
	}

	return Session{
		UserInfo:  info,
		Brokers:   queued,
		CreatedAt: time.Now().UTC(),
	}
}

// Current returns the first pending broker, or false when the worklist is
// exhausted.
func (s Session) Current() (QueuedBroker, bool) {
	for _, b := range s.Brokers {
		if b.Status == BrokerPending {
			return b, true
		}
	}

	return QueuedBroker{}, false
}

// Advance marks the current broker with the given status and reports
// whether a pending broker was there to advance past.
func (s *Session) Advance(status BrokerStatus) bool {
	for i, b := range s.Brokers {
		if b.Status == BrokerPending {
			s.Brokers[i].Status = status
			return true
		}
	}

	return false
}

// Progress returns the number of handled brokers and the total.
func (s Session) Progress() (completed, total int) {
	for _, b := range s.Brokers {
		if b.Status != BrokerPending {
			completed++
		}
	}

	return completed, len(s.Brokers)
}
