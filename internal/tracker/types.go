// Package tracker persists privacy requests and their statutory response
// deadlines.
package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/mnprivacy/shield/internal/letter"
)

// Status is the lifecycle state of a tracked request.
type Status string

const (
	// StatusPending means the request was sent and awaits a response
	StatusPending Status = "pending"
	// StatusAcknowledged means the controller confirmed receipt
	StatusAcknowledged Status = "acknowledged"
	// StatusCompleted means the request was fulfilled
	StatusCompleted Status = "completed"
	// StatusDenied means the controller denied the request
	StatusDenied Status = "denied"
	// StatusNoResponse means the deadline passed without a response
	StatusNoResponse Status = "no-response"
	// StatusAppealed means an internal appeal was filed
	StatusAppealed Status = "appealed"
)

// statuses lists every valid status.
var statuses = []Status{
	StatusPending, StatusAcknowledged, StatusCompleted,
	StatusDenied, StatusNoResponse, StatusAppealed,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	for _, v := range statuses {
		if v == s {
			return true
		}
	}

	return false
}

// Open reports whether a request in this status still awaits a controller
// response. Only open requests appear in deadline queries.
func (s Status) Open() bool {
	return s == StatusPending || s == StatusAcknowledged
}

// TrackedRequest is one persisted (recipient, request-types-sent) record.
type TrackedRequest struct {
	// ID is the record key
	ID string `json:"id"`
	// BrokerID is the recipient's directory key
	BrokerID string `json:"broker_id"`
	// BrokerName is the recipient's display name at send time
	BrokerName string `json:"broker_name"`
	// RequestTypes lists the rights the letter covered
	RequestTypes []letter.RequestType `json:"request_types"`
	// UserInfo is the requester snapshot, present only when the user opted
	// to remember it
	UserInfo *letter.UserInfo `json:"user_info,omitempty"`
	// DateSent is when the letter was generated
	DateSent time.Time `json:"date_sent"`
	// Deadline is DateSent plus the statutory response window
	Deadline time.Time `json:"deadline"`
	// Status is the current lifecycle state
	Status Status `json:"status"`
	// Notes holds optional user notes
	Notes string `json:"notes,omitempty"`
	// ResponseDate records when the controller responded, if it did
	ResponseDate *time.Time `json:"response_date,omitempty"`
}

// NewRequest creates a pending record for a letter sent now, with the
// deadline computed from the statutory response window.
func NewRequest(brokerID, brokerName string, types []letter.RequestType) TrackedRequest {
	sent := time.Now().UTC()

	return TrackedRequest{
		ID:           "req_" + uuid.NewString(),
		BrokerID:     brokerID,
		BrokerName:   brokerName,
		RequestTypes: types,
		DateSent:     sent,
		Deadline:     letter.Deadline(sent),
		Status:       StatusPending,
	}
}

// Backup is the exported backup document.
type Backup struct {
	// SchemaVersion identifies the backup layout
	SchemaVersion int `json:"schema_version"`
	// ExportDate is when the backup was produced
	ExportDate time.Time `json:"export_date"`
	// Requests holds every tracked request
	Requests []TrackedRequest `json:"requests"`
	// UserInfo is the remembered profile, when one was saved
	UserInfo *letter.UserInfo `json:"user_info,omitempty"`
}

// ImportResult reports the outcome of a best-effort import.
type ImportResult struct {
	// Imported counts records persisted successfully
	Imported int `json:"imported"`
	// Errors lists per-record failures, each referencing the record id
	Errors []string `json:"errors,omitempty"`
}
