package tracker

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/mnprivacy/shield/internal/letter"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := bolt.Open(filepath.Join(t.TempDir(), "shield.db"), 0o600, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := New(db)
	require.NoError(t, err)

	return store
}

func TestStore_CRUD(t *testing.T) {
	store := newTestStore(t)

	req := NewRequest("acme-data", "Acme Data Partners LLC", []letter.RequestType{letter.RequestDeletion})
	require.NoError(t, store.Save(req))

	got, err := store.Get(req.ID)
	require.NoError(t, err)
	assert.Equal(t, req.BrokerName, got.BrokerName)
	assert.Equal(t, StatusPending, got.Status)

	// Deadline math: exactly 45 days after the send date.
	assert.True(t, got.Deadline.Equal(req.DateSent.AddDate(0, 0, 45)))

	require.NoError(t, store.Delete(req.ID))

	_, err = store.Get(req.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_SaveValidation(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorIs(t, store.Save(TrackedRequest{Status: StatusPending}), ErrMissingID)
	assert.ErrorIs(t, store.Save(TrackedRequest{ID: "req_1", Status: "bogus"}), ErrInvalidStatus)
}

func TestStore_UpdateStatus(t *testing.T) {
	store := newTestStore(t)

	req := NewRequest("acme-data", "Acme", []letter.RequestType{letter.RequestOptOut})
	require.NoError(t, store.Save(req))

	updated, err := store.UpdateStatus(req.ID, StatusCompleted, "received confirmation email")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, updated.Status)
	assert.Equal(t, "received confirmation email", updated.Notes)
	require.NotNil(t, updated.ResponseDate)

	// Acknowledged does not set a response date.
	req2 := NewRequest("b2", "B2", []letter.RequestType{letter.RequestDeletion})
	require.NoError(t, store.Save(req2))

	updated2, err := store.UpdateStatus(req2.ID, StatusAcknowledged, "")
	require.NoError(t, err)
	assert.Nil(t, updated2.ResponseDate)

	_, err = store.UpdateStatus(req.ID, "bogus", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = store.UpdateStatus("req_missing", StatusDenied, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_DeadlineQueries(t *testing.T) {
	store := newTestStore(t)

	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	mk := func(id string, deadline time.Time, status Status) TrackedRequest {
		return TrackedRequest{
			ID:           id,
			BrokerID:     "b-" + id,
			BrokerName:   "Broker " + id,
			RequestTypes: []letter.RequestType{letter.RequestOptOut},
			DateSent:     deadline.AddDate(0, 0, -45),
			Deadline:     deadline,
			Status:       status,
		}
	}

	require.NoError(t, store.Save(mk("overdue-1", now.AddDate(0, 0, -3), StatusPending)))
	require.NoError(t, store.Save(mk("overdue-2", now.AddDate(0, 0, -10), StatusAcknowledged)))
	require.NoError(t, store.Save(mk("soon-1", now.AddDate(0, 0, 2), StatusPending)))
	require.NoError(t, store.Save(mk("soon-2", now.AddDate(0, 0, 6), StatusAcknowledged)))
	require.NoError(t, store.Save(mk("far", now.AddDate(0, 0, 30), StatusPending)))
	require.NoError(t, store.Save(mk("closed-overdue", now.AddDate(0, 0, -5), StatusCompleted)))

	upcoming, err := store.Upcoming(7)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon-1", upcoming[0].ID)
	assert.Equal(t, "soon-2", upcoming[1].ID)

	overdue, err := store.Overdue()
	require.NoError(t, err)
	require.Len(t, overdue, 2)

	// Ascending by deadline: the older deadline first.
	assert.Equal(t, "overdue-2", overdue[0].ID)
	assert.Equal(t, "overdue-1", overdue[1].ID)

	// An overdue open request never appears in the upcoming list.
	for _, req := range upcoming {
		assert.NotContains(t, []string{"overdue-1", "overdue-2"}, req.ID)
	}
}

func TestStore_UserInfo(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UserInfo()
	assert.ErrorIs(t, err, ErrNotFound)

	info := letter.UserInfo{Name: "Jordan Larsen", Email: "jordan@example.com", State: "MN"}
	require.NoError(t, store.SaveUserInfo(info))

	got, err := store.UserInfo()
	require.NoError(t, err)
	assert.Equal(t, info, got)

	require.NoError(t, store.ClearUserInfo())

	_, err = store.UserInfo()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ExportImportRoundTrip(t *testing.T) {
	store := newTestStore(t)

	reqs := []TrackedRequest{
		NewRequest("b1", "Broker One", []letter.RequestType{letter.RequestOptOut, letter.RequestDeletion}),
		NewRequest("b2", "Broker Two", []letter.RequestType{letter.RequestCorrection}),
	}
	for _, req := range reqs {
		require.NoError(t, store.Save(req))
	}

	require.NoError(t, store.SaveUserInfo(letter.UserInfo{Name: "Jordan Larsen", Email: "jordan@example.com"}))

	backup, err := store.Export()
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, backup.SchemaVersion)
	assert.Len(t, backup.Requests, 2)
	require.NotNil(t, backup.UserInfo)

	data, err := json.Marshal(backup)
	require.NoError(t, err)

	// Import into a fresh store restores an equivalent record set.
	fresh := newTestStore(t)

	result, err := fresh.Import(data)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Errors)

	restored, err := fresh.All()
	require.NoError(t, err)
	require.Len(t, restored, 2)

	byID := map[string]TrackedRequest{}
	for _, r := range restored {
		byID[r.ID] = r
	}

	for _, orig := range reqs {
		got, ok := byID[orig.ID]
		require.True(t, ok, "missing record %s", orig.ID)
		assert.Equal(t, orig.BrokerID, got.BrokerID)
		assert.Equal(t, orig.RequestTypes, got.RequestTypes)
		assert.True(t, orig.Deadline.Equal(got.Deadline))
	}

	info, err := fresh.UserInfo()
	require.NoError(t, err)
	assert.Equal(t, "Jordan Larsen", info.Name)
}

func TestStore_ImportPartialFailure(t *testing.T) {
	store := newTestStore(t)

	valid1 := NewRequest("b1", "Broker One", []letter.RequestType{letter.RequestOptOut})
	valid2 := NewRequest("b2", "Broker Two", []letter.RequestType{letter.RequestDeletion})
	malformed := valid1
	malformed.ID = "req_malformed"
	malformed.Status = "not-a-status"

	backup := Backup{
		SchemaVersion: SchemaVersion,
		ExportDate:    time.Now(),
		Requests:      []TrackedRequest{valid1, malformed, valid2},
	}

	data, err := json.Marshal(backup)
	require.NoError(t, err)

	result, err := store.Import(data)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "req_malformed")
}

func TestStore_ImportGarbage(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Import([]byte("{not json"))
	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestStore_ClearAll(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(NewRequest("b1", "Broker One", []letter.RequestType{letter.RequestOptOut})))
	require.NoError(t, store.SaveUserInfo(letter.UserInfo{Name: "Jordan"}))

	require.NoError(t, store.ClearAll())

	all, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = store.UserInfo()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_GPCSetting(t *testing.T) {
	store := newTestStore(t)

	_, found, err := store.GPCEnabled()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SetGPCEnabled(true))

	enabled, found, err := store.GPCEnabled()
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, enabled)

	require.NoError(t, store.SetGPCEnabled(false))

	enabled, _, err = store.GPCEnabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, store.ClearAll())

	_, found, err = store.GPCEnabled()
	require.NoError(t, err)
	assert.False(t, found)
}
