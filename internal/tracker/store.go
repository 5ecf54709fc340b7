package tracker

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"
	bolt "go.etcd.io/bbolt"

	"github.com/mnprivacy/shield/internal/letter"
)

// SchemaVersion is the current backup document version.
const SchemaVersion = 1

var (
	bucketRequests = []byte("requests")
	bucketProfile  = []byte("profile")
	bucketSettings = []byte("settings")

	profileKey    = []byte("default")
	gpcEnabledKey = []byte("gpcEnabled")
)

// Options configures the store.
type Options struct {
	// UpcomingWindowDays is the default look-ahead for Upcoming
	UpcomingWindowDays int
}

// Option is a functional option for configuring the store.
type Option func(*Options)

// DefaultOptions returns the standard store configuration.
func DefaultOptions() *Options {
	return &Options{UpcomingWindowDays: 7}
}

// WithUpcomingWindow sets the default look-ahead window in days.
func WithUpcomingWindow(days int) Option {
	return func(o *Options) {
		o.UpcomingWindowDays = days
	}
}

// Store persists tracked requests in a bbolt database. Every record is
// written independently under its own key, so a failed write never corrupts
// neighboring records.
type Store struct {
	db   *bolt.DB
	opts *Options
	now  func() time.Time
}

// New creates a store over an open bbolt database, creating its buckets on
// first use.
func New(db *bolt.DB, opts ...Option) (*Store, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketRequests, bucketProfile, bucketSettings} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("creating bucket %s: %w", name, err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Store{db: db, opts: o, now: time.Now}, nil
}

// Save writes one request record.
func (s *Store) Save(req TrackedRequest) error {
	if req.ID == "" {
		return ErrMissingID
	}

	if !req.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding request %s: %w", req.ID, err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRequests).Put([]byte(req.ID), data)
	})
}

// Get returns the request with the given id.
func (s *Store) Get(id string) (TrackedRequest, error) {
	var req TrackedRequest

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketRequests).Get([]byte(id))
		if data == nil {
			return ErrNotFound
		}

		return json.Unmarshal(data, &req)
	})

	return req, err
}

// All returns every tracked request in key order.
func (s *Store) All() ([]TrackedRequest, error) {
	var requests []TrackedRequest

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRequests).ForEach(func(_, v []byte) error {
			var req TrackedRequest
			if err := json.Unmarshal(v, &req); err != nil {
				return err
			}

			requests = append(requests, req)

			return nil
		})
	})

	return requests, err
}

// Delete removes one request. Deleting a missing id is not an error.
func (s *Store) Delete(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRequests).Delete([]byte(id))
	})
}

// UpdateStatus transitions a request to a new status, appending optional
// notes. Completed and denied set the response date.
func (s *Store) UpdateStatus(id string, status Status, notes string) (TrackedRequest, error) {
	if !status.Valid() {
		return TrackedRequest{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	req, err := s.Get(id)
	if err != nil {
		return TrackedRequest{}, err
	}

	req.Status = status
	if notes != "" {
		req.Notes = notes
	}

	if status == StatusCompleted || status == StatusDenied {
		respondedAt := s.now().UTC()
		req.ResponseDate = &respondedAt
	}

	return req, s.Save(req)
}

// Upcoming returns open requests whose deadline falls within [now, now+N
// days], ascending by deadline. withinDays <= 0 uses the configured default.
func (s *Store) Upcoming(withinDays int) ([]TrackedRequest, error) {
	if withinDays <= 0 {
		withinDays = s.opts.UpcomingWindowDays
	}

	now := s.now()
	cutoff := now.AddDate(0, 0, withinDays)

	return s.deadlineQuery(func(req TrackedRequest) bool {
		return !req.Deadline.Before(now) && !req.Deadline.After(cutoff)
	})
}

// Overdue returns open requests whose deadline has passed, ascending by
// deadline.
func (s *Store) Overdue() ([]TrackedRequest, error) {
	now := s.now()

	return s.deadlineQuery(func(req TrackedRequest) bool {
		return req.Deadline.Before(now)
	})
}

// deadlineQuery filters open requests by deadline and sorts ascending.
func (s *Store) deadlineQuery(keep func(TrackedRequest) bool) ([]TrackedRequest, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}

	matched := lo.Filter(all, func(req TrackedRequest, _ int) bool {
		return req.Status.Open() && keep(req)
	})

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Deadline.Before(matched[j].Deadline)
	})

	return matched, nil
}

// SaveUserInfo remembers the requester profile.
func (s *Store) SaveUserInfo(info letter.UserInfo) error {
	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfile).Put(profileKey, data)
	})
}

// UserInfo returns the remembered profile, or ErrNotFound when none is
// saved.
func (s *Store) UserInfo() (letter.UserInfo, error) {
	var info letter.UserInfo

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketProfile).Get(profileKey)
		if data == nil {
			return ErrNotFound
		}

		return json.Unmarshal(data, &info)
	})

	return info, err
}

// ClearUserInfo forgets the remembered profile.
func (s *Store) ClearUserInfo() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProfile).Delete(profileKey)
	})
}

// ClearAll deletes every tracked request, the remembered profile, and any
// saved settings.
func (s *Store) ClearAll() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketRequests, bucketProfile, bucketSettings} {
			if err := tx.DeleteBucket(name); err != nil {
				return err
			}

			if _, err := tx.CreateBucket(name); err != nil {
				return err
			}
		}

		return nil
	})
}
