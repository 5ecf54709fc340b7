package session

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketSession = []byte("session")

	sessionKey = []byte("current")
)

// Store persists the single active session in a bbolt database.
type Store struct {
	db *bolt.DB
}

// NewStore creates the session store, creating its bucket on first use.
func NewStore(db *bolt.DB) (*Store, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSession)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating session bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Save replaces the active session.
func (s *Store) Save(sess Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Put(sessionKey, data)
	})
}

// Get returns the active session, or ErrNoSession when none exists.
func (s *Store) Get() (Session, error) {
	var sess Session

	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketSession).Get(sessionKey)
		if data == nil {
			return ErrNoSession
		}

		return json.Unmarshal(data, &sess)
	})

	return sess, err
}

// Clear removes the active session.
func (s *Store) Clear() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSession).Delete(sessionKey)
	})
}
