package tracker

import (
	bolt "go.etcd.io/bbolt"
)

// GPCEnabled reports the persisted Global Privacy Control preference. found is
// false when the user has never set one.
func (s *Store) GPCEnabled() (enabled, found bool, err error) {
	err = s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketSettings).Get(gpcEnabledKey)
		if raw == nil {
			return nil
		}

		found = true
		enabled = string(raw) == "1"

		return nil
	})

	return enabled, found, err
}

// SetGPCEnabled persists the Global Privacy Control preference.
func (s *Store) SetGPCEnabled(enabled bool) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		val := []byte("0")
		if enabled {
			val = []byte("1")
		}

		return tx.Bucket(bucketSettings).Put(gpcEnabledKey, val)
	})
}
