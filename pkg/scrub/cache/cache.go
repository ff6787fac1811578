// Package cache persists the most recent scan result for each cleanup
// target, so the interface can show last-known sizes before the first scan
// of a run. Entries are hints only: the session never substitutes them for
// a real scan.
package cache

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/dgraph-io/badger/v4"

	"github.com/wxlv/scrub/pkg/scrub/target"
)

// ErrNotFound is returned when no entry exists for a target.
var ErrNotFound = errors.New("cache: entry not found")

// keyPrefix namespaces target entries inside the store.
const keyPrefix = "target:"

// Entry records one target's last scan outcome.
type Entry struct {
	Result    target.Result `json:"result"`
	ScannedAt time.Time     `json:"scanned_at"`
}

// Store wraps Badger for last-result persistence.
type Store struct {
	db *badger.DB
}

// DefaultPath returns the default on-disk location of the store.
func DefaultPath() string {
	return filepath.Join(xdg.CacheHome, "scrub", "results")
}

// Open opens or creates a store at the given path.
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // badger's own logging is noise here

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores the last scan result for a target.
func (s *Store) Put(targetID string, e *Entry) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+targetID), value)
	})
}

// Get retrieves the last scan result for a target.
// Returns ErrNotFound when the target has never been scanned.
func (s *Store) Get(targetID string) (*Entry, error) {
	var entry Entry
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + targetID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Delete removes a target's entry. Deleting a missing entry is not an error.
func (s *Store) Delete(targetID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + targetID))
	})
}
