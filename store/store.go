// Package store implements the persisted record collections behind the
// site's leads and portfolio holdings, along with their CSV export.
//
// A Store holds one ordered collection of records in memory and mirrors the
// whole collection to a Provider key after every mutation. Records are only
// ever added and removed, never edited in place.
package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/kumaryash98110-netizen/investcore/pkg/id"
)

// Record is the constraint on types held in a Store. WithID returns a copy
// of the record with its id set; the store calls it exactly once, when the
// record is added. An id never changes afterwards.
type Record[T any] interface {
	RecordID() string
	WithID(recordID string) T
}

// Store is an ordered collection of records persisted as a single blob under
// one provider key. Mutations are serialized; the persist completes before
// the mutation is reported to the caller.
type Store[T Record[T]] struct {
	key      string
	provider Provider
	newID    id.Generator

	mu   sync.Mutex
	recs []T
}

// Option configures a Store at Open time.
type Option[T Record[T]] func(*Store[T])

// WithIDFunc overrides the id generator, mainly for deterministic tests.
func WithIDFunc[T Record[T]](gen id.Generator) Option[T] {
	return func(s *Store[T]) { s.newID = gen }
}

// Open loads the collection stored under key. A missing or unparsable blob
// yields an empty collection; Open never fails.
func Open[T Record[T]](p Provider, key string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{key: key, provider: p, newID: id.New}
	for _, opt := range opts {
		opt(s)
	}

	blob, ok := p.Get(key)
	if !ok {
		return s
	}
	var recs []T
	if err := json.Unmarshal([]byte(blob), &recs); err != nil {
		// Corrupt blob: start over empty rather than fail the caller.
		return s
	}
	s.recs = recs
	return s
}

// Add assigns a fresh id to rec, prepends it to the collection, persists and
// returns the stored record. On a persist failure the collection is left as
// it was and the zero record is returned with the error.
func (s *Store[T]) Add(rec T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec = rec.WithID(s.newID())
	s.recs = append([]T{rec}, s.recs...)
	if err := s.persist(); err != nil {
		s.recs = s.recs[1:]
		var zero T
		return zero, err
	}
	return rec, nil
}

// Remove deletes the record with the given id and persists. Removing an id
// that is not present is a no-op, not an error.
func (s *Store[T]) Remove(recordID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.recs {
		if r.RecordID() != recordID {
			continue
		}
		old := s.recs
		s.recs = append(append([]T(nil), old[:i]...), old[i+1:]...)
		if err := s.persist(); err != nil {
			s.recs = old
			return err
		}
		return nil
	}
	return nil
}

// List returns the records in stored order, newest first. The returned slice
// is a copy; mutating it does not affect the store.
func (s *Store[T]) List() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]T(nil), s.recs...)
}

// Len returns the number of records in the collection.
func (s *Store[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs)
}

func (s *Store[T]) persist() error {
	data, err := json.Marshal(s.recs)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.provider.Set(s.key, string(data)); err != nil {
		return fmt.Errorf("persist %s: %w", s.key, err)
	}
	return nil
}
