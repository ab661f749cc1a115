package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// entity is satisfied by the pointer form of every stored record
// through domain.Meta.
type entity[T any] interface {
	*T
	EntityID() string
	Owner() string
	Sequence() uint64
	Stamp(id string, seq uint64, at time.Time)
}

// Config wires the per-kind behavior into a Collection.
type Config[T any, PT entity[T]] struct {
	// Key derives the storage key for a record. Nil means the generated
	// record id, which allows many rows per scope. Singleton kinds use
	// a scope key here, so a second create replaces the slot instead of
	// appending.
	Key func(PT) string

	// Less orders List results. Nil means insertion order.
	Less func(a, b PT) bool

	// Defaults fills omitted optional fields before the record is
	// stored. May be nil.
	Defaults func(PT)
}

// Collection is an in-memory keyed record set for one entity kind.
// Each operation holds the collection lock for its full duration;
// there are no cross-call transactions and no multi-entity atomicity.
// Records are stored by value and every operation returns a detached
// copy, so nothing handed to a caller aliases collection state and
// results stay safe to read while other goroutines write.
type Collection[T any, PT entity[T]] struct {
	mu    sync.RWMutex
	seq   uint64
	byKey map[string]T
	cfg   Config[T, PT]
}

// NewCollection creates an empty collection with the given behavior.
func NewCollection[T any, PT entity[T]](cfg Config[T, PT]) *Collection[T, PT] {
	return &Collection[T, PT]{
		byKey: make(map[string]T),
		cfg:   cfg,
	}
}

func (c *Collection[T, PT]) key(rec PT) string {
	if c.cfg.Key != nil {
		return c.cfg.Key(rec)
	}
	return rec.EntityID()
}

// Create applies defaults, assigns a fresh id and creation timestamp,
// and stores a copy of the record. Input is assumed well-formed;
// validation is the transport's job. Returns the caller's record,
// stamped.
func (c *Collection[T, PT]) Create(rec PT) PT {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg.Defaults != nil {
		c.cfg.Defaults(rec)
	}
	c.seq++
	rec.Stamp(uuid.NewString(), c.seq, time.Now().UTC())
	c.byKey[c.key(rec)] = *rec
	return rec
}

// Get returns a copy of the record stored at key, or false when
// absent.
func (c *Collection[T, PT]) Get(key string) (PT, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.byKey[key]
	if !ok {
		var zero PT
		return zero, false
	}
	return PT(&rec), true
}

// List returns a fresh sorted slice of copies of the records matching
// the predicate. A nil predicate matches everything.
func (c *Collection[T, PT]) List(match func(PT) bool) []PT {
	c.mu.RLock()
	out := make([]PT, 0, len(c.byKey))
	for _, rec := range c.byKey {
		rec := rec
		p := PT(&rec)
		if match == nil || match(p) {
			out = append(out, p)
		}
	}
	c.mu.RUnlock()

	less := c.cfg.Less
	if less == nil {
		less = func(a, b PT) bool { return a.Sequence() < b.Sequence() }
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Update applies fn to the record at key under the collection lock and
// stores the result, returning a copy. Reports false when no record
// exists at key.
func (c *Collection[T, PT]) Update(key string, fn func(PT)) (PT, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	rec, ok := c.byKey[key]
	if !ok {
		var zero PT
		return zero, false
	}
	fn(PT(&rec))
	c.byKey[key] = rec
	return PT(&rec), true
}

// Delete removes the record at key, reporting whether it was present.
// Deleting an absent key is not an error.
func (c *Collection[T, PT]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.byKey[key]; !ok {
		return false
	}
	delete(c.byKey, key)
	return true
}

// Len returns the number of stored records.
func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byKey)
}
