package core

import (
	"log/slog"
	"sync"
)

// Op names the mutation that produced a change notification.
type Op string

const (
	OpReplace Op = "replace"
	OpAdd     Op = "add"
	OpUpdate  Op = "update"
	OpDelete  Op = "delete"
	OpClear   Op = "clear"
)

// Change describes one committed mutation. Count is the store size after
// the mutation.
type Change struct {
	Op    Op    `json:"op"`
	Count int   `json:"count"`
	ID    int64 `json:"id,omitempty"` // affected record, for Add/Update/Delete
}

// Subscriber receives change notifications. Delivery is synchronous on the
// goroutine that performed the mutation, strictly after the new state is
// visible to readers.
type Subscriber func(Change)

// Store is the authoritative in-memory record collection. All operations
// are safe for concurrent use; readers never observe a partially applied
// mutation, and identifiers stay unique positive integers at all times.
//
// The data lock is held only for O(collection size) copying, never across
// I/O or subscriber callbacks.
type Store struct {
	mu      sync.RWMutex
	records []Record
	nextID  int64

	subMu  sync.Mutex
	subs   map[int]Subscriber
	subSeq int
}

// NewStore returns an empty store with the identifier counter at 1.
func NewStore() *Store {
	return &Store{nextID: 1, subs: make(map[int]Subscriber)}
}

// GetAll returns a deep copy of every record, in store order. Mutating the
// returned slice or records never affects store state.
func (s *Store) GetAll() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Get returns a copy of the record with the given identifier.
func (s *Store) Get(id int64) (Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r.Clone(), true
		}
	}
	return Record{}, false
}

// Count returns the number of live records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// ReplaceAll swaps the entire collection for the given records and
// recomputes the identifier counter as max(existing)+1, or 1 when empty.
// This is the import pipeline's commit boundary: the swap is atomic with
// respect to readers, and exactly one notification fires for the batch.
func (s *Store) ReplaceAll(records []Record) {
	replacement := make([]Record, len(records))
	var maxID int64
	for i, r := range records {
		replacement[i] = r.Clone()
		if r.ID > maxID {
			maxID = r.ID
		}
	}

	s.mu.Lock()
	s.records = replacement
	s.nextID = maxID + 1
	count := len(s.records)
	s.mu.Unlock()

	s.notify(Change{Op: OpReplace, Count: count})
}

// Add appends the record under the next identifier, overriding any
// identifier the caller supplied, and returns the assigned value.
func (s *Store) Add(rec Record) int64 {
	clone := rec.Clone()

	s.mu.Lock()
	clone.ID = s.nextID
	s.nextID++
	s.records = append(s.records, clone)
	count := len(s.records)
	s.mu.Unlock()

	s.notify(Change{Op: OpAdd, Count: count, ID: clone.ID})
	return clone.ID
}

// Update replaces the stored record with the same identifier wholesale.
// Returns false, with no mutation and no notification, when the identifier
// is not present.
func (s *Store) Update(rec Record) bool {
	clone := rec.Clone()

	s.mu.Lock()
	found := false
	for i, r := range s.records {
		if r.ID == clone.ID {
			s.records[i] = clone
			found = true
			break
		}
	}
	count := len(s.records)
	s.mu.Unlock()

	if found {
		s.notify(Change{Op: OpUpdate, Count: count, ID: clone.ID})
	}
	return found
}

// Delete removes the record with the given identifier. Notifies only when
// something was actually removed.
func (s *Store) Delete(id int64) bool {
	s.mu.Lock()
	kept := s.records[:0]
	removed := false
	for _, r := range s.records {
		if r.ID == id {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	s.records = kept
	count := len(s.records)
	s.mu.Unlock()

	if removed {
		s.notify(Change{Op: OpDelete, Count: count, ID: id})
	}
	return removed
}

// Clear empties the collection and resets the identifier counter to 1.
func (s *Store) Clear() {
	s.mu.Lock()
	s.records = nil
	s.nextID = 1
	s.mu.Unlock()

	s.notify(Change{Op: OpClear, Count: 0})
}

// Subscribe registers a change subscriber and returns a function that
// removes it. Subscribers registered during a notification see only later
// changes.
func (s *Store) Subscribe(fn Subscriber) (cancel func()) {
	s.subMu.Lock()
	s.subSeq++
	id := s.subSeq
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// notify delivers one change to every current subscriber. A panicking
// subscriber is recovered and logged; the mutation has already committed.
func (s *Store) notify(c Change) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("change subscriber panicked", "op", c.Op, "panic", r)
				}
			}()
			fn(c)
		}()
	}
}
