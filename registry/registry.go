// Package registry maps opaque handles to surrogate integer identifiers
// so the codec layer can transport values that are not data-like. A
// registry is an explicit object: construct one, register the handles
// the host knows about, and hand it to the handle codec. Registration is
// expected to happen once at startup; lookups dominate afterwards.
package registry

import (
	"math"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// InvalidID is the reserved sentinel. It is never allocated and stands
// for "handle not registered" on the save side.
const InvalidID int32 = math.MinInt32

// Registry is the identifier/handle table for one handle type H.
// Handle equality is H's own equality. All operations are guarded by a
// single lock, so a registry may be shared between concurrent
// encode/decode calls even while registrations are still happening.
type Registry[H comparable] struct {
	mu      sync.RWMutex
	entries map[int32]H
	ids     []int32 // ascending, mirrors entries' keys
	log     *zap.SugaredLogger
}

func New[H comparable]() *Registry[H] {
	return &Registry[H]{
		entries: make(map[int32]H),
		log:     zap.L().Sugar().With("service", "class-registry"),
	}
}

// Register allocates the first free identifier above the sentinel and
// binds h to it. Allocation is deterministic for a fixed call history
// and never yields InvalidID.
func (r *Registry[H]) Register(h H) int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := InvalidID + 1
	for {
		if _, taken := r.entries[id]; !taken {
			break
		}
		id++
	}
	r.insert(id, h)
	return id
}

// RegisterAt binds h to a caller-chosen identifier, overwriting any
// previous binding. Explicit identifiers keep encodings stable across
// runs.
func (r *Registry[H]) RegisterAt(id int32, h H) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insert(id, h)
}

func (r *Registry[H]) insert(id int32, h H) {
	if _, taken := r.entries[id]; !taken {
		pos, _ := slices.BinarySearch(r.ids, id)
		r.ids = slices.Insert(r.ids, pos, id)
	}
	r.entries[id] = h
	r.log.Debugf("registered handle %v with id %d", h, id)
}

// IdentifierFor returns the identifier of the first entry, in ascending
// identifier order, whose handle equals h, or InvalidID if none does.
// Absence is a regular result, not an error.
func (r *Registry[H]) IdentifierFor(h H) int32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.ids {
		if r.entries[id] == h {
			return id
		}
	}
	return InvalidID
}

// HandleFor returns the handle bound to id, or the zero handle if the
// identifier is unknown.
func (r *Registry[H]) HandleFor(id int32) H {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id]
}

// Count returns the number of entries.
func (r *Registry[H]) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Clear removes all entries.
func (r *Registry[H]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[int32]H)
	r.ids = nil
}

// Entry is one identifier/handle binding in a registry snapshot.
type Entry[H comparable] struct {
	ID     int32
	Handle H
}

// Entries returns a copy of the table in ascending identifier order.
func (r *Registry[H]) Entries() []Entry[H] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry[H], 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, Entry[H]{ID: id, Handle: r.entries[id]})
	}
	return out
}
