// Package registry stores live controls by identifier and generates
// identifiers for controls created without one.
package registry

import (
	"log/slog"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
)

// Entry is anything the registry can index.
type Entry interface {
	ID() string
}

// Registry is a non-owning lookup table from identifier to live entry.
// It is safe for concurrent use.
type Registry struct {
	entries map[string]Entry
	logger  *slog.Logger
	mu      sync.RWMutex
}

// New creates an empty registry. A nil logger uses slog.Default().
func New(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		entries: make(map[string]Entry),
		logger:  logger,
	}
}

// Add stores e under its identifier, replacing any previous entry.
func (r *Registry) Add(e Entry) {
	id := e.ID()
	r.mu.Lock()
	prev, exists := r.entries[id]
	r.entries[id] = e
	r.mu.Unlock()
	if exists && prev != e {
		r.logger.Warn("registry: identifier reused by a different control", slog.String("id", id))
	}
}

// Remove erases e if it is the entry stored under its identifier.
func (r *Registry) Remove(e Entry) {
	id := e.ID()
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.entries[id]; ok && cur == e {
		delete(r.entries, id)
	}
}

// Get returns the entry stored under id, or nil.
func (r *Registry) Get(id string) Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id]
}

// Len returns the number of live entries.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// IDs returns the stored identifiers in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// IDGenerator produces identifiers unique within a process.
type IDGenerator interface {
	Next(prefix string) string
}

// DefaultStart is the first counter value used by NewSequence(0).
const DefaultStart = 0x861005

// Sequence is a monotonic IDGenerator producing prefix+counter.
// It is safe for concurrent use.
type Sequence struct {
	counter atomic.Uint64
}

// NewSequence creates a sequence starting at start, or DefaultStart when 0.
func NewSequence(start uint64) *Sequence {
	if start == 0 {
		start = DefaultStart
	}
	s := &Sequence{}
	s.counter.Store(start)
	return s
}

// Next returns the next identifier. An empty prefix uses "ui".
func (s *Sequence) Next(prefix string) string {
	if prefix == "" {
		prefix = "ui"
	}
	n := s.counter.Add(1) - 1
	return prefix + strconv.FormatUint(n, 10)
}
