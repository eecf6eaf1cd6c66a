// Package history keeps the most recent calculations of a session.
package history

import "github.com/mshalev/gematria/internal/gematria"

// DefaultCapacity matches the five slots shown in the UI.
const DefaultCapacity = 5

// displayLimit is the rune length at which stored input is truncated for display.
const displayLimit = 30

// Entry is one remembered calculation.
type Entry struct {
	Input  string
	Scheme gematria.Scheme
	Result gematria.Result
}

// Ring is a fixed-capacity, newest-first list of entries. It is plain
// session state with no locking; callers sharing one across goroutines
// need their own synchronization.
type Ring struct {
	capacity int
	entries  []Entry
}

// New creates a ring. A non-positive capacity falls back to DefaultCapacity.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{capacity: capacity}
}

// Add inserts an entry at the front, evicting the oldest when full.
func (r *Ring) Add(e Entry) {
	r.entries = append([]Entry{e}, r.entries...)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[:r.capacity]
	}
}

// Entries returns a copy of the entries, newest first.
func (r *Ring) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	return len(r.entries)
}

// DisplayText shortens input for the history list, keeping the full text
// out of the rendering path.
func DisplayText(input string) string {
	runes := []rune(input)
	if len(runes) <= displayLimit {
		return input
	}
	return string(runes[:displayLimit]) + "..."
}
