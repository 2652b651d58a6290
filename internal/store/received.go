package store

import (
	"sync"
)

// ReceivedIndex tracks inbound transfers: the name of the most recently
// received file and, where the event bus reported one, the on-disk path of
// each completed file. Paths let downloads stream from disk instead of
// buffering through the control API.
type ReceivedIndex struct {
	mu    sync.RWMutex
	last  string
	paths map[string]string
}

func NewReceivedIndex() *ReceivedIndex {
	return &ReceivedIndex{paths: make(map[string]string)}
}

// Record notes that name arrived. path may be empty when the transfer was
// discovered without an on-disk location; an empty path never overwrites a
// known one.
func (r *ReceivedIndex) Record(name, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.last = name
	if path != "" {
		r.paths[name] = path
	}
}

// SeedLast sets the last-received name only when none is known yet. Used by
// the inbox fallback poll so a periodic listing never clobbers fresher bus
// data.
func (r *ReceivedIndex) SeedLast(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last == "" {
		r.last = name
	}
}

// Last returns the name of the most recently received file, or "".
func (r *ReceivedIndex) Last() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.last
}

// PathFor returns the recorded on-disk path for name, if any.
func (r *ReceivedIndex) PathFor(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.paths[name]
	return p, ok
}

// Forget drops the path entry for name after the file has been consumed.
func (r *ReceivedIndex) Forget(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.paths, name)
}
