// Package status tracks in-flight recognition state for polling clients.
package status

import (
	"sync"
)

// Entry is the tracker's view of one record.
type Entry struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Tracker is an in-memory status map keyed by record id. It is advisory:
// entries vanish on restart and unknown ids read as the default entry.
type Tracker struct {
	mu      sync.RWMutex
	entries map[int64]Entry
	def     Entry
}

// NewTracker returns a tracker that answers def for unknown ids.
func NewTracker(def Entry) *Tracker {
	return &Tracker{
		entries: make(map[int64]Entry),
		def:     def,
	}
}

// Set records the latest state for recordID.
func (t *Tracker) Set(recordID int64, status, message string) {
	t.mu.Lock()
	t.entries[recordID] = Entry{Status: status, Message: message}
	t.mu.Unlock()
}

// Get returns the tracked entry, or the default for unknown ids.
func (t *Tracker) Get(recordID int64) Entry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if e, ok := t.entries[recordID]; ok {
		return e
	}
	return t.def
}

// Delete drops the entry for recordID.
func (t *Tracker) Delete(recordID int64) {
	t.mu.Lock()
	delete(t.entries, recordID)
	t.mu.Unlock()
}

// Len is the number of tracked records.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
