package project

import (
	"sync"
	"time"
)

// State is the in-memory container for a category's fetched records, the
// current selection, the loading flag, and the last error. It is mutated
// only by the owning Repository; readers take snapshots.
type State[E any] struct {
	mu        sync.RWMutex
	records   []Record[E]
	selected  *Record[E]
	loading   bool
	lastError *ErrorDetail
}

// Snapshot is a point-in-time copy of the container for rendering.
type Snapshot[E any] struct {
	Records   []Record[E]  `json:"records"`
	Selected  *Record[E]   `json:"selected,omitempty"`
	Loading   bool         `json:"loading"`
	LastError *ErrorDetail `json:"lastError,omitempty"`
}

// Snapshot returns a copy of the current state.
func (s *State[E]) Snapshot() Snapshot[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot[E]{
		Records: make([]Record[E], len(s.records)),
		Loading: s.loading,
	}
	copy(snap.Records, s.records)
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	if s.lastError != nil {
		detail := *s.lastError
		snap.LastError = &detail
	}
	return snap
}

// Records returns a copy of the current record list.
func (s *State[E]) Records() []Record[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Record[E], len(s.records))
	copy(out, s.records)
	return out
}

// Selected returns a copy of the selected record, or nil.
func (s *State[E]) Selected() *Record[E] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	sel := *s.selected
	return &sel
}

// Loading reports whether an operation is in flight.
func (s *State[E]) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the last recorded failure, or nil.
func (s *State[E]) LastError() *ErrorDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastError == nil {
		return nil
	}
	detail := *s.lastError
	return &detail
}

// begin marks an operation in flight. Errors are not sticky: the previous
// failure clears here, on the next request.
func (s *State[E]) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.lastError = nil
}

// fail records a failure and clears the loading flag. Records and
// selection keep their previous values.
func (s *State[E]) fail(op string, kind ErrorKind, message string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastError = &ErrorDetail{Op: op, Kind: kind, Message: message, At: at}
}

// setRecords replaces the record list entirely.
func (s *State[E]) setRecords(records []Record[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.records = records
}

// setSelected overwrites the selection unconditionally.
func (s *State[E]) setSelected(rec Record[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.selected = &rec
}

// appendRecord adds a freshly created record to the list.
func (s *State[E]) appendRecord(rec Record[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.records = append(s.records, rec)
}

// replaceRecord swaps the list entry sharing the record's id, if present,
// and refreshes a matching selection.
func (s *State[E]) replaceRecord(rec Record[E]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	for i := range s.records {
		if s.records[i].ID == rec.ID {
			s.records[i] = rec
			break
		}
	}
	if s.selected != nil && s.selected.ID == rec.ID {
		sel := rec
		s.selected = &sel
	}
}

// removeRecord prunes the list entry with the given id and clears a
// matching selection.
func (s *State[E]) removeRecord(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	if s.selected != nil && s.selected.ID == id {
		s.selected = nil
	}
}
