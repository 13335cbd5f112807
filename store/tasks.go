package store

import (
	"sync"

	"github.com/fastygo/todoclient/domain"
)

// Tasks owns the canonical in-memory task list of the current user,
// synchronized from gateway responses. Every refresh is a full snapshot
// replace; the store never merges partial updates. UpdateByID exists
// purely to avoid a round trip after one successful edit.
type Tasks struct {
	mu    sync.RWMutex
	items []domain.Task
}

// NewTasks returns an empty collection store.
func NewTasks() *Tasks {
	return &Tasks{}
}

// ReplaceAll rebuilds the collection from the given records, preserving
// source order. A nil or empty input clears the collection.
func (s *Tasks) ReplaceAll(records []domain.Task) {
	fresh := make([]domain.Task, len(records))
	copy(fresh, records)

	s.mu.Lock()
	s.items = fresh
	s.mu.Unlock()
}

// Clear empties the collection.
func (s *Tasks) Clear() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
}

// UpdateByID copies the draft's editable fields onto the task with the
// given id. It is a purely local projection update assuming the remote
// update already succeeded; no version check happens here, the server
// is the authority for conflicting versions. Returns
// domain.ErrTaskNotFound and leaves the collection untouched when the
// id is absent.
func (s *Tasks) UpdateByID(id int, draft domain.TaskDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Apply(draft)
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// All returns the tasks in collection order as a copy.
func (s *Tasks) All() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.items))
	copy(out, s.items)
	return out
}

// Get returns the task with the given id, if present.
func (s *Tasks) Get(id int) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			return s.items[i], true
		}
	}
	return domain.Task{}, false
}

// Len reports the number of tasks held.
func (s *Tasks) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
