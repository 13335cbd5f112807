package store

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/fastygo/todoclient/domain"
)

func sampleTasks() []domain.Task {
	due := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	return []domain.Task{
		{ID: 1, Title: "first", Status: domain.StatusInProgress, UserID: 10, Version: 1},
		{ID: 5, Title: "fifth", Description: "mid", Status: domain.StatusInProgress, UserID: 10, FulfilledDate: &due, Version: 3},
		{ID: 2, Title: "second", Status: domain.StatusCompleted, UserID: 10, Version: 7},
	}
}

func TestReplaceAllPreservesOrder(t *testing.T) {
	s := NewTasks()
	source := sampleTasks()
	s.ReplaceAll(source)

	got := s.All()
	if !reflect.DeepEqual(got, source) {
		t.Fatalf("All() = %+v, want %+v", got, source)
	}
	if s.Len() != len(source) {
		t.Errorf("Len() = %d, want %d", s.Len(), len(source))
	}
}

func TestReplaceAllEmptyAndNilClear(t *testing.T) {
	s := NewTasks()
	s.ReplaceAll(sampleTasks())

	s.ReplaceAll([]domain.Task{})
	if s.Len() != 0 {
		t.Fatalf("Len() after empty ReplaceAll = %d, want 0", s.Len())
	}

	s.ReplaceAll(sampleTasks())
	s.ReplaceAll(nil)
	if s.Len() != 0 {
		t.Fatalf("Len() after nil ReplaceAll = %d, want 0", s.Len())
	}
}

func TestReplaceAllIsSnapshotNotAppend(t *testing.T) {
	s := NewTasks()
	s.ReplaceAll(sampleTasks())
	s.ReplaceAll(sampleTasks())
	if s.Len() != len(sampleTasks()) {
		t.Fatalf("Len() after two refreshes = %d, want %d", s.Len(), len(sampleTasks()))
	}
}

func TestClear(t *testing.T) {
	s := NewTasks()
	s.ReplaceAll(sampleTasks())
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", s.Len())
	}
}

func TestUpdateByID(t *testing.T) {
	s := NewTasks()
	s.ReplaceAll(sampleTasks())

	draft := domain.TaskDraft{Title: "X", Status: domain.StatusCompleted, Version: 3}
	if err := s.UpdateByID(5, draft); err != nil {
		t.Fatalf("UpdateByID(5) = %v", err)
	}

	updated, ok := s.Get(5)
	if !ok {
		t.Fatal("task 5 disappeared")
	}
	if updated.Title != "X" || updated.Status != domain.StatusCompleted || updated.Version != 3 {
		t.Errorf("task 5 = %+v", updated)
	}
	if updated.Description != "" || updated.FulfilledDate != nil {
		t.Errorf("draft fields not copied wholesale: %+v", updated)
	}
	if updated.UserID != 10 {
		t.Errorf("userId changed to %d", updated.UserID)
	}

	// the other tasks are untouched
	for _, id := range []int{1, 2} {
		got, _ := s.Get(id)
		var want domain.Task
		for _, task := range sampleTasks() {
			if task.ID == id {
				want = task
			}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("task %d changed: %+v, want %+v", id, got, want)
		}
	}
}

func TestUpdateByIDNotFound(t *testing.T) {
	s := NewTasks()
	source := sampleTasks()
	s.ReplaceAll(source)

	err := s.UpdateByID(99, domain.TaskDraft{Title: "X", Status: domain.StatusCompleted})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("UpdateByID(99) = %v, want ErrTaskNotFound", err)
	}
	if !reflect.DeepEqual(s.All(), source) {
		t.Error("collection modified by a failed update")
	}
}

func TestAllReturnsACopy(t *testing.T) {
	s := NewTasks()
	s.ReplaceAll(sampleTasks())

	out := s.All()
	out[0].Title = "mutated"

	fresh, _ := s.Get(out[0].ID)
	if fresh.Title == "mutated" {
		t.Error("All() leaks internal state")
	}
}
