package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStatusLabels(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusInProgress, "In Progress"},
		{StatusCompleted, "Completed"},
		{Status(7), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.status.String(); got != tc.want {
			t.Errorf("Status(%d).String() = %q, want %q", tc.status, got, tc.want)
		}
	}
	if Status(7).Valid() {
		t.Error("Status(7).Valid() = true, want false")
	}
}

func TestTaskWireDecoding(t *testing.T) {
	raw := `{"id":5,"title":"Write report","description":"quarterly","status":1,"userId":12,"fulfilledDate":"2024-03-01T14:30:00Z","version":3}`

	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if task.ID != 5 || task.UserID != 12 {
		t.Errorf("identity fields = (%d, %d), want (5, 12)", task.ID, task.UserID)
	}
	if task.Title != "Write report" || task.Description != "quarterly" {
		t.Errorf("text fields = (%q, %q)", task.Title, task.Description)
	}
	if task.Status != StatusCompleted {
		t.Errorf("status = %v, want Completed", task.Status)
	}
	if task.Version != 3 {
		t.Errorf("version = %d, want 3", task.Version)
	}
	want := time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC)
	if task.FulfilledDate == nil || !task.FulfilledDate.Equal(want) {
		t.Errorf("fulfilledDate = %v, want %v", task.FulfilledDate, want)
	}
}

func TestTaskNullableFieldsDecodeToZeroValues(t *testing.T) {
	raw := `{"id":1,"title":"x","description":null,"status":0,"userId":2,"fulfilledDate":null,"version":0}`

	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.Description != "" {
		t.Errorf("description = %q, want empty", task.Description)
	}
	if task.FulfilledDate != nil {
		t.Errorf("fulfilledDate = %v, want nil", task.FulfilledDate)
	}
}

// A task built from a wire record and serialized back as an update must
// not drop or rename any of the draft fields.
func TestDraftRoundTripPreservesFields(t *testing.T) {
	raw := `{"id":9,"title":"Call bank","description":"before noon","status":1,"userId":4,"fulfilledDate":"2024-05-20T09:00:00Z","version":8}`

	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	payload, err := json.Marshal(DraftOf(task))
	if err != nil {
		t.Fatalf("marshal draft: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		t.Fatalf("unmarshal draft payload: %v", err)
	}

	for _, key := range []string{"title", "description", "status", "fulfilledDate", "version"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("draft payload is missing %q", key)
		}
	}
	for _, key := range []string{"id", "userId"} {
		if _, ok := fields[key]; ok {
			t.Errorf("draft payload must not carry %q, identity comes from the URL path", key)
		}
	}
	if fields["title"] != "Call bank" || fields["status"] != float64(1) || fields["version"] != float64(8) {
		t.Errorf("draft payload fields do not match the source record: %v", fields)
	}
}

func TestTaskApply(t *testing.T) {
	due := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	task := Task{ID: 3, UserID: 7, Title: "old", Status: StatusInProgress, Version: 1}
	task.Apply(TaskDraft{Title: "new", Description: "d", Status: StatusCompleted, FulfilledDate: &due, Version: 2})

	if task.ID != 3 || task.UserID != 7 {
		t.Error("identity fields must survive Apply")
	}
	if task.Title != "new" || task.Description != "d" || !task.IsCompleted() || task.Version != 2 {
		t.Errorf("apply result = %+v", task)
	}
	if task.FulfilledDate == nil || !task.FulfilledDate.Equal(due) {
		t.Errorf("fulfilledDate = %v, want %v", task.FulfilledDate, due)
	}
}
