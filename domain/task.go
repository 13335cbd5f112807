package domain

import "time"

// Status is the task status enum shared with the remote API.
type Status int

const (
	StatusInProgress Status = 0
	StatusCompleted  Status = 1
)

// StatusLabels maps statuses to their human-readable names.
var StatusLabels = map[Status]string{
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
}

func (s Status) String() string {
	if label, ok := StatusLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Valid reports whether s is one of the statuses the API understands.
func (s Status) Valid() bool {
	_, ok := StatusLabels[s]
	return ok
}

// Task mirrors a server-held task entity. ID and UserID are
// server-assigned and immutable; Version only ever increases and is
// maintained by the server.
type Task struct {
	ID            int        `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        Status     `json:"status"`
	UserID        int        `json:"userId"`
	FulfilledDate *time.Time `json:"fulfilledDate"`
	Version       int        `json:"version"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// Apply copies the editable fields of a draft onto the task. The caller
// is expected to have already committed the draft remotely.
func (t *Task) Apply(draft TaskDraft) {
	t.Title = draft.Title
	t.Description = draft.Description
	t.Status = draft.Status
	t.FulfilledDate = draft.FulfilledDate
	t.Version = draft.Version
}

// PrettyFulfilledDate formats the fulfilled date for display, or returns
// an empty string when none is set.
func (t *Task) PrettyFulfilledDate() string {
	if t == nil || t.FulfilledDate == nil {
		return ""
	}
	return t.FulfilledDate.Format("January 2, 2006 15:04")
}
