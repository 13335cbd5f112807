package domain

import "time"

// TaskDraft is a detached, editable projection of a task used as the
// update/create payload. It has no identity of its own; the target task
// is named by the URL path on submit. Version must carry the value the
// client last observed for the task.
type TaskDraft struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        Status     `json:"status"`
	FulfilledDate *time.Time `json:"fulfilledDate"`
	Version       int        `json:"version"`
}

// DraftOf builds a draft from the current state of a task.
func DraftOf(task Task) TaskDraft {
	return TaskDraft{
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		FulfilledDate: task.FulfilledDate,
		Version:       task.Version,
	}
}

// Validate rejects malformed payloads before they reach the wire.
func (d TaskDraft) Validate() error {
	if d.Title == "" {
		return NewError(ErrCodeInvalid, "draft title must not be empty")
	}
	if !d.Status.Valid() {
		return NewError(ErrCodeInvalid, "draft status is not a known status")
	}
	if d.Version < 0 {
		return NewError(ErrCodeInvalid, "draft version must not be negative")
	}
	return nil
}
