package store

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fastygo/todoclient/domain"
)

const formDateLayout = "2006-01-02"

// TaskForm is the transient staging area for the single task being
// created or edited. It is decoupled from the committed collection:
// committing requires an explicit remote update followed by a store
// refresh, the draft is never merged back automatically.
type TaskForm struct {
	mu          sync.RWMutex
	isOpen      bool
	editing     bool
	taskID      int
	title       string
	description string
	status      domain.Status
	date        string // "2006-01-02", empty when unset
	timeOfDay   string // "15:04" or "15:04:05", empty when unset
	version     int
}

// NewTaskForm returns a closed form in create mode.
func NewTaskForm() *TaskForm {
	return &TaskForm{status: domain.StatusInProgress}
}

// Open toggles the form's visibility flag.
func (f *TaskForm) Open(visible bool) {
	f.mu.Lock()
	f.isOpen = visible
	f.mu.Unlock()
}

// IsOpen reports the visibility flag.
func (f *TaskForm) IsOpen() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.isOpen
}

// LoadFromTask switches the form into update mode for the given task,
// copying its fields and decomposing the fulfilled timestamp into
// separate date and time-of-day fields for independent editing.
func (f *TaskForm) LoadFromTask(task domain.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing = true
	f.taskID = task.ID
	f.title = task.Title
	f.description = task.Description
	f.status = task.Status
	f.version = task.Version
	if task.FulfilledDate != nil {
		local := task.FulfilledDate.In(time.Local)
		f.date = local.Format(formDateLayout)
		f.timeOfDay = local.Format("15:04")
	} else {
		f.date = ""
		f.timeOfDay = ""
	}
}

// Reset returns the form to a blank create-mode state. The visibility
// flag is left alone.
func (f *TaskForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editing = false
	f.taskID = 0
	f.title = ""
	f.description = ""
	f.status = domain.StatusInProgress
	f.date = ""
	f.timeOfDay = ""
	f.version = 0
}

func (f *TaskForm) SetTitle(title string) {
	f.mu.Lock()
	f.title = title
	f.mu.Unlock()
}

func (f *TaskForm) SetDescription(description string) {
	f.mu.Lock()
	f.description = description
	f.mu.Unlock()
}

func (f *TaskForm) SetStatus(status domain.Status) {
	f.mu.Lock()
	f.status = status
	f.mu.Unlock()
}

// SetDate sets the date field ("2006-01-02"); empty means unset.
func (f *TaskForm) SetDate(date string) {
	f.mu.Lock()
	f.date = date
	f.mu.Unlock()
}

// SetTimeOfDay sets the time field ("15:04" or "15:04:05"); empty means
// unset.
func (f *TaskForm) SetTimeOfDay(timeOfDay string) {
	f.mu.Lock()
	f.timeOfDay = timeOfDay
	f.mu.Unlock()
}

// SetVersion records the version the client last observed for the task.
func (f *TaskForm) SetVersion(version int) {
	f.mu.Lock()
	f.version = version
	f.mu.Unlock()
}

// Editing reports whether the form targets an existing task, and which.
func (f *TaskForm) Editing() (int, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.taskID, f.editing
}

func (f *TaskForm) Title() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.title
}

func (f *TaskForm) Status() domain.Status {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// CombinedTimestamp composes the date and time-of-day fields back into
// one timestamp in local time. An unset date yields nil regardless of
// the time field; an unset time defaults to midnight. An invalid time
// format is a caller-visible defect, not silently tolerated.
func (f *TaskForm) CombinedTimestamp() (*time.Time, error) {
	f.mu.RLock()
	date, timeOfDay := f.date, f.timeOfDay
	f.mu.RUnlock()

	if date == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation(formDateLayout, date, time.Local)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "invalid form date", err)
	}
	hour, minute := 0, 0
	if timeOfDay != "" {
		if hour, minute, err = parseTimeOfDay(timeOfDay); err != nil {
			return nil, err
		}
	}
	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
	return &ts, nil
}

// Draft builds the update/create payload from the current form state.
func (f *TaskForm) Draft() (domain.TaskDraft, error) {
	ts, err := f.CombinedTimestamp()
	if err != nil {
		return domain.TaskDraft{}, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return domain.TaskDraft{
		Title:         f.title,
		Description:   f.description,
		Status:        f.status,
		FulfilledDate: ts,
		Version:       f.version,
	}, nil
}

// parseTimeOfDay extracts hour and minute from "HH:MM" or "HH:MM:SS".
// Seconds are always zeroed; anything else is rejected.
func parseTimeOfDay(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, 0, domain.NewError(domain.ErrCodeInvalid, "time of day must be HH:MM or HH:MM:SS")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, domain.NewError(domain.ErrCodeInvalid, "time of day has an invalid hour")
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, domain.NewError(domain.ErrCodeInvalid, "time of day has an invalid minute")
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return 0, 0, domain.NewError(domain.ErrCodeInvalid, "time of day has an invalid second")
		}
	}
	return hour, minute, nil
}
