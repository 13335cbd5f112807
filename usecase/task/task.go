package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/todoclient/api/gateway"
	"github.com/fastygo/todoclient/domain"
	"github.com/fastygo/todoclient/store"
	"github.com/fastygo/todoclient/usecase"
)

// UseCase keeps the task collection store synchronized with the remote
// API and commits drafts staged in the form store.
type UseCase struct {
	gw      *gateway.Client
	session *store.Session
	tasks   *store.Tasks
	form    *store.TaskForm
	logger  *zap.Logger
}

func New(gw *gateway.Client, session *store.Session, tasks *store.Tasks, form *store.TaskForm, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		gw:      gw,
		session: session,
		tasks:   tasks,
		form:    form,
		logger:  logger,
	}
}

// Refresh pulls a full task snapshot and replaces the collection with
// it. The store never merges incrementally; every view refresh is one
// round trip and one rebuild.
func (uc *UseCase) Refresh(ctx context.Context) error {
	token := uc.session.Token()
	if token == "" {
		return domain.ErrNoSession
	}

	resp, err := uc.gw.ListTasks(ctx, token)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "task list request failed", err)
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "list tasks")
	}

	var records []domain.Task
	if err := resp.Decode(&records); err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "malformed task list response", err)
	}

	uc.tasks.ReplaceAll(records)
	uc.logger.Debug("task collection refreshed", zap.Int("count", len(records)))
	return nil
}

// CommitDraft submits the staged form. In update mode the committed
// draft is projected onto the local entity to avoid a re-fetch; in
// create mode a full refresh follows since only the server knows the
// new id and version. On success the form is discarded and closed.
func (uc *UseCase) CommitDraft(ctx context.Context) error {
	token := uc.session.Token()
	if token == "" {
		return domain.ErrNoSession
	}

	draft, err := uc.form.Draft()
	if err != nil {
		return err
	}

	taskID, editing := uc.form.Editing()
	if editing {
		resp, err := uc.gw.UpdateTask(ctx, taskID, draft, token)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "task update request failed", err)
		}
		if !resp.OK() {
			return usecase.ErrorFromStatus(resp.StatusCode, "update task")
		}
		if err := uc.tasks.UpdateByID(taskID, draft); err != nil {
			return err
		}
	} else {
		resp, err := uc.gw.CreateTask(ctx, draft, token)
		if err != nil {
			return domain.WrapError(domain.ErrCodeInternal, "task create request failed", err)
		}
		if !resp.OK() {
			return usecase.ErrorFromStatus(resp.StatusCode, "create task")
		}
		if err := uc.Refresh(ctx); err != nil {
			return err
		}
	}

	uc.form.Reset()
	uc.form.Open(false)
	return nil
}

// Complete marks an existing task as completed, carrying its last
// observed version, and projects the change locally on success.
func (uc *UseCase) Complete(ctx context.Context, taskID int) error {
	token := uc.session.Token()
	if token == "" {
		return domain.ErrNoSession
	}

	current, ok := uc.tasks.Get(taskID)
	if !ok {
		return domain.ErrTaskNotFound
	}

	draft := domain.DraftOf(current)
	draft.Status = domain.StatusCompleted

	resp, err := uc.gw.UpdateTask(ctx, taskID, draft, token)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "task update request failed", err)
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "update task")
	}
	return uc.tasks.UpdateByID(taskID, draft)
}

// Delete removes a task remotely and refreshes the snapshot.
func (uc *UseCase) Delete(ctx context.Context, taskID int) error {
	token := uc.session.Token()
	if token == "" {
		return domain.ErrNoSession
	}

	resp, err := uc.gw.DeleteTask(ctx, taskID, token)
	if err != nil {
		return domain.WrapError(domain.ErrCodeInternal, "task delete request failed", err)
	}
	if !resp.OK() {
		return usecase.ErrorFromStatus(resp.StatusCode, "delete task")
	}
	return uc.Refresh(ctx)
}
