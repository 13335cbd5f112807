package gateway

import (
	"context"
	"strconv"

	"github.com/valyala/fasthttp"

	"github.com/fastygo/todoclient/domain"
)

const pathMyTasks = "/task/me"

// ListTasks fetches the ordered task list of the authenticated user.
// The success body is a JSON array of task records.
func (c *Client) ListTasks(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, fasthttp.MethodGet, pathMyTasks, token, nil)
}

// UpdateTask submits a draft against an existing task. The draft is
// validated before anything is put on the wire; identity comes from the
// URL path, the body carries only the editable fields plus the version
// the client last observed.
func (c *Client) UpdateTask(ctx context.Context, taskID int, draft domain.TaskDraft, token string) (*Response, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return c.doJSON(ctx, fasthttp.MethodPatch, pathMyTasks+"/"+strconv.Itoa(taskID), token, draft)
}

// CreateTask submits a draft as a new task for the authenticated user.
func (c *Client) CreateTask(ctx context.Context, draft domain.TaskDraft, token string) (*Response, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	return c.doJSON(ctx, fasthttp.MethodPost, pathMyTasks, token, draft)
}

// DeleteTask removes a task by id.
func (c *Client) DeleteTask(ctx context.Context, taskID int, token string) (*Response, error) {
	return c.do(ctx, fasthttp.MethodDelete, pathMyTasks+"/"+strconv.Itoa(taskID), token, nil)
}
