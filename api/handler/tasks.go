package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/gamedesk/backend/api/transport"
	"github.com/gamedesk/backend/domain"
	"github.com/gamedesk/backend/pkg/httpcontext"
	tasksUC "github.com/gamedesk/backend/usecase/tasks"
)

type TaskHandler struct {
	baseHandler
	uc *tasksUC.UseCase
}

func NewTaskHandler(uc *tasksUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks in display order
// @Tags tasks
// @Router /api/v1/games/{id}/tasks [get]
func (h *TaskHandler) ListTasks(ctx *fasthttp.RequestCtx) {
	category := string(ctx.QueryArgs().Peek("category"))
	filter := domain.TaskFilter{
		Status:   string(ctx.QueryArgs().Peek("status")),
		Priority: string(ctx.QueryArgs().Peek("priority")),
		Assignee: string(ctx.QueryArgs().Peek("assignee")),
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.List(stdCtx, pathParam(ctx, "id"), category, filter)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, tasks)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/games/{id}/tasks [post]
func (h *TaskHandler) CreateTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskRequest
	if !h.parseBody(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Create(stdCtx, pathParam(ctx, "id"), tasksUC.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Urgency:     req.Urgency,
		Assignee:    req.Assignee,
		MediaLinks:  req.MediaLinks,
	})
	h.respondMutation(ctx, http.StatusCreated, task, err)
}

// @Summary Get task
// @Tags tasks
// @Router /api/v1/games/{id}/tasks/{taskId} [get]
func (h *TaskHandler) GetTask(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.Get(stdCtx, pathParam(ctx, "id"), pathParam(ctx, "taskId"))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, task)
}

// @Summary Complete or reopen task
// @Tags tasks
// @Router /api/v1/games/{id}/tasks/{taskId}/status [put]
func (h *TaskHandler) SetTaskStatus(ctx *fasthttp.RequestCtx) {
	var req transport.TaskStatusRequest
	if !h.parseBody(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	task, err := h.uc.SetStatus(stdCtx, pathParam(ctx, "id"), pathParam(ctx, "taskId"), tasksUC.StatusInput{
		Status:            req.Status,
		CompletionComment: req.CompletionComment,
		CompletedBy:       req.CompletedBy,
	})
	h.respondMutation(ctx, http.StatusOK, task, err)
}

// @Summary Add comment
// @Tags tasks
// @Router /api/v1/games/{id}/tasks/{taskId}/comments [post]
func (h *TaskHandler) AddComment(ctx *fasthttp.RequestCtx) {
	var req transport.CommentRequest
	if !h.parseBody(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	comment, err := h.uc.AddComment(stdCtx, pathParam(ctx, "id"), pathParam(ctx, "taskId"), req.Text, req.Author)
	h.respondMutation(ctx, http.StatusCreated, comment, err)
}

// @Summary Delete task (audit move)
// @Tags tasks
// @Router /api/v1/games/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(ctx *fasthttp.RequestCtx) {
	var req transport.TaskDeleteRequest
	if !h.parseBody(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	deleted, err := h.uc.Delete(stdCtx, pathParam(ctx, "id"), pathParam(ctx, "taskId"), req.Reason, req.DeletedBy)
	h.respondMutation(ctx, http.StatusOK, deleted, err)
}
