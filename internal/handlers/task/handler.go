package task

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/task/model"
	"tripdesk/internal/domains/task/model/dto"
	"tripdesk/internal/domains/task/service"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Task
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Task, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tasks", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTask)
		routerGroup.Get("/", handler.GetTasks)
		routerGroup.Get("/{id}", handler.GetTaskByID)
		routerGroup.Patch("/{id}", handler.UpdateTask)
		routerGroup.Delete("/{id}", handler.DeleteTask)
	})
}

// CreateTask records a follow-up item.
// @Summary Create a task
// @Description Create a follow-up task, optionally pinned to a booking.
// @Tags Task
// @Accept json
// @Produce json
// @Param request body dto.CreateTaskRequest true "Create Task Request"
// @Success 201 {object} response.Message "Task created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tasks [post]
// @Security BearerAuth
func (handler *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTask")
	defer scope.End()

	req := dto.CreateTaskRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Task created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Task created successfully")
}

// GetTasks lists follow-up items.
// @Summary Get all tasks
// @Description Retrieve tasks filtered by title, completion and priority.
// @Tags Task
// @Accept json
// @Produce json
// @Param title query string false "Filter by title"
// @Param completed query boolean false "Filter by completion status"
// @Param priority query string false "Filter by priority"
// @Success 200 {object} dto.GetTasksResponse "List of tasks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tasks [get]
// @Security BearerAuth
func (handler *Handler) GetTasks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTasks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldTitle,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldTitle),
				Table:    model.TableName,
			},
		},
	}

	if complete := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldCompleted)); complete != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCompleted,
			Operator: gDto.FilterOperatorEq,
			Value:    *complete,
			Table:    model.TableName,
		})
	}

	if priority := r.URL.Query().Get(model.FieldPriority); priority != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPriority,
			Operator: gDto.FilterOperatorEq,
			Value:    priority,
			Table:    model.TableName,
		})
	}

	tasks, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tasks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tasks retrieved successfully")

	response.WithJSON(w, http.StatusOK, tasks)
}

// GetTaskByID retrieves one task.
// @Summary Get a task by ID
// @Description Retrieve a task by its unique identifier.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} dto.TaskResponse "Task details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tasks/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTaskByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	task, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get task by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Task retrieved successfully")

	response.WithJSON(w, http.StatusOK, task)
}

// UpdateTask edits a task.
// @Summary Update a task by ID
// @Description Update a task's details or mark it complete.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param request body dto.UpdateTaskRequest true "Update Task Request"
// @Success 200 {object} response.Message "Task updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tasks/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTaskRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Task updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Task updated successfully")
}

// DeleteTask removes a task.
// @Summary Delete a task by ID
// @Description Delete a task using its unique identifier.
// @Tags Task
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Message "Task deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tasks/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTask")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete task")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Task deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Task deleted successfully")
}
