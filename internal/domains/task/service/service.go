package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/task/model"
	"tripdesk/internal/domains/task/model/dto"
	"tripdesk/internal/domains/task/repository"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

type Task interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo repository.Task
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Task, cfg *config.Config, otel otel.Otel) Task {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create task")

		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tasks")

		return res, fmt.Errorf("failed to count tasks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tasks")

		return res, fmt.Errorf("failed to get tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get task")

		return res, fmt.Errorf("failed to get task: %w", err)
	}

	if task.ID == "" {
		return res, failure.NotFound("task not found") // nolint:wrapcheck
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateTaskRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if task exists")

		return fmt.Errorf("failed to check if task exists: %w", err)
	}

	if !exist {
		log.Error().Msg("task not found")

		return failure.NotFound("task not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update task")

		return fmt.Errorf("failed to update task: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if task exists")

		return fmt.Errorf("failed to check if task exists: %w", err)
	}

	if !exist {
		log.Error().Msg("task not found")

		return failure.NotFound("task not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete task")

		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}
