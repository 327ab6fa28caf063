package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/client/model"
	gDto "tripdesk/shared/dto"
	gRepo "tripdesk/shared/repository"
)

type Client interface {
	Insert(ctx context.Context, model model.Client) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Client, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Client, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
