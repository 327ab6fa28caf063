package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/transaction/model"
	gDto "tripdesk/shared/dto"
	gRepo "tripdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Insert(ctx context.Context, model model.Transaction) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Transaction) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Transaction, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Transaction, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Transaction]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Transaction {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
