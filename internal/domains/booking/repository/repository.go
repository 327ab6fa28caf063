package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/booking/model"
	gDto "tripdesk/shared/dto"
	gRepo "tripdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type bookingImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Service interface {
	Insert(ctx context.Context, model model.Service) error
	InsertBulk(ctx context.Context, models []model.Service) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Service) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Service, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type serviceImpl struct {
	gRepo.Repository[model.Service]
	db   *postgres.Connection
	otel otel.Otel
}

func NewService(db *postgres.Connection, otel otel.Otel) Service {
	return &serviceImpl{
		Repository: gRepo.NewRepository[model.Service](model.ServiceEntityName, model.ServiceTableName, model.FieldServiceID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Passenger interface {
	InsertBulk(ctx context.Context, models []model.Passenger) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []model.Passenger) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Passenger, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) error
}

type passengerImpl struct {
	gRepo.Repository[model.Passenger]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPassenger(db *postgres.Connection, otel otel.Otel) Passenger {
	return &passengerImpl{
		Repository: gRepo.NewRepository[model.Passenger](model.PassengerEntityName, model.PassengerTableName, model.FieldPassengerID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Payment) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type paymentImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentImpl{
		Repository: gRepo.NewRepository[model.Payment](model.PaymentEntityName, model.PaymentTableName, model.FieldPaymentID, db, otel),
		db:         db,
		otel:       otel,
	}
}
