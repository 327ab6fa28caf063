package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/supplier/model"
	"tripdesk/internal/domains/supplier/model/dto"
	"tripdesk/internal/domains/supplier/repository"
	transactionModel "tripdesk/internal/domains/transaction/model"
	transactionRepo "tripdesk/internal/domains/transaction/repository"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

const (
	cacheGetAllSupplier = "supplier:gets"
	cacheCountSupplier  = "supplier:count"
)

type Supplier interface {
	Create(ctx context.Context, req dto.CreateSupplierRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSuppliersResponse, error)
	Get(ctx context.Context, id string) (dto.SupplierResponse, error)
	Update(ctx context.Context, req dto.UpdateSupplierRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Supplier
	txRepo transactionRepo.Transaction
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
}

func New(repo repository.Supplier, txRepo transactionRepo.Transaction, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Supplier {
	return &serviceImpl{
		repo:   repo,
		txRepo: txRepo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSupplierRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	supplier := req.ToModel(user)

	if err = s.repo.Insert(ctx, supplier); err != nil {
		log.Error().Err(err).Msg("failed to create supplier")

		return constant.Empty, fmt.Errorf("failed to create supplier: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSupplier)
		shared.InvalidateCaches(c, s.cache, cacheCountSupplier)
	}()

	return supplier.ID, nil
}

// totalPaid sums the expense entries recorded against the supplier, in the
// base currency.
func (s *serviceImpl) totalPaid(ctx context.Context, supplierID string) (float64, error) {
	transactions, err := s.txRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    transactionModel.FieldSupplierID,
				Value:    supplierID,
				Operator: gDto.FilterOperatorEq,
				Table:    transactionModel.TableName,
			},
			gDto.Filter{
				Field:    transactionModel.FieldType,
				Value:    transactionModel.TypeExpense,
				Operator: gDto.FilterOperatorEq,
				Table:    transactionModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get supplier transactions")

		return 0, fmt.Errorf("failed to get supplier transactions: %w", err)
	}

	var total float64

	for _, transaction := range transactions {
		total += transaction.Amount
	}

	return total, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSuppliersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count suppliers")

		return res, fmt.Errorf("failed to count suppliers: %w", err)
	}

	suppliers, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get suppliers")

		return res, fmt.Errorf("failed to get suppliers: %w", err)
	}

	res.Suppliers = make([]dto.SupplierResponse, len(suppliers))

	for i := range suppliers {
		paid, paidErr := s.totalPaid(ctx, suppliers[i].ID)
		if paidErr != nil {
			return res, paidErr
		}

		res.Suppliers[i].FromModel(suppliers[i], paid)
	}

	res.CalculateTotalPage(total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SupplierResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	supplier, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get supplier")

		return res, fmt.Errorf("failed to get supplier: %w", err)
	}

	if supplier.ID == constant.Empty {
		return res, failure.NotFound("supplier not found") // nolint:wrapcheck
	}

	paid, err := s.totalPaid(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(supplier, paid)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSupplierRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if supplier exists")

		return fmt.Errorf("failed to check if supplier exists: %w", err)
	}

	if !exist {
		return failure.NotFound("supplier not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update supplier")

		return fmt.Errorf("failed to update supplier: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSupplier)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if supplier exists")

		return fmt.Errorf("failed to check if supplier exists: %w", err)
	}

	if !exist {
		return failure.NotFound("supplier not found") // nolint:wrapcheck
	}

	referenced, err := s.txRepo.Exist(ctx, shared.FilterByID(id, transactionModel.FieldSupplierID, transactionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check supplier transactions")

		return fmt.Errorf("failed to check supplier transactions: %w", err)
	}

	if referenced {
		return failure.BadRequestFromString("supplier still has transactions on record") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete supplier")

		return fmt.Errorf("failed to delete supplier: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSupplier)
		shared.InvalidateCaches(c, s.cache, cacheCountSupplier)
	}()

	return nil
}
