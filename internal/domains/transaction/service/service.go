package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	settingsService "tripdesk/internal/domains/settings/service"
	"tripdesk/internal/domains/transaction/model"
	"tripdesk/internal/domains/transaction/model/dto"
	"tripdesk/internal/domains/transaction/repository"
	treasuryModel "tripdesk/internal/domains/treasury/model"
	treasuryRepo "tripdesk/internal/domains/treasury/repository"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

const (
	cacheGetAllTransaction = "transaction:gets"
	cacheCountTransaction  = "transaction:count"
)

type Transaction interface {
	Create(ctx context.Context, req dto.CreateTransactionRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTransactionsResponse, error)
	Get(ctx context.Context, id string) (dto.TransactionResponse, error)
	Update(ctx context.Context, req dto.UpdateTransactionRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Transaction
	treasuryRepo treasuryRepo.Treasury
	settings     settingsService.Settings
	db           *postgres.Connection
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Transaction,
	treasury treasuryRepo.Treasury,
	settings settingsService.Settings,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Transaction {
	return &serviceImpl{
		repo:         repo,
		treasuryRepo: treasury,
		settings:     settings,
		db:           db,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// signedDelta is the treasury balance movement a ledger entry causes, in the
// treasury's own currency. Income credits, expense debits.
func signedDelta(transactionType string, amount float64) float64 {
	if transactionType == model.TypeExpense {
		return -amount
	}

	return amount
}

// Create records an income or expense entry. The amount is converted to the
// base currency at entry time and the treasury balance moves in the same
// database transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTransactionRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return constant.Empty, err
	}

	currency := req.Currency
	if currency == constant.Empty {
		currency = s.cfg.App.Currency.Base
	}

	baseAmount, err := rates.ToBase(req.Amount, currency)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	treasury, err := s.treasuryRepo.Get(ctx, shared.FilterByID(req.TreasuryID, treasuryModel.FieldID, treasuryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get treasury")

		return constant.Empty, fmt.Errorf("failed to get treasury: %w", err)
	}

	if treasury.ID == constant.Empty {
		return constant.Empty, failure.BadRequestFromString("treasury does not exist") // nolint:wrapcheck
	}

	delta, err := rates.FromBase(baseAmount, treasury.Currency)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	transactionDate := timezone.Now()

	if req.Date != constant.Empty {
		if parsed, parseErr := timezone.Parse("2006-01-02", req.Date); parseErr == nil {
			transactionDate = parsed
		}
	}

	transaction := model.Transaction{
		ID:              uuid.NewString(),
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		Amount:          baseAmount,
		TransactionDate: transactionDate,
		TreasuryID:      treasury.ID,
		BookingID:       req.BookingID,
		SupplierID:      req.SupplierID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return constant.Empty, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction entry")
			}
		}
	}()

	if err = s.repo.InsertTx(ctx, sqltx, transaction); err != nil {
		return constant.Empty, fmt.Errorf("failed to record transaction: %w", err)
	}

	err = s.treasuryRepo.UpdateTx(ctx, sqltx, map[string]any{
		treasuryModel.FieldBalance: treasury.Balance + signedDelta(req.Type, delta),
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}, shared.FilterByID(treasury.ID, treasuryModel.FieldID, treasuryModel.TableName))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to move treasury balance: %w", err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction entry")

		return constant.Empty, fmt.Errorf("failed to commit transaction entry: %w", err)
	}

	s.invalidate(ctx)

	return transaction.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTransaction, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count transactions")

		return res, fmt.Errorf("failed to count transactions: %w", err)
	}

	transactions, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(transactions, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transactions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TransactionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	transaction, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transaction")

		return res, fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return res, failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	res.FromModel(transaction)

	return res, nil
}

// Update edits descriptive fields only. Amount, type and treasury are
// immutable after entry: correcting a wrong amount means deleting the entry
// and recording a new one, which keeps balance history reversible.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTransactionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if transaction exists")

		return fmt.Errorf("failed to check if transaction exists: %w", err)
	}

	if !exist {
		return failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update transaction")

		return fmt.Errorf("failed to update transaction: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// Delete removes a ledger entry and reverses its balance movement in the
// same database transaction.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	transaction, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get transaction")

		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if transaction.ID == constant.Empty {
		return failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return err
	}

	treasury, err := s.treasuryRepo.Get(ctx, shared.FilterByID(transaction.TreasuryID, treasuryModel.FieldID, treasuryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get treasury")

		return fmt.Errorf("failed to get treasury: %w", err)
	}

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction deletion")
			}
		}
	}()

	if err = s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	if treasury.ID != constant.Empty {
		delta, convErr := rates.FromBase(transaction.Amount, treasury.Currency)
		if convErr != nil {
			err = failure.BadRequestFromString(convErr.Error()) // nolint:wrapcheck

			return err
		}

		err = s.treasuryRepo.UpdateTx(ctx, sqltx, map[string]any{
			treasuryModel.FieldBalance: treasury.Balance - signedDelta(transaction.Type, delta),
			constant.FieldModifiedAt:   timezone.Now(),
			constant.FieldModifiedBy:   user,
		}, shared.FilterByID(treasury.ID, treasuryModel.FieldID, treasuryModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to reverse treasury balance: %w", err)
		}
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transaction deletion")

		return fmt.Errorf("failed to commit transaction deletion: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTransaction)
		shared.InvalidateCaches(c, s.cache, cacheCountTransaction)
	}()
}
