package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	transactionModel "tripdesk/internal/domains/transaction/model"
	transactionRepo "tripdesk/internal/domains/transaction/repository"
	"tripdesk/internal/domains/treasury/model"
	"tripdesk/internal/domains/treasury/model/dto"
	"tripdesk/internal/domains/treasury/repository"
	settingsService "tripdesk/internal/domains/settings/service"
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
	cacheGetTreasury    = "treasury:get"
	cacheGetAllTreasury = "treasury:gets"
)

type Treasury interface {
	Create(ctx context.Context, req dto.CreateTreasuryRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTreasuriesResponse, error)
	Get(ctx context.Context, id string) (dto.TreasuryResponse, error)
	Update(ctx context.Context, req dto.UpdateTreasuryRequest, id string) error
	Transfer(ctx context.Context, req dto.TransferRequest) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo     repository.Treasury
	txRepo   transactionRepo.Transaction
	settings settingsService.Settings
	db       *postgres.Connection
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Treasury,
	txRepo transactionRepo.Transaction,
	settings settingsService.Settings,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Treasury {
	return &serviceImpl{
		repo:     repo,
		txRepo:   txRepo,
		settings: settings,
		db:       db,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTreasuryRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	treasury := req.ToModel(user)

	if treasury.Currency == constant.Empty {
		treasury.Currency = s.cfg.App.Currency.Base
	}

	if err = s.repo.Insert(ctx, treasury); err != nil {
		log.Error().Err(err).Msg("failed to create treasury")

		return constant.Empty, fmt.Errorf("failed to create treasury: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllTreasury)
	}()

	return treasury.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTreasuriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTreasury, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count treasuries")

		return res, fmt.Errorf("failed to count treasuries: %w", err)
	}

	treasuries, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get treasuries")

		return res, fmt.Errorf("failed to get treasuries: %w", err)
	}

	res.FromModels(treasuries, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save treasuries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TreasuryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	treasury, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get treasury")

		return res, fmt.Errorf("failed to get treasury: %w", err)
	}

	if treasury.ID == constant.Empty {
		return res, failure.NotFound("treasury not found") // nolint:wrapcheck
	}

	res.FromModel(treasury)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTreasuryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if treasury exists")

		return fmt.Errorf("failed to check if treasury exists: %w", err)
	}

	if !exist {
		return failure.NotFound("treasury not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update treasury")

		return fmt.Errorf("failed to update treasury: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Transfer moves money between two treasuries. The amount is expressed in the
// source treasury's currency and converted into the destination's currency at
// the current rates, so the value leaving equals the value arriving. Both
// balance updates and both ledger entries commit atomically.
func (s *serviceImpl) Transfer(ctx context.Context, req dto.TransferRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transfer")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	from, err := s.repo.Get(ctx, shared.FilterByID(req.FromTreasuryID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get source treasury")

		return fmt.Errorf("failed to get source treasury: %w", err)
	}

	if from.ID == constant.Empty {
		return failure.NotFound("source treasury not found") // nolint:wrapcheck
	}

	to, err := s.repo.Get(ctx, shared.FilterByID(req.ToTreasuryID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get destination treasury")

		return fmt.Errorf("failed to get destination treasury: %w", err)
	}

	if to.ID == constant.Empty {
		return failure.NotFound("destination treasury not found") // nolint:wrapcheck
	}

	if from.Balance < req.Amount {
		return failure.BadRequestFromString("insufficient balance in source treasury") // nolint:wrapcheck
	}

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return err
	}

	baseAmount, err := rates.ToBase(req.Amount, from.Currency)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	credit, err := rates.FromBase(baseAmount, to.Currency)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transfer")
			}
		}
	}()

	err = s.repo.UpdateTx(ctx, sqltx, map[string]any{
		model.FieldBalance:       from.Balance - req.Amount,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(from.ID, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to debit source treasury: %w", err)
	}

	err = s.repo.UpdateTx(ctx, sqltx, map[string]any{
		model.FieldBalance:       to.Balance + credit,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(to.ID, model.FieldID, model.TableName))
	if err != nil {
		return fmt.Errorf("failed to credit destination treasury: %w", err)
	}

	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}

	out := transactionModel.Transaction{
		ID:              uuid.NewString(),
		Type:            transactionModel.TypeExpense,
		Category:        transactionModel.CategoryTransferOut,
		Description:     fmt.Sprintf("Transfer to %s: %s", to.Name, req.Notes),
		Amount:          baseAmount,
		TransactionDate: now,
		TreasuryID:      from.ID,
		Metadata:        metadata,
	}

	in := transactionModel.Transaction{
		ID:              uuid.NewString(),
		Type:            transactionModel.TypeIncome,
		Category:        transactionModel.CategoryTransferIn,
		Description:     fmt.Sprintf("Transfer from %s: %s", from.Name, req.Notes),
		Amount:          baseAmount,
		TransactionDate: now,
		TreasuryID:      to.ID,
		Metadata:        metadata,
	}

	if err = s.txRepo.InsertTx(ctx, sqltx, out); err != nil {
		return fmt.Errorf("failed to record outgoing transfer: %w", err)
	}

	if err = s.txRepo.InsertTx(ctx, sqltx, in); err != nil {
		return fmt.Errorf("failed to record incoming transfer: %w", err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit transfer")

		return fmt.Errorf("failed to commit transfer: %w", err)
	}

	s.invalidate(ctx, from.ID)
	s.invalidate(ctx, to.ID)

	return nil
}

// Delete refuses to remove a treasury holding a non-zero balance.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	treasury, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get treasury")

		return fmt.Errorf("failed to get treasury: %w", err)
	}

	if treasury.ID == constant.Empty {
		return failure.NotFound("treasury not found") // nolint:wrapcheck
	}

	if treasury.Balance != 0 {
		return failure.BadRequestFromString("treasury still holds a balance") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete treasury")

		return fmt.Errorf("failed to delete treasury: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTreasury, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete treasury from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTreasury)
	}()
}
