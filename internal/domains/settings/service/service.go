package service

import (
	"context"
	"encoding/json"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/settings/model"
	"tripdesk/internal/domains/settings/model/dto"
	"tripdesk/internal/domains/settings/repository"
	"tripdesk/internal/finance"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	"tripdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

const (
	cacheGetSetting = "setting:get"
	cacheGetRates   = "setting:rates"
)

type Settings interface {
	Get(ctx context.Context, key string) (dto.SettingResponse, error)
	Upsert(ctx context.Context, req dto.UpsertSettingRequest) error
	Rates(ctx context.Context) (finance.Rates, error)
	UpdateRate(ctx context.Context, req dto.UpdateRateRequest) error
	DisplayCurrency(ctx context.Context) string
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func filterByKey(key string) gDto.FilterGroup {
	return shared.FilterByID(key, model.FieldKey, model.TableName)
}

func (s *serviceImpl) Get(ctx context.Context, key string) (res dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSetting, key)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	setting, err := s.repo.Get(ctx, filterByKey(key))
	if err != nil {
		log.Error().Err(err).Msg("failed to get setting")

		return res, fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.Key == constant.Empty {
		return res, failure.NotFound("setting not found") // nolint:wrapcheck
	}

	res.FromModel(setting)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save setting to cache")
		}
	}()

	return res, nil
}

// Upsert writes a setting with last-write-wins semantics.
func (s *serviceImpl) Upsert(ctx context.Context, req dto.UpsertSettingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !json.Valid(req.Value) {
		return failure.BadRequestFromString("setting value must be valid JSON") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, filterByKey(req.Key))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if setting exists")

		return fmt.Errorf("failed to check if setting exists: %w", err)
	}

	if exist {
		err = s.repo.Update(ctx, map[string]any{
			model.FieldValue:         string(req.Value),
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}, filterByKey(req.Key))
	} else {
		err = s.repo.Insert(ctx, req.ToModel(user))
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to upsert setting")

		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSetting, req.Key)); err != nil {
			log.Error().Err(err).Msg("failed to delete setting from cache")
		}

		if req.Key == model.KeyExchangeRates || req.Key == model.KeyDisplayCurrency {
			shared.InvalidateCaches(c, s.cache, cacheGetRates)
		}
	}()

	return nil
}

// Rates loads the exchange rate table into an immutable snapshot. Mutations
// to the table only affect snapshots taken afterwards.
func (s *serviceImpl) Rates(ctx context.Context) (res finance.Rates, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rates")
	defer scope.End()
	defer scope.TraceIfError(err)

	base := s.cfg.App.Currency.Base

	table := map[string]float64{}

	err = s.cache.Get(ctx, cacheGetRates, &table)
	if err == nil {
		return finance.NewRates(base, table), nil
	}

	setting, err := s.repo.Get(ctx, filterByKey(model.KeyExchangeRates))
	if err != nil {
		log.Error().Err(err).Msg("failed to load exchange rates")

		return res, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	if setting.Key != constant.Empty {
		if err := json.Unmarshal([]byte(setting.Value), &table); err != nil {
			log.Error().Err(err).Msg("failed to decode exchange rate table")

			return res, fmt.Errorf("failed to decode exchange rate table: %w", err)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetRates, table, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rates to cache")
		}
	}()

	return finance.NewRates(base, table), nil
}

// UpdateRate writes one currency rate. The base currency rate is pinned to 1
// and cannot be overridden.
func (s *serviceImpl) UpdateRate(ctx context.Context, req dto.UpdateRateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Currency == s.cfg.App.Currency.Base && req.Rate != 1 {
		return failure.BadRequestFromString("base currency rate is fixed at 1") // nolint:wrapcheck
	}

	rates, err := s.Rates(ctx)
	if err != nil {
		return err
	}

	rates.Table[req.Currency] = req.Rate

	value, err := json.Marshal(rates.Table)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode exchange rate table")

		return fmt.Errorf("failed to encode exchange rate table: %w", err)
	}

	return s.Upsert(ctx, dto.UpsertSettingRequest{
		Key:   model.KeyExchangeRates,
		Value: value,
	})
}

// DisplayCurrency resolves the configured presentation currency, falling back
// to the configured default when no setting row exists.
func (s *serviceImpl) DisplayCurrency(ctx context.Context) string {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DisplayCurrency")
	defer scope.End()

	setting, err := s.Get(ctx, model.KeyDisplayCurrency)
	if err != nil {
		return s.cfg.App.Currency.Display
	}

	var currency string
	if err := json.Unmarshal(setting.Value, &currency); err != nil || currency == constant.Empty {
		return s.cfg.App.Currency.Display
	}

	return currency
}

