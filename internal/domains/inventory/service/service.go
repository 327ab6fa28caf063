package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/kafka"
	"tripdesk/infras/otel"
	bookingModel "tripdesk/internal/domains/booking/model"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	"tripdesk/internal/domains/inventory/model"
	"tripdesk/internal/domains/inventory/model/dto"
	"tripdesk/internal/domains/inventory/repository"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

const (
	cacheGetItem    = "inventory:get"
	cacheGetAllItem = "inventory:gets"
	cacheCountItem  = "inventory:count"
)

type Inventory interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetItemsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ItemResponse, error)
	Stats(ctx context.Context, item model.Item) (model.Stats, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Inventory
	serviceRepo bookingRepo.Service
	bookingRepo bookingRepo.Booking
	broker      kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Inventory,
	serviceRepo bookingRepo.Service,
	booking bookingRepo.Booking,
	broker kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Inventory {
	return &serviceImpl{
		repo:        repo,
		serviceRepo: serviceRepo,
		bookingRepo: booking,
		broker:      broker,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	item := req.ToModel(user)

	if item.CostCurrency == constant.Empty {
		item.CostCurrency = s.cfg.App.Currency.Base
	}

	if item.SellCurrency == constant.Empty {
		item.SellCurrency = s.cfg.App.Currency.Base
	}

	if err = s.repo.Insert(ctx, item); err != nil {
		log.Error().Err(err).Msg("failed to create inventory item")

		return constant.Empty, fmt.Errorf("failed to create inventory item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return item.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	items, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory items")

		return res, fmt.Errorf("failed to get inventory items: %w", err)
	}

	res.Items = make([]dto.ItemResponse, len(items))

	for i := range items {
		stats, statsErr := s.Stats(ctx, items[i])
		if statsErr != nil {
			return res, statsErr
		}

		res.Items[i].FromModel(items[i], stats)
	}

	res.CalculateTotalPage(total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item")

		return res, fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("inventory item not found") // nolint:wrapcheck
	}

	stats, err := s.Stats(ctx, item)
	if err != nil {
		return res, err
	}

	res.FromModel(item, stats)

	return res, nil
}

// Stats derives the consumption of an item from live bookings. Cancelled and
// voided bookings release their quantities. Hotel services consume rooms, not
// room-nights, so the count matches how hotel blocks are purchased. Remaining
// may go negative: overselling is reported, never blocked.
func (s *serviceImpl) Stats(ctx context.Context, item model.Item) (res model.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldServiceInventory,
				Value:    item.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.ServiceTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get services for inventory item")

		return res, fmt.Errorf("failed to get services for inventory item: %w", err)
	}

	statuses := map[string]string{}

	for _, svc := range services {
		status, known := statuses[svc.BookingID]
		if !known {
			booking, getErr := s.bookingRepo.Get(ctx, shared.FilterByID(svc.BookingID, bookingModel.FieldID, bookingModel.TableName))
			if getErr != nil {
				log.Error().Err(getErr).Msg("failed to get booking for inventory stats")

				return res, fmt.Errorf("failed to get booking for inventory stats: %w", getErr)
			}

			status = booking.Status
			statuses[svc.BookingID] = status
		}

		if bookingModel.Inactive(status) {
			continue
		}

		if svc.Type == bookingModel.TypeHotel && svc.RoomCount > 0 {
			res.Sold += svc.RoomCount
		} else {
			res.Sold += svc.Quantity
		}
	}

	res.Remaining = item.TotalQuantity - res.Sold

	return res, nil
}

// Update edits an item. A price change publishes a reprice event so the
// worker can push the new cost through existing bookings; the item row itself
// commits regardless of whether the event makes it out.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	item, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item")

		return fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("inventory item not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inventory item")

		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	repriced := (req.CostPrice != nil && *req.CostPrice != item.CostPrice) ||
		(req.SellingPrice != nil && *req.SellingPrice != item.SellingPrice)

	if repriced {
		event := dto.RepricedEvent{
			ItemID:       id,
			CostPrice:    item.CostPrice,
			SellingPrice: item.SellingPrice,
		}

		if req.CostPrice != nil {
			event.CostPrice = *req.CostPrice
		}

		if req.SellingPrice != nil {
			event.SellingPrice = *req.SellingPrice
		}

		go func() {
			c := context.WithoutCancel(ctx)

			sendErr := s.broker.SendMessages(c, s.cfg.Kafka.Topic.InventoryRepriced, kafka.Message{
				Key:   id,
				Value: event,
			})
			if sendErr != nil {
				log.Error().Err(sendErr).Str("itemID", id).Msg("failed to publish reprice event")
			}
		}()
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inventory item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
	}()

	return nil
}

// Delete refuses to remove an item that live bookings still reference.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item")

		return fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.NotFound("inventory item not found") // nolint:wrapcheck
	}

	stats, err := s.Stats(ctx, item)
	if err != nil {
		return err
	}

	if stats.Sold > 0 {
		return failure.BadRequestFromString("inventory item is referenced by active bookings") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory item")

		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inventory item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()

	return nil
}
