package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	bookingModel "tripdesk/internal/domains/booking/model"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	"tripdesk/internal/domains/client/model"
	"tripdesk/internal/domains/client/model/dto"
	"tripdesk/internal/domains/client/repository"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

const (
	cacheGetAllClient = "client:gets"
	cacheCountClient  = "client:count"
)

type Client interface {
	Create(ctx context.Context, req dto.CreateClientRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetClientsResponse, error)
	Get(ctx context.Context, id string) (dto.ClientResponse, error)
	Update(ctx context.Context, req dto.UpdateClientRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Client
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(repo repository.Client, booking bookingRepo.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Client {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: booking,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	client := req.ToModel(user)

	if err = s.repo.Insert(ctx, client); err != nil {
		log.Error().Err(err).Msg("failed to create client")

		return constant.Empty, fmt.Errorf("failed to create client: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()

	return client.ID, nil
}

// outstanding is what the client still owes: the unpaid remainder across
// their live bookings. Cancelled and voided bookings do not count.
func (s *serviceImpl) outstanding(ctx context.Context, clientID string) (float64, error) {
	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldClientID,
				Value:    clientID,
				Operator: gDto.FilterOperatorEq,
				Table:    bookingModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get client bookings")

		return 0, fmt.Errorf("failed to get client bookings: %w", err)
	}

	var total float64

	for _, booking := range bookings {
		if bookingModel.Inactive(booking.Status) {
			continue
		}

		if remainder := booking.Amount - booking.PaidAmount; remainder > 0 {
			total += remainder
		}
	}

	return total, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetClientsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count clients")

		return res, fmt.Errorf("failed to count clients: %w", err)
	}

	clients, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get clients")

		return res, fmt.Errorf("failed to get clients: %w", err)
	}

	res.Clients = make([]dto.ClientResponse, len(clients))

	for i := range clients {
		owed, owedErr := s.outstanding(ctx, clients[i].ID)
		if owedErr != nil {
			return res, owedErr
		}

		res.Clients[i].FromModel(clients[i], owed)
	}

	res.CalculateTotalPage(total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClientResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	client, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if client.ID == constant.Empty {
		return res, failure.NotFound("client not found") // nolint:wrapcheck
	}

	owed, err := s.outstanding(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(client, owed)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return failure.NotFound("client not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update client")

		return fmt.Errorf("failed to update client: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllClient)
	}()

	return nil
}

// Delete refuses to remove a client who still has bookings on file.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client exists")

		return fmt.Errorf("failed to check if client exists: %w", err)
	}

	if !exist {
		return failure.NotFound("client not found") // nolint:wrapcheck
	}

	hasBookings, err := s.bookingRepo.Exist(ctx, shared.FilterByID(id, bookingModel.FieldClientID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check client bookings")

		return fmt.Errorf("failed to check client bookings: %w", err)
	}

	if hasBookings {
		return failure.BadRequestFromString("client still has bookings on file") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete client")

		return fmt.Errorf("failed to delete client: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClient)
		shared.InvalidateCaches(c, s.cache, cacheCountClient)
	}()

	return nil
}
