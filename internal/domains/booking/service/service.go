package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/booking/model/dto"
	"tripdesk/internal/domains/booking/repository"
	inventoryModel "tripdesk/internal/domains/inventory/model"
	inventoryRepo "tripdesk/internal/domains/inventory/repository"
	transactionModel "tripdesk/internal/domains/transaction/model"
	transactionRepo "tripdesk/internal/domains/transaction/repository"
	treasuryModel "tripdesk/internal/domains/treasury/model"
	treasuryRepo "tripdesk/internal/domains/treasury/repository"
	settingsService "tripdesk/internal/domains/settings/service"
	"tripdesk/internal/finance"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	categoryBookingPayment = "booking_payment"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	AddPayment(ctx context.Context, req dto.AddPaymentRequest, id string) error
	Delete(ctx context.Context, id string) error
	RepriceForInventory(ctx context.Context, itemID string, costPrice, sellingPrice float64) (dto.RepriceResult, error)
}

type serviceImpl struct {
	repo          repository.Booking
	serviceRepo   repository.Service
	passengerRepo repository.Passenger
	paymentRepo   repository.Payment
	treasuryRepo  treasuryRepo.Treasury
	txRepo        transactionRepo.Transaction
	inventoryRepo inventoryRepo.Inventory
	settings      settingsService.Settings
	db            *postgres.Connection
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	serviceRepo repository.Service,
	passengerRepo repository.Passenger,
	paymentRepo repository.Payment,
	treasury treasuryRepo.Treasury,
	txRepo transactionRepo.Transaction,
	inventory inventoryRepo.Inventory,
	settings settingsService.Settings,
	db *postgres.Connection,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		serviceRepo:   serviceRepo,
		passengerRepo: passengerRepo,
		paymentRepo:   paymentRepo,
		treasuryRepo:  treasury,
		txRepo:        txRepo,
		inventoryRepo: inventory,
		settings:      settings,
		db:            db,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func filterByBookingID(bookingID, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// sellCurrency resolves the currency a request amount is expressed in,
// defaulting to the configured display currency.
func (s *serviceImpl) sellCurrency(ctx context.Context, requested string) string {
	if requested != constant.Empty {
		return requested
	}

	return s.settings.DisplayCurrency(ctx)
}

// applyInventory copies prices and descriptive fields from a referenced
// inventory item onto a service line. Hotel lines get their quantity
// re-derived from the item's stay dates with a single default room.
func (s *serviceImpl) applyInventory(ctx context.Context, svc *model.Service) error {
	if svc.InventoryID == constant.Empty {
		return nil
	}

	item, err := s.inventoryRepo.Get(ctx, shared.FilterByID(svc.InventoryID, inventoryModel.FieldID, inventoryModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return failure.BadRequestFromString("inventory item does not exist") // nolint:wrapcheck
	}

	svc.UnitCost = item.CostPrice
	svc.CostCurrency = item.CostCurrency
	svc.UnitPrice = item.SellingPrice

	if item.FlightNumber != constant.Empty {
		svc.FlightNumber = item.FlightNumber
		svc.Origin = item.Origin
		svc.FlightDate = item.FlightDate
		svc.ReturnDate = item.ReturnDate
	}

	if item.HotelName != constant.Empty {
		svc.HotelName = item.HotelName
		svc.HotelCity = item.HotelCity
		svc.CheckIn = item.CheckIn
		svc.CheckOut = item.CheckOut

		if svc.RoomCount < 1 {
			svc.RoomCount = 1
		}
	}

	svc.Normalize()

	return nil
}

// Create opens a booking file. The booking row, its services and passengers,
// and the optional initial payment with its treasury credit and income
// transaction are committed as one database transaction: either the whole
// file exists or none of it does.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return constant.Empty, err
	}

	services := make([]model.Service, len(req.Services))
	for i := range req.Services {
		services[i] = req.Services[i].ToModel(booking.ID, user)

		if err = s.applyInventory(ctx, &services[i]); err != nil {
			return constant.Empty, err
		}
	}

	fin, err := finance.Compute(req.Amount, s.sellCurrency(ctx, req.Currency), model.CostLines(services), rates)
	if err != nil {
		return constant.Empty, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	booking.Amount = fin.Amount
	booking.Cost = fin.Cost
	booking.Profit = fin.Profit
	booking.PaymentStatus = string(finance.PaymentStatusUnpaid)

	passengers := make([]model.Passenger, len(req.Passengers))
	for i := range req.Passengers {
		passengers[i] = req.Passengers[i].ToModel(booking.ID, user)
	}

	var payment model.Payment

	var treasury treasuryModel.Treasury

	if req.InitialPayment != nil {
		payment, treasury, err = s.buildPayment(ctx, booking.ID, dto.AddPaymentRequest{
			Amount:     req.InitialPayment.Amount,
			Currency:   req.InitialPayment.Currency,
			TreasuryID: req.InitialPayment.TreasuryID,
			Notes:      req.InitialPayment.Notes,
		}, rates, user)
		if err != nil {
			return constant.Empty, err
		}

		booking.PaidAmount = payment.FinalAmount
		booking.PaymentStatus = string(finance.PaymentStatusFor(booking.Amount, booking.PaidAmount))
	}

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return constant.Empty, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking creation")
			}
		}
	}()

	if err = s.repo.InsertTx(ctx, sqltx, booking); err != nil {
		return constant.Empty, fmt.Errorf("failed to create booking: %w", err)
	}

	if err = s.serviceRepo.InsertBulkTx(ctx, sqltx, services); err != nil {
		return constant.Empty, fmt.Errorf("failed to create booking services: %w", err)
	}

	if len(passengers) > 0 {
		if err = s.passengerRepo.InsertBulkTx(ctx, sqltx, passengers); err != nil {
			return constant.Empty, fmt.Errorf("failed to create booking passengers: %w", err)
		}
	}

	if req.InitialPayment != nil {
		if err = s.recordPaymentTx(ctx, sqltx, booking, payment, treasury, rates, user); err != nil {
			return constant.Empty, err
		}
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking creation")

		return constant.Empty, fmt.Errorf("failed to commit booking creation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()

	return booking.ID, nil
}

// buildPayment freezes the exchange rate at entry time and validates the
// target treasury. Unknown payment currencies are rejected, not defaulted.
func (s *serviceImpl) buildPayment(ctx context.Context, bookingID string, req dto.AddPaymentRequest, rates finance.Rates, user string) (model.Payment, treasuryModel.Treasury, error) {
	currency := s.sellCurrency(ctx, req.Currency)

	rate, err := rates.Rate(currency)
	if err != nil {
		return model.Payment{}, treasuryModel.Treasury{}, failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	treasury, err := s.treasuryRepo.Get(ctx, shared.FilterByID(req.TreasuryID, treasuryModel.FieldID, treasuryModel.TableName))
	if err != nil {
		return model.Payment{}, treasuryModel.Treasury{}, fmt.Errorf("failed to get treasury: %w", err)
	}

	if treasury.ID == constant.Empty {
		return model.Payment{}, treasuryModel.Treasury{}, failure.BadRequestFromString("treasury does not exist") // nolint:wrapcheck
	}

	paymentDate := timezone.Now()
	if req.Date != constant.Empty {
		if parsed, parseErr := timezone.Parse("2006-01-02", req.Date); parseErr == nil {
			paymentDate = parsed
		}
	}

	payment := model.Payment{
		ID:           uuid.NewString(),
		BookingID:    bookingID,
		Amount:       req.Amount,
		Currency:     currency,
		ExchangeRate: rate,
		FinalAmount:  req.Amount / rate,
		PaymentDate:  paymentDate,
		TreasuryID:   treasury.ID,
		Notes:        req.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	return payment, treasury, nil
}

// recordPaymentTx appends the payment row, mirrors it as an income
// transaction and credits the treasury, all on the caller's transaction so a
// balance change never appears without its paired ledger entry.
func (s *serviceImpl) recordPaymentTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking, payment model.Payment, treasury treasuryModel.Treasury, rates finance.Rates, user string) error {
	if err := s.paymentRepo.InsertTx(ctx, sqltx, payment); err != nil {
		return fmt.Errorf("failed to record payment: %w", err)
	}

	transaction := transactionModel.Transaction{
		ID:              uuid.NewString(),
		Type:            transactionModel.TypeIncome,
		Category:        categoryBookingPayment,
		Description:     fmt.Sprintf("Payment for booking %s", booking.ID),
		Amount:          payment.FinalAmount,
		TransactionDate: payment.PaymentDate,
		TreasuryID:      treasury.ID,
		BookingID:       booking.ID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err := s.txRepo.InsertTx(ctx, sqltx, transaction); err != nil {
		return fmt.Errorf("failed to record payment transaction: %w", err)
	}

	credit, err := rates.FromBase(payment.FinalAmount, treasury.Currency)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	err = s.treasuryRepo.UpdateTx(ctx, sqltx, map[string]any{
		treasuryModel.FieldBalance: treasury.Balance + credit,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}, shared.FilterByID(treasury.ID, treasuryModel.FieldID, treasuryModel.TableName))
	if err != nil {
		return fmt.Errorf("failed to credit treasury: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	services, passengers, payments, err := s.children(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModels(booking, services, passengers, payments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) children(ctx context.Context, bookingID string) ([]model.Service, []model.Passenger, []model.Payment, error) {
	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookingID(bookingID, model.FieldServiceBookingID, model.ServiceTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking services")

		return nil, nil, nil, fmt.Errorf("failed to get booking services: %w", err)
	}

	passengers, err := s.passengerRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookingID(bookingID, model.FieldPassengerBookingID, model.PassengerTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking passengers")

		return nil, nil, nil, fmt.Errorf("failed to get booking passengers: %w", err)
	}

	payments, err := s.paymentRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookingID(bookingID, model.FieldPaymentBookingID, model.PaymentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking payments")

		return nil, nil, nil, fmt.Errorf("failed to get booking payments: %w", err)
	}

	return services, passengers, payments, nil
}

// Update edits a booking file. Paid amount and payments are never re-derived
// from the edit payload: they are carried over and only the payment status is
// re-evaluated against the new total.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return err
	}

	updatedFields := shared.TransformFields(req, user)

	if req.TravelDate != constant.Empty {
		travelDate, parseErr := timezone.Parse("2006-01-02", req.TravelDate)
		if parseErr != nil {
			return failure.BadRequestFromString("invalid travel date") // nolint:wrapcheck
		}

		updatedFields[model.FieldTravelDate] = travelDate
	}

	amount := booking.Amount

	if req.Amount != nil {
		amount, err = rates.ToBase(*req.Amount, s.sellCurrency(ctx, req.Currency))
		if err != nil {
			return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
		}

		updatedFields[model.FieldAmount] = amount
	}

	services := []model.Service{}

	replaceServices := len(req.Services) > 0
	if replaceServices {
		services = make([]model.Service, len(req.Services))
		for i := range req.Services {
			services[i] = req.Services[i].ToModel(id, user)

			if err = s.applyInventory(ctx, &services[i]); err != nil {
				return err
			}
		}
	} else {
		services, err = s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookingID(id, model.FieldServiceBookingID, model.ServiceTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking services")

			return fmt.Errorf("failed to get booking services: %w", err)
		}
	}

	cost := finance.TotalCost(model.CostLines(services), rates)

	updatedFields[model.FieldCost] = cost
	updatedFields[model.FieldProfit] = amount - cost
	updatedFields[model.FieldPaymentStatus] = string(finance.PaymentStatusFor(amount, booking.PaidAmount))

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking update")
			}
		}
	}()

	if replaceServices {
		if err = s.serviceRepo.DeleteTx(ctx, sqltx, filterByBookingID(id, model.FieldServiceBookingID, model.ServiceTableName)); err != nil {
			return fmt.Errorf("failed to replace booking services: %w", err)
		}

		if err = s.serviceRepo.InsertBulkTx(ctx, sqltx, services); err != nil {
			return fmt.Errorf("failed to replace booking services: %w", err)
		}
	}

	if err = s.repo.UpdateTx(ctx, sqltx, updatedFields, filter); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking update")

		return fmt.Errorf("failed to commit booking update: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

// AddPayment appends an immutable payment to a booking and re-derives the
// paid amount and payment status. The payment row, its income transaction and
// the treasury credit commit atomically.
func (s *serviceImpl) AddPayment(ctx context.Context, req dto.AddPaymentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return err
	}

	payment, treasury, err := s.buildPayment(ctx, id, req, rates, user)
	if err != nil {
		return err
	}

	paid := booking.PaidAmount + payment.FinalAmount

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback payment")
			}
		}
	}()

	if err = s.recordPaymentTx(ctx, sqltx, booking, payment, treasury, rates, user); err != nil {
		return err
	}

	err = s.repo.UpdateTx(ctx, sqltx, map[string]any{
		model.FieldPaidAmount:    paid,
		model.FieldPaymentStatus: string(finance.PaymentStatusFor(booking.Amount, paid)),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, filter)
	if err != nil {
		return fmt.Errorf("failed to update booking payment state: %w", err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit payment")

		return fmt.Errorf("failed to commit payment: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	sqltx, err := s.db.Write.Beginx()
	if err != nil {
		log.Error().Err(err).Msg("failed to begin transaction")

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := sqltx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback booking deletion")
			}
		}
	}()

	if err = s.serviceRepo.DeleteTx(ctx, sqltx, filterByBookingID(id, model.FieldServiceBookingID, model.ServiceTableName)); err != nil {
		return fmt.Errorf("failed to delete booking services: %w", err)
	}

	if err = s.passengerRepo.DeleteTx(ctx, sqltx, filterByBookingID(id, model.FieldPassengerBookingID, model.PassengerTableName)); err != nil {
		return fmt.Errorf("failed to delete booking passengers: %w", err)
	}

	if err = s.repo.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if err = sqltx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit booking deletion")

		return fmt.Errorf("failed to commit booking deletion: %w", err)
	}

	s.invalidateBooking(ctx, id)

	return nil
}

// RepriceForInventory rewrites the prices of every service referencing the
// given inventory item and recomputes cost and profit for each affected
// non-cancelled booking. Amounts are never touched: the client keeps the
// price they were quoted. Each booking updates independently, so a failure
// mid-way leaves earlier bookings repriced; counts report both outcomes.
func (s *serviceImpl) RepriceForInventory(ctx context.Context, itemID string, costPrice, sellingPrice float64) (res dto.RepriceResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RepriceForInventory")
	defer scope.End()
	defer scope.TraceIfError(err)

	rates, err := s.settings.Rates(ctx)
	if err != nil {
		return res, err
	}

	affected, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceInventory,
				Value:    itemID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ServiceTableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to find services for inventory item")

		return res, fmt.Errorf("failed to find services for inventory item: %w", err)
	}

	bookingIDs := []string{}
	seen := map[string]bool{}

	for _, svc := range affected {
		if !seen[svc.BookingID] {
			seen[svc.BookingID] = true

			bookingIDs = append(bookingIDs, svc.BookingID)
		}
	}

	for _, bookingID := range bookingIDs {
		updated, repriceErr := s.repriceBooking(ctx, bookingID, itemID, costPrice, sellingPrice, rates)
		if repriceErr != nil {
			log.Error().Err(repriceErr).Str("bookingID", bookingID).Msg("failed to reprice booking")

			res.Failed++

			continue
		}

		if !updated {
			res.Skipped++

			continue
		}

		res.Updated++
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()

	return res, nil
}

// repriceBooking rewrites the affected service prices of one booking and
// re-derives its financials. It reports false for bookings that exist but no
// longer consume the item (cancelled or voided) so the caller can count them
// as skipped rather than updated.
func (s *serviceImpl) repriceBooking(ctx context.Context, bookingID, itemID string, costPrice, sellingPrice float64, rates finance.Rates) (bool, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty || model.Inactive(booking.Status) {
		return false, nil
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	err = s.serviceRepo.Update(ctx, map[string]any{
		model.FieldServiceUnitCost:  costPrice,
		model.FieldServiceUnitPrice: sellingPrice,
		constant.FieldModifiedAt:    timezone.Now(),
		constant.FieldModifiedBy:    user,
	}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldServiceBookingID,
				ArgName:  "reprice_booking_id",
				Value:    bookingID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ServiceTableName,
			},
			gDto.Filter{
				Field:    model.FieldServiceInventory,
				Value:    itemID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.ServiceTableName,
			},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to update service prices: %w", err)
	}

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, filterByBookingID(bookingID, model.FieldServiceBookingID, model.ServiceTableName))
	if err != nil {
		return false, fmt.Errorf("failed to reload booking services: %w", err)
	}

	cost := finance.TotalCost(model.CostLines(services), rates)

	err = s.repo.Update(ctx, map[string]any{
		model.FieldCost:          cost,
		model.FieldProfit:        booking.Amount - cost,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		return false, fmt.Errorf("failed to update booking financials: %w", err)
	}

	return true, nil
}

func (s *serviceImpl) invalidateBooking(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
