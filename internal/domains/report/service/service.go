package service

import (
	"context"
	"fmt"
	"tripdesk/config"
	"tripdesk/infras/otel"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	"tripdesk/internal/domains/report/model"
	settingsService "tripdesk/internal/domains/settings/service"
	transactionRepo "tripdesk/internal/domains/transaction/repository"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

type Report interface {
	Build(ctx context.Context, year, month int, typeFilter string) (model.Report, error)
}

type serviceImpl struct {
	bookingRepo bookingRepo.Booking
	txRepo      transactionRepo.Transaction
	settings    settingsService.Settings
	cfg         *config.Config
	otel        otel.Otel
}

func New(booking bookingRepo.Booking, txRepo transactionRepo.Transaction, settings settingsService.Settings, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		bookingRepo: booking,
		txRepo:      txRepo,
		settings:    settings,
		cfg:         cfg,
		otel:        otel,
	}
}

// Build aggregates the full booking and transaction sets into one report and
// converts the headline totals into the display currency.
func (s *serviceImpl) Build(ctx context.Context, year, month int, typeFilter string) (res model.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Build")
	defer scope.End()
	defer scope.TraceIfError(err)

	if year < 2000 || year > 2100 {
		return res, failure.BadRequestFromString("year out of range") // nolint:wrapcheck
	}

	if month < 0 || month > 12 {
		return res, failure.BadRequestFromString("month out of range") // nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for report")

		return res, fmt.Errorf("failed to get bookings for report: %w", err)
	}

	transactions, err := s.txRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions for report")

		return res, fmt.Errorf("failed to get transactions for report: %w", err)
	}

	res = model.Build(bookings, transactions, year, month, typeFilter)

	display := s.settings.DisplayCurrency(ctx)
	res.Currency = display

	if display != s.cfg.App.Currency.Base {
		rates, ratesErr := s.settings.Rates(ctx)
		if ratesErr != nil {
			return res, ratesErr
		}

		convert := func(value float64) float64 {
			converted, convErr := rates.FromBase(value, display)
			if convErr != nil {
				return value
			}

			return converted
		}

		res.TotalSales = convert(res.TotalSales)
		res.TotalCost = convert(res.TotalCost)
		res.GrossProfit = convert(res.GrossProfit)
		res.OperationalExpenses = convert(res.OperationalExpenses)
		res.NetProfit = convert(res.NetProfit)

		for i := range res.Rows {
			res.Rows[i].Sales = convert(res.Rows[i].Sales)
			res.Rows[i].Cost = convert(res.Rows[i].Cost)
			res.Rows[i].Expenses = convert(res.Rows[i].Expenses)
			res.Rows[i].Profit = convert(res.Rows[i].Profit)
		}

		for key := range res.SalesByType {
			res.SalesByType[key] = convert(res.SalesByType[key])
		}

		for key := range res.ExpensesByCategory {
			res.ExpensesByCategory[key] = convert(res.ExpensesByCategory[key])
		}
	}

	for i := range res.Rows {
		res.Rows[i].Sales = model.Round2(res.Rows[i].Sales)
		res.Rows[i].Cost = model.Round2(res.Rows[i].Cost)
		res.Rows[i].Expenses = model.Round2(res.Rows[i].Expenses)
		res.Rows[i].Profit = model.Round2(res.Rows[i].Profit)
	}

	return res, nil
}
