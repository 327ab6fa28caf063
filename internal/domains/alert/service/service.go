package service

import (
	"context"
	"fmt"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/alert/model"
	bookingModel "tripdesk/internal/domains/booking/model"
	bookingRepo "tripdesk/internal/domains/booking/repository"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

type Alert interface {
	Generate(ctx context.Context) ([]model.Alert, error)
}

type serviceImpl struct {
	bookingRepo   bookingRepo.Booking
	serviceRepo   bookingRepo.Service
	passengerRepo bookingRepo.Passenger
	otel          otel.Otel
}

func New(booking bookingRepo.Booking, service bookingRepo.Service, passenger bookingRepo.Passenger, otel otel.Otel) Alert {
	return &serviceImpl{
		bookingRepo:   booking,
		serviceRepo:   service,
		passengerRepo: passenger,
		otel:          otel,
	}
}

// Generate loads the full booking set and derives the current alerts. Nothing
// is cached or persisted: alerts are a live view.
func (s *serviceImpl) Generate(ctx context.Context) (res []model.Alert, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for alerts")

		return nil, fmt.Errorf("failed to get bookings for alerts: %w", err)
	}

	services, err := s.serviceRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get services for alerts")

		return nil, fmt.Errorf("failed to get services for alerts: %w", err)
	}

	passengers, err := s.passengerRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get passengers for alerts")

		return nil, fmt.Errorf("failed to get passengers for alerts: %w", err)
	}

	servicesByBooking := map[string][]bookingModel.Service{}
	for _, svc := range services {
		servicesByBooking[svc.BookingID] = append(servicesByBooking[svc.BookingID], svc)
	}

	passengersByBooking := map[string][]bookingModel.Passenger{}
	for _, passenger := range passengers {
		passengersByBooking[passenger.BookingID] = append(passengersByBooking[passenger.BookingID], passenger)
	}

	files := make([]model.File, len(bookings))
	for i, booking := range bookings {
		files[i] = model.File{
			Booking:    booking,
			Services:   servicesByBooking[booking.ID],
			Passengers: passengersByBooking[booking.ID],
		}
	}

	return model.Generate(files, timezone.Now()), nil
}
