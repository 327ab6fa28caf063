package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripdesk/config"
	otelMocks "tripdesk/infras/otel/mocks"
	bookingMocks "tripdesk/internal/domains/booking/mocks"
	"tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/booking/service"
	inventoryMocks "tripdesk/internal/domains/inventory/mocks"
	settingsMocks "tripdesk/internal/domains/settings/mocks"
	transactionMocks "tripdesk/internal/domains/transaction/mocks"
	treasuryMocks "tripdesk/internal/domains/treasury/mocks"
	"tripdesk/internal/finance"
	gDto "tripdesk/shared/dto"
)

// noopCache satisfies cache.RedisCache for tests that only care about the
// primary store; reads always miss.
type noopCache struct{}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (noopCache) Get(_ context.Context, _ string, _ any) error {
	return assert.AnError
}
func (noopCache) Delete(_ context.Context, _ string) error { return nil }
func (noopCache) Clear(_ context.Context, _ string) error  { return nil }

type bookingFixture struct {
	repo     *bookingMocks.MockBooking
	services *bookingMocks.MockService
	settings *settingsMocks.MockSettings
	svc      service.Booking
}

func newBookingFixture(t *testing.T) bookingFixture {
	ctrl := gomock.NewController(t)

	repo := bookingMocks.NewMockBooking(ctrl)
	serviceRepo := bookingMocks.NewMockService(ctrl)
	passengerRepo := bookingMocks.NewMockPassenger(ctrl)
	paymentRepo := bookingMocks.NewMockPayment(ctrl)
	treasuryRepo := treasuryMocks.NewMockTreasury(ctrl)
	txRepo := transactionMocks.NewMockTransaction(ctrl)
	inventoryRepo := inventoryMocks.NewMockInventory(ctrl)
	settings := settingsMocks.NewMockSettings(ctrl)

	cfg := &config.Config{}
	cfg.App.Currency.Base = "JOD"

	svc := service.New(
		repo, serviceRepo, passengerRepo, paymentRepo,
		treasuryRepo, txRepo, inventoryRepo, settings,
		nil, cfg, noopCache{}, otelMocks.NewOtel(),
	)

	return bookingFixture{
		repo:     repo,
		services: serviceRepo,
		settings: settings,
		svc:      svc,
	}
}

func TestRepriceForInventory(t *testing.T) {
	f := newBookingFixture(t)

	rates := finance.NewRates("JOD", map[string]float64{"USD": 1.41})

	f.settings.EXPECT().Rates(gomock.Any()).Return(rates, nil)

	// The item is sold into two files; one of them is cancelled.
	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Service{
			{ID: "s1", BookingID: "active", InventoryID: "item-1", Type: model.TypeFlight},
			{ID: "s2", BookingID: "cancelled", InventoryID: "item-1", Type: model.TypeFlight},
		}, nil)

	activeBooking := model.Booking{
		ID:         "active",
		Status:     model.StatusConfirmed,
		TravelDate: time.Now().AddDate(0, 0, 30),
		Amount:     500,
		Cost:       200,
		Profit:     300,
	}

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeBooking, nil)

	// Only the active booking's service rows are touched.
	f.services.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			assert.InDelta(t, 60.0, req[model.FieldServiceUnitCost], 1e-9)
			assert.InDelta(t, 80.0, req[model.FieldServiceUnitPrice], 1e-9)

			return nil
		})

	// Reloaded services after the price write: repriced line (2 seats at the
	// new cost) plus an untouched non-inventory line.
	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Service{
			{ID: "s1", BookingID: "active", InventoryID: "item-1", UnitCost: 60, Quantity: 2, CostCurrency: "JOD"},
			{ID: "s3", BookingID: "active", UnitCost: 100, Quantity: 1, CostCurrency: "JOD"},
		}, nil)

	// Amount is frozen; only cost and profit move.
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
			assert.NotContains(t, req, model.FieldAmount)
			assert.InDelta(t, 220.0, req[model.FieldCost], 1e-9)
			assert.InDelta(t, 280.0, req[model.FieldProfit], 1e-9)

			return nil
		})

	cancelledBooking := model.Booking{
		ID:     "cancelled",
		Status: model.StatusCancelled,
		Amount: 900,
	}

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(cancelledBooking, nil)

	res, err := f.svc.RepriceForInventory(context.Background(), "item-1", 60, 80)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Skipped, "the cancelled file is skipped, not updated")
	assert.Zero(t, res.Failed)
}

func TestRepriceForInventory_ContinuesAfterFailure(t *testing.T) {
	f := newBookingFixture(t)

	rates := finance.NewRates("JOD", nil)

	f.settings.EXPECT().Rates(gomock.Any()).Return(rates, nil)

	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Service{
			{ID: "s1", BookingID: "broken", InventoryID: "item-1"},
			{ID: "s2", BookingID: "ok", InventoryID: "item-1"},
		}, nil)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Booking{}, assert.AnError)

	okBooking := model.Booking{ID: "ok", Status: model.StatusPending, Amount: 100}

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(okBooking, nil)

	f.services.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Service{
			{ID: "s2", BookingID: "ok", InventoryID: "item-1", UnitCost: 10, Quantity: 1, CostCurrency: "JOD"},
		}, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	res, err := f.svc.RepriceForInventory(context.Background(), "item-1", 10, 15)

	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Zero(t, res.Skipped)
	assert.Equal(t, 1, res.Failed)
}
