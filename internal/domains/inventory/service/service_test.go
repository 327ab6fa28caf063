package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripdesk/config"
	"tripdesk/infras/kafka"
	kafkaMocks "tripdesk/infras/kafka/mocks"
	otelMocks "tripdesk/infras/otel/mocks"
	bookingMocks "tripdesk/internal/domains/booking/mocks"
	bookingModel "tripdesk/internal/domains/booking/model"
	inventoryMocks "tripdesk/internal/domains/inventory/mocks"
	"tripdesk/internal/domains/inventory/model"
	"tripdesk/internal/domains/inventory/model/dto"
	"tripdesk/internal/domains/inventory/service"
	"tripdesk/shared/failure"
)

type noopCache struct{}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (noopCache) Get(_ context.Context, _ string, _ any) error {
	return assert.AnError
}
func (noopCache) Delete(_ context.Context, _ string) error { return nil }
func (noopCache) Clear(_ context.Context, _ string) error  { return nil }

type inventoryFixture struct {
	repo     *inventoryMocks.MockInventory
	services *bookingMocks.MockService
	bookings *bookingMocks.MockBooking
	broker   *kafkaMocks.MockClient
	svc      service.Inventory
}

func newInventoryFixture(t *testing.T) inventoryFixture {
	ctrl := gomock.NewController(t)

	repo := inventoryMocks.NewMockInventory(ctrl)
	serviceRepo := bookingMocks.NewMockService(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	broker := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.App.Currency.Base = "JOD"

	svc := service.New(repo, serviceRepo, bookingRepo, broker, cfg, noopCache{}, otelMocks.NewOtel())

	return inventoryFixture{
		repo:     repo,
		services: serviceRepo,
		bookings: bookingRepo,
		broker:   broker,
		svc:      svc,
	}
}

func TestStats(t *testing.T) {
	f := newInventoryFixture(t)

	item := model.Item{ID: "item-1", TotalQuantity: 4}

	// Two services on a confirmed booking, one on a cancelled booking. The
	// hotel line spans 3 nights but consumes rooms, not room-nights.
	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Service{
			{ID: "s1", BookingID: "b1", Type: bookingModel.TypeHotel, RoomCount: 2, Quantity: 6},
			{ID: "s2", BookingID: "b1", Type: bookingModel.TypeFlight, Quantity: 3},
			{ID: "s3", BookingID: "b2", Type: bookingModel.TypeFlight, Quantity: 10},
		}, nil)

	// One lookup per distinct booking.
	f.bookings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{ID: "b1", Status: bookingModel.StatusConfirmed}, nil)
	f.bookings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{ID: "b2", Status: bookingModel.StatusCancelled}, nil)

	stats, err := f.svc.Stats(context.Background(), item)

	require.NoError(t, err)
	assert.Equal(t, 5, stats.Sold)
	assert.Equal(t, -1, stats.Remaining, "overselling is reported, not blocked")
}

func TestStats_PendingStillConsumes(t *testing.T) {
	f := newInventoryFixture(t)

	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Service{
			{ID: "s1", BookingID: "b1", Type: bookingModel.TypeVisa, Quantity: 2},
		}, nil)

	f.bookings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{ID: "b1", Status: bookingModel.StatusPending}, nil)

	stats, err := f.svc.Stats(context.Background(), model.Item{ID: "item-1", TotalQuantity: 10})

	require.NoError(t, err)
	assert.Equal(t, 2, stats.Sold)
	assert.Equal(t, 8, stats.Remaining)
}

func TestDelete_RefusedWhileReferenced(t *testing.T) {
	f := newInventoryFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Item{ID: "item-1", TotalQuantity: 5}, nil)

	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Service{
			{ID: "s1", BookingID: "b1", Type: bookingModel.TypeFlight, Quantity: 1},
		}, nil)

	f.bookings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{ID: "b1", Status: bookingModel.StatusConfirmed}, nil)

	err := f.svc.Delete(context.Background(), "item-1")

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestDelete_AllowedOnceReleased(t *testing.T) {
	f := newInventoryFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Item{ID: "item-1", TotalQuantity: 5}, nil)

	// The only consumer has been cancelled, so nothing is sold anymore.
	f.services.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Service{
			{ID: "s1", BookingID: "b1", Type: bookingModel.TypeFlight, Quantity: 1},
		}, nil)

	f.bookings.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(bookingModel.Booking{ID: "b1", Status: bookingModel.StatusCancelled}, nil)

	f.repo.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil)

	err := f.svc.Delete(context.Background(), "item-1")

	require.NoError(t, err)
}

func TestUpdate_PublishesRepriceEvent(t *testing.T) {
	f := newInventoryFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Item{ID: "item-1", CostPrice: 50, SellingPrice: 70}, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	published := make(chan kafka.Message, 1)

	f.broker.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			published <- messages[0]
			return nil
		})

	newCost := 60.0
	err := f.svc.Update(context.Background(), dto.UpdateItemRequest{CostPrice: &newCost}, "item-1")
	require.NoError(t, err)

	select {
	case msg := <-published:
		assert.Equal(t, "item-1", msg.Key)

		event, ok := msg.Value.(dto.RepricedEvent)
		require.True(t, ok)
		assert.Equal(t, "item-1", event.ItemID)
		assert.InDelta(t, 60, event.CostPrice, 0.0001)
		assert.InDelta(t, 70, event.SellingPrice, 0.0001, "untouched price carries the stored value")
	case <-time.After(2 * time.Second):
		t.Fatal("reprice event was never published")
	}
}

func TestUpdate_NoEventWithoutPriceChange(t *testing.T) {
	f := newInventoryFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Item{ID: "item-1", CostPrice: 50, SellingPrice: 70}, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := f.svc.Update(context.Background(), dto.UpdateItemRequest{Name: "renamed"}, "item-1")
	require.NoError(t, err)
}
