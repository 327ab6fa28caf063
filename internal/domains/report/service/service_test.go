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
	bookingModel "tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/report/service"
	settingsMocks "tripdesk/internal/domains/settings/mocks"
	transactionMocks "tripdesk/internal/domains/transaction/mocks"
	transactionModel "tripdesk/internal/domains/transaction/model"
	"tripdesk/internal/finance"
)

type reportFixture struct {
	bookings *bookingMocks.MockBooking
	txs      *transactionMocks.MockTransaction
	settings *settingsMocks.MockSettings
	svc      service.Report
}

func newReportFixture(t *testing.T) reportFixture {
	ctrl := gomock.NewController(t)

	bookings := bookingMocks.NewMockBooking(ctrl)
	txs := transactionMocks.NewMockTransaction(ctrl)
	settings := settingsMocks.NewMockSettings(ctrl)

	cfg := &config.Config{}
	cfg.App.Currency.Base = "JOD"

	svc := service.New(bookings, txs, settings, cfg, otelMocks.NewOtel())

	return reportFixture{
		bookings: bookings,
		txs:      txs,
		settings: settings,
		svc:      svc,
	}
}

func TestBuild_RowsRoundedAfterConversion(t *testing.T) {
	f := newReportFixture(t)

	june := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	f.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			{Type: bookingModel.TypeUmrah, Status: bookingModel.StatusConfirmed, TravelDate: june, Amount: 100.5549, Cost: 0},
		}, nil)
	f.txs.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]transactionModel.Transaction{}, nil)

	f.settings.EXPECT().DisplayCurrency(gomock.Any()).Return("USD")
	f.settings.EXPECT().
		Rates(gomock.Any()).
		Return(finance.NewRates("JOD", map[string]float64{"USD": 1.41}), nil)

	report, err := f.svc.Build(context.Background(), 2025, 0, "")

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)

	// 100.5549 JOD converts to 141.782409 USD; rounding before the
	// conversion would present 141.7755 instead.
	assert.InDelta(t, 141.78, report.Rows[0].Sales, 1e-9)
	assert.InDelta(t, 141.78, report.Rows[0].Profit, 1e-9)
	assert.Equal(t, "USD", report.Currency)
}

func TestBuild_RowsRoundedInBaseCurrency(t *testing.T) {
	f := newReportFixture(t)

	june := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	f.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			{Type: bookingModel.TypeFlight, Status: bookingModel.StatusConfirmed, TravelDate: june, Amount: 100.006, Cost: 0},
		}, nil)
	f.txs.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]transactionModel.Transaction{}, nil)

	f.settings.EXPECT().DisplayCurrency(gomock.Any()).Return("JOD")

	report, err := f.svc.Build(context.Background(), 2025, 0, "")

	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.InDelta(t, 100.01, report.Rows[0].Sales, 1e-9)
}
