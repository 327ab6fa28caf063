package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripdesk/config"
	otelMocks "tripdesk/infras/otel/mocks"
	settingsMocks "tripdesk/internal/domains/settings/mocks"
	transactionMocks "tripdesk/internal/domains/transaction/mocks"
	treasuryMocks "tripdesk/internal/domains/treasury/mocks"
	"tripdesk/internal/domains/treasury/model"
	"tripdesk/internal/domains/treasury/model/dto"
	"tripdesk/internal/domains/treasury/service"
	"tripdesk/internal/finance"
	"tripdesk/shared/failure"
)

type noopCache struct{}

func (noopCache) Save(_ context.Context, _ string, _ any, _ int) error { return nil }
func (noopCache) Get(_ context.Context, _ string, _ any) error {
	return assert.AnError
}
func (noopCache) Delete(_ context.Context, _ string) error { return nil }
func (noopCache) Clear(_ context.Context, _ string) error  { return nil }

type treasuryFixture struct {
	repo     *treasuryMocks.MockTreasury
	settings *settingsMocks.MockSettings
	svc      service.Treasury
}

func newTreasuryFixture(t *testing.T) treasuryFixture {
	ctrl := gomock.NewController(t)

	repo := treasuryMocks.NewMockTreasury(ctrl)
	txRepo := transactionMocks.NewMockTransaction(ctrl)
	settings := settingsMocks.NewMockSettings(ctrl)

	cfg := &config.Config{}
	cfg.App.Currency.Base = "JOD"

	svc := service.New(repo, txRepo, settings, nil, cfg, noopCache{}, otelMocks.NewOtel())

	return treasuryFixture{
		repo:     repo,
		settings: settings,
		svc:      svc,
	}
}

func TestTransfer_SourceNotFound(t *testing.T) {
	f := newTreasuryFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Treasury{}, nil)

	err := f.svc.Transfer(context.Background(), dto.TransferRequest{
		FromTreasuryID: "missing",
		ToTreasuryID:   "cash",
		Amount:         100,
	})

	require.Error(t, err)
	assert.Equal(t, 404, failure.GetCode(err))
}

func TestTransfer_InsufficientBalance(t *testing.T) {
	f := newTreasuryFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Treasury{ID: "cash", Currency: "JOD", Balance: 50}, nil)
	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Treasury{ID: "bank", Currency: "JOD", Balance: 0}, nil)

	err := f.svc.Transfer(context.Background(), dto.TransferRequest{
		FromTreasuryID: "cash",
		ToTreasuryID:   "bank",
		Amount:         100,
	})

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Contains(t, err.Error(), "insufficient balance")
}

func TestTransfer_UnknownDestinationCurrency(t *testing.T) {
	f := newTreasuryFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Treasury{ID: "cash", Currency: "JOD", Balance: 500}, nil)
	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Treasury{ID: "euro", Currency: "EUR", Balance: 0}, nil)

	// The rate table has no EUR entry, so the credit cannot be priced and
	// neither balance moves.
	f.settings.EXPECT().
		Rates(gomock.Any()).
		Return(finance.NewRates("JOD", map[string]float64{"USD": 1.41}), nil)

	err := f.svc.Transfer(context.Background(), dto.TransferRequest{
		FromTreasuryID: "cash",
		ToTreasuryID:   "euro",
		Amount:         100,
	})

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}
