package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"tripdesk/config"
	genaiMocks "tripdesk/infras/genai/mocks"
	otelMocks "tripdesk/infras/otel/mocks"
	"tripdesk/internal/domains/assistant/model/dto"
	"tripdesk/internal/domains/assistant/service"
	bookingMocks "tripdesk/internal/domains/booking/mocks"
	bookingModel "tripdesk/internal/domains/booking/model"
	transactionMocks "tripdesk/internal/domains/transaction/mocks"
	transactionModel "tripdesk/internal/domains/transaction/model"
	treasuryMocks "tripdesk/internal/domains/treasury/mocks"
	treasuryModel "tripdesk/internal/domains/treasury/model"
	"tripdesk/shared/failure"
)

type assistantFixture struct {
	genai      *genaiMocks.MockClient
	bookings   *bookingMocks.MockBooking
	txs        *transactionMocks.MockTransaction
	treasuries *treasuryMocks.MockTreasury
	svc        service.Assistant
}

func newAssistantFixture(t *testing.T) assistantFixture {
	ctrl := gomock.NewController(t)

	genai := genaiMocks.NewMockClient(ctrl)
	bookings := bookingMocks.NewMockBooking(ctrl)
	txs := transactionMocks.NewMockTransaction(ctrl)
	treasuries := treasuryMocks.NewMockTreasury(ctrl)

	cfg := &config.Config{}
	cfg.App.Currency.Base = "JOD"

	svc := service.New(genai, bookings, txs, treasuries, cfg, otelMocks.NewOtel())

	return assistantFixture{
		genai:      genai,
		bookings:   bookings,
		txs:        txs,
		treasuries: treasuries,
		svc:        svc,
	}
}

func expectSnapshot(f assistantFixture) {
	f.bookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	f.bookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{
			{FileNumber: "TRP-2025-0001", ClientName: "Acme Travel", Status: bookingModel.StatusConfirmed, Amount: 500, Profit: 120},
		}, nil)
	f.txs.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]transactionModel.Transaction{
			{Type: transactionModel.TypeExpense, Category: "rent", Amount: 300},
		}, nil)
	f.treasuries.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]treasuryModel.Treasury{
			{ID: "cash", Balance: 1000},
			{ID: "bank", Balance: 250.5},
		}, nil)
}

func TestAsk(t *testing.T) {
	f := newAssistantFixture(t)

	expectSnapshot(f)

	var prompt string

	f.genai.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p string) (string, error) {
			prompt = p
			return "  Profit this month is 120 JOD.\n", nil
		})

	res, err := f.svc.Ask(context.Background(), dto.AskRequest{Question: "How profitable was this month?"})

	require.NoError(t, err)
	assert.Equal(t, "Profit this month is 120 JOD.", res.Answer)

	// The prompt carries the question and the snapshot data.
	assert.Contains(t, prompt, "How profitable was this month?")
	assert.Contains(t, prompt, "TRP-2025-0001")
	assert.Contains(t, prompt, "1250.5")
}

func TestAsk_ModelUnavailable(t *testing.T) {
	f := newAssistantFixture(t)

	expectSnapshot(f)

	f.genai.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("", assert.AnError)

	_, err := f.svc.Ask(context.Background(), dto.AskRequest{Question: "anything"})

	require.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}

func TestLookupFlight(t *testing.T) {
	f := newAssistantFixture(t)

	// Models wrap JSON in code fences more often than not.
	f.genai.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.True(t, strings.Contains(prompt, "RJ112"))
			return "```json\n{\"airline\":\"Royal Jordanian\",\"flightNumber\":\"RJ112\",\"origin\":\"AMM\",\"destination\":\"DXB\",\"departureTime\":\"08:30\",\"arrivalTime\":\"11:45\"}\n```", nil
		})

	info := f.svc.LookupFlight(context.Background(), "RJ112", "2025-07-01")

	assert.True(t, info.Found)
	assert.Equal(t, "Royal Jordanian", info.Airline)
	assert.Equal(t, "AMM", info.Origin)
	assert.Equal(t, "08:30", info.DepartureTime)
}

func TestLookupFlight_GarbageReply(t *testing.T) {
	f := newAssistantFixture(t)

	f.genai.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("I'm sorry, I cannot help with that.", nil)

	info := f.svc.LookupFlight(context.Background(), "XX999", "2025-07-01")

	assert.False(t, info.Found)
	assert.Empty(t, info.Airline)
}

func TestLookupFlight_ModelError(t *testing.T) {
	f := newAssistantFixture(t)

	f.genai.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("", assert.AnError)

	// Lookup failures never surface as errors; manual entry takes over.
	info := f.svc.LookupFlight(context.Background(), "RJ112", "2025-07-01")

	assert.False(t, info.Found)
}

func TestLookupHotel(t *testing.T) {
	f := newAssistantFixture(t)

	f.genai.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return(`{"name":"Swissotel Makkah","city":"Makkah","address":"Ajyad Street, King Abdul Aziz Endowment","phone":"+966 12 571 7000"}`, nil)

	info := f.svc.LookupHotel(context.Background(), "Swissotel Makkah", "Makkah")

	assert.True(t, info.Found)
	assert.Equal(t, "Ajyad Street, King Abdul Aziz Endowment", info.Address)
}

func TestLookupHotel_EmptyObject(t *testing.T) {
	f := newAssistantFixture(t)

	f.genai.EXPECT().
		GenerateContent(gomock.Any(), gomock.Any()).
		Return("{}", nil)

	info := f.svc.LookupHotel(context.Background(), "Nonexistent Inn", "Nowhere")

	assert.False(t, info.Found)
}
