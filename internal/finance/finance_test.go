package finance_test

import (
	"testing"
	"time"
	"tripdesk/internal/finance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRates() finance.Rates {
	return finance.NewRates("JOD", map[string]float64{
		"USD": 1.41,
		"SAR": 5.30,
	})
}

func TestRates_Rate(t *testing.T) {
	rates := testRates()

	tests := []struct {
		name     string
		code     string
		expected float64
		wantErr  bool
	}{
		{name: "base currency is always 1", code: "JOD", expected: 1},
		{name: "empty code falls back to base", code: "", expected: 1},
		{name: "known currency", code: "USD", expected: 1.41},
		{name: "unknown currency", code: "XXX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := rates.Rate(tt.code)

			if tt.wantErr {
				assert.ErrorIs(t, err, finance.ErrUnknownCurrency)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.expected, rate, 1e-9)
		})
	}
}

func TestRates_Conversion(t *testing.T) {
	rates := testRates()

	base, err := rates.ToBase(1000, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 709.2198, base, 0.0001)

	back, err := rates.FromBase(base, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 1000, back, 1e-9)

	_, err = rates.ToBase(100, "XXX")
	assert.ErrorIs(t, err, finance.ErrUnknownCurrency)
}

func TestRates_SnapshotIsolation(t *testing.T) {
	table := map[string]float64{"USD": 1.41}
	rates := finance.NewRates("JOD", table)

	table["USD"] = 2.00

	rate, err := rates.Rate("USD")
	require.NoError(t, err)
	assert.InDelta(t, 1.41, rate, 1e-9)
}

func TestCompute(t *testing.T) {
	rates := testRates()

	lines := []finance.CostLine{
		{UnitCost: 100, Quantity: 2, Currency: "JOD"},
	}

	financials, err := finance.Compute(1000, "USD", lines, rates)
	require.NoError(t, err)

	assert.InDelta(t, 709.2198, financials.Amount, 0.0001)
	assert.InDelta(t, 200, financials.Cost, 1e-9)
	assert.InDelta(t, financials.Amount-financials.Cost, financials.Profit, 1e-9)
}

func TestCompute_NegativeProfit(t *testing.T) {
	rates := testRates()

	lines := []finance.CostLine{
		{UnitCost: 500, Quantity: 1, Currency: "JOD"},
	}

	financials, err := finance.Compute(300, "JOD", lines, rates)
	require.NoError(t, err)

	assert.InDelta(t, -200, financials.Profit, 1e-9)
}

func TestCompute_UnknownSellCurrency(t *testing.T) {
	_, err := finance.Compute(100, "XXX", nil, testRates())
	assert.ErrorIs(t, err, finance.ErrUnknownCurrency)
}

func TestLineCost_UnknownCurrencyFallsBack(t *testing.T) {
	line := finance.CostLine{UnitCost: 50, Quantity: 2, Currency: "XXX"}

	assert.InDelta(t, 100, finance.LineCost(line, testRates()), 1e-9)
}

func TestTotalCost_MixedCurrencies(t *testing.T) {
	rates := testRates()

	lines := []finance.CostLine{
		{UnitCost: 141, Quantity: 1, Currency: "USD"},
		{UnitCost: 100, Quantity: 1, Currency: "JOD"},
	}

	assert.InDelta(t, 200, finance.TotalCost(lines, rates), 1e-9)
}

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		paid     float64
		expected finance.PaymentStatus
	}{
		{name: "nothing paid", amount: 500, paid: 0, expected: finance.PaymentStatusUnpaid},
		{name: "partially paid", amount: 500, paid: 212.77, expected: finance.PaymentStatusPartial},
		{name: "fully paid", amount: 500, paid: 500, expected: finance.PaymentStatusPaid},
		{name: "paid within epsilon", amount: 500, paid: 499.995, expected: finance.PaymentStatusPaid},
		{name: "short by exactly epsilon", amount: 500, paid: 499.99, expected: finance.PaymentStatusPaid},
		{name: "short by one cent past epsilon", amount: 500, paid: 499.98, expected: finance.PaymentStatusPartial},
		{name: "overpaid", amount: 500, paid: 600, expected: finance.PaymentStatusPaid},
		{name: "zero amount zero paid", amount: 0, paid: 0, expected: finance.PaymentStatusUnpaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, finance.PaymentStatusFor(tt.amount, tt.paid))
		})
	}
}

// A frozen payment rate must survive later rate table changes: the base value
// of a recorded payment is derived from the rate at payment time, never the
// current one.
func TestPaymentConversionScenario(t *testing.T) {
	rates := testRates()

	amount, err := rates.ToBase(1000, "USD")
	require.NoError(t, err)

	paid, err := rates.ToBase(300, "USD")
	require.NoError(t, err)
	assert.InDelta(t, 212.7659, paid, 0.0001)

	assert.Equal(t, finance.PaymentStatusPartial, finance.PaymentStatusFor(amount, paid))
}

func TestNights(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		checkOut time.Time
		expected int
	}{
		{name: "three nights", checkOut: checkIn.AddDate(0, 0, 3), expected: 3},
		{name: "same day clamps to one", checkOut: checkIn, expected: 1},
		{name: "inverted clamps to one", checkOut: checkIn.AddDate(0, 0, -2), expected: 1},
		{name: "partial day rounds up", checkOut: checkIn.Add(30 * time.Hour), expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, finance.Nights(checkIn, tt.checkOut))
		})
	}
}

func TestHotelQuantity(t *testing.T) {
	checkIn := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := checkIn.AddDate(0, 0, 4)

	assert.Equal(t, 8, finance.HotelQuantity(2, checkIn, checkOut))
	assert.Equal(t, 4, finance.HotelQuantity(0, checkIn, checkOut))
}

func TestPushReturnDate(t *testing.T) {
	outbound := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, outbound, finance.PushReturnDate(outbound, outbound.AddDate(0, 0, -1)))
	assert.Equal(t, outbound.AddDate(0, 0, 7), finance.PushReturnDate(outbound, outbound.AddDate(0, 0, 7)))
}
