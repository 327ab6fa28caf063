package model_test

import (
	"testing"
	"time"
	bookingModel "tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/report/model"
	transactionModel "tripdesk/internal/domains/transaction/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(bookingType, status string, travel time.Time, amount, cost float64) bookingModel.Booking {
	return bookingModel.Booking{
		Type:       bookingType,
		Status:     status,
		TravelDate: travel,
		Amount:     amount,
		Cost:       cost,
		Profit:     amount - cost,
	}
}

func expense(category string, date time.Time, amount float64) transactionModel.Transaction {
	return transactionModel.Transaction{
		Type:            transactionModel.TypeExpense,
		Category:        category,
		Amount:          amount,
		TransactionDate: date,
	}
}

func TestBuild_YearlyTotals(t *testing.T) {
	march := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		booking(bookingModel.TypeUmrah, bookingModel.StatusConfirmed, march, 1000, 700),
		booking(bookingModel.TypeFlight, bookingModel.StatusConfirmed, july, 500, 350),
		booking(bookingModel.TypeFlight, bookingModel.StatusCancelled, july, 900, 600),
		booking(bookingModel.TypeHotel, bookingModel.StatusPending, time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), 400, 300),
	}

	transactions := []transactionModel.Transaction{
		expense("rent", march, 200),
		expense("salaries", july, 300),
		{Type: transactionModel.TypeIncome, Category: "booking_payment", Amount: 999, TransactionDate: july},
		expense("rent", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 150),
	}

	report := model.Build(bookings, transactions, 2025, 0, model.TypeAll)

	assert.InDelta(t, 1500, report.TotalSales, 1e-9)
	assert.InDelta(t, 1050, report.TotalCost, 1e-9)
	assert.InDelta(t, 450, report.GrossProfit, 1e-9)
	assert.InDelta(t, 500, report.OperationalExpenses, 1e-9)
	assert.InDelta(t, -50, report.NetProfit, 1e-9)

	assert.InDelta(t, 1000, report.SalesByType[bookingModel.TypeUmrah], 1e-9)
	assert.InDelta(t, 500, report.SalesByType[bookingModel.TypeFlight], 1e-9)
	assert.NotContains(t, report.SalesByType, bookingModel.TypeHotel)

	assert.InDelta(t, 200, report.ExpensesByCategory["rent"], 1e-9)
	assert.InDelta(t, 300, report.ExpensesByCategory["salaries"], 1e-9)

	require.Len(t, report.Rows, 2)
	assert.Equal(t, time.March, report.Rows[0].Month)
	assert.InDelta(t, 100, report.Rows[0].Profit, 1e-9)
	assert.Equal(t, time.July, report.Rows[1].Month)
	assert.InDelta(t, -150, report.Rows[1].Profit, 1e-9)
}

func TestBuild_MonthNarrowing(t *testing.T) {
	march := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		booking(bookingModel.TypeUmrah, bookingModel.StatusConfirmed, march, 1000, 700),
		booking(bookingModel.TypeFlight, bookingModel.StatusConfirmed, july, 500, 350),
	}

	report := model.Build(bookings, nil, 2025, 3, model.TypeAll)

	assert.InDelta(t, 1000, report.TotalSales, 1e-9)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, time.March, report.Rows[0].Month)
}

func TestBuild_TypeFilterDropsExpenses(t *testing.T) {
	march := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		booking(bookingModel.TypeUmrah, bookingModel.StatusConfirmed, march, 1000, 700),
		booking(bookingModel.TypeFlight, bookingModel.StatusConfirmed, march, 500, 350),
	}

	transactions := []transactionModel.Transaction{
		expense("rent", march, 200),
	}

	report := model.Build(bookings, transactions, 2025, 0, bookingModel.TypeUmrah)

	assert.InDelta(t, 1000, report.TotalSales, 1e-9)
	assert.InDelta(t, 300, report.GrossProfit, 1e-9)
	assert.Zero(t, report.OperationalExpenses)
	assert.InDelta(t, report.GrossProfit, report.NetProfit, 1e-9)
	assert.Empty(t, report.ExpensesByCategory)
}

func TestBuild_EmptyInput(t *testing.T) {
	report := model.Build(nil, nil, 2025, 0, "")

	assert.Equal(t, model.TypeAll, report.TypeFilter)
	assert.Zero(t, report.TotalSales)
	assert.Empty(t, report.Rows)
	assert.Empty(t, report.SalesByType)
}

func TestBuild_TransfersLeaveNetProfitAlone(t *testing.T) {
	june := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	bookings := []bookingModel.Booking{
		booking(bookingModel.TypeUmrah, bookingModel.StatusConfirmed, june, 1000, 600),
	}

	without := model.Build(bookings, nil, 2025, 0, model.TypeAll)
	require.InDelta(t, 400, without.NetProfit, 1e-9)

	// Both legs of a treasury-to-treasury transfer in the same period.
	transfers := []transactionModel.Transaction{
		expense(transactionModel.CategoryTransferOut, june, 500),
		{Type: transactionModel.TypeIncome, Category: transactionModel.CategoryTransferIn, Amount: 500, TransactionDate: june},
	}

	with := model.Build(bookings, transfers, 2025, 0, model.TypeAll)

	assert.InDelta(t, 400, with.NetProfit, 1e-9, "internal transfers must not move net profit")
	assert.Zero(t, with.OperationalExpenses)
	assert.NotContains(t, with.ExpensesByCategory, transactionModel.CategoryTransferOut)
	assert.Len(t, with.Rows, 1)
	assert.Zero(t, with.Rows[0].Expenses)
}
