package model

import (
	"math"
	"time"
	bookingModel "tripdesk/internal/domains/booking/model"
	transactionModel "tripdesk/internal/domains/transaction/model"
)

// TypeAll selects every booking type. Only under this filter are operational
// expenses attributed to the report; with a narrower filter they are reported
// as zero rather than misattributed to one type.
const TypeAll = "all"

// MonthlyRow is one calendar month of the report. Build leaves the values
// unrounded in base currency; the service rounds to 2 decimals only after
// converting into the display currency.
type MonthlyRow struct {
	Month    time.Month `json:"month"`
	Sales    float64    `json:"sales"`
	Cost     float64    `json:"cost"`
	Expenses float64    `json:"expenses"`
	Profit   float64    `json:"profit"`
}

type Report struct {
	Year                int                `json:"year"`
	Month               int                `json:"month,omitempty"`
	TypeFilter          string             `json:"typeFilter"`
	Currency            string             `json:"currency"`
	TotalSales          float64            `json:"totalSales"`
	TotalCost           float64            `json:"totalCost"`
	GrossProfit         float64            `json:"grossProfit"`
	OperationalExpenses float64            `json:"operationalExpenses"`
	NetProfit           float64            `json:"netProfit"`
	Rows                []MonthlyRow       `json:"rows"`
	SalesByType         map[string]float64 `json:"salesByType"`
	ExpensesByCategory  map[string]float64 `json:"expensesByCategory,omitempty"`
}

// Round2 rounds a display value to 2 decimals. Applied last, after any
// currency conversion.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func matchesPeriod(t time.Time, year, month int) bool {
	if t.Year() != year {
		return false
	}

	return month == 0 || int(t.Month()) == month
}

// Build aggregates bookings and transactions into a financial report for one
// year, optionally narrowed to a month (1-12, 0 means whole year) and a
// booking type. Cancelled and voided bookings are excluded from sales but
// historical transactions always count. All amounts are in the base currency;
// the caller converts for display.
func Build(bookings []bookingModel.Booking, transactions []transactionModel.Transaction, year, month int, typeFilter string) Report {
	if typeFilter == "" {
		typeFilter = TypeAll
	}

	report := Report{
		Year:        year,
		Month:       month,
		TypeFilter:  typeFilter,
		Rows:        []MonthlyRow{},
		SalesByType: map[string]float64{},
	}

	type bucket struct {
		sales, cost, expenses float64
	}

	months := map[time.Month]*bucket{}

	monthOf := func(m time.Month) *bucket {
		if months[m] == nil {
			months[m] = &bucket{}
		}

		return months[m]
	}

	for _, booking := range bookings {
		if bookingModel.Inactive(booking.Status) {
			continue
		}

		if !matchesPeriod(booking.TravelDate, year, month) {
			continue
		}

		if typeFilter != TypeAll && booking.Type != typeFilter {
			continue
		}

		report.TotalSales += booking.Amount
		report.TotalCost += booking.Cost

		if booking.Amount > 0 {
			report.SalesByType[booking.Type] += booking.Amount
		}

		b := monthOf(booking.TravelDate.Month())
		b.sales += booking.Amount
		b.cost += booking.Cost
	}

	// Expenses only attach under the all-types view; a per-type report has
	// no defensible way to split shared operating costs.
	if typeFilter == TypeAll {
		report.ExpensesByCategory = map[string]float64{}

		for _, transaction := range transactions {
			if transaction.Type != transactionModel.TypeExpense {
				continue
			}

			// Transfer legs shuffle money between treasuries; counting the
			// outgoing leg as an operating cost would shrink net profit on
			// every internal transfer.
			if transaction.Category == transactionModel.CategoryTransferOut ||
				transaction.Category == transactionModel.CategoryTransferIn {
				continue
			}

			if !matchesPeriod(transaction.TransactionDate, year, month) {
				continue
			}

			report.OperationalExpenses += transaction.Amount
			report.ExpensesByCategory[transaction.Category] += transaction.Amount
			monthOf(transaction.TransactionDate.Month()).expenses += transaction.Amount
		}
	}

	report.GrossProfit = report.TotalSales - report.TotalCost
	report.NetProfit = report.GrossProfit - report.OperationalExpenses

	first, last := time.January, time.December
	if month != 0 {
		first, last = time.Month(month), time.Month(month)
	}

	for m := first; m <= last; m++ {
		b := months[m]
		if b == nil {
			continue
		}

		report.Rows = append(report.Rows, MonthlyRow{
			Month:    m,
			Sales:    b.sales,
			Cost:     b.cost,
			Expenses: b.expenses,
			Profit:   b.sales - b.cost - b.expenses,
		})
	}

	for key, value := range report.SalesByType {
		if value <= 0 {
			delete(report.SalesByType, key)
		}
	}

	return report
}
