package model

import (
	"time"
	"tripdesk/shared/model"
)

const (
	PaymentTableName  = "booking_payments"
	PaymentEntityName = "booking_payment"

	FieldPaymentID        = "id"
	FieldPaymentBookingID = "booking_id"
	FieldPaymentTreasury  = "treasury_id"
	FieldPaymentDate      = "payment_date"
)

// Payment is one recorded receipt against a booking. Rows are append-only:
// the exchange rate and the computed base-currency amount are frozen at entry
// time and never edited afterwards.
type Payment struct {
	ID           string    `db:"id"`
	BookingID    string    `db:"booking_id"`
	Amount       float64   `db:"amount"`
	Currency     string    `db:"currency"`
	ExchangeRate float64   `db:"exchange_rate"`
	FinalAmount  float64   `db:"final_amount"`
	PaymentDate  time.Time `db:"payment_date"`
	TreasuryID   string    `db:"treasury_id"`
	Notes        string    `db:"notes"`
	model.Metadata
}

// PaidTotal sums the base-currency amounts of all payments.
func PaidTotal(payments []Payment) float64 {
	total := 0.0
	for _, payment := range payments {
		total += payment.FinalAmount
	}

	return total
}
