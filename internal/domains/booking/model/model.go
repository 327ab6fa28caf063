package model

import (
	"time"
	"tripdesk/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldFileNumber    = "file_number"
	FieldClientID      = "client_id"
	FieldClientName    = "client_name"
	FieldClientPhone   = "client_phone"
	FieldTravelDate    = "travel_date"
	FieldDestination   = "destination"
	FieldType          = "type"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldAmount        = "amount"
	FieldCost          = "cost"
	FieldProfit        = "profit"
	FieldPaidAmount    = "paid_amount"
	FieldNotes         = "notes"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusVoided    = "voided"
)

const (
	TypeFlight    = "flight"
	TypeHotel     = "hotel"
	TypeVisa      = "visa"
	TypeTransport = "transport"
	TypeTour      = "tour"
	TypeUmrah     = "umrah"
	TypeInsurance = "insurance"
	TypeOther     = "other"
)

// Inactive reports whether a booking status excludes it from inventory
// consumption, alerts and report rollups.
func Inactive(status string) bool {
	return status == StatusCancelled || status == StatusVoided
}

// Booking is one client travel file. Amount, cost, profit and paid amount are
// stored in the base currency; cost, profit and payment status are derived and
// rewritten on every mutation to services, amount or payments.
type Booking struct {
	ID            string    `db:"id"`
	FileNumber    string    `db:"file_number"`
	ClientID      string    `db:"client_id"`
	ClientName    string    `db:"client_name"`
	ClientPhone   string    `db:"client_phone"`
	TravelDate    time.Time `db:"travel_date"`
	Destination   string    `db:"destination"`
	Type          string    `db:"type"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	Amount        float64   `db:"amount"`
	Cost          float64   `db:"cost"`
	Profit        float64   `db:"profit"`
	PaidAmount    float64   `db:"paid_amount"`
	Notes         string    `db:"notes"`
	model.Metadata
}
