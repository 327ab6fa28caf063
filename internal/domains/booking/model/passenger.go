package model

import "tripdesk/shared/model"

const (
	PassengerTableName  = "booking_passengers"
	PassengerEntityName = "booking_passenger"

	FieldPassengerID        = "id"
	FieldPassengerBookingID = "booking_id"
	FieldPassengerSubmitted = "passport_submitted"
)

type Passenger struct {
	ID                string `db:"id"`
	BookingID         string `db:"booking_id"`
	Name              string `db:"name"`
	PassportNumber    string `db:"passport_number"`
	PassportSubmitted bool   `db:"passport_submitted"`
	model.Metadata
}
