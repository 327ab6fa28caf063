package model

import "tripdesk/shared/model"

const (
	TableName  = "documents"
	EntityName = "document"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldBookingID = "booking_id"
	FieldFileURL   = "file_url"
)

// Document is a stored file attached to a booking: a passport scan, a visa
// copy, a signed contract. The file itself lives in object storage; only the
// URL is kept here.
type Document struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	BookingID   string `db:"booking_id"`
	PassengerID string `db:"passenger_id"`
	FileURL     string `db:"file_url"`
	ContentType string `db:"content_type"`
	model.Metadata
}
