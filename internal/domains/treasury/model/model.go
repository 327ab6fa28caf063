package model

import "tripdesk/shared/model"

const (
	TableName  = "treasuries"
	EntityName = "treasury"

	FieldID       = "id"
	FieldName     = "name"
	FieldCurrency = "currency"
	FieldBalance  = "balance"
)

// Treasury is a cash or bank bucket with a running balance in its own
// currency. Balance changes always pair 1:1 with a transaction or a booking
// payment recorded in the same database transaction.
type Treasury struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Currency string  `db:"currency"`
	Balance  float64 `db:"balance"`
	Notes    string  `db:"notes"`
	model.Metadata
}
