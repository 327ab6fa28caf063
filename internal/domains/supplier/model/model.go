package model

import "tripdesk/shared/model"

const (
	TableName  = "suppliers"
	EntityName = "supplier"

	FieldID   = "id"
	FieldName = "name"
)

type Supplier struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Contact string `db:"contact"`
	Phone   string `db:"phone"`
	Notes   string `db:"notes"`
	model.Metadata
}
