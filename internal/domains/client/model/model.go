package model

import "tripdesk/shared/model"

const (
	TableName  = "clients"
	EntityName = "client"

	FieldID    = "id"
	FieldName  = "name"
	FieldPhone = "phone"
)

type Client struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Phone string `db:"phone"`
	Email string `db:"email"`
	Notes string `db:"notes"`
	model.Metadata
}
