package model

import (
	"time"
	"tripdesk/shared/model"
)

const (
	TableName  = "inventory_items"
	EntityName = "inventory_item"

	FieldID            = "id"
	FieldType          = "type"
	FieldName          = "name"
	FieldTotalQuantity = "total_quantity"
	FieldCostPrice     = "cost_price"
	FieldCostCurrency  = "cost_currency"
	FieldSellingPrice  = "selling_price"
	FieldSellCurrency  = "sell_currency"
)

// Item is a pre-purchased, finite-quantity travel product (a room block, a
// flight allotment) sellable across many bookings. Sold and remaining counts
// are never stored; they are computed on demand from live bookings.
type Item struct {
	ID            string     `db:"id"`
	Type          string     `db:"type"`
	Name          string     `db:"name"`
	TotalQuantity int        `db:"total_quantity"`
	CostPrice     float64    `db:"cost_price"`
	CostCurrency  string     `db:"cost_currency"`
	SellingPrice  float64    `db:"selling_price"`
	SellCurrency  string     `db:"sell_currency"`
	SupplierID    string     `db:"supplier_id"`
	FlightNumber  string     `db:"flight_number"`
	Origin        string     `db:"origin"`
	Destination   string     `db:"destination"`
	FlightDate    *time.Time `db:"flight_date"`
	ReturnDate    *time.Time `db:"return_date"`
	HotelName     string     `db:"hotel_name"`
	HotelCity     string     `db:"hotel_city"`
	CheckIn       *time.Time `db:"check_in"`
	CheckOut      *time.Time `db:"check_out"`
	Notes         string     `db:"notes"`
	model.Metadata
}

// Stats is the derived consumption view of an item. Remaining is advisory
// only: nothing serializes concurrent bookings against the same item, so an
// oversold (negative remaining) state is reported, not prevented.
type Stats struct {
	Sold      int `json:"sold"`
	Remaining int `json:"remaining"`
}
