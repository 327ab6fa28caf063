package dto

import (
	"math"
	"time"
	"tripdesk/internal/domains/inventory/model"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type CreateItemRequest struct {
	Type          string  `json:"type" validate:"required,oneof=flight hotel visa transport tour umrah insurance other"`
	Name          string  `json:"name" validate:"required,max=255"`
	TotalQuantity int     `json:"totalQuantity" validate:"required,min=1"`
	CostPrice     float64 `json:"costPrice" validate:"required,gt=0"`
	CostCurrency  string  `json:"costCurrency" validate:"omitempty,len=3,uppercase"`
	SellingPrice  float64 `json:"sellingPrice" validate:"required,gt=0"`
	SellCurrency  string  `json:"sellCurrency" validate:"omitempty,len=3,uppercase"`
	SupplierID    string  `json:"supplierId" validate:"omitempty,uuid"`
	FlightNumber  string  `json:"flightNumber" validate:"omitempty,max=16"`
	Origin        string  `json:"origin" validate:"omitempty,max=128"`
	Destination   string  `json:"destination" validate:"omitempty,max=128"`
	FlightDate    string  `json:"flightDate" validate:"omitempty,datetime=2006-01-02"`
	ReturnDate    string  `json:"returnDate" validate:"omitempty,datetime=2006-01-02"`
	HotelName     string  `json:"hotelName" validate:"omitempty,max=255"`
	HotelCity     string  `json:"hotelCity" validate:"omitempty,max=128"`
	CheckIn       string  `json:"checkIn" validate:"omitempty,datetime=2006-01-02"`
	CheckOut      string  `json:"checkOut" validate:"omitempty,datetime=2006-01-02"`
	Notes         string  `json:"notes" validate:"omitempty,max=1000"`
}

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	parsed, err := timezone.Parse(dateLayout, value)
	if err != nil {
		return nil
	}

	return &parsed
}

func (r CreateItemRequest) ToModel(user string) model.Item {
	return model.Item{
		ID:            uuid.NewString(),
		Type:          r.Type,
		Name:          r.Name,
		TotalQuantity: r.TotalQuantity,
		CostPrice:     r.CostPrice,
		CostCurrency:  r.CostCurrency,
		SellingPrice:  r.SellingPrice,
		SellCurrency:  r.SellCurrency,
		SupplierID:    r.SupplierID,
		FlightNumber:  r.FlightNumber,
		Origin:        r.Origin,
		Destination:   r.Destination,
		FlightDate:    parseDate(r.FlightDate),
		ReturnDate:    parseDate(r.ReturnDate),
		HotelName:     r.HotelName,
		HotelCity:     r.HotelCity,
		CheckIn:       parseDate(r.CheckIn),
		CheckOut:      parseDate(r.CheckOut),
		Notes:         r.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateItemRequest struct {
	Name          string   `json:"name" validate:"omitempty,max=255" db:"name"`
	TotalQuantity *int     `json:"totalQuantity" validate:"omitempty,min=1" db:"total_quantity"`
	CostPrice     *float64 `json:"costPrice" validate:"omitempty,gt=0" db:"cost_price"`
	SellingPrice  *float64 `json:"sellingPrice" validate:"omitempty,gt=0" db:"selling_price"`
	SupplierID    string   `json:"supplierId" validate:"omitempty,uuid" db:"supplier_id"`
	Notes         string   `json:"notes" validate:"omitempty,max=1000" db:"notes"`
}

type ItemResponse struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Name          string     `json:"name"`
	TotalQuantity int        `json:"totalQuantity"`
	CostPrice     float64    `json:"costPrice"`
	CostCurrency  string     `json:"costCurrency"`
	SellingPrice  float64    `json:"sellingPrice"`
	SellCurrency  string     `json:"sellCurrency"`
	SupplierID    string     `json:"supplierId,omitempty"`
	FlightNumber  string     `json:"flightNumber,omitempty"`
	Origin        string     `json:"origin,omitempty"`
	Destination   string     `json:"destination,omitempty"`
	FlightDate    *time.Time `json:"flightDate,omitempty"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	HotelName     string     `json:"hotelName,omitempty"`
	HotelCity     string     `json:"hotelCity,omitempty"`
	CheckIn       *time.Time `json:"checkIn,omitempty"`
	CheckOut      *time.Time `json:"checkOut,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	Sold          int        `json:"sold"`
	Remaining     int        `json:"remaining"`
	CreatedAt     time.Time  `json:"createdAt"`
	ModifiedAt    time.Time  `json:"modifiedAt"`
}

func (r *ItemResponse) FromModel(item model.Item, stats model.Stats) {
	r.ID = item.ID
	r.Type = item.Type
	r.Name = item.Name
	r.TotalQuantity = item.TotalQuantity
	r.CostPrice = item.CostPrice
	r.CostCurrency = item.CostCurrency
	r.SellingPrice = item.SellingPrice
	r.SellCurrency = item.SellCurrency
	r.SupplierID = item.SupplierID
	r.FlightNumber = item.FlightNumber
	r.Origin = item.Origin
	r.Destination = item.Destination
	r.FlightDate = item.FlightDate
	r.ReturnDate = item.ReturnDate
	r.HotelName = item.HotelName
	r.HotelCity = item.HotelCity
	r.CheckIn = item.CheckIn
	r.CheckOut = item.CheckOut
	r.Notes = item.Notes
	r.Sold = stats.Sold
	r.Remaining = stats.Remaining
	r.CreatedAt = item.CreatedAt
	r.ModifiedAt = item.ModifiedAt
}

type GetItemsResponse struct {
	Items     []ItemResponse `json:"items"`
	Total     int            `json:"total"`
	TotalPage int            `json:"totalPage"`
}

func (r *GetItemsResponse) CalculateTotalPage(total, limit int) {
	r.Total = total

	if limit > 0 {
		r.TotalPage = int(math.Ceil(float64(total) / float64(limit)))
	}
}

// RepricedEvent is published when an item's prices change so affected
// bookings can be recomputed out of band.
type RepricedEvent struct {
	ItemID       string  `json:"itemId"`
	CostPrice    float64 `json:"costPrice"`
	SellingPrice float64 `json:"sellingPrice"`
}
