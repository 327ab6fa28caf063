package model

import (
	"time"
	"tripdesk/internal/finance"
	"tripdesk/shared/model"
)

const (
	ServiceTableName  = "booking_services"
	ServiceEntityName = "booking_service"

	FieldServiceID         = "id"
	FieldServiceBookingID  = "booking_id"
	FieldServiceType       = "type"
	FieldServiceQuantity   = "quantity"
	FieldServiceUnitCost   = "unit_cost"
	FieldServiceCurrency   = "cost_currency"
	FieldServiceUnitPrice  = "unit_price"
	FieldServiceInventory  = "inventory_id"
	FieldServiceCheckIn    = "check_in"
	FieldServiceCheckOut   = "check_out"
	FieldServiceRoomCount  = "room_count"
	FieldServiceFlightDate = "flight_date"
	FieldServiceReturnDate = "return_date"
)

// Service is one priced line item of a booking. Hotel lines keep quantity in
// sync with room_count times nights; flight lines carry the outbound and
// return dates. A non-empty inventory_id sources prices from that item.
type Service struct {
	ID           string     `db:"id"`
	BookingID    string     `db:"booking_id"`
	Type         string     `db:"type"`
	Description  string     `db:"description"`
	Quantity     int        `db:"quantity"`
	UnitCost     float64    `db:"unit_cost"`
	CostCurrency string     `db:"cost_currency"`
	UnitPrice    float64    `db:"unit_price"`
	InventoryID  string     `db:"inventory_id"`
	FlightNumber string     `db:"flight_number"`
	Origin       string     `db:"origin"`
	FlightDate   *time.Time `db:"flight_date"`
	ReturnDate   *time.Time `db:"return_date"`
	HotelName    string     `db:"hotel_name"`
	HotelCity    string     `db:"hotel_city"`
	CheckIn      *time.Time `db:"check_in"`
	CheckOut     *time.Time `db:"check_out"`
	RoomCount    int        `db:"room_count"`
	model.Metadata
}

// CostLine exposes the service to the finance aggregator.
func (s *Service) CostLine() finance.CostLine {
	return finance.CostLine{
		UnitCost: s.UnitCost,
		Quantity: s.Quantity,
		Currency: s.CostCurrency,
	}
}

// Normalize re-derives the dependent fields of a service line: hotel quantity
// from rooms and nights, and the flight return date ordering.
func (s *Service) Normalize() {
	if s.Quantity < 1 {
		s.Quantity = 1
	}

	switch s.Type {
	case TypeHotel:
		if s.CheckIn != nil && s.CheckOut != nil {
			s.Quantity = finance.HotelQuantity(s.RoomCount, *s.CheckIn, *s.CheckOut)
		}
	case TypeFlight:
		if s.FlightDate != nil && s.ReturnDate != nil {
			pushed := finance.PushReturnDate(*s.FlightDate, *s.ReturnDate)
			s.ReturnDate = &pushed
		}
	}
}

// CostLines converts a service list for aggregation.
func CostLines(services []Service) []finance.CostLine {
	lines := make([]finance.CostLine, len(services))
	for i := range services {
		lines[i] = services[i].CostLine()
	}

	return lines
}
