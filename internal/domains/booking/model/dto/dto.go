package dto

import (
	"time"
	"tripdesk/internal/domains/booking/model"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type ServiceRequest struct {
	Type         string  `json:"type"          validate:"required,max=50"`
	Description  string  `json:"description"   validate:"omitempty,max=500"`
	Quantity     int     `json:"quantity"      validate:"omitempty,gte=1"`
	UnitCost     float64 `json:"unit_cost"     validate:"omitempty,gte=0"`
	CostCurrency string  `json:"cost_currency" validate:"omitempty,len=3,uppercase"`
	UnitPrice    float64 `json:"unit_price"    validate:"omitempty,gte=0"`
	InventoryID  string  `json:"inventory_id"  validate:"omitempty,uuid"`
	FlightNumber string  `json:"flight_number" validate:"omitempty,max=20"`
	Origin       string  `json:"origin"        validate:"omitempty,max=100"`
	FlightDate   string  `json:"flight_date"   validate:"omitempty,datetime=2006-01-02"`
	ReturnDate   string  `json:"return_date"   validate:"omitempty,datetime=2006-01-02"`
	HotelName    string  `json:"hotel_name"    validate:"omitempty,max=200"`
	HotelCity    string  `json:"hotel_city"    validate:"omitempty,max=100"`
	CheckIn      string  `json:"check_in"      validate:"omitempty,datetime=2006-01-02"`
	CheckOut     string  `json:"check_out"     validate:"omitempty,datetime=2006-01-02"`
	RoomCount    int     `json:"room_count"    validate:"omitempty,gte=1"`
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

func (c *ServiceRequest) ToModel(bookingID, user string) model.Service {
	quantity := c.Quantity
	if quantity < 1 {
		quantity = 1
	}

	svc := model.Service{
		ID:           uuid.NewString(),
		BookingID:    bookingID,
		Type:         c.Type,
		Description:  c.Description,
		Quantity:     quantity,
		UnitCost:     c.UnitCost,
		CostCurrency: c.CostCurrency,
		UnitPrice:    c.UnitPrice,
		InventoryID:  c.InventoryID,
		FlightNumber: c.FlightNumber,
		Origin:       c.Origin,
		FlightDate:   parseDate(c.FlightDate),
		ReturnDate:   parseDate(c.ReturnDate),
		HotelName:    c.HotelName,
		HotelCity:    c.HotelCity,
		CheckIn:      parseDate(c.CheckIn),
		CheckOut:     parseDate(c.CheckOut),
		RoomCount:    c.RoomCount,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	svc.Normalize()

	return svc
}

type PassengerRequest struct {
	Name              string `json:"name"               validate:"required,max=100"`
	PassportNumber    string `json:"passport_number"    validate:"omitempty,max=30"`
	PassportSubmitted bool   `json:"passport_submitted"`
}

func (c *PassengerRequest) ToModel(bookingID, user string) model.Passenger {
	return model.Passenger{
		ID:                uuid.NewString(),
		BookingID:         bookingID,
		Name:              c.Name,
		PassportNumber:    c.PassportNumber,
		PassportSubmitted: c.PassportSubmitted,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type InitialPaymentRequest struct {
	Amount     float64 `json:"amount"      validate:"required,gt=0"`
	Currency   string  `json:"currency"    validate:"omitempty,len=3,uppercase"`
	TreasuryID string  `json:"treasury_id" validate:"required,uuid"`
	Notes      string  `json:"notes"       validate:"omitempty,max=500"`
}

type CreateBookingRequest struct {
	FileNumber     string                 `json:"file_number"     validate:"omitempty,max=50"`
	ClientID       string                 `json:"client_id"       validate:"omitempty,uuid"`
	ClientName     string                 `json:"client_name"     validate:"required,max=100"`
	ClientPhone    string                 `json:"client_phone"    validate:"omitempty,max=20"`
	TravelDate     string                 `json:"travel_date"     validate:"required,datetime=2006-01-02"`
	Destination    string                 `json:"destination"     validate:"omitempty,max=100"`
	Type           string                 `json:"type"            validate:"required,max=50"`
	Status         string                 `json:"status"          validate:"omitempty,oneof=pending confirmed cancelled voided"`
	Amount         float64                `json:"amount"          validate:"required,gte=0"`
	Currency       string                 `json:"currency"        validate:"omitempty,len=3,uppercase"`
	Notes          string                 `json:"notes"           validate:"omitempty,max=1000"`
	Services       []ServiceRequest       `json:"services"        validate:"required,min=1,dive"`
	Passengers     []PassengerRequest     `json:"passengers"      validate:"omitempty,dive"`
	InitialPayment *InitialPaymentRequest `json:"initial_payment" validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	travelDate, err := timezone.Parse(dateLayout, c.TravelDate)
	if err != nil {
		return model.Booking{}, err
	}

	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:          uuid.NewString(),
		FileNumber:  c.FileNumber,
		ClientID:    c.ClientID,
		ClientName:  c.ClientName,
		ClientPhone: c.ClientPhone,
		TravelDate:  travelDate,
		Destination: c.Destination,
		Type:        c.Type,
		Status:      status,
		Notes:       c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	FileNumber  string           `db:"file_number"  json:"file_number"  validate:"omitempty,max=50"`
	ClientName  string           `db:"client_name"  json:"client_name"  validate:"omitempty,max=100"`
	ClientPhone string           `db:"client_phone" json:"client_phone" validate:"omitempty,max=20"`
	TravelDate  string           `json:"travel_date"  validate:"omitempty,datetime=2006-01-02"`
	Destination string           `db:"destination"  json:"destination"  validate:"omitempty,max=100"`
	Type        string           `db:"type"         json:"type"         validate:"omitempty,max=50"`
	Status      string           `db:"status"       json:"status"       validate:"omitempty,oneof=pending confirmed cancelled voided"`
	Amount      *float64         `json:"amount"       validate:"omitempty,gte=0"`
	Currency    string           `json:"currency"     validate:"omitempty,len=3,uppercase"`
	Notes       string           `db:"notes"        json:"notes"        validate:"omitempty,max=1000"`
	Services    []ServiceRequest `json:"services"     validate:"omitempty,dive"`
}

type AddPaymentRequest struct {
	Amount     float64 `json:"amount"       validate:"required,gt=0"`
	Currency   string  `json:"currency"     validate:"omitempty,len=3,uppercase"`
	Date       string  `json:"date"         validate:"omitempty,datetime=2006-01-02"`
	TreasuryID string  `json:"treasury_id"  validate:"required,uuid"`
	Notes      string  `json:"notes"        validate:"omitempty,max=500"`
}

type ServiceResponse struct {
	ID           string  `json:"id"`
	Type         string  `json:"type"`
	Description  string  `json:"description,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitCost     float64 `json:"unit_cost"`
	CostCurrency string  `json:"cost_currency,omitempty"`
	UnitPrice    float64 `json:"unit_price"`
	InventoryID  string  `json:"inventory_id,omitempty"`
	FlightNumber string  `json:"flight_number,omitempty"`
	Origin       string  `json:"origin,omitempty"`
	FlightDate   string  `json:"flight_date,omitempty"`
	ReturnDate   string  `json:"return_date,omitempty"`
	HotelName    string  `json:"hotel_name,omitempty"`
	HotelCity    string  `json:"hotel_city,omitempty"`
	CheckIn      string  `json:"check_in,omitempty"`
	CheckOut     string  `json:"check_out,omitempty"`
	RoomCount    int     `json:"room_count,omitempty"`
}

func formatDate(value *time.Time) string {
	if value == nil {
		return constant.Empty
	}

	return value.Format(dateLayout)
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Type = model.Type
	r.Description = model.Description
	r.Quantity = model.Quantity
	r.UnitCost = model.UnitCost
	r.CostCurrency = model.CostCurrency
	r.UnitPrice = model.UnitPrice
	r.InventoryID = model.InventoryID
	r.FlightNumber = model.FlightNumber
	r.Origin = model.Origin
	r.FlightDate = formatDate(model.FlightDate)
	r.ReturnDate = formatDate(model.ReturnDate)
	r.HotelName = model.HotelName
	r.HotelCity = model.HotelCity
	r.CheckIn = formatDate(model.CheckIn)
	r.CheckOut = formatDate(model.CheckOut)
	r.RoomCount = model.RoomCount
}

type PassengerResponse struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	PassportNumber    string `json:"passport_number,omitempty"`
	PassportSubmitted bool   `json:"passport_submitted"`
}

func (r *PassengerResponse) FromModel(model model.Passenger) {
	r.ID = model.ID
	r.Name = model.Name
	r.PassportNumber = model.PassportNumber
	r.PassportSubmitted = model.PassportSubmitted
}

type PaymentResponse struct {
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	ExchangeRate float64 `json:"exchange_rate"`
	FinalAmount  float64 `json:"final_amount"`
	PaymentDate  string  `json:"payment_date"`
	TreasuryID   string  `json:"treasury_id"`
	Notes        string  `json:"notes,omitempty"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.Amount = model.Amount
	r.Currency = model.Currency
	r.ExchangeRate = model.ExchangeRate
	r.FinalAmount = model.FinalAmount
	r.PaymentDate = model.PaymentDate.Format(dateLayout)
	r.TreasuryID = model.TreasuryID
	r.Notes = model.Notes
}

type BookingResponse struct {
	ID            string              `json:"id"`
	FileNumber    string              `json:"file_number,omitempty"`
	ClientID      string              `json:"client_id,omitempty"`
	ClientName    string              `json:"client_name"`
	ClientPhone   string              `json:"client_phone,omitempty"`
	TravelDate    string              `json:"travel_date"`
	Destination   string              `json:"destination,omitempty"`
	Type          string              `json:"type"`
	Status        string              `json:"status"`
	PaymentStatus string              `json:"payment_status"`
	Amount        float64             `json:"amount"`
	Cost          float64             `json:"cost"`
	Profit        float64             `json:"profit"`
	PaidAmount    float64             `json:"paid_amount"`
	Notes         string              `json:"notes,omitempty"`
	Services      []ServiceResponse   `json:"services,omitempty"`
	Passengers    []PassengerResponse `json:"passengers,omitempty"`
	Payments      []PaymentResponse   `json:"payments,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.FileNumber = model.FileNumber
	r.ClientID = model.ClientID
	r.ClientName = model.ClientName
	r.ClientPhone = model.ClientPhone
	r.TravelDate = model.TravelDate.Format(dateLayout)
	r.Destination = model.Destination
	r.Type = model.Type
	r.Status = model.Status
	r.PaymentStatus = model.PaymentStatus
	r.Amount = model.Amount
	r.Cost = model.Cost
	r.Profit = model.Profit
	r.PaidAmount = model.PaidAmount
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingResponse) FromModels(booking model.Booking, services []model.Service, passengers []model.Passenger, payments []model.Payment) {
	r.FromModel(booking)

	r.Services = make([]ServiceResponse, len(services))
	for i, svc := range services {
		r.Services[i].FromModel(svc)
	}

	r.Passengers = make([]PassengerResponse, len(passengers))
	for i, passenger := range passengers {
		r.Passengers[i].FromModel(passenger)
	}

	r.Payments = make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		r.Payments[i].FromModel(payment)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type RepriceResult struct {
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}
