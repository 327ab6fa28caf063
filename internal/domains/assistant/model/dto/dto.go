package dto

import "time"

type AskRequest struct {
	Question string `json:"question" validate:"required,max=2000"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// FlightInfo is a best-effort enrichment; any field may be empty.
type FlightInfo struct {
	Airline       string `json:"airline,omitempty"`
	FlightNumber  string `json:"flightNumber,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
	Found         bool   `json:"found"`
}

// HotelInfo is a best-effort enrichment; any field may be empty.
type HotelInfo struct {
	Name    string `json:"name,omitempty"`
	City    string `json:"city,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Found   bool   `json:"found"`
}

// Snapshot is the JSON context handed to the model for financial Q&A.
type Snapshot struct {
	Date            time.Time      `json:"date"`
	BaseCurrency    string         `json:"baseCurrency"`
	TotalBookings   int            `json:"totalBookings"`
	RecentBookings  []BookingBrief `json:"recentBookings"`
	RecentEntries   []EntryBrief   `json:"recentTransactions"`
	TreasuryBalance float64        `json:"treasuryBalanceTotal"`
}

type BookingBrief struct {
	FileNumber    string  `json:"fileNumber"`
	ClientName    string  `json:"clientName"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Profit        float64 `json:"profit"`
	PaymentStatus string  `json:"paymentStatus"`
}

type EntryBrief struct {
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
