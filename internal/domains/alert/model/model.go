package model

import (
	"fmt"
	"sort"
	"time"
	bookingModel "tripdesk/internal/domains/booking/model"
	"tripdesk/internal/finance"
)

const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"

	// MaxAlerts caps the output after sorting. Generation is never limited,
	// only the returned slice is truncated.
	MaxAlerts = 20
)

// Alert is a derived, non-persisted notification. The full set is recomputed
// from the booking list on every request.
type Alert struct {
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	BookingID  string `json:"bookingId"`
	FileNumber string `json:"fileNumber,omitempty"`
	ClientName string `json:"clientName,omitempty"`
}

// File bundles a booking with the children the classification rules read.
type File struct {
	Booking    bookingModel.Booking
	Services   []bookingModel.Service
	Passengers []bookingModel.Passenger
}

func severityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Generate classifies every booking against the current date and returns
// alerts sorted critical-first. All date comparisons are date-only. The sort
// is stable so ties keep generation order, and the result is truncated to
// MaxAlerts.
func Generate(files []File, now time.Time) []Alert {
	today := dateOnly(now)
	urgentCutoff := today.AddDate(0, 0, 3)
	passportCutoff := today.AddDate(0, 0, 7)
	tomorrow := today.AddDate(0, 0, 1)

	alerts := []Alert{}

	push := func(severity, message string, booking bookingModel.Booking) {
		alerts = append(alerts, Alert{
			Severity:   severity,
			Message:    message,
			BookingID:  booking.ID,
			FileNumber: booking.FileNumber,
			ClientName: booking.ClientName,
		})
	}

	for _, file := range files {
		booking := file.Booking
		travel := dateOnly(booking.TravelDate)
		remaining := booking.Amount - booking.PaidAmount
		confirmed := booking.Status == bookingModel.StatusConfirmed

		urgent := confirmed &&
			remaining > finance.PaymentEpsilon &&
			!travel.Before(today) && !travel.After(urgentCutoff)

		switch {
		case urgent:
			push(SeverityCritical,
				fmt.Sprintf("Travel on %s with %.2f unpaid", travel.Format("2006-01-02"), remaining),
				booking)
		case remaining > finance.PaymentEpsilon &&
			!bookingModel.Inactive(booking.Status) &&
			!travel.Before(today):
			push(SeverityWarning,
				fmt.Sprintf("Outstanding balance of %.2f", remaining),
				booking)
		}

		if confirmed && !travel.Before(today) && !travel.After(passportCutoff) {
			missing := 0

			for _, passenger := range file.Passengers {
				if !passenger.PassportSubmitted {
					missing++
				}
			}

			if missing > 0 {
				push(SeverityWarning,
					fmt.Sprintf("%d passenger(s) without submitted passports", missing),
					booking)
			}
		}

		if !confirmed {
			continue
		}

		for _, svc := range file.Services {
			if svc.Type == bookingModel.TypeFlight && svc.FlightDate != nil &&
				dateOnly(*svc.FlightDate).Equal(tomorrow) {
				push(SeverityInfo,
					fmt.Sprintf("Flight %s departs tomorrow", svc.FlightNumber),
					booking)
			}

			if svc.Type == bookingModel.TypeHotel && svc.CheckIn != nil &&
				dateOnly(*svc.CheckIn).Equal(tomorrow) {
				push(SeverityInfo,
					fmt.Sprintf("Hotel check-in at %s tomorrow", svc.HotelName),
					booking)
			}
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank(alerts[i].Severity) < severityRank(alerts[j].Severity)
	})

	if len(alerts) > MaxAlerts {
		alerts = alerts[:MaxAlerts]
	}

	return alerts
}
