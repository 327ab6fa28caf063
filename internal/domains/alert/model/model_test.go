package model_test

import (
	"fmt"
	"testing"
	"time"
	"tripdesk/internal/domains/alert/model"
	bookingModel "tripdesk/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func booking(id, status string, travelInDays int, amount, paid float64) bookingModel.Booking {
	return bookingModel.Booking{
		ID:         id,
		FileNumber: "TF-" + id,
		ClientName: "Client " + id,
		Status:     status,
		TravelDate: now.AddDate(0, 0, travelInDays),
		Amount:     amount,
		PaidAmount: paid,
	}
}

func TestGenerate_UrgentUnpaidDeparture(t *testing.T) {
	files := []model.File{
		{Booking: booking("b1", bookingModel.StatusConfirmed, 2, 1000, 400)},
	}

	alerts := model.Generate(files, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, model.SeverityCritical, alerts[0].Severity)
	assert.Equal(t, "b1", alerts[0].BookingID)
	assert.Contains(t, alerts[0].Message, "600.00")
}

func TestGenerate_UrgentTakesPrecedenceOverDebt(t *testing.T) {
	// A booking inside the urgent window must produce one critical alert,
	// not a critical plus a general debt warning.
	files := []model.File{
		{Booking: booking("b1", bookingModel.StatusConfirmed, 1, 500, 0)},
	}

	alerts := model.Generate(files, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, model.SeverityCritical, alerts[0].Severity)
}

func TestGenerate_GeneralDebtWarning(t *testing.T) {
	files := []model.File{
		{Booking: booking("b1", bookingModel.StatusPending, 30, 800, 100)},
	}

	alerts := model.Generate(files, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, model.SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "700.00")
}

func TestGenerate_SkipsInactiveAndPastBookings(t *testing.T) {
	files := []model.File{
		{Booking: booking("cancelled", bookingModel.StatusCancelled, 10, 500, 0)},
		{Booking: booking("voided", bookingModel.StatusVoided, 10, 500, 0)},
		{Booking: booking("departed", bookingModel.StatusConfirmed, -3, 500, 0)},
	}

	assert.Empty(t, model.Generate(files, now))
}

func TestGenerate_PaidWithinEpsilonIsQuiet(t *testing.T) {
	files := []model.File{
		{Booking: booking("b1", bookingModel.StatusConfirmed, 30, 500, 499.995)},
	}

	assert.Empty(t, model.Generate(files, now))
}

func TestGenerate_MissingPassports(t *testing.T) {
	b := booking("b1", bookingModel.StatusConfirmed, 5, 500, 500)

	files := []model.File{
		{
			Booking: b,
			Passengers: []bookingModel.Passenger{
				{BookingID: b.ID, Name: "A", PassportSubmitted: true},
				{BookingID: b.ID, Name: "B", PassportSubmitted: false},
				{BookingID: b.ID, Name: "C", PassportSubmitted: false},
			},
		},
	}

	alerts := model.Generate(files, now)

	require.Len(t, alerts, 1)
	assert.Equal(t, model.SeverityWarning, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "2 passenger(s)")
}

func TestGenerate_DepartureTomorrowInfo(t *testing.T) {
	b := booking("b1", bookingModel.StatusConfirmed, 20, 500, 500)
	tomorrow := now.AddDate(0, 0, 1)
	checkIn := tomorrow.Add(14 * time.Hour)

	files := []model.File{
		{
			Booking: b,
			Services: []bookingModel.Service{
				{BookingID: b.ID, Type: bookingModel.TypeFlight, FlightNumber: "RJ112", FlightDate: &tomorrow},
				{BookingID: b.ID, Type: bookingModel.TypeHotel, HotelName: "Dar Al Taqwa", CheckIn: &checkIn},
			},
		},
	}

	alerts := model.Generate(files, now)

	require.Len(t, alerts, 2)
	assert.Equal(t, model.SeverityInfo, alerts[0].Severity)
	assert.Contains(t, alerts[0].Message, "RJ112")
	assert.Contains(t, alerts[1].Message, "Dar Al Taqwa")
}

func TestGenerate_PendingBookingGetsNoScheduleAlerts(t *testing.T) {
	b := booking("b1", bookingModel.StatusPending, 20, 500, 500)
	tomorrow := now.AddDate(0, 0, 1)

	files := []model.File{
		{
			Booking: b,
			Services: []bookingModel.Service{
				{BookingID: b.ID, Type: bookingModel.TypeFlight, FlightNumber: "RJ112", FlightDate: &tomorrow},
			},
		},
	}

	assert.Empty(t, model.Generate(files, now))
}

func TestGenerate_SortedBySeverityAndCapped(t *testing.T) {
	files := []model.File{}

	// Info alerts first in generation order to prove the sort reorders them.
	tomorrow := now.AddDate(0, 0, 1)
	for i := 0; i < 10; i++ {
		b := booking(fmt.Sprintf("info-%d", i), bookingModel.StatusConfirmed, 20, 100, 100)
		files = append(files, model.File{
			Booking: b,
			Services: []bookingModel.Service{
				{BookingID: b.ID, Type: bookingModel.TypeFlight, FlightNumber: "RJ1", FlightDate: &tomorrow},
			},
		})
	}

	for i := 0; i < 10; i++ {
		files = append(files, model.File{
			Booking: booking(fmt.Sprintf("warn-%d", i), bookingModel.StatusPending, 30, 500, 0),
		})
	}

	for i := 0; i < 10; i++ {
		files = append(files, model.File{
			Booking: booking(fmt.Sprintf("crit-%d", i), bookingModel.StatusConfirmed, 1, 500, 0),
		})
	}

	alerts := model.Generate(files, now)

	require.Len(t, alerts, model.MaxAlerts)

	for i := 0; i < 10; i++ {
		assert.Equal(t, model.SeverityCritical, alerts[i].Severity)
	}

	for i := 10; i < 20; i++ {
		assert.Equal(t, model.SeverityWarning, alerts[i].Severity)
	}

	// Stable sort: ties keep generation order.
	assert.Equal(t, "crit-0", alerts[0].BookingID)
	assert.Equal(t, "warn-0", alerts[10].BookingID)
}
