package finance

import (
	"math"
	"time"
)

// CostLine is the priced slice of a booking service the aggregator needs.
type CostLine struct {
	UnitCost float64
	Quantity int
	Currency string
}

// LineCost converts one line's cost to the base currency. Unknown cost
// currencies fall back to the base rate, matching how entries recorded before
// a rate existed are still counted.
func LineCost(line CostLine, rates Rates) float64 {
	rate := rates.RateOrBase(line.Currency)

	return line.UnitCost * float64(line.Quantity) / rate
}

// TotalCost aggregates the base-currency cost of all service lines.
// Summation order does not matter beyond floating point tolerance.
func TotalCost(lines []CostLine, rates Rates) float64 {
	total := 0.0
	for _, line := range lines {
		total += LineCost(line, rates)
	}

	return total
}

// Nights returns the chargeable hotel nights between check-in and check-out,
// clamped to a minimum of 1 so same-day or inverted input never produces a
// zero or negative stay.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		return 1
	}

	return nights
}

// HotelQuantity is the billable hotel quantity: rooms times nights.
func HotelQuantity(roomCount int, checkIn, checkOut time.Time) int {
	if roomCount < 1 {
		roomCount = 1
	}

	return roomCount * Nights(checkIn, checkOut)
}

// PushReturnDate keeps a flight's return leg from preceding its outbound leg.
// It returns the corrected return date.
func PushReturnDate(outbound, ret time.Time) time.Time {
	if ret.Before(outbound) {
		return outbound
	}

	return ret
}
