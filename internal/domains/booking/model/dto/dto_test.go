package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/domains/booking/model"
	"tripdesk/internal/domains/booking/model/dto"
	"tripdesk/shared/validator"
)

// A walk-in file has no client record and no assigned number yet; both fields
// are optional all the way down to the row.
func TestCreateBookingRequest_ClientAndFileNumberOptional(t *testing.T) {
	body := `{
		"client_name": "Walk-in Client",
		"travel_date": "2025-09-10",
		"type": "umrah package with extended hotel stay",
		"amount": 1200,
		"services": [
			{"type": "hotel", "quantity": 4, "unit_cost": 80, "unit_price": 100}
		]
	}`

	var req dto.CreateBookingRequest

	require.NoError(t, validator.Validate(strings.NewReader(body), &req))

	booking, err := req.ToModel("user-1")
	require.NoError(t, err)

	assert.Empty(t, booking.FileNumber)
	assert.Empty(t, booking.ClientID)
	assert.Equal(t, "Walk-in Client", booking.ClientName)
	assert.Equal(t, model.StatusPending, booking.Status)
}
