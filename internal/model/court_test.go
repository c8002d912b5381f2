package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourtByID(t *testing.T) {
	c, ok := CourtByID("court-a")
	require.True(t, ok)
	assert.Equal(t, "Court A", c.Name)
	assert.EqualValues(t, 50000, c.PricePerHour)

	_, ok = CourtByID("court-z")
	assert.False(t, ok)
}

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatIDR(0))
	assert.Equal(t, "Rp 500", FormatIDR(500))
	assert.Equal(t, "Rp 50.000", FormatIDR(50000))
	assert.Equal(t, "Rp 125.000", FormatIDR(125000))
	assert.Equal(t, "Rp 1.250.000", FormatIDR(1250000))
}

func TestBookingTotalIDR(t *testing.T) {
	b := Booking{CourtID: "court-b", Slots: []string{"08:00", "09:00", "10:00"}}
	assert.EqualValues(t, 3*75000, b.TotalIDR())

	unknown := Booking{CourtID: "court-z", Slots: []string{"08:00"}}
	assert.EqualValues(t, 0, unknown.TotalIDR())
}
