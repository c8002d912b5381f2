package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSlotsDefaultDay(t *testing.T) {
	slots := BuildSlots(DefaultOpenHour, DefaultCloseHour)
	require.Len(t, slots, 15)
	assert.Equal(t, "07:00", slots[0])
	assert.Equal(t, "21:00", slots[len(slots)-1])
}

func TestBuildSlotsDeterministic(t *testing.T) {
	assert.Equal(t, BuildSlots(7, 22), BuildSlots(7, 22))
}

func TestBuildSlotsDegenerateRanges(t *testing.T) {
	assert.Nil(t, BuildSlots(10, 10))
	assert.Nil(t, BuildSlots(12, 9))
	assert.Nil(t, BuildSlots(-1, 5))
	assert.Nil(t, BuildSlots(5, 25))
}

func TestValidSlot(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"07:00", true},
		{"21:00", true},
		{"22:00", false}, // closing hour is exclusive
		{"06:00", false}, // before opening
		{"08:30", false}, // only hour-aligned slots exist
		{"8:00", true},   // single-digit hour still parses
		{"abc", false},
		{"", false},
		{"08:00:00", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidSlot(tc.label, DefaultOpenHour, DefaultCloseHour), "label %q", tc.label)
	}
}

func TestSlotStart(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	day := time.Date(2026, 9, 14, 0, 0, 0, 0, loc)

	start, err := SlotStart(day, "09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 0, 0, 0, loc), start)

	_, err = SlotStart(day, "not-a-slot")
	assert.Error(t, err)
}
