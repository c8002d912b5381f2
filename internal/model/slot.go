package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Opening hours of the hall.  Slots are hourly and labelled by their
// start time; the closing hour is exclusive, so the last bookable slot
// of a default day starts at 21:00.
const (
	DefaultOpenHour  = 7
	DefaultCloseHour = 22
)

// BuildSlots generates the hourly slot labels between the open and
// close hours, e.g. "07:00" through "21:00".  Labels are deterministic:
// the same range always yields the same ordered list.  An empty list is
// returned when the range is inverted or degenerate.
func BuildSlots(openHour, closeHour int) []string {
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		return nil
	}
	slots := make([]string, 0, closeHour-openHour)
	for h := openHour; h < closeHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// ValidSlot reports whether label names a slot inside the given opening
// hours.  Only exact "HH:00" labels are accepted; anything else is
// treated as malformed input rather than rounded.
func ValidSlot(label string, openHour, closeHour int) bool {
	h, m, err := parseSlotLabel(label)
	if err != nil {
		return false
	}
	return m == 0 && h >= openHour && h < closeHour
}

// SlotStart anchors a slot label onto a calendar day and returns the
// wall-clock start of that slot in the day's location.  It is used to
// decide whether a slot is already in the past.
func SlotStart(day time.Time, label string) (time.Time, error) {
	h, m, err := parseSlotLabel(label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}

func parseSlotLabel(label string) (hour, minute int, err error) {
	parts := strings.Split(label, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid slot label %q", label)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid slot hour %q", label)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid slot minute %q", label)
	}
	return hour, minute, nil
}
