// Package service holds the booking domain logic: the availability
// computation that drives the slot grid and the double-booking guard
// that runs at payment time.  Handlers stay thin and map the sentinel
// errors defined here and in the repository package onto HTTP statuses.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/dafatsq/ShuttleBook/internal/model"
)

// DateLayout is the calendar-day encoding used across the API, the
// store and the original booking pages.
const DateLayout = "2006-01-02"

// ErrUnknownCourt is returned when a court id is not in the catalog.
var ErrUnknownCourt = errors.New("unknown court")

// ErrInvalidDate is returned when a date parameter is not a valid
// YYYY-MM-DD calendar day.
var ErrInvalidDate = errors.New("invalid date")

// BookingStore is the slice of the bookings collection the services
// depend on.  *repository.BookingRepo satisfies it; tests substitute
// in-memory fakes.
type BookingStore interface {
	TakenSlots(ctx context.Context, date, courtID string) (map[string]struct{}, error)
	Insert(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
}

// TrustedClock yields the drift-corrected current time.  *clock.Syncer
// satisfies it.
type TrustedClock interface {
	Now() time.Time
}

// SlotState is the availability of one slot on a given day for a given
// court, as shown on the selection grid.
//
//  Taken     – the label appears in a recorded booking for the pair.
//  Past      – the date is today by the trusted clock and the slot's
//              start is not after trusted now.  Future dates are never
//              past.
//  Available – neither taken nor past.
type SlotState struct {
	Label     string `json:"slot"`
	Taken     bool   `json:"taken"`
	Past      bool   `json:"past"`
	Available bool   `json:"available"`
}

// AvailabilityService computes taken-slot sets and full day schedules.
// A nil store puts the service in demo mode: reads return a confirmed
// empty set so the selection grid stays usable without a database.
type AvailabilityService struct {
	store     BookingStore
	clock     TrustedClock
	loc       *time.Location
	openHour  int
	closeHour int
}

// NewAvailabilityService wires the availability reader.  loc is the
// timezone the hall operates in; a nil loc falls back to the process
// local zone.  Non-sensible hours fall back to the defaults.
func NewAvailabilityService(store BookingStore, clk TrustedClock, loc *time.Location, openHour, closeHour int) *AvailabilityService {
	if loc == nil {
		loc = time.Local
	}
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		openHour = model.DefaultOpenHour
		closeHour = model.DefaultCloseHour
	}
	return &AvailabilityService{store: store, clock: clk, loc: loc, openHour: openHour, closeHour: closeHour}
}

// Taken returns the set of booked slot labels for the date and court.
// The read is pure and idempotent: without intervening writes, repeated
// calls return the same set.  In demo mode the result is a confirmed
// empty set.  A store failure is returned as an error so the caller
// treats availability as unknown instead of assuming slots are free.
func (s *AvailabilityService) Taken(ctx context.Context, date, courtID string) (map[string]struct{}, error) {
	if _, ok := model.CourtByID(courtID); !ok {
		return nil, ErrUnknownCourt
	}
	if _, err := time.ParseInLocation(DateLayout, date, s.loc); err != nil {
		return nil, ErrInvalidDate
	}
	if s.store == nil {
		return map[string]struct{}{}, nil
	}
	return s.store.TakenSlots(ctx, date, courtID)
}

// DaySchedule returns the state of every slot on the given day for the
// given court.  A slot is unavailable when it is already booked, or
// when the day is "today" by the trusted clock and the slot's start
// time has been reached.  Slots on strictly future dates are never
// disabled by the past-time rule.
func (s *AvailabilityService) DaySchedule(ctx context.Context, date, courtID string) ([]SlotState, error) {
	day, err := time.ParseInLocation(DateLayout, date, s.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	taken, err := s.Taken(ctx, date, courtID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().In(s.loc)
	isToday := now.Year() == day.Year() && now.YearDay() == day.YearDay()

	labels := model.BuildSlots(s.openHour, s.closeHour)
	states := make([]SlotState, 0, len(labels))
	for _, label := range labels {
		_, isTaken := taken[label]
		past := false
		if isToday {
			start, err := model.SlotStart(day, label)
			if err != nil {
				return nil, err
			}
			past = !start.After(now)
		}
		states = append(states, SlotState{
			Label:     label,
			Taken:     isTaken,
			Past:      past,
			Available: !isTaken && !past,
		})
	}
	return states, nil
}

// OpeningHours exposes the configured slot range for pricing and
// validation by the booking writer.
func (s *AvailabilityService) OpeningHours() (openHour, closeHour int) {
	return s.openHour, s.closeHour
}
