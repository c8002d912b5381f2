package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/dafatsq/ShuttleBook/internal/model"
	"github.com/dafatsq/ShuttleBook/internal/queue"
	"github.com/dafatsq/ShuttleBook/internal/repository"
)

// ErrValidation wraps request validation failures so handlers can map
// them to HTTP 400 without inspecting validator internals.
var ErrValidation = errors.New("invalid booking request")

// BookingRequest is the payload of the mock payment confirmation.  The
// same checks that blocked submission client-side in the original flow
// run here before any store access: a real name, a plausible email, a
// phone number of at least six characters and at least one slot.
type BookingRequest struct {
	Date    string   `json:"date" validate:"required"`
	CourtID string   `json:"courtId" validate:"required"`
	Slots   []string `json:"slots" validate:"required,min=1"`
	Name    string   `json:"name" validate:"required,min=2"`
	Email   string   `json:"email" validate:"required,email"`
	Phone   string   `json:"phone" validate:"required,min=6"`
}

// EventPublisher pushes a booking-confirmed event to the broker.  The
// default implementation is queue.PublishBookingConfirmed; tests plug
// in a recorder.
type EventPublisher func(ctx context.Context, ev queue.BookingConfirmedEvent) error

// BookingService validates, re-checks and appends booking records.
//
// The guard is deliberately check-then-act: the store offers no
// conditional write or uniqueness constraint over (date, courtId,
// slot), so two near-simultaneous submissions can both pass the
// re-check and both be recorded.  The window is documented and covered
// by tests rather than papered over.
type BookingService struct {
	store    BookingStore
	clock    TrustedClock
	avail    *AvailabilityService
	validate *validator.Validate
	publish  EventPublisher
}

// NewBookingService wires the booking writer.  store may be nil (demo
// mode); every write is then rejected with ErrStoreUnavailable.
func NewBookingService(store BookingStore, clk TrustedClock, avail *AvailabilityService) *BookingService {
	return &BookingService{
		store:    store,
		clock:    clk,
		avail:    avail,
		validate: validator.New(),
		publish:  queue.PublishBookingConfirmed,
	}
}

// SetPublisher overrides the event publisher.  Passing nil disables
// event publication entirely.
func (s *BookingService) SetPublisher(p EventPublisher) { s.publish = p }

// Create runs the full payment-time flow: validate the request,
// re-read availability for the date/court pair, reject on any
// intersection with the candidate slots, then append one record with a
// trusted-clock timestamp.  On success a booking.confirmed event is
// published best-effort in the background.
func (s *BookingService) Create(ctx context.Context, req BookingRequest) (*model.Booking, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	court, ok := model.CourtByID(req.CourtID)
	if !ok {
		return nil, ErrUnknownCourt
	}
	if _, err := time.Parse(DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}

	openHour, closeHour := s.avail.OpeningHours()
	slots := normalizeSlots(req.Slots)
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: no slots selected", ErrValidation)
	}
	for _, label := range slots {
		if !model.ValidSlot(label, openHour, closeHour) {
			return nil, fmt.Errorf("%w: slot %q outside opening hours", ErrValidation, label)
		}
	}

	if s.store == nil {
		return nil, repository.ErrStoreUnavailable
	}

	// Re-check availability right before the write.  An unknown result
	// (failed read) rejects the booking; optimistically writing against
	// unknown availability would hide real conflicts.
	taken, err := s.store.TakenSlots(ctx, req.Date, req.CourtID)
	if err != nil {
		return nil, fmt.Errorf("availability re-check: %w", err)
	}
	for _, label := range slots {
		if _, clash := taken[label]; clash {
			return nil, repository.ErrConflict
		}
	}

	b := &model.Booking{
		ID:        uuid.NewString(),
		Date:      req.Date,
		CourtID:   req.CourtID,
		Slots:     slots,
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		CreatedAt: s.clock.Now().UnixMilli(),
	}
	if err := s.store.Insert(ctx, b); err != nil {
		return nil, err
	}

	if s.publish != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:   b.ID,
			Date:        b.Date,
			CourtID:     b.CourtID,
			CourtName:   court.Name,
			Slots:       b.Slots,
			TotalIDR:    b.TotalIDR(),
			Name:        b.Name,
			ConfirmedAt: time.UnixMilli(b.CreatedAt).UTC().Format(time.RFC3339),
		}
		// Fire and forget: a broker outage must not fail a paid booking.
		go func() {
			pctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.publish(pctx, ev); err != nil {
				log.Printf("booking: publish confirmed event failed: %v", err)
			}
		}()
	}
	return b, nil
}

// Get loads a stored booking for the confirmation view.
func (s *BookingService) Get(ctx context.Context, id string) (*model.Booking, error) {
	if s.store == nil {
		return nil, repository.ErrStoreUnavailable
	}
	return s.store.GetByID(ctx, id)
}

// normalizeSlots sorts and de-duplicates the candidate labels so the
// stored record holds an ordered set.
func normalizeSlots(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
