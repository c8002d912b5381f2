package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafatsq/ShuttleBook/internal/model"
	"github.com/dafatsq/ShuttleBook/internal/repository"
	"github.com/dafatsq/ShuttleBook/internal/service"
)

// memStore is a minimal in-memory BookingStore for handler tests.
type memStore struct {
	bookings []*model.Booking
	readErr  error
}

func (m *memStore) TakenSlots(ctx context.Context, date, courtID string) (map[string]struct{}, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	taken := make(map[string]struct{})
	for _, b := range m.bookings {
		if b.Date == date && b.CourtID == courtID {
			for _, s := range b.Slots {
				taken[s] = struct{}{}
			}
		}
	}
	return taken, nil
}

func (m *memStore) Insert(ctx context.Context, b *model.Booking) error {
	cp := *b
	m.bookings = append(m.bookings, &cp)
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, repository.ErrBookingNotFound
}

type frozenClock struct{ now time.Time }

func (f frozenClock) Now() time.Time { return f.now }

func newAvailHandler(t *testing.T, store service.BookingStore, now time.Time) *AvailabilityHandler {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	return NewAvailabilityHandler(service.NewAvailabilityService(store, frozenClock{now}, loc, 7, 22))
}

func doGET(e *echo.Echo, target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}

func TestGetTakenRequiresParams(t *testing.T) {
	e := echo.New()
	h := newAvailHandler(t, &memStore{}, time.Now())

	rec := doGET(e, "/api/availability?date=2026-09-15", h.GetTaken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doGET(e, "/api/availability?courtId=court-a", h.GetTaken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTakenReturnsSortedLabels(t *testing.T) {
	e := echo.New()
	store := &memStore{bookings: []*model.Booking{
		{Date: "2026-09-15", CourtID: "court-a", Slots: []string{"11:00", "08:00"}},
		{Date: "2026-09-15", CourtID: "court-a", Slots: []string{"09:00"}},
	}}
	h := newAvailHandler(t, store, time.Now())

	rec := doGET(e, "/api/availability?date=2026-09-15&courtId=court-a", h.GetTaken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Taken []string `json:"taken"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"08:00", "09:00", "11:00"}, body.Taken)
}

func TestGetTakenStoreErrorIsNotEmpty(t *testing.T) {
	e := echo.New()
	h := newAvailHandler(t, &memStore{readErr: assert.AnError}, time.Now())

	rec := doGET(e, "/api/availability?date=2026-09-15&courtId=court-a", h.GetTaken)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "availability_unknown")
}

func TestGetTakenBadCourt(t *testing.T) {
	e := echo.New()
	h := newAvailHandler(t, &memStore{}, time.Now())

	rec := doGET(e, "/api/availability?date=2026-09-15&courtId=court-z", h.GetTaken)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDaySchedule(t *testing.T) {
	e := echo.New()
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	now := time.Date(2026, 9, 15, 9, 30, 0, 0, loc)
	store := &memStore{bookings: []*model.Booking{
		{Date: "2026-09-15", CourtID: "court-a", Slots: []string{"11:00"}},
	}}
	h := newAvailHandler(t, store, now)

	rec := doGET(e, "/api/slots?date=2026-09-15&courtId=court-a", h.GetDaySchedule)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Slots []service.SlotState `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Slots, 15)

	m := make(map[string]service.SlotState)
	for _, s := range body.Slots {
		m[s.Label] = s
	}
	assert.True(t, m["08:00"].Past)
	assert.True(t, m["11:00"].Taken)
	assert.True(t, m["12:00"].Available)
}
