package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dafatsq/ShuttleBook/internal/model"
	"github.com/dafatsq/ShuttleBook/internal/repository"
	"github.com/dafatsq/ShuttleBook/internal/service"
)

// BookingHandler finalizes the mock payment flow: it accepts the
// candidate slots plus contact details, lets the service re-check
// availability and append the record, and maps the sentinel errors to
// HTTP statuses.
type BookingHandler struct {
	Bookings *service.BookingService
}

// NewBookingHandler constructs the handler.  The service must be
// non-nil.
func NewBookingHandler(b *service.BookingService) *BookingHandler {
	if b == nil {
		panic("nil booking service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: b}
}

// bookingView decorates the stored record with the priced summary the
// confirmation page displays.
type bookingView struct {
	model.Booking
	CourtName    string `json:"courtName"`
	SlotCount    int    `json:"slotCount"`
	TotalIDR     int64  `json:"totalIdr"`
	TotalDisplay string `json:"totalDisplay"`
}

func viewOf(b *model.Booking) bookingView {
	name := b.CourtID
	if c, ok := model.CourtByID(b.CourtID); ok {
		name = c.Name
	}
	total := b.TotalIDR()
	return bookingView{
		Booking:      *b,
		CourtName:    name,
		SlotCount:    len(b.Slots),
		TotalIDR:     total,
		TotalDisplay: model.FormatIDR(total),
	}
}

// Create handles POST /api/bookings.  The body carries date, courtId,
// slots and contact fields.  Responses:
//   201 – booked; body is the stored record plus pricing.
//   400 – malformed body, validation failure, unknown court or bad date.
//   409 – at least one candidate slot was just booked; the client must
//         go back and reselect (conflicting slots are not identified).
//   503 – store unconfigured, or availability could not be re-checked.
func (h *BookingHandler) Create(c echo.Context) error {
	var req service.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	b, err := h.Bookings.Create(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "please complete name, email, phone and slot selection correctly"})
		case errors.Is(err, service.ErrUnknownCourt):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown court"})
		case errors.Is(err, service.ErrInvalidDate):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "one or more selected time slots were just booked by someone else; please reselect"})
		case errors.Is(err, repository.ErrStoreUnavailable):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking store is not configured; this is a demo-only deployment"})
		default:
			c.Logger().Errorf("create booking failed: %v", err)
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "could not confirm the booking; please retry"})
		}
	}
	return c.JSON(http.StatusCreated, viewOf(b))
}

// Get handles GET /api/bookings/:id and returns the confirmation data
// for a stored booking.
func (h *BookingHandler) Get(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking id is required"})
	}
	b, err := h.Bookings.Get(c.Request().Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrBookingNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		case errors.Is(err, repository.ErrStoreUnavailable):
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking store is not configured"})
		default:
			c.Logger().Errorf("get booking failed: %v", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}
	return c.JSON(http.StatusOK, viewOf(b))
}
