package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"

	"github.com/dafatsq/ShuttleBook/internal/service"
)

// AvailabilityHandler serves the taken-slot set and the full day
// schedule for the selection grid.  Each request performs a fresh read
// keyed by its own date/court parameters, so a response can never be
// applied to a selection it was not computed for.
type AvailabilityHandler struct {
	Avail *service.AvailabilityService
}

// NewAvailabilityHandler constructs the handler.  The service must be
// non-nil.
func NewAvailabilityHandler(avail *service.AvailabilityService) *AvailabilityHandler {
	if avail == nil {
		panic("nil availability service passed to NewAvailabilityHandler")
	}
	return &AvailabilityHandler{Avail: avail}
}

// GetTaken handles GET /api/availability?date=YYYY-MM-DD&courtId=x.
// It returns {"taken": [...]} with the labels sorted for deterministic
// output.  A confirmed-empty store yields an empty array; a failed read
// yields 503 with kind "availability_unknown" so callers never mistake
// an outage for a free day.
func (h *AvailabilityHandler) GetTaken(c echo.Context) error {
	date := c.QueryParam("date")
	courtID := c.QueryParam("courtId")
	if date == "" || courtID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date and courtId are required"})
	}
	taken, err := h.Avail.Taken(c.Request().Context(), date, courtID)
	if err != nil {
		return availabilityError(c, err)
	}
	labels := make([]string, 0, len(taken))
	for s := range taken {
		labels = append(labels, s)
	}
	sort.Strings(labels)
	return c.JSON(http.StatusOK, echo.Map{"taken": labels})
}

// GetDaySchedule handles GET /api/slots?date=YYYY-MM-DD&courtId=x.
// It returns every slot of the day with taken/past/available flags,
// computed server-side against the synchronized clock.
func (h *AvailabilityHandler) GetDaySchedule(c echo.Context) error {
	date := c.QueryParam("date")
	courtID := c.QueryParam("courtId")
	if date == "" || courtID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date and courtId are required"})
	}
	states, err := h.Avail.DaySchedule(c.Request().Context(), date, courtID)
	if err != nil {
		return availabilityError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"date":    date,
		"courtId": courtID,
		"slots":   states,
	})
}

// availabilityError maps service failures onto HTTP responses.  Bad
// input is the caller's fault; everything else means availability is
// unknown and must not be treated as "all free".
func availabilityError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrUnknownCourt):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown court"})
	case errors.Is(err, service.ErrInvalidDate):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
	default:
		c.Logger().Errorf("availability read failed: %v", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error":   "availability_unknown",
			"message": "could not read current bookings; please retry",
		})
	}
}
