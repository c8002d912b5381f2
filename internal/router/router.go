package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/dafatsq/ShuttleBook/internal/handler" // handlers implementing the booking flow
)

// RegisterRoutes wires every endpoint of the booking API onto the
// provided Echo instance.  All routes are public: the flow is anonymous
// end to end, exactly like the booking pages it replaces.
//
// catalogCache is applied to the courts route only.  The catalog is
// compiled into the binary, so serving it from Redis is always safe;
// availability and slot responses are never cached because a stale
// taken-set would show just-booked slots as free.
func RegisterRoutes(e *echo.Echo, avail *handler.AvailabilityHandler, bookings *handler.BookingHandler, catalogCache echo.MiddlewareFunc) {
	// Liveness probe for load balancers and monitors.
	e.GET("/healthz", handler.Health)

	// Trusted time endpoint used by clients to compute clock drift.
	e.GET("/api/time", handler.ServerTime)

	// Static court catalog with pricing.
	if catalogCache != nil {
		e.GET("/api/courts", handler.ListCourts, catalogCache)
	} else {
		e.GET("/api/courts", handler.ListCourts)
	}

	// Availability reader: taken-slot set and the full day schedule
	// with past/taken/available flags per slot.
	e.GET("/api/availability", avail.GetTaken)
	e.GET("/api/slots", avail.GetDaySchedule)

	// Booking writer (mock payment confirmation) and the confirmation
	// lookup used by the success view.
	e.POST("/api/bookings", bookings.Create)
	e.GET("/api/bookings/:id", bookings.Get)
}
