// Package repository accesses the bookings collection.  This file
// defines sentinel errors shared with the service and handler layers so
// failures can be mapped to HTTP responses with errors.Is instead of
// string matching.
package repository

import "errors"

// ErrConflict is returned when a candidate booking intersects slots
// already recorded for the same date and court.  The rejection is
// all-or-nothing; the conflicting labels are not reported back.
// Handlers translate this into an HTTP 409 response.
var ErrConflict = errors.New("slot conflict")

// ErrStoreUnavailable is returned when no booking store is configured
// (demo mode) or a write is attempted against one.  Handlers translate
// this into an HTTP 503 response.
var ErrStoreUnavailable = errors.New("booking store unavailable")

// ErrBookingNotFound is returned when a booking id does not resolve to
// a stored record.  Handlers translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")
