// Package queue publishes and consumes booking events over the message
// broker.  Publication is best-effort: a broker outage never fails a
// booking that has already been written to the store.
package queue

// BookingConfirmedEvent is published after a booking record has been
// durably written.  It carries enough for downstream consumers to
// notify or log without re-reading the bookings collection.
type BookingConfirmedEvent struct {
	BookingID   string   `json:"booking_id"`
	Date        string   `json:"date"`
	CourtID     string   `json:"court_id"`
	CourtName   string   `json:"court_name"`
	Slots       []string `json:"slots"`
	TotalIDR    int64    `json:"total_idr"`
	Name        string   `json:"name"`
	ConfirmedAt string   `json:"confirmed_at"`
}
