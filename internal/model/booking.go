package model

// Booking is one confirmed reservation written to the bookings
// collection at payment time.  Records are append-only: nothing in the
// application updates or deletes them.  The (Date, CourtID) pair is the
// implicit key used when computing availability; the invariant that no
// two bookings for the same pair share a slot label is enforced only by
// a read-before-write check, not by any constraint in the store.
//
// Fields:
//  ID        – generated UUID, stored as the document id.
//  Date      – calendar day in "YYYY-MM-DD" form.
//  CourtID   – catalog identifier of the booked court.
//  Slots     – sorted, de-duplicated slot labels (e.g. "08:00").
//  Name      – contact name entered at payment.
//  Email     – contact email.
//  Phone     – contact phone number.
//  CreatedAt – creation timestamp in milliseconds since epoch, taken
//              from the synchronized clock.
type Booking struct {
	ID        string   `bson:"_id" json:"id"`
	Date      string   `bson:"date" json:"date"`
	CourtID   string   `bson:"courtId" json:"courtId"`
	Slots     []string `bson:"slots" json:"slots"`
	Name      string   `bson:"name" json:"name"`
	Email     string   `bson:"email" json:"email"`
	Phone     string   `bson:"phone" json:"phone"`
	CreatedAt int64    `bson:"createdAt" json:"createdAt"`
}

// TotalIDR computes the price of the booking against the static
// catalog.  Unknown courts price at zero; the writer rejects those
// before a record is ever created.
func (b *Booking) TotalIDR() int64 {
	c, ok := CourtByID(b.CourtID)
	if !ok {
		return 0
	}
	return c.PricePerHour * int64(len(b.Slots))
}
