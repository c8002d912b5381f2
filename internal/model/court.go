package model

import "fmt"

// Court describes one bookable badminton court.  The catalog is static
// and compiled into the application: courts have no lifecycle, no
// database table and no admin endpoints.  Prices are stored in whole
// Indonesian rupiah per one-hour slot.
//
// Fields:
//  ID           – stable identifier used in URLs and booking records.
//  Name         – human readable display name.
//  PricePerHour – rate in IDR for a single one-hour slot.
type Court struct {
	ID           string `json:"id"`             // e.g. "court-a"
	Name         string `json:"name"`           // e.g. "Court A"
	PricePerHour int64  `json:"price_per_hour"` // IDR per hour
}

// Courts is the fixed catalog of bookable courts.  Order matters only
// for display; lookups go through CourtByID.
var Courts = []Court{
	{ID: "court-a", Name: "Court A", PricePerHour: 50000},
	{ID: "court-b", Name: "Court B", PricePerHour: 75000},
	{ID: "court-c", Name: "Court C", PricePerHour: 100000},
	{ID: "court-d", Name: "Court D", PricePerHour: 125000},
}

// CourtByID returns the court with the given identifier.  The second
// return value reports whether the identifier is part of the catalog.
func CourtByID(id string) (Court, bool) {
	for _, c := range Courts {
		if c.ID == id {
			return c, true
		}
	}
	return Court{}, false
}

// FormatIDR renders a rupiah amount the way the booking pages show it,
// e.g. 50000 -> "Rp 50.000".  Indonesian convention uses a dot as the
// thousands separator and no decimal places.
func FormatIDR(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	out := make([]byte, 0, len(s)+len(s)/3)
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, ch)
	}
	if neg {
		return "Rp -" + string(out)
	}
	return "Rp " + string(out)
}
