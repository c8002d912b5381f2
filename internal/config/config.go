package config // package config loads application configuration from environment variables

import (
	"log"
	"os"
	"time"
)

// Config holds the runtime configuration of the booking service.  Each
// field corresponds to an environment variable.  Every value has a
// working default so the service boots with an empty environment: with
// no MONGODB_URI it runs in demo mode (no store, empty availability,
// writes rejected), and with no TIME_URL the local clock is trusted.
type Config struct {
	Env          string         // application environment (e.g. "dev", "prod")
	Port         string         // HTTP port to listen on
	MongoURI     string         // document database connection string; empty enables demo mode
	MongoDB      string         // database name holding the bookings collection
	BookingsColl string         // collection name for booking records
	TimeURL      string         // trusted time endpoint; empty trusts the local clock
	SyncEvery    time.Duration  // clock resync period
	Location     *time.Location // timezone the hall operates in
	OpenHour     int            // first bookable hour (slot label "OpenHour:00")
	CloseHour    int            // closing hour, exclusive
}

// Load reads configuration from environment variables.  Unlike required
// credentials in a multi-tenant deployment, everything here may be
// absent; Load only fails on values that are present but unusable
// (e.g. an unparseable timezone).
func Load() Config {
	loc := time.Local
	if tz := os.Getenv("BOOKING_TZ"); tz != "" {
		l, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("invalid BOOKING_TZ %q: %v", tz, err)
		}
		loc = l
	}
	openHour := envInt("BOOKING_OPEN_HOUR", 7)
	closeHour := envInt("BOOKING_CLOSE_HOUR", 22)
	if openHour < 0 || closeHour > 24 || openHour >= closeHour {
		log.Fatalf("invalid opening hours: open=%d close=%d", openHour, closeHour)
	}
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		MongoURI:     os.Getenv("MONGODB_URI"),
		MongoDB:      getenv("MONGODB_DB", "shuttlebook"),
		BookingsColl: getenv("BOOKINGS_COLLECTION", "bookings"),
		TimeURL:      os.Getenv("TIME_URL"),
		SyncEvery:    envDur("TIME_SYNC_EVERY", 5*time.Minute),
		Location:     loc,
		OpenHour:     openHour,
		CloseHour:    closeHour,
	}
}
