// Package clock keeps an approximation of a trusted "now" by measuring
// the drift between this process's clock and a remote time endpoint.
// The booking flow uses the trusted time to disable slots that have
// already started, so a host with a skewed clock still renders the
// correct day schedule.
package clock

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"
)

// DefaultSyncInterval matches the resync period of the booking pages:
// drift is re-measured every five minutes and trusted between syncs.
const DefaultSyncInterval = 5 * time.Minute

// timeResponse mirrors the body of the time endpoint: the server's
// current time in milliseconds since epoch.
type timeResponse struct {
	Now int64 `json:"now"`
}

// Syncer measures and caches clock drift against a remote time
// endpoint.  Now() is safe for concurrent use.  A Syncer constructed
// with an empty URL never leaves zero drift, which makes the local
// clock authoritative (the mode used when this service is itself the
// time source).
type Syncer struct {
	url    string
	every  time.Duration
	client *http.Client

	mu    sync.RWMutex
	drift time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewSyncer builds a Syncer for the given time endpoint URL.  A
// non-positive interval falls back to DefaultSyncInterval.
func NewSyncer(url string, every time.Duration) *Syncer {
	if every <= 0 {
		every = DefaultSyncInterval
	}
	return &Syncer{
		url:    url,
		every:  every,
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Now returns the trusted current time: the local clock plus the cached
// drift.  Between syncs the drift stays fixed, so Now advances with the
// local clock.
func (s *Syncer) Now() time.Time {
	s.mu.RLock()
	d := s.drift
	s.mu.RUnlock()
	return time.Now().Add(d)
}

// Drift returns the currently cached offset (server minus local).
func (s *Syncer) Drift() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drift
}

// Sync fetches the remote time once and recomputes the drift as the
// difference between the server-reported instant and the local clock at
// request resolution.  On any failure the drift falls back to zero so
// the local clock is trusted until the next periodic sync; there is no
// retry or backoff beyond that.
func (s *Syncer) Sync(ctx context.Context) error {
	if s.url == "" {
		s.setDrift(0)
		return nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.setDrift(0)
		return fmt.Errorf("build time request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.setDrift(0)
		return fmt.Errorf("fetch server time: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		s.setDrift(0)
		return fmt.Errorf("time endpoint returned %d", resp.StatusCode)
	}
	var body timeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		s.setDrift(0)
		return fmt.Errorf("decode time response: %w", err)
	}
	local := time.Now()
	s.setDrift(time.Duration(body.Now-local.UnixMilli()) * time.Millisecond)
	return nil
}

// Start launches the periodic resync loop.  The first sync happens
// immediately; afterwards the drift is refreshed on every tick until
// the context is cancelled or Stop is called.  Sync errors are logged
// and otherwise ignored: the zero-drift fallback already applied.
func (s *Syncer) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go func() {
		defer close(s.done)
		if err := s.Sync(ctx); err != nil {
			log.Printf("clock: initial sync failed: %v", err)
		}
		t := time.NewTicker(s.every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := s.Sync(ctx); err != nil {
					log.Printf("clock: resync failed: %v", err)
				}
			}
		}
	}()
}

// Stop cancels the resync loop and waits for it to exit.  Calling Stop
// on a Syncer that was never started is a no-op.
func (s *Syncer) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
}

func (s *Syncer) setDrift(d time.Duration) {
	s.mu.Lock()
	s.drift = d
	s.mu.Unlock()
}
