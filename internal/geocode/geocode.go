// Package geocode simulates a reverse-geocoding lookup for the creation
// dialog's location picker. The lookup resolves after a fixed delay with a
// coordinate-formatted address; no external service is contacted.
package geocode

import (
	"context"
	"fmt"
	"time"
)

const defaultDelay = 500 * time.Millisecond

// Committer receives resolved addresses. A completion is dropped unless its
// generation is still the latest, which guards against a stale lookup
// overwriting a newer one after the user has moved the pin again.
type Committer interface {
	BeginGeocode(lng, lat float64) uint64
	CompleteGeocode(gen uint64, address string) bool
}

// Reverser performs simulated reverse-geocode lookups.
type Reverser struct {
	delay  time.Duration
	commit Committer
}

// NewReverser builds a reverser committing into the given target.
func NewReverser(commit Committer) *Reverser {
	return &Reverser{delay: defaultDelay, commit: commit}
}

// NewReverserWithDelay is NewReverser with a custom delay, for tests.
func NewReverserWithDelay(commit Committer, delay time.Duration) *Reverser {
	return &Reverser{delay: delay, commit: commit}
}

// Reverse resolves the given point to an address after the fixed delay and
// commits it. It returns the address and whether the commit was accepted;
// a false result means a newer lookup superseded this one. Cancelling the
// context abandons the lookup without committing.
func (r *Reverser) Reverse(ctx context.Context, lng, lat float64) (string, bool, error) {
	gen := r.commit.BeginGeocode(lng, lat)

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case <-time.After(r.delay):
	}

	address := FormatAddress(lng, lat)
	accepted := r.commit.CompleteGeocode(gen, address)
	return address, accepted, nil
}

// FormatAddress renders the simulated address for a coordinate pair.
func FormatAddress(lng, lat float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lng)
}
