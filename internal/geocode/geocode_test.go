package geocode

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ShuvayuX/paris-startup-map/internal/session"
)

func TestReverseCommitsAddress(t *testing.T) {
	sess := session.New()
	r := NewReverserWithDelay(sess, time.Millisecond)

	address, accepted, err := r.Reverse(context.Background(), 2.3522, 48.8566)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if !accepted {
		t.Fatal("only lookup should be accepted")
	}
	if address != "48.85660, 2.35220" {
		t.Errorf("address = %q", address)
	}
	if got := sess.DraftLocation().Address; got != address {
		t.Errorf("draft address = %q, want %q", got, address)
	}
}

func TestReverseStaleLookupIsDropped(t *testing.T) {
	sess := session.New()
	r := NewReverserWithDelay(sess, 20*time.Millisecond)

	type result struct {
		address  string
		accepted bool
	}
	first := make(chan result, 1)

	go func() {
		address, accepted, _ := r.Reverse(context.Background(), 2.30, 48.80)
		first <- result{address, accepted}
	}()

	// Let the first lookup register before superseding it.
	time.Sleep(5 * time.Millisecond)
	address, accepted, err := r.Reverse(context.Background(), 2.40, 48.90)
	if err != nil {
		t.Fatalf("second Reverse: %v", err)
	}

	got := <-first
	if got.accepted {
		t.Error("superseded lookup should be dropped")
	}
	if !accepted {
		t.Error("latest lookup should be accepted")
	}
	if dl := sess.DraftLocation(); dl.Address != address {
		t.Errorf("draft address = %q, want %q", dl.Address, address)
	}
}

func TestReverseCancelledContext(t *testing.T) {
	sess := session.New()
	r := NewReverserWithDelay(sess, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Reverse(ctx, 2.3522, 48.8566)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if got := sess.DraftLocation().Address; got != "" {
		t.Errorf("cancelled lookup committed an address: %q", got)
	}
}

func TestFormatAddressLatitudeFirst(t *testing.T) {
	if got := FormatAddress(2.3522, 48.8566); got != "48.85660, 2.35220" {
		t.Errorf("FormatAddress = %q", got)
	}
}
