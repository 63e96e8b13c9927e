// Package maprender keeps the rendered map consistent with the shared
// session state. At startup the adapter picks one of two mutually exclusive
// modes based on whether a usable map-provider token is stored: live mode
// delegates rendering to the external map widget and brokers camera
// commands; placeholder mode renders a simplified projection locally.
package maprender

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/ShuvayuX/paris-startup-map/internal/infrastructure/sqlite"
)

// Mode names the adapter's rendering state.
type Mode string

const (
	// ModePrompt blocks map rendering until the user supplies a token or
	// opts out.
	ModePrompt Mode = "prompt"
	// ModeLive delegates rendering to the external widget.
	ModeLive Mode = "live"
	// ModePlaceholder renders the local approximation.
	ModePlaceholder Mode = "placeholder"
	// ModeUnavailable marks a failed widget; the rest of the application
	// keeps running.
	ModeUnavailable Mode = "unavailable"
)

// MinTokenLength is the shortest credential the provider accepts. Anything
// shorter is rejected at the form boundary.
const MinTokenLength = 20

// ErrTokenTooShort rejects tokens below the minimum length.
var ErrTokenTooShort = fmt.Errorf("token must be at least %d characters", MinTokenLength)

// PrefReader is the subset of the preference store the adapter needs.
type PrefReader interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Adapter owns mode selection and the live camera sync contract. Mode, once
// chosen for a session, changes only through explicit user action (save,
// opt out, clear) or a reported widget failure.
type Adapter struct {
	mu     sync.RWMutex
	logger *log.Logger
	prefs  PrefReader

	mode      Mode
	token     string
	lastError string
	camera    liveCamera
}

// New reads the stored preferences and returns an adapter in the mode they
// dictate: token present means live, opt-out means placeholder, otherwise
// the adapter prompts.
func New(ctx context.Context, logger *log.Logger, prefs PrefReader) (*Adapter, error) {
	a := &Adapter{logger: logger, prefs: prefs, mode: ModePrompt}

	token, err := prefs.Get(ctx, sqlite.KeyMapToken)
	switch {
	case err == nil && strings.TrimSpace(token) != "":
		a.token = token
		a.mode = ModeLive
	case err != nil && !errors.Is(err, sqlite.ErrNoValue):
		return nil, err
	default:
		skip, err := prefs.Get(ctx, sqlite.KeyMapSkipToken)
		if err != nil && !errors.Is(err, sqlite.ErrNoValue) {
			return nil, err
		}
		if skip == "true" {
			a.mode = ModePlaceholder
		}
	}

	logger.Printf("map adapter starting in %s mode", a.mode)
	return a, nil
}

// Mode returns the current rendering mode.
func (a *Adapter) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

// Token returns the stored provider token, empty outside live mode.
func (a *Adapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.mode != ModeLive {
		return ""
	}
	return a.token
}

// LastError returns the most recent widget failure message, if any.
func (a *Adapter) LastError() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.lastError
}

// SaveToken validates and persists the provider token, switching to live
// mode. A previously recorded opt-out is removed.
func (a *Adapter) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if len(token) < MinTokenLength {
		return ErrTokenTooShort
	}

	if err := a.prefs.Set(ctx, sqlite.KeyMapToken, token); err != nil {
		return err
	}
	if err := a.prefs.Delete(ctx, sqlite.KeyMapSkipToken); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
	a.mode = ModeLive
	a.lastError = ""
	a.camera.reset()
	a.logger.Printf("map provider token saved, entering live mode")
	return nil
}

// ClearToken removes the stored token and returns to the prompt state.
func (a *Adapter) ClearToken(ctx context.Context) error {
	if err := a.prefs.Delete(ctx, sqlite.KeyMapToken); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	a.mode = ModePrompt
	a.lastError = ""
	a.camera.reset()
	a.logger.Printf("map provider token cleared, prompting again")
	return nil
}

// OptOut records that the user declined to supply a token and switches to
// placeholder rendering.
func (a *Adapter) OptOut(ctx context.Context) error {
	if err := a.prefs.Set(ctx, sqlite.KeyMapSkipToken, "true"); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.mode = ModePlaceholder
	a.lastError = ""
	a.logger.Printf("user opted out of map provider token, using placeholder")
	return nil
}

// ReportWidgetError records a widget initialization or runtime failure. The
// failure is non-fatal: the application continues with the map marked
// unavailable until the user acts on the token again.
func (a *Adapter) ReportWidgetError(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastError = strings.TrimSpace(message)
	a.mode = ModeUnavailable
	a.logger.Printf("map widget reported failure: %s", a.lastError)
}
