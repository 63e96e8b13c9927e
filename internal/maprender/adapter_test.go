package maprender

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/ShuvayuX/paris-startup-map/internal/infrastructure/sqlite"
)

// fakePrefs is an in-memory stand-in for the sqlite preference store.
type fakePrefs struct {
	values map[string]string
}

func newFakePrefs() *fakePrefs {
	return &fakePrefs{values: map[string]string{}}
}

func (p *fakePrefs) Get(_ context.Context, key string) (string, error) {
	v, ok := p.values[key]
	if !ok {
		return "", sqlite.ErrNoValue
	}
	return v, nil
}

func (p *fakePrefs) Set(_ context.Context, key, value string) error {
	p.values[key] = value
	return nil
}

func (p *fakePrefs) Delete(_ context.Context, key string) error {
	delete(p.values, key)
	return nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestNewModeSelection(t *testing.T) {
	cases := []struct {
		name   string
		values map[string]string
		want   Mode
	}{
		{"no preferences prompts", map[string]string{}, ModePrompt},
		{"stored token goes live", map[string]string{sqlite.KeyMapToken: "pk.0123456789abcdefghij"}, ModeLive},
		{"opt out uses placeholder", map[string]string{sqlite.KeyMapSkipToken: "true"}, ModePlaceholder},
		{"token wins over opt out", map[string]string{
			sqlite.KeyMapToken:     "pk.0123456789abcdefghij",
			sqlite.KeyMapSkipToken: "true",
		}, ModeLive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefs := newFakePrefs()
			prefs.values = tc.values

			a, err := New(context.Background(), testLogger(), prefs)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := a.Mode(); got != tc.want {
				t.Errorf("Mode = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSaveTokenValidatesLength(t *testing.T) {
	a, err := New(context.Background(), testLogger(), newFakePrefs())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.SaveToken(context.Background(), "too-short"); !errors.Is(err, ErrTokenTooShort) {
		t.Fatalf("SaveToken short token: %v, want ErrTokenTooShort", err)
	}
	if a.Mode() != ModePrompt {
		t.Errorf("mode changed after rejected token: %s", a.Mode())
	}
}

func TestSaveTokenEntersLiveAndClearsOptOut(t *testing.T) {
	prefs := newFakePrefs()
	prefs.values[sqlite.KeyMapSkipToken] = "true"

	a, err := New(context.Background(), testLogger(), prefs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Mode() != ModePlaceholder {
		t.Fatalf("precondition: mode = %s, want placeholder", a.Mode())
	}

	token := "pk.0123456789abcdefghij"
	if err := a.SaveToken(context.Background(), token); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	if a.Mode() != ModeLive {
		t.Errorf("Mode = %s, want live", a.Mode())
	}
	if a.Token() != token {
		t.Errorf("Token = %q, want %q", a.Token(), token)
	}
	if _, ok := prefs.values[sqlite.KeyMapSkipToken]; ok {
		t.Error("opt-out flag should be removed when a token is saved")
	}
	if prefs.values[sqlite.KeyMapToken] != token {
		t.Errorf("stored token = %q", prefs.values[sqlite.KeyMapToken])
	}
}

func TestClearTokenReturnsToPrompt(t *testing.T) {
	prefs := newFakePrefs()
	prefs.values[sqlite.KeyMapToken] = "pk.0123456789abcdefghij"

	a, err := New(context.Background(), testLogger(), prefs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.ClearToken(context.Background()); err != nil {
		t.Fatalf("ClearToken: %v", err)
	}
	if a.Mode() != ModePrompt {
		t.Errorf("Mode = %s, want prompt", a.Mode())
	}
	if a.Token() != "" {
		t.Errorf("Token should be empty after clear: %q", a.Token())
	}
	if _, ok := prefs.values[sqlite.KeyMapToken]; ok {
		t.Error("stored token should be deleted")
	}
}

func TestTokenHiddenOutsideLiveMode(t *testing.T) {
	a, err := New(context.Background(), testLogger(), newFakePrefs())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.SaveToken(context.Background(), "pk.0123456789abcdefghij"); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	a.ReportWidgetError("style failed to load")

	if a.Mode() != ModeUnavailable {
		t.Errorf("Mode = %s, want unavailable", a.Mode())
	}
	if a.Token() != "" {
		t.Errorf("Token should be hidden outside live mode: %q", a.Token())
	}
	if a.LastError() != "style failed to load" {
		t.Errorf("LastError = %q", a.LastError())
	}
}

func TestOptOutSwitchesToPlaceholder(t *testing.T) {
	prefs := newFakePrefs()
	a, err := New(context.Background(), testLogger(), prefs)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := a.OptOut(context.Background()); err != nil {
		t.Fatalf("OptOut: %v", err)
	}
	if a.Mode() != ModePlaceholder {
		t.Errorf("Mode = %s, want placeholder", a.Mode())
	}
	if prefs.values[sqlite.KeyMapSkipToken] != "true" {
		t.Errorf("opt-out flag not stored: %v", prefs.values)
	}
}
