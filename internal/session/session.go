// Package session holds the shared application state for one running
// instance of the map: the selected startup, the camera, the current
// filtered subset and the creation-dialog flag. The original client kept
// this in a context shared across UI components on a single thread; here a
// single constructor-built Session is injected where needed and serialized
// with a mutex.
package session

import (
	"sync"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
)

// Session is the process-wide mutable state container. One instance exists
// per running service, created at startup and passed by reference.
type Session struct {
	mu sync.RWMutex

	selectedID  string
	viewState   domain.ViewState
	filtered    []domain.Startup
	showAddForm bool

	// Draft location for the creation dialog's picker, written by the
	// simulated reverse geocoder.
	draftLocation domain.Location
	geocodeGen    uint64
}

// Snapshot is a consistent read of the session state.
type Snapshot struct {
	SelectedID    string
	ViewState     domain.ViewState
	Filtered      []domain.Startup
	ShowAddForm   bool
	DraftLocation domain.Location
}

// New creates a session with the default camera and an empty filtered list.
func New() *Session {
	return &Session{
		viewState: domain.DefaultViewState(),
		draftLocation: domain.Location{
			Longitude: domain.DefaultViewState().Longitude,
			Latitude:  domain.DefaultViewState().Latitude,
		},
	}
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		SelectedID:    s.selectedID,
		ViewState:     s.viewState,
		Filtered:      append([]domain.Startup(nil), s.filtered...),
		ShowAddForm:   s.showAddForm,
		DraftLocation: s.draftLocation,
	}
}

// SelectedID returns the id of the currently selected startup, if any.
func (s *Session) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// SetSelected records the selected startup id. An empty id clears the
// selection.
func (s *Session) SetSelected(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedID = id
}

// ViewState returns the current camera.
func (s *Session) ViewState() domain.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.viewState
}

// SetViewState replaces the camera wholesale.
func (s *Session) SetViewState(v domain.ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewState = v
}

// UpdateViewState applies a transition to the current camera and returns the
// result. The read-modify-write happens under one lock acquisition so
// concurrent transitions never interleave.
func (s *Session) UpdateViewState(apply func(domain.ViewState) domain.ViewState) domain.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewState = apply(s.viewState)
	return s.viewState
}

// Filtered returns a copy of the current filtered subset.
func (s *Session) Filtered() []domain.Startup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Startup(nil), s.filtered...)
}

// SetFiltered replaces the filtered subset.
func (s *Session) SetFiltered(startups []domain.Startup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtered = append([]domain.Startup(nil), startups...)
}

// AppendFiltered adds a startup to the filtered subset, used when a freshly
// created entry should appear without rerunning the filter.
func (s *Session) AppendFiltered(startup domain.Startup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filtered = append(s.filtered, startup)
}

// ShowAddForm reports whether the creation dialog is visible.
func (s *Session) ShowAddForm() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showAddForm
}

// SetShowAddForm toggles the creation dialog flag.
func (s *Session) SetShowAddForm(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showAddForm = show
}

// BeginGeocode registers a new reverse-geocode request for the dialog's
// location picker and returns its generation number. Completions carrying a
// stale generation are dropped.
func (s *Session) BeginGeocode(lng, lat float64) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geocodeGen++
	s.draftLocation.Longitude = lng
	s.draftLocation.Latitude = lat
	return s.geocodeGen
}

// CompleteGeocode commits a resolved address if the request is still the
// latest one. It reports whether the result was accepted.
func (s *Session) CompleteGeocode(gen uint64, address string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.geocodeGen {
		return false
	}
	s.draftLocation.Address = address
	return true
}

// DraftLocation returns the dialog's current draft location.
func (s *Session) DraftLocation() domain.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draftLocation
}
