package maprender

import (
	"math"
	"sync"

	"github.com/ShuvayuX/paris-startup-map/internal/directory/domain"
)

// Camera deltas below these thresholds are treated as floating-point jitter
// and never turned into widget commands, which would otherwise ping-pong
// between the widget and the state forever.
const (
	positionEpsilon = 1e-5
	zoomEpsilon     = 0.01
	bearingEpsilon  = 0.1
)

const (
	easeDurationMS  = 800
	flyDurationMS   = 1000
	markerFocusZoom = 14
	// Horizontal pixel offset applied on marker focus so the detail panel
	// does not cover the marker.
	markerFocusOffsetX = 200
)

// CameraCommand instructs the live widget to animate to a camera target. It
// is returned to the widget client rather than executed here; the Go side
// never integrates camera motion itself in live mode.
type CameraCommand struct {
	Type       string           `json:"type"`
	Target     domain.ViewState `json:"target"`
	DurationMS int              `json:"durationMs"`
	OffsetX    int              `json:"offsetX,omitempty"`
	OffsetY    int              `json:"offsetY,omitempty"`
}

// liveCamera mirrors the widget's last reported camera. Sync is strictly
// widget-to-state; externally driven changes only produce commands when the
// delta is significant.
type liveCamera struct {
	mu       sync.Mutex
	ready    bool
	reported domain.ViewState
}

func (c *liveCamera) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ready = false
	c.reported = domain.ViewState{}
}

// WidgetReady marks the widget's one-shot load event. Camera commands are
// refused until it fires.
func (a *Adapter) WidgetReady() {
	a.camera.mu.Lock()
	defer a.camera.mu.Unlock()
	a.camera.ready = true
	a.camera.reported = domain.DefaultViewState()
	a.logger.Printf("map widget ready")
}

// SyncFromWidget records the camera the widget reported after a user
// gesture. The caller mirrors the same value into the session; the widget
// is the source of truth for the camera in live mode.
func (a *Adapter) SyncFromWidget(v domain.ViewState) {
	a.camera.mu.Lock()
	defer a.camera.mu.Unlock()
	a.camera.reported = v
}

// CommandCamera turns an externally driven view-state change into an ease
// command for the widget. It returns false when the widget is not ready or
// the change is within the jitter thresholds.
func (a *Adapter) CommandCamera(target domain.ViewState) (CameraCommand, bool) {
	a.camera.mu.Lock()
	defer a.camera.mu.Unlock()

	if !a.camera.ready {
		return CameraCommand{}, false
	}

	current := a.camera.reported
	positionChanged := math.Abs(current.Longitude-target.Longitude) > positionEpsilon ||
		math.Abs(current.Latitude-target.Latitude) > positionEpsilon
	zoomChanged := math.Abs(current.Zoom-target.Zoom) > zoomEpsilon
	bearingChanged := math.Abs(current.Bearing-target.Bearing) > bearingEpsilon

	if !positionChanged && !zoomChanged && !bearingChanged {
		return CameraCommand{}, false
	}

	return CameraCommand{
		Type:       "easeTo",
		Target:     target,
		DurationMS: easeDurationMS,
	}, true
}

// FocusCommand builds the fly-to command issued when a marker is clicked:
// recenter on the startup and zoom in to at least the focus level, offset
// sideways to leave room for the detail panel.
func (a *Adapter) FocusCommand(loc domain.Location) (CameraCommand, bool) {
	a.camera.mu.Lock()
	defer a.camera.mu.Unlock()

	if !a.camera.ready {
		return CameraCommand{}, false
	}

	target := a.camera.reported
	target.Longitude = loc.Longitude
	target.Latitude = loc.Latitude
	target.Zoom = math.Max(target.Zoom, markerFocusZoom)

	return CameraCommand{
		Type:       "flyTo",
		Target:     target,
		DurationMS: flyDurationMS,
		OffsetX:    markerFocusOffsetX,
	}, true
}
