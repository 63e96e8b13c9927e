package domain

// ViewState describes the camera: position, zoom, tilt and rotation.
type ViewState struct {
	Longitude float64
	Latitude  float64
	Zoom      float64
	Pitch     float64
	Bearing   float64
}

const (
	zoomStep  = 1.0
	zoomFloor = 1.0
)

// DefaultViewState returns the fixed initial camera centered on Paris.
func DefaultViewState() ViewState {
	return ViewState{
		Longitude: 2.3522,
		Latitude:  48.8566,
		Zoom:      12,
		Pitch:     0,
		Bearing:   0,
	}
}

// ZoomIn raises the zoom by one step. There is no upper bound.
func (v ViewState) ZoomIn() ViewState {
	v.Zoom += zoomStep
	return v
}

// ZoomOut lowers the zoom by one step, clamped to the floor so the camera
// never reaches a degenerate zoom level.
func (v ViewState) ZoomOut() ViewState {
	v.Zoom -= zoomStep
	if v.Zoom < zoomFloor {
		v.Zoom = zoomFloor
	}
	return v
}

// ResetBearing zeroes the rotation and leaves every other field untouched.
func (v ViewState) ResetBearing() ViewState {
	v.Bearing = 0
	return v
}

// ResetView restores the fixed default camera regardless of prior state.
func (v ViewState) ResetView() ViewState {
	return DefaultViewState()
}
