package domain

import "testing"

func TestDefaultViewState(t *testing.T) {
	v := DefaultViewState()
	if v.Longitude != 2.3522 || v.Latitude != 48.8566 {
		t.Errorf("default not centered on Paris: %+v", v)
	}
	if v.Zoom != 12 || v.Pitch != 0 || v.Bearing != 0 {
		t.Errorf("unexpected default camera: %+v", v)
	}
}

func TestZoomInUnbounded(t *testing.T) {
	v := DefaultViewState()
	for i := 0; i < 20; i++ {
		v = v.ZoomIn()
	}
	if v.Zoom != 32 {
		t.Errorf("Zoom = %v, want 32", v.Zoom)
	}
}

func TestZoomOutClampedToFloor(t *testing.T) {
	v := DefaultViewState()
	for i := 0; i < 50; i++ {
		v = v.ZoomOut()
	}
	if v.Zoom != 1 {
		t.Errorf("Zoom = %v, want floor 1", v.Zoom)
	}
}

func TestResetBearingLeavesOtherFields(t *testing.T) {
	v := ViewState{Longitude: 2.4, Latitude: 48.9, Zoom: 15, Pitch: 30, Bearing: 120}
	got := v.ResetBearing()

	if got.Bearing != 0 {
		t.Errorf("Bearing = %v, want 0", got.Bearing)
	}
	if got.Longitude != v.Longitude || got.Latitude != v.Latitude || got.Zoom != v.Zoom || got.Pitch != v.Pitch {
		t.Errorf("ResetBearing touched other fields: %+v", got)
	}
}

func TestResetViewAlwaysYieldsDefault(t *testing.T) {
	states := []ViewState{
		{},
		{Longitude: -70, Latitude: 10, Zoom: 3, Pitch: 60, Bearing: 359},
		DefaultViewState().ZoomIn().ZoomIn(),
	}

	for _, v := range states {
		if got := v.ResetView(); got != DefaultViewState() {
			t.Errorf("ResetView() = %+v, want default", got)
		}
	}
}
