package engine

import (
	"testing"
	"time"
)

func TestResourceStoreRoundTrip(t *testing.T) {
	rs := NewResourceStore()
	if _, ok := GetResource[*CameraResource](rs); ok {
		t.Fatal("unexpected camera resource")
	}
	cam := &CameraResource{Zoom: 2}
	AddResource(rs, cam)
	got, ok := GetResource[*CameraResource](rs)
	if !ok || got != cam {
		t.Fatalf("got %v %v", got, ok)
	}
}

func TestMustGetResourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing resource")
		}
	}()
	MustGetResource[*TimeResource](NewResourceStore())
}

func TestTogglesFlip(t *testing.T) {
	tg := NewTogglesResource()
	for _, name := range ToggleNames {
		v, ok := tg.Get(name)
		if !ok || !v {
			t.Errorf("%s default = %v (known %v)", name, v, ok)
		}
	}
	v, ok := tg.Flip(ToggleCordSystems)
	if !ok || v || tg.CordSystems {
		t.Error("flip did not disable cord systems")
	}
	if _, ok := tg.Flip("warp_drive"); ok {
		t.Error("unknown toggle accepted")
	}
	if !tg.Set(ToggleCameraZoom, false) || tg.CameraZoom {
		t.Error("set failed")
	}
}

func TestMessageExpiry(t *testing.T) {
	var m MessageResource
	m.Show("No poles within attachment range", time.Second, 2*time.Second)
	if _, ok := m.Active(2 * time.Second); !ok {
		t.Error("message should be active")
	}
	if _, ok := m.Active(3 * time.Second); ok {
		t.Error("message should have expired")
	}
}

func TestGetResourceStoreResolvesNil(t *testing.T) {
	w := NewWorld()
	AddResource(w.Resources, NewTogglesResource())
	r := GetResourceStore(w)
	if r.Toggles == nil {
		t.Error("toggles not resolved")
	}
	if r.Camera != nil {
		t.Error("camera should be nil")
	}
}
