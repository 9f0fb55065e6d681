package service

import (
	"testing"

	"github.com/pkg/errors"
)

type fakeService struct {
	name     string
	startErr error
	stopErr  error
	log      *[]string
}

func (f *fakeService) Name() string { return f.name }

func (f *fakeService) Start() error {
	if f.startErr != nil {
		return f.startErr
	}
	*f.log = append(*f.log, "start "+f.name)
	return nil
}

func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return f.stopErr
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHubOrdersLifecycle(t *testing.T) {
	var log []string
	h := NewHub(&fakeService{name: "audio", log: &log}, &fakeService{name: "network", log: &log})
	if err := h.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := h.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	want := []string{"start audio", "start network", "stop network", "stop audio"}
	if !equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}

	// Second stop touches nothing
	log = log[:0]
	if err := h.Stop(); err != nil || len(log) != 0 {
		t.Errorf("repeated stop: err=%v log=%v", err, log)
	}
}

func TestHubStartFailureRollsBack(t *testing.T) {
	var log []string
	h := NewHub(
		&fakeService{name: "audio", log: &log},
		&fakeService{name: "network", log: &log, startErr: errors.New("bind")},
	)
	err := h.Start()
	if err == nil {
		t.Fatal("expected start error")
	}
	if got := err.Error(); got != "start network: bind" {
		t.Errorf("error = %q", got)
	}
	want := []string{"start audio", "stop audio"}
	if !equal(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestHubStopReportsFirstError(t *testing.T) {
	var log []string
	h := NewHub(
		&fakeService{name: "audio", log: &log, stopErr: errors.New("device")},
		&fakeService{name: "network", log: &log, stopErr: errors.New("close")},
	)
	if err := h.Start(); err != nil {
		t.Fatal(err)
	}
	err := h.Stop()
	if err == nil || err.Error() != "stop network: close" {
		t.Errorf("error = %v", err)
	}
	if len(log) != 4 {
		t.Errorf("all services should be stopped, log = %v", log)
	}
}
