package service

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/balthazar/logger"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources outside the simulation: audio device, telemetry feed
//
// Lifecycle:
//  1. Construction (via package constructor)
//  2. Start() - acquire resources, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the identifier used in logs
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

// Hub starts services in registration order and stops them in reverse
type Hub struct {
	services []Service
	started  int
	log      *logrus.Entry
}

// NewHub creates a hub over services
func NewHub(services ...Service) *Hub {
	return &Hub{
		services: services,
		log:      logger.System("service"),
	}
}

// Start launches every service; on failure the already started ones are stopped
func (h *Hub) Start() error {
	for h.started < len(h.services) {
		s := h.services[h.started]
		if err := s.Start(); err != nil {
			h.Stop()
			return errors.Wrapf(err, "start %s", s.Name())
		}
		h.started++
		h.log.WithField("service", s.Name()).Debug("started")
	}
	return nil
}

// Stop halts started services in reverse order and returns the first error
func (h *Hub) Stop() error {
	var first error
	for i := h.started - 1; i >= 0; i-- {
		s := h.services[i]
		if err := s.Stop(); err != nil {
			h.log.WithError(err).WithField("service", s.Name()).Warn("stop failed")
			if first == nil {
				first = errors.Wrapf(err, "stop %s", s.Name())
			}
		}
	}
	h.started = 0
	return first
}
