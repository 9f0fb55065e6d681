package network

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/balthazar/logger"
)

// Service is the debug telemetry feed: snapshots out, toggle commands in
// Commands are queued for the simulation thread and never applied here
type Service struct {
	config    *Config
	transport *Transport
	commands  chan string
	log       *logrus.Entry

	published atomic.Int64
	dropped   atomic.Int64
	disabled  atomic.Bool
}

// NewService creates a telemetry service; an empty address disables it
func NewService(cfg *Config) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	s := &Service{
		config:   cfg,
		commands: make(chan string, cfg.CommandQueueSize),
		log:      logger.System("network"),
	}
	s.transport = NewTransport(cfg)
	s.transport.SetHandlers(s.onConnect, s.onDisconnect, s.onMessage)
	if cfg.Address == "" {
		s.disabled.Store(true)
	}
	return s
}

// Name identifies the service in logs
func (s *Service) Name() string {
	return "network"
}

// Start begins serving unless disabled
func (s *Service) Start() error {
	if s.disabled.Load() {
		return nil
	}
	if err := s.transport.Start(); err != nil {
		return err
	}
	s.log.WithField("addr", s.transport.Addr().String()).Info("telemetry feed listening")
	return nil
}

// Stop halts the server
func (s *Service) Stop() error {
	return s.transport.Stop()
}

// Transport exposes the underlying transport
func (s *Service) Transport() *Transport {
	return s.transport
}

// Commands delivers toggle names requested by clients
func (s *Service) Commands() <-chan string {
	return s.commands
}

// Publish broadcasts a snapshot to all peers without blocking
func (s *Service) Publish(snap *Snapshot) {
	if s.transport.PeerCount() == 0 {
		return
	}
	s.transport.Broadcast(NewSnapshotMessage(snap))
	s.published.Add(1)
}

// Published returns the number of broadcast snapshots
func (s *Service) Published() int64 {
	return s.published.Load()
}

// PeerCount returns connected peer count
func (s *Service) PeerCount() int {
	return s.transport.PeerCount()
}

func (s *Service) onConnect(id PeerID) {
	s.log.WithField("peer", id).Info("telemetry client connected")
}

func (s *Service) onDisconnect(id PeerID) {
	s.log.WithField("peer", id).Info("telemetry client disconnected")
}

func (s *Service) onMessage(id PeerID, msg *Message, err error) {
	if err != nil {
		s.transport.Send(id, NewErrorMessage(err.Error()))
		return
	}

	switch msg.Type {
	case MsgToggle:
		select {
		case s.commands <- msg.Name:
			s.transport.Send(id, NewAckMessage(msg.Name))
		default:
			s.dropped.Add(1)
			s.transport.Send(id, NewErrorMessage("command queue full"))
		}
	}
}
