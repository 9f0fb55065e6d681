package network

import (
	"time"

	"github.com/lixenwraith/balthazar/parameter"
)

// Config holds telemetry server configuration
type Config struct {
	// Address to bind; empty disables the server
	Address string

	// Path of the websocket endpoint
	Path string

	MaxPeers int

	// Timing
	WriteWait  time.Duration
	PongWait   time.Duration
	PingPeriod time.Duration

	// Limits
	ReadLimit        int64
	SendQueueSize    int
	CommandQueueSize int
}

// DefaultConfig returns local-debug defaults with the server disabled
func DefaultConfig() *Config {
	return &Config{
		Path:             "/ws",
		MaxPeers:         8,
		WriteWait:        parameter.TelemetryWriteWait,
		PongWait:         parameter.TelemetryPongWait,
		PingPeriod:       parameter.TelemetryPingPeriod,
		ReadLimit:        parameter.TelemetryReadLimit,
		SendQueueSize:    parameter.TelemetrySendBuffer,
		CommandQueueSize: parameter.CommandQueueSize,
	}
}
