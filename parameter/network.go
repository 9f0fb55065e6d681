package parameter

import "time"

// Telemetry feed
const (
	// SnapshotInterval is the number of ticks between pushed snapshots
	SnapshotInterval = 6

	TelemetryWriteWait  = 5 * time.Second
	TelemetryPongWait   = 30 * time.Second
	TelemetryPingPeriod = (TelemetryPongWait * 9) / 10
	TelemetrySendBuffer = 32
	TelemetryReadLimit  = 1024
	CommandQueueSize    = 64
)
