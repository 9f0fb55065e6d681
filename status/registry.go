package status

import "sync/atomic"

// Registry groups the game's metric cells by value type
// Systems resolve their cells at construction and store into them each tick; the telemetry feed reads them through Snapshot
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount sums the cells of every type
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot loads every cell into a flat name to value map for JSON encoding
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Bools.Range(func(k string, c *atomic.Bool) { out[k] = c.Load() })
	r.Ints.Range(func(k string, c *atomic.Int64) { out[k] = c.Load() })
	r.Floats.Range(func(k string, c *AtomicFloat) { out[k] = c.Get() })
	r.Strings.Range(func(k string, c *AtomicString) { out[k] = c.Load() })
	return out
}
