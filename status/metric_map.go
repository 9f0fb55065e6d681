package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap holds named metric cells of type T
// Cells are allocated once under the mutex and never removed, so callers keep the pointer and write it without locking
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell named key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	cell, ok := m.cells[key]
	m.mu.RUnlock()
	if ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cell, ok = m.cells[key]; !ok {
		cell = new(T)
		m.cells[key] = cell
	}
	return cell
}

func (m *MetricMap[T]) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.cells[key]
	return ok
}

// Range visits cells in key order; fn runs outside the lock and may call Get
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.mu.RLock()
	keys := slices.Sorted(maps.Keys(m.cells))
	cells := make([]*T, len(keys))
	for i, k := range keys {
		cells[i] = m.cells[k]
	}
	m.mu.RUnlock()

	for i, k := range keys {
		fn(k, cells[i])
	}
}

func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}
