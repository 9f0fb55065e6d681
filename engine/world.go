package engine

import (
	"sync"

	"github.com/lixenwraith/balthazar/component"
	"github.com/lixenwraith/balthazar/core"
)

// System is implemented by everything the scheduler runs each tick
type System interface {
	Update()
	Priority() int // Lower values run first
}

// World holds typed component stores, resources and the ordered system list
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources *ResourceStore

	Transforms       *Store[component.TransformComponent]
	Players          *Store[component.PlayerComponent]
	Poles            *Store[component.PoleComponent]
	PowerSources     *Store[component.PowerSourceComponent]
	SolarPanels      *Store[component.SolarPanelComponent]
	Batteries        *Store[component.BatteryComponent]
	AttachmentPoints *Store[component.AttachmentPointComponent]
	Tints            *Store[component.TintComponent]

	allStores []AnyStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID:     1,
		Resources:        NewResourceStore(),
		Transforms:       NewStore[component.TransformComponent](),
		Players:          NewStore[component.PlayerComponent](),
		Poles:            NewStore[component.PoleComponent](),
		PowerSources:     NewStore[component.PowerSourceComponent](),
		SolarPanels:      NewStore[component.SolarPanelComponent](),
		Batteries:        NewStore[component.BatteryComponent](),
		AttachmentPoints: NewStore[component.AttachmentPointComponent](),
		Tints:            NewStore[component.TintComponent](),
	}
	w.allStores = []AnyStore{
		w.Transforms, w.Players, w.Poles, w.PowerSources,
		w.SolarPanels, w.Batteries, w.AttachmentPoints, w.Tints,
	}
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.allStores {
		s.RemoveEntity(e)
	}
}

// EntityCount returns the number of distinct entities holding any component
func (w *World) EntityCount() int {
	seen := make(map[core.Entity]struct{})
	for _, s := range w.allStores {
		for _, e := range s.GetAllEntities() {
			seen[e] = struct{}{}
		}
	}
	return len(seen)
}

// Clear removes all entities and components
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.allStores {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system and keeps the list sorted by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Bubble sort, small N, stable
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes fn while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially under the update lock
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller holds the update lock
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}
