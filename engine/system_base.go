package engine

// SystemBase provides common dependencies for all systems
// Embed in system struct; resolve once in the constructor after resources are registered
type SystemBase struct {
	World    *World
	Resource Resource
}

// NewSystemBase initializes base dependencies from world
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:    w,
		Resource: GetResourceStore(w),
	}
}
