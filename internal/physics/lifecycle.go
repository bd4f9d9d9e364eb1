package physics

import "log"

// InitPhysics prepares the physics backend. The in-process backend needs no
// setup; the hook exists so a heavier backend (e.g. Jolt bindings) can slot
// in without touching callers.
func InitPhysics() error {
	log.Printf("Physics: InitPhysics - in-process backend")
	return nil
}

// ShutdownPhysics releases backend resources. No-op for the in-process
// backend.
func ShutdownPhysics() {
	log.Printf("Physics: ShutdownPhysics")
}
