package staticmesh

import (
	"log"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Registry is a handle-keyed table of world-space triangle soups for
// swept-sphere queries against level geometry. Each registry is an
// independent world: create one per level or per test.
//
// Register, Unregister and sweep lookups are safe to call concurrently;
// the lock is only held while searching or copying entry metadata, never
// during the geometric sampling work.
type Registry struct {
	mu         sync.Mutex
	nextHandle int
	entries    []meshEntry
}

// meshEntry is immutable after creation: mutation is full removal only,
// so sweeps can share the triangle slice outside the lock.
type meshEntry struct {
	handle    int
	boxes     []AABB // per-submesh bounds, diagnostic only
	triangles []Triangle
}

// NewRegistry returns an empty registry. Handles start at 1 and are never
// reused, even after Unregister.
func NewRegistry() *Registry {
	return &Registry{nextHandle: 1}
}

// Register bakes the geometry's triangles into world space (vertex +
// worldOffset), records per-submesh bounding boxes, and returns the new
// entry's handle.
func (r *Registry) Register(geom Geometry, worldOffset rl.Vector3) int {
	entry := meshEntry{}

	for i, mesh := range geom.Meshes {
		tris := mesh.triangles(worldOffset)
		if len(tris) == 0 {
			continue
		}
		box := boundsOfTriangles(tris)
		entry.boxes = append(entry.boxes, box)
		entry.triangles = append(entry.triangles, tris...)
		log.Printf("Physics: mesh[%d] triangles=%d bbox(min=%.2f,%.2f,%.2f max=%.2f,%.2f,%.2f)",
			i, len(tris), box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	entry.handle = r.nextHandle
	r.nextHandle++
	r.entries = append(r.entries, entry)
	return entry.handle
}

// Unregister removes the entry for handle. Unknown handles are a no-op.
func (r *Registry) Unregister(handle int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].handle == handle {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

// Count returns the number of registered meshes.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Bounds returns the per-submesh bounding boxes recorded for handle.
func (r *Registry) Bounds(handle int) ([]AABB, bool) {
	entry, ok := r.lookup(handle)
	if !ok {
		return nil, false
	}
	boxes := make([]AABB, len(entry.boxes))
	copy(boxes, entry.boxes)
	return boxes, true
}

// lookup copies the entry's slice headers under the lock. The backing
// arrays are immutable, so the caller can read them lock-free.
func (r *Registry) lookup(handle int) (meshEntry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].handle == handle {
			return r.entries[i], true
		}
	}
	return meshEntry{}, false
}
