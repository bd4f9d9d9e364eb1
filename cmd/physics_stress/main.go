// Stress test timing the pairwise TOI detector and the swept-sphere query
// at increasing scene sizes.
package main

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics3d/internal/physics"
	"physics3d/internal/staticmesh"
)

func main() {
	testCounts := []int{100, 500, 1000, 2000, 5000}
	for _, count := range testCounts {
		testDetector(count)
	}

	fmt.Println()

	triCounts := []int{64, 256, 1024, 4096}
	for _, count := range triCounts {
		testSweep(count)
	}
}

// testDetector times one full pairwise TOI scan over a random sphere cloud.
func testDetector(count int) {
	rng := rand.New(rand.NewSource(42)) // consistent results

	scene := physics.NewScene()
	scene.SetGravity(rl.Vector3{})

	// Spawn in a cube whose size scales with count to keep density reasonable.
	spawnSize := 50.0 + float32(count)/100.0
	handles := make([]physics.BodyHandle, count)
	for i := range handles {
		handles[i] = scene.AddBody(physics.Body{
			Position: rl.Vector3{
				X: rng.Float32()*spawnSize - spawnSize/2,
				Y: rng.Float32()*spawnSize - spawnSize/2,
				Z: rng.Float32()*spawnSize - spawnSize/2,
			},
			Rotation: rl.QuaternionIdentity(),
			LinearVelocity: rl.Vector3{
				X: rng.Float32()*4 - 2,
				Y: rng.Float32()*4 - 2,
				Z: rng.Float32()*4 - 2,
			},
			Shape:       physics.NewSphere(0.5 + rng.Float32()*0.5),
			InvMass:     1,
			Restitution: 0.5,
		})
	}

	const iterations = 10
	var contacts int
	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		contacts = 0
		for i := 0; i < count; i++ {
			a := scene.Body(handles[i])
			for j := i + 1; j < count; j++ {
				b := scene.Body(handles[j])
				if _, ok := physics.Intersect(handles[i], a, handles[j], b, 1.0/60.0); ok {
					contacts++
				}
			}
		}
	}
	elapsed := time.Since(start) / iterations

	fmt.Printf("%5d bodies: TOI scan %10v (%5d contacts)\n",
		count, elapsed.Round(time.Microsecond), contacts)
}

// testSweep times swept-sphere queries against a generated triangle grid.
func testSweep(triangles int) {
	registry := staticmesh.NewRegistry()

	// Grid of quads in the XZ plane at y=0.
	side := 1
	for side*side*2 < triangles {
		side++
	}
	var vertices []float32
	cell := float32(2.0)
	for x := 0; x < side; x++ {
		for z := 0; z < side; z++ {
			x0, z0 := float32(x)*cell, float32(z)*cell
			x1, z1 := x0+cell, z0+cell
			vertices = append(vertices,
				x0, 0, z0, x1, 0, z0, x1, 0, z1,
				x0, 0, z0, x1, 0, z1, x0, 0, z1,
			)
		}
	}
	handle := registry.Register(staticmesh.Geometry{Meshes: []staticmesh.Mesh{{Vertices: vertices}}}, rl.Vector3{})

	extent := float32(side) * cell
	const iterations = 100
	hits := 0
	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		from := rl.Vector3{X: extent / 2, Y: 10, Z: extent / 2}
		to := rl.Vector3{X: extent / 2, Y: -10, Z: extent / 2}
		if _, ok := registry.SweepSphere(handle, from, to, 0.5); ok {
			hits++
		}
	}
	elapsed := time.Since(start) / iterations

	fmt.Printf("%5d triangles: sweep %10v (%d/%d hits)\n",
		side*side*2, elapsed.Round(time.Microsecond), hits, iterations)
}
