// Headless physics demo: a sphere falls onto an immovable ground sphere,
// then a swept-sphere query runs against a registered quad.
package main

import (
	"flag"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics3d/internal/config"
	"physics3d/internal/physics"
	"physics3d/internal/staticmesh"
)

func main() {
	configPath := flag.String("config", "", "optional prefs file (.json/.yaml)")
	seconds := flag.Float64("seconds", 5, "simulated time")
	flag.Parse()

	prefs := config.Default()
	if *configPath != "" {
		var err error
		prefs, err = config.Load(*configPath)
		if err != nil {
			log.Printf("config: %v (using defaults)", err)
		}
	}

	if err := physics.InitPhysics(); err != nil {
		log.Fatalf("init physics: %v", err)
	}
	defer physics.ShutdownPhysics()

	scene := physics.NewScene()
	scene.SetGravity(rl.Vector3{X: prefs.Gravity[0], Y: prefs.Gravity[1], Z: prefs.Gravity[2]})
	scene.SetMaxSubsteps(prefs.MaxSubsteps)

	ball := scene.AddBody(physics.Body{
		Position:    rl.Vector3{Y: 100},
		Rotation:    rl.QuaternionIdentity(),
		Shape:       physics.NewSphere(5),
		InvMass:     1,
		Restitution: 0.5,
	})
	scene.AddBody(physics.Body{
		Position:    rl.Vector3{Y: -1000},
		Rotation:    rl.QuaternionIdentity(),
		Shape:       physics.NewSphere(1000),
		InvMass:     0, // immovable ground
		Restitution: 1,
	})

	steps := int(float32(*seconds) / prefs.TimeStep)
	for i := 0; i < steps; i++ {
		scene.Update(prefs.TimeStep)
		if i%30 == 0 {
			b := scene.Body(ball)
			fmt.Printf("t=%5.2fs  ball y=%8.3f  vy=%8.3f\n",
				float32(i)*prefs.TimeStep, b.Position.Y, b.LinearVelocity.Y)
		}
	}

	// Character-controller style query against static level geometry:
	// a quad in the XY plane at z=0, swept through along -Z.
	registry := staticmesh.NewRegistry()
	quad := staticmesh.Geometry{Meshes: []staticmesh.Mesh{{
		Vertices: []float32{
			-10, -10, 0, 10, -10, 0, 10, 10, 0,
			-10, -10, 0, 10, 10, 0, -10, 10, 0,
		},
	}}}
	handle := registry.Register(quad, rl.Vector3{})

	start := rl.Vector3{Z: 20}
	end := rl.Vector3{Z: -20}
	if hit, ok := registry.SweepSphere(handle, start, end, 1); ok {
		fmt.Printf("sweep hit: t=%.4f pos=(%.2f,%.2f,%.2f) normal=(%.2f,%.2f,%.2f)\n",
			hit.Fraction, hit.Position.X, hit.Position.Y, hit.Position.Z,
			hit.Normal.X, hit.Normal.Y, hit.Normal.Z)
	} else {
		fmt.Println("sweep: no hit")
	}
}
