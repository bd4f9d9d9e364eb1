package staticmesh

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// sampleTolerance is the worst-case error of the refined touch fraction:
// one sample step narrowed by 6 bisection iterations, plus slack.
const sampleTolerance = 1.0 / 24.0 / 64.0 * 4

func TestSweepSphereHitsTriangle(t *testing.T) {
	r := NewRegistry()
	// Large triangle in the XY plane, normal +Z.
	tri := Geometry{Meshes: []Mesh{{
		Vertices: []float32{-10, -10, 0, 10, -10, 0, 0, 10, 0},
	}}}
	h := r.Register(tri, rl.Vector3{})

	// Segment from z=10 to z=-10 through the triangle's interior. A
	// radius-0.5 sphere first touches when its center reaches z=0.5,
	// i.e. at fraction (10-0.5)/20 = 0.475.
	hit, ok := r.SweepSphere(h, rl.Vector3{Z: 10}, rl.Vector3{Z: -10}, 0.5)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math32.Abs(hit.Fraction-0.475) > sampleTolerance {
		t.Errorf("Fraction = %v, want 0.475 +- %v", hit.Fraction, sampleTolerance)
	}
	if rl.Vector3Distance(hit.Normal, rl.Vector3{Z: 1}) > 1e-3 {
		t.Errorf("Normal = %v, want face normal (0,0,1)", hit.Normal)
	}
	if rl.Vector3Distance(hit.Position, rl.Vector3{}) > 0.05 {
		t.Errorf("Position = %v, want near origin", hit.Position)
	}
}

func TestSweepSphereEarliestTriangleWins(t *testing.T) {
	r := NewRegistry()
	// Two parallel quads: one at z=0, one at z=5. Sweeping from z=10
	// must report the nearer plane at z=5.
	geom := Geometry{Meshes: []Mesh{
		{Vertices: []float32{
			-10, -10, 0, 10, -10, 0, 10, 10, 0,
			-10, -10, 0, 10, 10, 0, -10, 10, 0,
		}},
		{Vertices: []float32{
			-10, -10, 5, 10, -10, 5, 10, 10, 5,
			-10, -10, 5, 10, 10, 5, -10, 10, 5,
		}},
	}}
	h := r.Register(geom, rl.Vector3{})

	hit, ok := r.SweepSphere(h, rl.Vector3{Z: 10}, rl.Vector3{Z: -10}, 0.5)
	if !ok {
		t.Fatal("expected a hit")
	}
	// First touch at center z = 5.5: fraction (10-5.5)/20 = 0.225.
	if math32.Abs(hit.Fraction-0.225) > sampleTolerance {
		t.Errorf("Fraction = %v, want 0.225 (nearer plane)", hit.Fraction)
	}
}

func TestSweepSphereEdgeContactNormal(t *testing.T) {
	r := NewRegistry()
	tri := Geometry{Meshes: []Mesh{{
		Vertices: []float32{-10, -10, 0, 10, -10, 0, 0, 10, 0},
	}}}
	h := r.Register(tri, rl.Vector3{})

	// Path passes beside the bottom edge (y = -10.3, radius 0.5): the
	// contact is against the edge, so the normal points from the edge
	// toward the sphere center rather than along the face normal.
	hit, ok := r.SweepSphere(h, rl.Vector3{Y: -10.3, Z: 10}, rl.Vector3{Y: -10.3, Z: -10}, 0.5)
	if !ok {
		t.Fatal("expected an edge hit")
	}
	if hit.Normal.Y >= 0 {
		t.Errorf("Normal = %v, want a -Y component for an edge graze", hit.Normal)
	}
	if hit.Normal.Z <= 0 {
		t.Errorf("Normal = %v, want a +Z component toward the approach side", hit.Normal)
	}
}

func TestSweepSphereMisses(t *testing.T) {
	r := NewRegistry()
	h := r.Register(Geometry{Meshes: []Mesh{{
		Vertices: []float32{-1, -1, 0, 1, -1, 0, 0, 1, 0},
	}}}, rl.Vector3{})

	// Path far from the triangle.
	if _, ok := r.SweepSphere(h, rl.Vector3{X: 50, Z: 10}, rl.Vector3{X: 50, Z: -10}, 0.5); ok {
		t.Error("distant sweep must miss")
	}
}

func TestSweepSphereUnknownHandle(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.SweepSphere(42, rl.Vector3{Z: 10}, rl.Vector3{Z: -10}, 1); ok {
		t.Error("sweep against unknown handle must fail")
	}
}

func TestSweepSphereDegenerateSegment(t *testing.T) {
	r := NewRegistry()
	h := r.Register(Geometry{Meshes: []Mesh{{
		Vertices: []float32{-10, -10, 0, 10, -10, 0, 0, 10, 0},
	}}}, rl.Vector3{})

	p := rl.Vector3{Z: 0.1}
	if _, ok := r.SweepSphere(h, p, p, 1); ok {
		t.Error("zero-length segment must fail")
	}
}

func TestSweepSphereStartsTouching(t *testing.T) {
	r := NewRegistry()
	h := r.Register(Geometry{Meshes: []Mesh{{
		Vertices: []float32{-10, -10, 0, 10, -10, 0, 0, 10, 0},
	}}}, rl.Vector3{})

	// Start already within radius of the plane: first touch at u = 0.
	hit, ok := r.SweepSphere(h, rl.Vector3{Z: 0.3}, rl.Vector3{Z: -10}, 0.5)
	if !ok {
		t.Fatal("expected a hit when starting in contact")
	}
	if hit.Fraction > sampleTolerance {
		t.Errorf("Fraction = %v, want ~0", hit.Fraction)
	}
}
