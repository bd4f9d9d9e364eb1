package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const testEpsilon = 1e-4

func vecNear(a, b rl.Vector3, eps float32) bool {
	return rl.Vector3Distance(a, b) <= eps
}

func TestBodyCenterOfMassWorldSpace(t *testing.T) {
	b := Body{
		Position: rl.Vector3{X: 1, Y: 2, Z: 3},
		Rotation: rl.QuaternionIdentity(),
		Shape:    NewSphere(5),
	}

	// A sphere's center of mass is its center, so world COM == position.
	com := b.CenterOfMassWorldSpace()
	if !vecNear(com, b.Position, testEpsilon) {
		t.Errorf("world COM = %v, want %v", com, b.Position)
	}

	if model := b.CenterOfMassModelSpace(); !vecNear(model, rl.Vector3{}, testEpsilon) {
		t.Errorf("model COM = %v, want origin", model)
	}
}

func TestBodySpaceConversionRoundTrip(t *testing.T) {
	b := Body{
		Position: rl.Vector3{X: 4, Y: -2, Z: 1},
		Rotation: rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, rl.Pi/2),
		Shape:    NewSphere(1),
	}

	world := rl.Vector3{X: 7, Y: 3, Z: -5}
	local := b.WorldSpaceToLocalSpace(world)
	back := b.LocalSpaceToWorldSpace(local)

	if !vecNear(back, world, testEpsilon) {
		t.Errorf("round trip = %v, want %v", back, world)
	}
}

func TestBodySpaceConversionRotated(t *testing.T) {
	// 90 degrees around Z: local +X maps to world +Y.
	b := Body{
		Position: rl.Vector3{},
		Rotation: rl.QuaternionFromAxisAngle(rl.Vector3{Z: 1}, rl.Pi/2),
		Shape:    NewSphere(1),
	}

	world := b.LocalSpaceToWorldSpace(rl.Vector3{X: 1})
	if !vecNear(world, rl.Vector3{Y: 1}, testEpsilon) {
		t.Errorf("local +X in world = %v, want (0,1,0)", world)
	}
}

func TestApplyLinearImpulse(t *testing.T) {
	b := Body{Shape: NewSphere(1), InvMass: 0.5}

	b.ApplyLinearImpulse(rl.Vector3{X: 10})
	if !vecNear(b.LinearVelocity, rl.Vector3{X: 5}, testEpsilon) {
		t.Errorf("velocity = %v, want (5,0,0)", b.LinearVelocity)
	}

	b.ApplyLinearImpulse(rl.Vector3{Y: -4})
	if !vecNear(b.LinearVelocity, rl.Vector3{X: 5, Y: -2}, testEpsilon) {
		t.Errorf("velocity = %v, want (5,-2,0)", b.LinearVelocity)
	}
}

func TestApplyLinearImpulseImmovable(t *testing.T) {
	b := Body{Shape: NewSphere(1), InvMass: 0}

	b.ApplyLinearImpulse(rl.Vector3{X: 1000})
	if !vecNear(b.LinearVelocity, rl.Vector3{}, 0) {
		t.Errorf("immovable body gained velocity %v", b.LinearVelocity)
	}
}
