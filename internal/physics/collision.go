package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// CollisionPoint is a transient contact record. It references bodies by
// handle and is only valid until the body list is next mutated; it is
// produced by Intersect and consumed by the resolver within one substep.
type CollisionPoint struct {
	BodyA, BodyB BodyHandle

	// Contact points on each body's surface.
	PointOnAWorldSpace rl.Vector3
	PointOnBWorldSpace rl.Vector3
	PointOnALocalSpace rl.Vector3
	PointOnBLocalSpace rl.Vector3

	Normal     rl.Vector3 // unit, from A toward B
	ImpactTime float32    // seconds into the substep window, in [0, window]
}

const (
	relSpeedEpsilon  = 1e-8
	normalLenEpsilon = 1e-4
)

// Intersect performs continuous sphere-sphere collision detection between
// two bodies over a time window. It solves |r + v*t|^2 = R^2 for the
// earliest root. Bodies that already overlap report an immediate contact at
// t = 0. Returns false when the shapes cannot touch within the window.
func Intersect(ha BodyHandle, bodyA *Body, hb BodyHandle, bodyB *Body, window float32) (CollisionPoint, bool) {
	if bodyA.Shape.Kind != ShapeSphere || bodyB.Shape.Kind != ShapeSphere {
		return CollisionPoint{}, false
	}
	radiusA := bodyA.Shape.Radius
	radiusB := bodyB.Shape.Radius

	r := rl.Vector3Subtract(bodyB.Position, bodyA.Position)
	v := rl.Vector3Subtract(bodyB.LinearVelocity, bodyA.LinearVelocity)
	radiusSum := radiusA + radiusB

	a := rl.Vector3DotProduct(v, v)
	b := 2 * rl.Vector3DotProduct(r, v)
	c := rl.Vector3DotProduct(r, r) - radiusSum*radiusSum

	// Already overlapping: immediate zero-time contact.
	if c <= 0 {
		n := safeNormal(r)
		return makeContact(ha, bodyA, hb, bodyB, bodyA.Position, bodyB.Position, n, 0), true
	}

	// No closing relative speed: the gap never shrinks.
	if a <= relSpeedEpsilon {
		return CollisionPoint{}, false
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return CollisionPoint{}, false
	}

	t := (-b - math32.Sqrt(disc)) / (2 * a)
	if t < 0 || t > window {
		return CollisionPoint{}, false
	}

	posA := rl.Vector3Add(bodyA.Position, rl.Vector3Scale(bodyA.LinearVelocity, t))
	posB := rl.Vector3Add(bodyB.Position, rl.Vector3Scale(bodyB.LinearVelocity, t))
	n := safeNormal(rl.Vector3Subtract(posB, posA))

	return makeContact(ha, bodyA, hb, bodyB, posA, posB, n, t), true
}

// safeNormal normalizes v, falling back to the x axis when v is degenerate.
func safeNormal(v rl.Vector3) rl.Vector3 {
	length := rl.Vector3Length(v)
	if length > normalLenEpsilon {
		return rl.Vector3Scale(v, 1/length)
	}
	return rl.Vector3{X: 1}
}

func makeContact(ha BodyHandle, bodyA *Body, hb BodyHandle, bodyB *Body, posA, posB, normal rl.Vector3, t float32) CollisionPoint {
	cp := CollisionPoint{
		BodyA:      ha,
		BodyB:      hb,
		Normal:     normal,
		ImpactTime: t,
	}
	// Surface points offset from each center by its own radius along the normal.
	cp.PointOnAWorldSpace = rl.Vector3Add(posA, rl.Vector3Scale(normal, bodyA.Shape.Radius))
	cp.PointOnBWorldSpace = rl.Vector3Add(posB, rl.Vector3Scale(normal, -bodyB.Shape.Radius))
	cp.PointOnALocalSpace = bodyA.WorldSpaceToLocalSpace(cp.PointOnAWorldSpace)
	cp.PointOnBLocalSpace = bodyB.WorldSpaceToLocalSpace(cp.PointOnBWorldSpace)
	return cp
}
