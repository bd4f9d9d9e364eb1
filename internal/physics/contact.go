package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// resolveContact applies the collision impulse for a contact and corrects
// residual penetration.
//
// The impulse is the standard restitution impulse along the contact normal;
// the combined restitution is the product of both bodies' coefficients
// (fixed behavior, not claimed to be physically exact). Penetration is
// removed by moving each body toward the other's contact point weighted by
// its share of the pair's combined inverse mass, so lighter bodies absorb
// more of the correction and immovable bodies none of it.
func (s *Scene) resolveContact(cp *CollisionPoint) {
	bodyA := s.bodies.get(cp.BodyA)
	bodyB := s.bodies.get(cp.BodyB)
	if bodyA == nil || bodyB == nil {
		return
	}

	invMassSum := bodyA.InvMass + bodyB.InvMass
	if invMassSum == 0 {
		return
	}

	velocityDelta := rl.Vector3Subtract(bodyA.LinearVelocity, bodyB.LinearVelocity)
	closingSpeed := rl.Vector3DotProduct(velocityDelta, cp.Normal)

	// Only impulse bodies that are still approaching. Zero-time contacts
	// right after a resolution would otherwise re-flip velocities that
	// already point apart.
	if closingSpeed > 0 {
		restitution := bodyA.Restitution * bodyB.Restitution
		impulse := -(1 + restitution) * closingSpeed / invMassSum
		impulseOnA := rl.Vector3Scale(cp.Normal, impulse)

		bodyA.ApplyLinearImpulse(impulseOnA)
		bodyB.ApplyLinearImpulse(rl.Vector3Negate(impulseOnA))
	}

	// Positional correction, split by inverse-mass fraction.
	fractionA := bodyA.InvMass / invMassSum
	fractionB := bodyB.InvMass / invMassSum

	aToB := rl.Vector3Subtract(cp.PointOnBWorldSpace, cp.PointOnAWorldSpace)

	bodyA.Position = rl.Vector3Add(bodyA.Position, rl.Vector3Scale(aToB, fractionA))
	bodyB.Position = rl.Vector3Subtract(bodyB.Position, rl.Vector3Scale(aToB, fractionB))
}
