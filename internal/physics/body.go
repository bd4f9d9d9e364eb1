package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Body is a rigid body. InvMass == 0 marks an immovable body: it is never
// integrated and never displaced by impulses or positional correction.
//
// Mass, restitution and shape are set by the caller before the body is
// added to a Scene; position and velocity are owned by the simulation
// afterwards. Renderers may read the fields for draw poses via Scene.Body
// or Scene.ForEachBody.
type Body struct {
	Position       rl.Vector3
	Rotation       rl.Quaternion
	Shape          Shape
	LinearVelocity rl.Vector3
	InvMass        float32 // inverse mass; 0 = infinite mass
	Restitution    float32 // 0 = inelastic, 1 = perfectly elastic
}

// CenterOfMassWorldSpace returns the body's center of mass in world space.
func (b *Body) CenterOfMassWorldSpace() rl.Vector3 {
	com := b.Shape.CenterOfMass()
	return rl.Vector3Add(b.Position, rl.Vector3RotateByQuaternion(com, b.Rotation))
}

// CenterOfMassModelSpace returns the body's center of mass in local space.
func (b *Body) CenterOfMassModelSpace() rl.Vector3 {
	return b.Shape.CenterOfMass()
}

// WorldSpaceToLocalSpace transforms a world-space point into body-local space.
func (b *Body) WorldSpaceToLocalSpace(point rl.Vector3) rl.Vector3 {
	tmp := rl.Vector3Subtract(point, b.CenterOfMassWorldSpace())
	return rl.Vector3RotateByQuaternion(tmp, rl.QuaternionInvert(b.Rotation))
}

// LocalSpaceToWorldSpace transforms a body-local point into world space.
func (b *Body) LocalSpaceToWorldSpace(point rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(b.CenterOfMassWorldSpace(), rl.Vector3RotateByQuaternion(point, b.Rotation))
}

// ApplyLinearImpulse changes the body's velocity by impulse * InvMass.
// Immovable bodies are unaffected.
func (b *Body) ApplyLinearImpulse(impulse rl.Vector3) {
	if b.InvMass == 0 {
		return
	}
	b.LinearVelocity = rl.Vector3Add(b.LinearVelocity, rl.Vector3Scale(impulse, b.InvMass))
}
