package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ShapeKind identifies a collision shape variant. The set is closed:
// dispatch switches on the kind instead of downcasting.
type ShapeKind int

const (
	// ShapeSphere is a sphere described by its radius.
	ShapeSphere ShapeKind = iota
)

// Shape is a geometric primitive in body-local space. It is immutable
// after creation and owned by exactly one Body.
type Shape struct {
	Kind   ShapeKind
	Radius float32 // valid for ShapeSphere
}

// NewSphere returns a sphere shape with the given radius.
func NewSphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

// CenterOfMass returns the local-space center of mass of the shape.
func (s Shape) CenterOfMass() rl.Vector3 {
	switch s.Kind {
	case ShapeSphere:
		return rl.Vector3{}
	default:
		return rl.Vector3{}
	}
}
