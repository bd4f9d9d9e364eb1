package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastHit describes the closest body intersected by a ray.
type RaycastHit struct {
	Body     BodyHandle
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast checks the ray against every body's sphere and returns the
// closest hit within maxDistance.
func (s *Scene) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	direction = rl.Vector3Normalize(direction)
	closest := RaycastHit{Distance: maxDistance}
	hit := false

	s.bodies.forEach(func(h BodyHandle, b *Body) {
		if b.Shape.Kind != ShapeSphere {
			return
		}
		if info, ok := raycastSphere(origin, direction, b.Position, b.Shape.Radius, maxDistance); ok {
			if info.Distance < closest.Distance || !hit {
				closest = info
				closest.Body = h
				hit = true
			}
		}
	})

	return closest, hit
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (RaycastHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	sqrtD := math32.Sqrt(discriminant)
	t := (-b - sqrtD) / (2 * a)
	if t < 0 {
		t = (-b + sqrtD) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
