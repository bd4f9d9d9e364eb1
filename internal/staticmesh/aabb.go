package staticmesh

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

func emptyAABB() AABB {
	return AABB{
		Min: rl.Vector3{X: math32.MaxFloat32, Y: math32.MaxFloat32, Z: math32.MaxFloat32},
		Max: rl.Vector3{X: -math32.MaxFloat32, Y: -math32.MaxFloat32, Z: -math32.MaxFloat32},
	}
}

// grow extends the box to contain p.
func (a AABB) grow(p rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3{
			X: math32.Min(a.Min.X, p.X),
			Y: math32.Min(a.Min.Y, p.Y),
			Z: math32.Min(a.Min.Z, p.Z),
		},
		Max: rl.Vector3{
			X: math32.Max(a.Max.X, p.X),
			Y: math32.Max(a.Max.Y, p.Y),
			Z: math32.Max(a.Max.Z, p.Z),
		},
	}
}

// Intersects reports whether the boxes overlap.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// boundsOfTriangles computes the AABB of a triangle set.
func boundsOfTriangles(tris []Triangle) AABB {
	bounds := emptyAABB()
	for i := range tris {
		bounds = bounds.grow(tris[i].A)
		bounds = bounds.grow(tris[i].B)
		bounds = bounds.grow(tris[i].C)
	}
	return bounds
}
