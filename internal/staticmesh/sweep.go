package staticmesh

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// sweepSamples is the sampling resolution along the motion segment.
	// Fixed-density sampling is an approximation: features thinner than
	// one sample step can be missed. An exact capsule-vs-triangle sweep
	// would remove the limitation at the cost of much hairier math.
	sweepSamples = 24
	// refineIterations tightens the first-touch fraction by bisection
	// between the last clear sample and the first touching one.
	refineIterations = 6

	segmentEpsilon = 1e-8
	normalEpsilon  = 1e-6
)

// SweepHit is the result of a swept-sphere query.
type SweepHit struct {
	Position rl.Vector3 // closest point on the touched triangle
	Normal   rl.Vector3 // surface normal at the touch point
	Fraction float32    // first-touch fraction along the segment, in [0,1]
}

// SweepSphere moves a sphere of the given radius from start to end and
// reports the earliest contact with the registered mesh. Returns false for
// an unknown handle, a degenerate segment, or when no triangle ever comes
// within radius of the swept path.
func (r *Registry) SweepSphere(handle int, start, end rl.Vector3, radius float32) (SweepHit, bool) {
	entry, ok := r.lookup(handle)
	if !ok {
		return SweepHit{}, false
	}

	d := rl.Vector3Subtract(end, start)
	if rl.Vector3Length(d) <= segmentEpsilon {
		return SweepHit{}, false
	}

	radiusSq := radius * radius
	best := SweepHit{}
	bestU := float32(1 + 1e-6)
	found := false

	for i := range entry.triangles {
		tri := &entry.triangles[i]
		for s := 0; s <= sweepSamples; s++ {
			u := float32(s) / float32(sweepSamples)
			center := rl.Vector3Add(start, rl.Vector3Scale(d, u))
			closest := closestPointOnTriangle(center, tri.A, tri.B, tri.C)
			diff := rl.Vector3Subtract(center, closest)
			if rl.Vector3DotProduct(diff, diff) > radiusSq {
				continue
			}

			// Touching at u: bisect between the previous sample and u
			// to tighten the first-touch fraction, then stop sampling
			// this triangle.
			low := math32.Max(0, u-1.0/float32(sweepSamples))
			high := u
			for iter := 0; iter < refineIterations; iter++ {
				mid := 0.5 * (low + high)
				c := rl.Vector3Add(start, rl.Vector3Scale(d, mid))
				cl := closestPointOnTriangle(c, tri.A, tri.B, tri.C)
				dv := rl.Vector3Subtract(c, cl)
				if rl.Vector3DotProduct(dv, dv) <= radiusSq {
					high = mid
				} else {
					low = mid
				}
			}
			hitU := 0.5 * (low + high)

			if hitU < bestU {
				bestU = hitU
				hitCenter := rl.Vector3Add(start, rl.Vector3Scale(d, hitU))
				closest := closestPointOnTriangle(hitCenter, tri.A, tri.B, tri.C)
				n := rl.Vector3Subtract(hitCenter, closest)
				nLen := rl.Vector3Length(n)
				if nLen > normalEpsilon {
					best.Normal = rl.Vector3Scale(n, 1/nLen)
				} else {
					// Center on the triangle plane: use the face normal.
					best.Normal = tri.Normal
				}
				best.Position = closest
				best.Fraction = hitU
				found = true
			}
			break
		}
	}

	if !found {
		return SweepHit{}, false
	}
	return best, true
}

// closestPointOnTriangle returns the point on triangle abc closest to p,
// by classifying p against the triangle's vertex, edge and face regions
// (Ericson, Real-Time Collision Detection).
func closestPointOnTriangle(p, a, b, c rl.Vector3) rl.Vector3 {
	ab := rl.Vector3Subtract(b, a)
	ac := rl.Vector3Subtract(c, a)

	ap := rl.Vector3Subtract(p, a)
	d1 := rl.Vector3DotProduct(ab, ap)
	d2 := rl.Vector3DotProduct(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}

	bp := rl.Vector3Subtract(p, b)
	d3 := rl.Vector3DotProduct(ab, bp)
	d4 := rl.Vector3DotProduct(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return rl.Vector3Add(a, rl.Vector3Scale(ab, v))
	}

	cp := rl.Vector3Subtract(p, c)
	d5 := rl.Vector3DotProduct(ab, cp)
	d6 := rl.Vector3DotProduct(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return rl.Vector3Add(a, rl.Vector3Scale(ac, w))
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return rl.Vector3Add(b, rl.Vector3Scale(rl.Vector3Subtract(c, b), w))
	}

	// Face region: project p onto the triangle plane.
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return rl.Vector3Add(a, rl.Vector3Add(rl.Vector3Scale(ab, v), rl.Vector3Scale(ac, w)))
}
