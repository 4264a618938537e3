// Package picking provides ray casting and object picking utilities.
package picking

import (
	gomath "math"

	"github.com/Faultbox/boxview/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // Normalized direction
}

// At returns the point at distance d along the ray.
func (r Ray) At(d float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(d))
}

// AABB represents an axis-aligned bounding box.
type AABB struct {
	Min math.Vec3
	Max math.Vec3
}

// FromOriginExtent returns the box [origin, origin+extent].
// Negative extents are kept as given, so such a box contains nothing.
func FromOriginExtent(origin, extent math.Vec3) AABB {
	return AABB{Min: origin, Max: origin.Add(extent)}
}

// Contains reports whether p lies inside the box, boundaries included.
func (b AABB) Contains(p math.Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Inverted reports whether Min exceeds Max on any axis.
func (b AABB) Inverted() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y || b.Min.Z > b.Max.Z
}

// Slab returns the parameter interval [tmin, tmax] over which the ray is inside
// the box. ok is false when the ray misses the box entirely, including boxes
// that lie wholly behind the origin. An inverted box is never hit, matching
// Contains.
func (r Ray) Slab(box AABB) (tmin, tmax float32, ok bool) {
	if box.Inverted() {
		return 0, 0, false
	}
	tmin = float32(-gomath.MaxFloat32)
	tmax = float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	lo := box.Min.Array()
	hi := box.Max.Array()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] != 0 {
			t1 := (lo[axis] - origin[axis]) / dir[axis]
			t2 := (hi[axis] - origin[axis]) / dir[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if origin[axis] < lo[axis] || origin[axis] > hi[axis] {
			// Parallel to this slab and outside it
			return 0, 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, 0, false
	}
	return tmin, tmax, true
}
