package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RayHit struct {
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// RayAABB intersects a ray with a box using the slab method. direction does
// not need to be normalized; Distance is measured in units of its length.
func RayAABB(origin, direction rl.Vector3, box AABB, maxDistance float32) (RayHit, bool) {
	if box.IsEmpty() {
		return RayHit{}, false
	}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	var normal rl.Vector3

	slab := func(o, d, lo, hi float32, axis rl.Vector3) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		n := rl.Vector3Negate(axis)
		if t1 > t2 {
			t1, t2 = t2, t1
			n = axis
		}
		if t1 > tmin {
			tmin = t1
			normal = n
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, box.Min.X, box.Max.X, rl.Vector3{X: 1}) {
		return RayHit{}, false
	}
	if !slab(origin.Y, direction.Y, box.Min.Y, box.Max.Y, rl.Vector3{Y: 1}) {
		return RayHit{}, false
	}
	if !slab(origin.Z, direction.Z, box.Min.Z, box.Max.Z, rl.Vector3{Z: 1}) {
		return RayHit{}, false
	}

	// Ray starts inside the box
	if tmin < 0 {
		if tmax < 0 {
			return RayHit{}, false
		}
		tmin = 0
		normal = rl.Vector3{}
	}
	if tmin > maxDistance {
		return RayHit{}, false
	}

	return RayHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, tmin)),
		Normal:   normal,
		Distance: tmin,
	}, true
}
