package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// EmptyAABB returns an inverted box that any Extend call will replace.
func EmptyAABB() AABB {
	inf := float32(math.Inf(1))
	return AABB{
		Min: rl.Vector3{X: inf, Y: inf, Z: inf},
		Max: rl.Vector3{X: -inf, Y: -inf, Z: -inf},
	}
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) IsEmpty() bool {
	return a.Min.X > a.Max.X || a.Min.Y > a.Max.Y || a.Min.Z > a.Max.Z
}

func (a AABB) Size() rl.Vector3 {
	if a.IsEmpty() {
		return rl.Vector3{}
	}
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

// Height is the Y extent of the box.
func (a AABB) Height() float32 {
	return a.Size().Y
}

// ExtendPoint grows the box to contain p.
func (a AABB) ExtendPoint(p rl.Vector3) AABB {
	return AABB{
		Min: rl.Vector3Min(a.Min, p),
		Max: rl.Vector3Max(a.Max, p),
	}
}

// Union returns the smallest box containing both a and b.
func (a AABB) Union(b AABB) AABB {
	if b.IsEmpty() {
		return a
	}
	if a.IsEmpty() {
		return b
	}
	return AABB{
		Min: rl.Vector3Min(a.Min, b.Min),
		Max: rl.Vector3Max(a.Max, b.Max),
	}
}

// Transform returns the world-space box enclosing the eight corners of a
// after they are moved by m.
func (a AABB) Transform(m rl.Matrix) AABB {
	if a.IsEmpty() {
		return a
	}
	out := EmptyAABB()
	for i := 0; i < 8; i++ {
		corner := rl.Vector3{X: a.Min.X, Y: a.Min.Y, Z: a.Min.Z}
		if i&1 != 0 {
			corner.X = a.Max.X
		}
		if i&2 != 0 {
			corner.Y = a.Max.Y
		}
		if i&4 != 0 {
			corner.Z = a.Max.Z
		}
		out = out.ExtendPoint(rl.Vector3Transform(corner, m))
	}
	return out
}

// OverlapsSquareXZ reports whether the box footprint touches the square
// [-r, r] x [-r, r] centred on the origin. Height is ignored.
func (a AABB) OverlapsSquareXZ(r float32) bool {
	if a.IsEmpty() {
		return false
	}
	return !(a.Min.X > r || a.Max.X < -r || a.Min.Z > r || a.Max.Z < -r)
}
