package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) Size() rl.Vector3 {
	return rl.Vector3Subtract(a.Max, a.Min)
}

func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// ResolveHorizontal returns the smallest push along X or Z that moves a out
// of b, or zero without overlap. A body pushed by a wall slides along it
// instead of being lifted.
func (a AABB) ResolveHorizontal(b AABB) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	dx1 := b.Max.X - a.Min.X
	dx2 := a.Max.X - b.Min.X
	dz1 := b.Max.Z - a.Min.Z
	dz2 := a.Max.Z - b.Min.Z

	min := dx1
	result := rl.Vector3{X: dx1}
	if dx2 < min {
		min = dx2
		result = rl.Vector3{X: -dx2}
	}
	if dz1 < min {
		min = dz1
		result = rl.Vector3{Z: dz1}
	}
	if dz2 < min {
		result = rl.Vector3{Z: -dz2}
	}
	return result
}
