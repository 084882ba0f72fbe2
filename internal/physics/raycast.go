package physics

import (
	"github.com/mironco/ghosthunt/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raycast returns the closest collider hit along the ray, skipping any
// collider whose object the exclude filter rejects.
func (w *World) Raycast(origin, direction rl.Vector3, maxDistance float32, exclude engine.RaycastFilter) (engine.RaycastResult, bool) {
	direction = rl.Vector3Normalize(direction)
	var closest engine.RaycastResult
	closest.Distance = maxDistance
	hit := false

	for _, c := range w.colliders {
		if exclude != nil && c.Object != nil && exclude(c.Object) {
			continue
		}
		t, normal, ok := c.Box.IntersectRay(origin, direction, maxDistance)
		if !ok || t > closest.Distance {
			continue
		}
		if hit && t == closest.Distance {
			continue
		}
		closest = engine.RaycastResult{
			GameObject: c.Object,
			Point:      rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
			Normal:     normal,
			Distance:   t,
		}
		hit = true
	}

	return closest, hit
}

// IntersectRay runs the slab test against the box. direction must be normalized.
// A ray starting inside the box hits the far face.
func (a AABB) IntersectRay(origin, direction rl.Vector3, maxDistance float32) (float32, rl.Vector3, bool) {
	tmin := float32(-1e30)
	tmax := float32(1e30)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}

	if !slab(origin.X, direction.X, a.Min.X, a.Max.X) ||
		!slab(origin.Y, direction.Y, a.Min.Y, a.Max.Y) ||
		!slab(origin.Z, direction.Z, a.Min.Z, a.Max.Z) {
		return 0, rl.Vector3{}, false
	}

	if tmax < 0 || tmin > maxDistance {
		return 0, rl.Vector3{}, false
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return 0, rl.Vector3{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return t, a.faceNormal(point), true
}

func (a AABB) faceNormal(point rl.Vector3) rl.Vector3 {
	const epsilon = 0.001
	switch {
	case abs(point.Y-a.Max.Y) < epsilon:
		return rl.Vector3{Y: 1}
	case abs(point.Y-a.Min.Y) < epsilon:
		return rl.Vector3{Y: -1}
	case abs(point.X-a.Min.X) < epsilon:
		return rl.Vector3{X: -1}
	case abs(point.X-a.Max.X) < epsilon:
		return rl.Vector3{X: 1}
	case abs(point.Z-a.Min.Z) < epsilon:
		return rl.Vector3{Z: -1}
	default:
		return rl.Vector3{Z: 1}
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
