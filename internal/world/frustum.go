package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	nearPlane float32 = 0.1
	farPlane  float32 = 2000.0
)

// Frustum holds the six view planes used to cull props.
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane is ax + by + cz + d = 0 with a unit normal pointing inward.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum builds the frustum of a perspective camera in view space.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)
	proj := rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearPlane, farPlane)
	return FrustumFromMatrix(rl.MatrixMultiply(view, proj))
}

// FrustumFromMatrix extracts the planes of a combined view-projection
// matrix (Gribb/Hartmann).
func FrustumFromMatrix(vp rl.Matrix) Frustum {
	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}
	w := rows[3]

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		r := rows[axis]
		f.planes[2*axis] = planeFromRow(w[0]+r[0], w[1]+r[1], w[2]+r[2], w[3]+r[3])
		f.planes[2*axis+1] = planeFromRow(w[0]-r[0], w[1]-r[1], w[2]-r[2], w[3]-r[3])
	}
	return f
}

func planeFromRow(a, b, c, d float32) Plane {
	p := Plane{normal: rl.Vector3{X: a, Y: b, Z: c}, distance: d}
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: d / length,
	}
}

// ContainsSphere reports whether a sphere is at least partly inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if rl.Vector3DotProduct(p.normal, center)+p.distance < -radius {
			return false
		}
	}
	return true
}
