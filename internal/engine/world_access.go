package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// RaycastResult holds information about a raycast hit.
// Defined here to avoid circular imports with physics package.
type RaycastResult struct {
	GameObject *GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// RaycastFilter returns true for objects the ray should ignore.
type RaycastFilter func(g *GameObject) bool

// ExcludeHierarchy ignores root and everything parented under it.
func ExcludeHierarchy(root *GameObject) RaycastFilter {
	return func(g *GameObject) bool {
		return g == root || g.IsDescendantOf(root)
	}
}

// Raycaster finds the nearest hit along a ray against collidable geometry.
type Raycaster interface {
	Raycast(origin, direction rl.Vector3, maxDistance float32, exclude RaycastFilter) (RaycastResult, bool)
}

// Mover translates an object by motion, resolving against static geometry.
// Returns the displacement actually applied.
type Mover interface {
	Move(g *GameObject, motion rl.Vector3) rl.Vector3
}

// FacingProvider exposes a camera's horizontal orientation in radians.
type FacingProvider interface {
	Facing() float32
}
