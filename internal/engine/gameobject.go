package engine

import rl "github.com/gen2brain/raylib-go/raylib"

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in radians
	Scale    rl.Vector3
}

type GameObject struct {
	Name      string
	Tags      []string
	Transform Transform
	Active    bool
	Scene     *Scene
	Parent    *GameObject
	Children  []*GameObject
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:   name,
		Active: true,
		Transform: Transform{
			Position: rl.Vector3{},
			Rotation: rl.Vector3{},
			Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
		},
		Children: make([]*GameObject, 0),
	}
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (g *GameObject) AddChild(child *GameObject) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = g
	g.Children = append(g.Children, child)
}

func (g *GameObject) RemoveChild(child *GameObject) {
	for i, c := range g.Children {
		if c == child {
			g.Children = append(g.Children[:i], g.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// SetParent attaches g to parent, or detaches it when parent is nil.
// The local transform is kept as-is, callers reposition after reparenting.
func (g *GameObject) SetParent(parent *GameObject) {
	if parent == nil {
		if g.Parent != nil {
			g.Parent.RemoveChild(g)
		}
		return
	}
	parent.AddChild(g)
}

// IsDescendantOf reports whether g sits anywhere below ancestor.
func (g *GameObject) IsDescendantOf(ancestor *GameObject) bool {
	for p := g.Parent; p != nil; p = p.Parent {
		if p == ancestor {
			return true
		}
	}
	return false
}

func (g *GameObject) WorldPosition() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Position
	}
	parentPos := g.Parent.WorldPosition()
	parentRot := g.Parent.WorldRotation()
	parentScale := g.Parent.WorldScale()

	scaled := rl.Vector3{
		X: g.Transform.Position.X * parentScale.X,
		Y: g.Transform.Position.Y * parentScale.Y,
		Z: g.Transform.Position.Z * parentScale.Z,
	}

	// X then Y then Z, same order the renderer uses
	rotX := rl.MatrixRotateX(parentRot.X)
	rotY := rl.MatrixRotateY(parentRot.Y)
	rotZ := rl.MatrixRotateZ(parentRot.Z)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	rotated := rl.Vector3Transform(scaled, rotMatrix)
	return rl.Vector3Add(parentPos, rotated)
}

func (g *GameObject) WorldRotation() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Rotation
	}
	return rl.Vector3Add(g.Parent.WorldRotation(), g.Transform.Rotation)
}

func (g *GameObject) WorldScale() rl.Vector3 {
	if g.Parent == nil {
		return g.Transform.Scale
	}
	ps := g.Parent.WorldScale()
	return rl.Vector3{
		X: ps.X * g.Transform.Scale.X,
		Y: ps.Y * g.Transform.Scale.Y,
		Z: ps.Z * g.Transform.Scale.Z,
	}
}
