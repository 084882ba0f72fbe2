package engine

import (
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewGameObject(t *testing.T) {
	obj := NewGameObject("TestObject")

	if obj.Name != "TestObject" {
		t.Errorf("Expected name 'TestObject', got '%s'", obj.Name)
	}

	if obj.Transform.Scale != (rl.Vector3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Expected unit scale, got %v", obj.Transform.Scale)
	}
}

func TestGameObjectHasTag(t *testing.T) {
	obj := NewGameObject("Test")
	obj.Tags = []string{"enemy", "ai", "dangerous"}

	if !obj.HasTag("enemy") {
		t.Error("HasTag should return true for existing tag")
	}

	if !obj.HasTag("ai") {
		t.Error("HasTag should return true for existing tag")
	}

	if obj.HasTag("player") {
		t.Error("HasTag should return false for non-existent tag")
	}

	// Test empty tags
	obj2 := NewGameObject("Test2")
	if obj2.HasTag("anything") {
		t.Error("HasTag should return false when Tags is nil/empty")
	}
}

func TestGameObjectParentChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child := NewGameObject("Child")

	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("Child.Parent should be set")
	}

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child, got %d", len(parent.Children))
	}

	if parent.Children[0] != child {
		t.Error("Child not added to parent's Children slice")
	}
}

func TestGameObjectRemoveChild(t *testing.T) {
	parent := NewGameObject("Parent")
	child1 := NewGameObject("Child1")
	child2 := NewGameObject("Child2")

	parent.AddChild(child1)
	parent.AddChild(child2)

	parent.RemoveChild(child1)

	if len(parent.Children) != 1 {
		t.Errorf("Expected 1 child after removal, got %d", len(parent.Children))
	}

	if parent.Children[0] != child2 {
		t.Error("Wrong child removed")
	}

	if child1.Parent != nil {
		t.Error("Removed child should have nil parent")
	}
}

func TestGameObjectSetParentReparents(t *testing.T) {
	first := NewGameObject("First")
	second := NewGameObject("Second")
	child := NewGameObject("Child")

	child.SetParent(first)
	child.SetParent(second)

	if child.Parent != second {
		t.Error("Child.Parent should be the second parent")
	}
	if len(first.Children) != 0 {
		t.Errorf("Expected first parent to have 0 children, got %d", len(first.Children))
	}
	if len(second.Children) != 1 {
		t.Errorf("Expected second parent to have 1 child, got %d", len(second.Children))
	}

	child.SetParent(nil)
	if child.Parent != nil {
		t.Error("SetParent(nil) should detach")
	}
	if len(second.Children) != 0 {
		t.Errorf("Expected 0 children after detach, got %d", len(second.Children))
	}
}

func TestGameObjectIsDescendantOf(t *testing.T) {
	root := NewGameObject("Root")
	mid := NewGameObject("Mid")
	leaf := NewGameObject("Leaf")
	other := NewGameObject("Other")

	root.AddChild(mid)
	mid.AddChild(leaf)

	if !leaf.IsDescendantOf(root) {
		t.Error("Leaf should be a descendant of Root")
	}
	if !leaf.IsDescendantOf(mid) {
		t.Error("Leaf should be a descendant of Mid")
	}
	if root.IsDescendantOf(leaf) {
		t.Error("Root should not be a descendant of Leaf")
	}
	if leaf.IsDescendantOf(other) {
		t.Error("Leaf should not be a descendant of Other")
	}
	if root.IsDescendantOf(root) {
		t.Error("An object is not its own descendant")
	}
}

func TestGameObjectWorldPositionScaled(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Position = rl.Vector3{X: 10, Y: 0, Z: 0}
	parent.Transform.Scale = rl.Vector3{X: 2, Y: 2, Z: 2}

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 1, Y: 2, Z: 3}
	parent.AddChild(child)

	got := child.WorldPosition()
	want := rl.Vector3{X: 12, Y: 4, Z: 6}
	if !vecNear(got, want) {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}
}

func TestGameObjectWorldPositionRotated(t *testing.T) {
	parent := NewGameObject("Parent")
	parent.Transform.Rotation.Y = math.Pi / 2

	child := NewGameObject("Child")
	child.Transform.Position = rl.Vector3{X: 0, Y: 8, Z: 10}
	parent.AddChild(child)

	got := child.WorldPosition()
	want := rl.Vector3{X: 10, Y: 8, Z: 0}
	if !vecNear(got, want) {
		t.Errorf("WorldPosition() = %v, want %v", got, want)
	}
	if child.WorldRotation().Y != parent.Transform.Rotation.Y {
		t.Errorf("WorldRotation().Y = %v, want %v", child.WorldRotation().Y, parent.Transform.Rotation.Y)
	}
}

func vecNear(a, b rl.Vector3) bool {
	const eps = 1e-4
	return math.Abs(float64(a.X-b.X)) < eps &&
		math.Abs(float64(a.Y-b.Y)) < eps &&
		math.Abs(float64(a.Z-b.Z)) < eps
}
