package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject removes g and every descendant still registered in the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range append([]*GameObject(nil), g.Children...) {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	g.Scene = nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}
