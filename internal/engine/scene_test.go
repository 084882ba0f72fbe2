package engine

import "testing"

func graveyard() (*Scene, *GameObject, []*GameObject) {
	scene := NewScene("graveyard")
	player := NewGameObject("player")
	player.Tags = []string{"player"}
	scene.AddGameObject(player)

	var ghosts []*GameObject
	for _, name := range []string{"ghost1", "ghost2", "ghost3"} {
		g := NewGameObject(name)
		g.Tags = []string{"ghost"}
		scene.AddGameObject(g)
		ghosts = append(ghosts, g)
	}
	return scene, player, ghosts
}

func TestSceneAddSetsBackReference(t *testing.T) {
	scene, player, ghosts := graveyard()

	if got := len(scene.GameObjects); got != 4 {
		t.Fatalf("len(GameObjects) = %d, want 4", got)
	}
	if player.Scene != scene || ghosts[2].Scene != scene {
		t.Error("Scene back reference not set")
	}
	if scene.GameObjects[1] != ghosts[0] {
		t.Error("objects are not kept in insertion order")
	}
}

func TestSceneFindByTag(t *testing.T) {
	scene, player, _ := graveyard()

	if got := len(scene.FindByTag("ghost")); got != 3 {
		t.Errorf("FindByTag(ghost) returned %d objects, want 3", got)
	}
	if got := scene.FindByTag("player"); len(got) != 1 || got[0] != player {
		t.Errorf("FindByTag(player) = %v", got)
	}
	if got := scene.FindByTag("container"); len(got) != 0 {
		t.Errorf("FindByTag(container) = %v, want none", got)
	}
}

func TestSceneRemove(t *testing.T) {
	scene, _, ghosts := graveyard()

	scene.RemoveGameObject(ghosts[0])

	if got := len(scene.GameObjects); got != 3 {
		t.Errorf("len(GameObjects) = %d after removal, want 3", got)
	}
	if ghosts[0].Scene != nil {
		t.Error("removed ghost keeps its scene")
	}
	if got := len(scene.FindByTag("ghost")); got != 2 {
		t.Errorf("%d ghosts left, want 2", got)
	}
}

func TestSceneRemoveTakesCarriedGhost(t *testing.T) {
	scene, player, ghosts := graveyard()
	ghosts[1].SetParent(player)

	scene.RemoveGameObject(player)

	if got := len(scene.GameObjects); got != 2 {
		t.Errorf("len(GameObjects) = %d, want 2", got)
	}
	if ghosts[1].Scene != nil {
		t.Error("carried ghost survived removal of the player")
	}
	if ghosts[2].Scene != scene {
		t.Error("free ghost removed with the player")
	}
}
