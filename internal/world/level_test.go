package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultLevel(t *testing.T) {
	lf := DefaultLevel()

	if lf.Name != "graveyard" {
		t.Errorf("Name = %q", lf.Name)
	}
	if lf.Centre != (Vec3{80, 248, 120}) {
		t.Errorf("Centre = %v", lf.Centre)
	}
	if lf.Player.Offset != (Vec3{0, 8, 0}) {
		t.Errorf("Player.Offset = %v", lf.Player.Offset)
	}
	if lf.Container.Offset != (Vec3{0, 0, 400}) {
		t.Errorf("Container.Offset = %v", lf.Container.Offset)
	}

	want := []struct {
		name   string
		offset [2]float32
		speed  float32
		color  string
	}{
		{"ghost1", [2]float32{60, 3}, 0.02, "Green"},
		{"ghost2", [2]float32{75, -100}, 0.025, "SkyBlue"},
		{"ghost3", [2]float32{-75, -150}, 0.018, "Yellow"},
	}
	if len(lf.Ghosts) != len(want) {
		t.Fatalf("len(Ghosts) = %d, want %d", len(lf.Ghosts), len(want))
	}
	for i, w := range want {
		g := lf.Ghosts[i]
		if g.Name != w.name || g.Offset != w.offset || g.Speed != w.speed || g.Color != w.color {
			t.Errorf("Ghosts[%d] = %+v, want %+v", i, g, w)
		}
		if g.height() != 1 || g.amplitude() != 0.5 || g.spin() != 0.01 {
			t.Errorf("%s animation defaults = %v/%v/%v", g.Name, g.height(), g.amplitude(), g.spin())
		}
	}
}

func TestParseLevelRejectsBadLevels(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "no ghosts",
			content: "player: {radius: 6, half_height: 8}\ncontainer: {size: [1, 1, 1]}\n",
			wantErr: "no ghosts",
		},
		{
			name: "duplicate ghost",
			content: `player: {radius: 6, half_height: 8}
container: {size: [1, 1, 1]}
ghosts:
  - {name: a}
  - {name: a}
`,
			wantErr: `duplicate ghost "a"`,
		},
		{
			name: "flat terrain",
			content: `player: {radius: 6, half_height: 8}
container: {size: [1, 1, 1]}
ghosts: [{name: a}]
terrain: [{name: slab, size: [10, 0, 10]}]
`,
			wantErr: `terrain "slab"`,
		},
		{
			name:    "bad yaml",
			content: "ghosts: {",
			wantErr: "parse level",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ParseLevel() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadLevel(t *testing.T) {
	lf, err := LoadLevel("")
	if err != nil || lf.Name != "graveyard" {
		t.Fatalf("LoadLevel(\"\") = %v, %v", lf, err)
	}

	path := filepath.Join(t.TempDir(), "tiny.yaml")
	content := `name: tiny
player: {radius: 1, half_height: 2}
container: {offset: [0, 0, 10], size: [2, 2, 2]}
ghosts:
  - {name: only, offset: [3, 0], height: 4, scale: 1}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	lf, err = LoadLevel(path)
	if err != nil {
		t.Fatalf("LoadLevel() = %v", err)
	}
	if lf.Name != "tiny" || lf.Ghosts[0].height() != 4 || lf.Ghosts[0].scale() != 1 {
		t.Errorf("LoadLevel() = %+v", lf)
	}

	if _, err := LoadLevel(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadLevel(missing) = nil error")
	}
}

func TestLookupColor(t *testing.T) {
	if got := lookupColor("Yellow"); got != colorByName["Yellow"] {
		t.Errorf("lookupColor(Yellow) = %v", got)
	}
	if got := lookupColor("Chartreuse"); got != colorByName["White"] {
		t.Errorf("unknown color = %v, want white", got)
	}
}
