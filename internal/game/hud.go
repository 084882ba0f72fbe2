package game

import (
	"fmt"
	"strings"

	"github.com/mironco/ghosthunt/internal/config"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD theme, a dark blue-grey with a spectral green accent.
var (
	colorBgDark      = rl.NewColor(10, 12, 18, 230)
	colorBgElement   = rl.NewColor(28, 32, 44, 255)
	colorBgHover     = rl.NewColor(38, 44, 60, 255)
	colorAccent      = rl.NewColor(96, 230, 160, 255)
	colorTextPrimary = rl.NewColor(255, 255, 255, 255)
	colorTextMuted   = rl.NewColor(200, 204, 214, 255)
	colorBorder      = rl.NewColor(50, 56, 72, 255)
)

const victoryMessage = "All ghosts contained!"

func initHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextMuted))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(colorBorder))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)
}

func counterText(delivered, total int) string {
	return fmt.Sprintf("Ghosts: %d/%d", delivered, total)
}

func carryHint(ghost string) string {
	return fmt.Sprintf("Carrying %s, take it to the container", ghost)
}

// controlsHint lists the configured keys, e.g. "W A S D move, SPACE capture".
func controlsHint(c config.ControlsConfig) string {
	move := strings.ToUpper(strings.Join([]string{c.Forward, c.Left, c.Back, c.Right}, " "))
	return fmt.Sprintf("%s move, %s capture/deliver, right mouse orbit, wheel zoom, F1 debug",
		move, strings.ToUpper(c.Action))
}

func drawCounter(delivered, total int) {
	gui.Panel(rl.Rectangle{X: 10, Y: 10, Width: 180, Height: 40}, "")
	gui.Label(rl.Rectangle{X: 22, Y: 15, Width: 160, Height: 30}, counterText(delivered, total))
}

func drawHint(text string) {
	w := float32(rl.GetScreenWidth())
	gui.Label(rl.Rectangle{X: w/2 - 200, Y: 20, Width: 400, Height: 30}, text)
}

// drawVictory shows the end panel and reports whether Quit was clicked.
func drawVictory(total int) bool {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	bounds := rl.Rectangle{X: w/2 - 180, Y: h/2 - 80, Width: 360, Height: 160}

	rl.DrawRectangle(0, 0, int32(w), int32(h), rl.Fade(rl.Black, 0.4))
	gui.Panel(bounds, "")
	gui.Label(rl.Rectangle{X: bounds.X + 40, Y: bounds.Y + 20, Width: 280, Height: 30}, victoryMessage)
	gui.Label(rl.Rectangle{X: bounds.X + 40, Y: bounds.Y + 55, Width: 280, Height: 30}, counterText(total, total))
	return gui.Button(rl.Rectangle{X: bounds.X + 120, Y: bounds.Y + 105, Width: 120, Height: 36}, "Quit")
}
