package game

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors - neon on near-black
var (
	colorBgDark        = rl.NewColor(5, 5, 10, 255)
	colorBgPanel       = rl.NewColor(15, 23, 42, 230)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorBgHover       = rl.NewColor(38, 38, 52, 255)
	colorAccent        = rl.NewColor(236, 72, 153, 255)  // pink #ec4899
	colorAccentLight   = rl.NewColor(56, 189, 248, 255)  // cyan #38bdf8
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255) // White
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
	colorTextMuted     = rl.NewColor(119, 119, 119, 255)
)

const (
	panelWidth  = 220
	panelHeight = 150
	panelMargin = 12
)

// initRayguiStyle sets up the neon dark theme
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(50, 50, 65, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(rl.NewColor(40, 40, 55, 255)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func panelBounds() rl.Rectangle {
	return rl.Rectangle{
		X:      float32(rl.GetScreenWidth() - panelWidth - panelMargin),
		Y:      panelMargin,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

func (g *Game) pointerOverUI() bool {
	return rl.CheckCollisionPointRec(rl.GetMousePosition(), panelBounds())
}

func (g *Game) DrawUI() {
	rl.DrawText("Right drag to orbit, wheel to zoom, WASD to pan", 10, 10, 18, colorTextMuted)
	rl.DrawText("Click a building for details, F1 for stats", 10, 32, 18, colorTextMuted)
	rl.DrawFPS(10, 56)

	bounds := panelBounds()
	rl.DrawRectangleRec(bounds, colorBgPanel)
	gui.Panel(bounds, "Building")
	y := bounds.Y + 32
	for _, line := range g.selectionLines() {
		gui.Label(rl.Rectangle{X: bounds.X + 12, Y: y, Width: bounds.Width - 24, Height: 20}, line)
		y += 22
	}
	reset := rl.Rectangle{X: bounds.X + 12, Y: bounds.Y + bounds.Height - 34, Width: bounds.Width - 24, Height: 24}
	if gui.Button(reset, "Reset camera") {
		g.Camera.Reset()
	}

	if g.DebugMode {
		stats := g.World.Renderer.Stats
		state := g.World.State()
		rl.DrawText(fmt.Sprintf("Frame:   %d (%.1fs)", state.Frame, state.Elapsed), 10, 85, 16, colorAccentLight)
		rl.DrawText(fmt.Sprintf("Meshes:  %d drawn, %d culled", stats.Drawn, stats.Culled), 10, 105, 16, colorAccentLight)
		rl.DrawText(fmt.Sprintf("Lights:  %d", stats.Lights), 10, 125, 16, colorAccentLight)
		rl.DrawText(fmt.Sprintf("Update:  %.2f ms", g.updateMs), 10, 145, 16, rl.Green)
		rl.DrawText(fmt.Sprintf("Draw:    %.2f ms", g.drawMs), 10, 165, 16, rl.Green)
	}
}
