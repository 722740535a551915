package game

import (
	"log"
	"time"

	"neoncity/internal/camera"
	"neoncity/internal/city"
	"neoncity/internal/components"
	"neoncity/internal/engine"
	"neoncity/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Publisher receives a snapshot after every frame. Implementations must
// not block.
type Publisher interface {
	Publish(city.FrameSnapshot)
}

type Game struct {
	World     *world.World
	Camera    *camera.OrbitCamera
	Publisher Publisher
	DebugMode bool

	// Selected is the building shown in the info panel.
	Selected *city.Building
	OnSelect engine.EventWithArg[*city.Building]

	logger *log.Logger
	start  float64

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func New(w *world.World, logger *log.Logger) *Game {
	g := &Game{
		World:  w,
		Camera: camera.New(),
		logger: logger,
	}
	g.OnSelect.AddListener(func(b *city.Building) {
		g.Selected = b
	})
	return g
}

func (g *Game) Run(width, height int32, title string) {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)
	initRayguiStyle()
	defer g.World.Unload()

	g.start = rl.GetTime()
	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	if !g.pointerOverUI() {
		g.Camera.Update(deltaTime)
		if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			g.pick(rl.GetMousePosition())
		}
	}

	g.World.Advance(rl.GetTime() - g.start)
	g.publish()

	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Camera.Reset()
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

func (g *Game) publish() {
	if g.Publisher != nil {
		g.Publisher.Publish(g.World.State().Snapshot())
	}
}

func (g *Game) pick(mouse rl.Vector2) {
	ray := rl.GetScreenToWorldRay(mouse, g.Camera.GetRaylibCamera())
	b, ok := g.World.Pick(ray)
	if !ok {
		b = nil
	}
	g.Select(b)
}

// Select changes the building shown in the info panel. nil clears it.
func (g *Game) Select(b *city.Building) {
	if b == g.Selected {
		return
	}
	g.OnSelect.Invoke(b)
}

func (g *Game) Draw() {
	drawStart := time.Now()

	rl.BeginDrawing()
	g.World.Draw(g.Camera.GetRaylibCamera())
	if g.Selected != nil && g.Selected.Attached() {
		cam := g.Camera.GetRaylibCamera()
		rl.BeginMode3D(cam)
		box := g.Selected.Node.SubtreeBounds()
		rl.DrawBoundingBox(rl.BoundingBox{Min: box.Min, Max: box.Max}, colorAccentLight)
		rl.EndMode3D()
	}
	g.DrawUI()
	rl.EndDrawing()

	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0
}

// selectionLines are the info panel rows for the current selection.
func (g *Game) selectionLines() []string {
	if g.Selected == nil {
		return []string{"Click a building"}
	}
	info := engine.GetComponent[*components.BuildingInfo](g.Selected.Node)
	if info == nil {
		return []string{g.Selected.Node.Name}
	}
	return info.Describe()
}
