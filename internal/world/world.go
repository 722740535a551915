package world

import (
	"fmt"
	"log"
	"math/rand"

	"neoncity/internal/assets"
	"neoncity/internal/city"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	"github.com/dustin/go-humanize"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// World owns the generated city and the renderer that draws it.
type World struct {
	Scene    *engine.Scene
	City     *city.City
	Renderer *Renderer
	Palette  *assets.Palette
	logger   *log.Logger
}

// New generates the city from cfg. It needs no window; GPU resources are
// created on the first Draw.
func New(cfg config.Config, logger *log.Logger) (*World, error) {
	w := &World{
		Scene:    engine.NewScene("NeonCity"),
		Renderer: NewRenderer(),
		Palette:  assets.NewPalette(),
		logger:   logger,
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	c, err := city.Generate(w.Scene, cfg, w.Palette, rng)
	if err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	w.City = c
	w.Scene.Start()
	w.logSummary()
	return w, nil
}

func (w *World) logSummary() {
	if w.logger == nil {
		return
	}
	c := w.City
	w.logger.Printf("Generated city (seed %d): %s nodes, %s buildings of %s cells, %s vehicles in %d lanes",
		c.Config.Seed,
		humanize.Comma(int64(w.Scene.Count())),
		humanize.Comma(int64(len(c.Standing()))),
		humanize.Comma(int64(c.Grid.Cells)),
		humanize.Comma(int64(c.State.Traffic.Count())),
		len(c.State.Traffic.Lanes))
	w.logger.Printf("Junction clearance: %d removed (%d buildings, %d lamp poles) of %d inspected, %d dark lamps pruned",
		len(c.Clearance.Removed), c.Clearance.ByKind[engine.KindBuilding], c.Clearance.ByKind[engine.KindLampPost],
		c.Clearance.Inspected, c.DarkLamps)
}

// State is the per-frame animation state.
func (w *World) State() *city.SceneState {
	return w.City.State
}

// Advance animates the city to timestamp now (seconds since generation).
func (w *World) Advance(now float64) {
	s := w.City.State
	before := s.Elapsed
	s.Advance(now)
	w.Scene.Update(float32(s.Elapsed - before))
}

// Step animates the city by a fixed dt.
func (w *World) Step(dt float64) {
	w.City.State.Step(dt)
	w.Scene.Update(float32(dt))
}

// Pick returns the building under a screen-space ray, if any.
func (w *World) Pick(ray rl.Ray) (*city.Building, bool) {
	b, _, ok := city.PickBuilding(w.City.Buildings, ray.Position, ray.Direction, ClipFar)
	return b, ok
}

func (w *World) Draw(camera rl.Camera3D) {
	w.Renderer.Draw(w.Scene, camera)
}

func (w *World) Unload() {
	assets.Unload()
}
