package world

import (
	"neoncity/internal/components"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	ClipNear float32 = 0.1
	ClipFar  float32 = 4000.0
)

// Background is the night sky colour.
var Background = rl.Color{R: 0x05, G: 0x05, B: 0x0a, A: 255}

// RenderStats counts the last frame's draw decisions.
type RenderStats struct {
	Drawn  int
	Culled int
	Lights int
}

// Renderer draws every MeshRenderer and PointLight in a scene, skipping
// meshes outside the view frustum. The scene is lit by emissive colour only.
type Renderer struct {
	Stats RenderStats
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Collect walks the scene and returns the renderers visible through f. It
// performs no GPU work.
func (r *Renderer) Collect(scene *engine.Scene, f *Frustum) ([]*components.MeshRenderer, []*components.PointLight) {
	r.Stats = RenderStats{}
	var meshes []*components.MeshRenderer
	var lights []*components.PointLight

	scene.Traverse(func(g *engine.GameObject) bool {
		if !g.Active {
			return false
		}
		if mr := engine.GetComponent[*components.MeshRenderer](g); mr != nil {
			if f == nil || f.ContainsAABB(g.WorldBounds()) {
				meshes = append(meshes, mr)
				r.Stats.Drawn++
			} else {
				r.Stats.Culled++
			}
		}
		if pl := engine.GetComponent[*components.PointLight](g); pl != nil {
			if f == nil || f.ContainsSphere(pl.GetPosition(), 1) {
				lights = append(lights, pl)
				r.Stats.Lights++
			}
		}
		return true
	})
	return meshes, lights
}

// Draw renders the scene from camera. Must be called between BeginDrawing
// and EndDrawing.
func (r *Renderer) Draw(scene *engine.Scene, camera rl.Camera3D) {
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	f := ExtractFrustum(camera, aspect, ClipNear, ClipFar)
	meshes, lights := r.Collect(scene, &f)

	rl.ClearBackground(Background)
	rl.BeginMode3D(camera)
	for _, m := range meshes {
		m.Draw()
	}
	rl.BeginBlendMode(rl.BlendAdditive)
	for _, l := range lights {
		l.Draw()
	}
	rl.EndBlendMode()
	rl.EndMode3D()
}
