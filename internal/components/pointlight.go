package components

import (
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type PointLight struct {
	engine.BaseComponent
	Color     rl.Color
	Intensity float32
	Radius    float32 // falloff distance
}

func NewPointLight(color rl.Color, intensity, radius float32) *PointLight {
	return &PointLight{
		Color:     color,
		Intensity: intensity,
		Radius:    radius,
	}
}

func (p *PointLight) GetPosition() rl.Vector3 {
	if g := p.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3Zero()
}

// Draw renders the light as a soft halo; the scene has no lighting pass.
func (p *PointLight) Draw() {
	g := p.GetGameObject()
	if g == nil || !g.Active {
		return
	}
	halo := p.Color
	halo.A = 60
	rl.DrawSphere(p.GetPosition(), 0.6+0.2*p.Intensity, halo)
}
