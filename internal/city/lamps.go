package city

import (
	"fmt"

	"neoncity/internal/assets"
	"neoncity/internal/components"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	lampCyan   = rl.Color{R: 0x38, G: 0xbd, B: 0xf8, A: 255}
	lampViolet = rl.Color{R: 0xa8, G: 0x55, B: 0xf7, A: 255}
)

// TagLampPole marks the pole of a lamp group. A group without one is dark.
const TagLampPole = "lamp-pole"

const (
	poleHeight = 6
	headHeight = 1.4
	headY      = 6.8
)

// LampPositions returns the along-axis stations of street lamps.
func LampPositions(length, spacing, inset float32) []float32 {
	if spacing <= 0 {
		return nil
	}
	half := length / 2
	var out []float32
	for i := 0; ; i++ {
		pos := -half + inset + float32(i)*spacing
		if pos > half-inset {
			break
		}
		out = append(out, pos)
	}
	return out
}

// PlaceLamps lines both sides of a corridor with lamps. Each lamp is a
// group holding a pole, a head and a point light. It returns the number of
// lamps placed.
func (b *Builder) PlaceLamps(parent *engine.GameObject, axis config.Axis, center float32) int {
	lc := b.Config.Lamps
	if !lc.Enabled {
		return 0
	}
	setback := b.Config.Corridor.RoadWidth/2 + lc.Setback
	n := 0
	for i, pos := range LampPositions(b.Config.Corridor.RoadLength, lc.Spacing, lc.EndInset) {
		for side, sign := range []float32{1, -1} {
			name := fmt.Sprintf("Lamp_%s_%d_%d", axis, i, side)
			lamp := engine.NewNode(name, engine.KindLampPost, along(axis, pos, center+sign*setback, 0))

			pole := b.mesh(name+"_Pole", engine.KindLampPost, rl.Vector3{Y: poleHeight / 2},
				assets.MeshCube, rl.Vector3{X: 0.4, Y: poleHeight, Z: 0.4}, assets.MatPole)
			pole.Tags = []string{TagLampPole}
			lamp.AddChild(pole)
			lamp.AddChild(b.mesh(name+"_Head", engine.KindLampPost, rl.Vector3{Y: headY},
				assets.MeshCube, rl.Vector3{X: 0.4, Y: headHeight, Z: 0.4}, assets.MatLampCyan))

			color := lampCyan
			if side == 1 {
				color = lampViolet
			}
			light := engine.NewNode(name+"_Light", engine.KindLampPost, rl.Vector3{Y: headY})
			light.AddComponent(components.NewPointLight(color, 1.4, lc.Range))
			lamp.AddChild(light)

			parent.AddChild(lamp)
			n++
		}
	}
	return n
}

// PruneDarkLamps removes every lamp whose pole was cleared, taking its head
// and light with it so nothing floats over the junction. It returns the
// number removed.
func PruneDarkLamps(parent *engine.GameObject) int {
	var dark []*engine.GameObject
	for _, lamp := range parent.Children {
		if !hasPole(lamp) {
			dark = append(dark, lamp)
		}
	}
	for _, lamp := range dark {
		parent.RemoveChild(lamp)
	}
	return len(dark)
}

func hasPole(lamp *engine.GameObject) bool {
	for _, c := range lamp.Children {
		if c.HasTag(TagLampPole) {
			return true
		}
	}
	return false
}
