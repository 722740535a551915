package city

import (
	"neoncity/internal/assets"
	"neoncity/internal/components"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const islandClearance = 0.04

var signGlow = rl.Color{R: 0xfb, G: 0xbf, B: 0x24, A: 255}

func islandCenterY(sc config.Sign) float32 {
	return sc.IslandHeight/2 + islandClearance
}

// BuildRoundabout places the island, its neon ring, the core light and the
// floating sign at the origin. The sign starts posed for t = 0.
func (b *Builder) BuildRoundabout(parent *engine.GameObject) *Sign {
	sc := b.Config.Sign
	r := sc.IslandRadius
	y := islandCenterY(sc)

	island := b.mesh("Island", engine.KindIsland, rl.Vector3{Y: y},
		assets.MeshCylinder, rl.Vector3{X: r * 2, Y: sc.IslandHeight, Z: r * 2}, assets.MatIsland)
	parent.AddChild(island)

	ringR, tube := r-1.5, float32(0.4)
	ringD := ringR*2 + tube*2
	ring := b.mesh("IslandRing", engine.KindIsland, rl.Vector3{Y: y + sc.IslandHeight/2 + 0.05},
		assets.MeshTorus, rl.Vector3{X: ringD, Y: tube * 2, Z: ringD}, assets.MatRing)
	parent.AddChild(ring)

	core := engine.NewNode("IslandLight", engine.KindIsland, rl.Vector3{Y: y + 2})
	core.AddComponent(components.NewPointLight(signGlow, 1.8, 80))
	parent.AddChild(core)

	board := b.mesh("Sign", engine.KindSign, rl.Vector3{},
		assets.MeshCube, rl.Vector3{X: sc.Width, Y: sc.Height, Z: 0.2}, assets.MatSign)
	parent.AddChild(board)

	sign := &Sign{Node: board, Params: SignParamsFrom(sc)}
	sign.Apply(0)
	return sign
}
