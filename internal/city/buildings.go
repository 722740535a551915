package city

import (
	"fmt"
	"math"

	"neoncity/internal/assets"
	"neoncity/internal/components"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Variant int

const (
	GlassBlue Variant = iota
	GlassPink
)

func (v Variant) String() string {
	if v == GlassPink {
		return "glass-pink"
	}
	return "glass-blue"
}

func (v Variant) material() string {
	if v == GlassPink {
		return assets.MatGlassPink
	}
	return assets.MatGlassBlue
}

// BuildingSpec is the sampled shape of one building.
type BuildingSpec struct {
	CellX, CellZ float32
	Width, Depth float32
	Height       float32
	JitterX      float32
	JitterZ      float32
	Yaw          float32 // radians
	Variant      Variant
}

type Building struct {
	Node *engine.GameObject
	Spec BuildingSpec
	Info *components.BuildingInfo
}

// GridReport counts what the placement pass visited.
type GridReport struct {
	Cells    int
	Excluded int
	Placed   int
}

// CellExcluded reports whether a cell centre lies inside either corridor's
// exclusion band. The band is open: a cell exactly at radius is kept.
func CellExcluded(x, z, radius float32) bool {
	return abs32(x) < radius || abs32(z) < radius
}

// GridCoords returns -half, -half+step, ... up to and including half.
func GridCoords(half, step float32) []float32 {
	if step <= 0 || half < 0 {
		return nil
	}
	n := int(math.Floor(float64(2*half/step) + 1e-6))
	out := make([]float32, 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, -half+float32(i)*step)
	}
	return out
}

// SampleBuilding draws one building's dimensions. Draw order is fixed so a
// seed reproduces the same city.
func (b *Builder) SampleBuilding(x, z float32) BuildingSpec {
	g := b.Config.Grid
	spec := BuildingSpec{CellX: x, CellZ: z}
	spec.Width = b.between(g.Width[0], g.Width[1])
	spec.Depth = b.between(g.Depth[0], g.Depth[1])
	spec.Height = b.between(g.Height[0], g.Height[1])
	if b.Rand.Float64() >= 0.5 {
		spec.Variant = GlassPink
	}
	spec.JitterX = b.centered(g.Jitter)
	spec.JitterZ = b.centered(g.Jitter)
	spec.Yaw = b.centered(g.MaxYaw)
	return spec
}

// PlaceBuildings fills every grid cell outside the corridors with a
// building under parent.
func (b *Builder) PlaceBuildings(parent *engine.GameObject) ([]*Building, GridReport) {
	var report GridReport
	var out []*Building
	g := b.Config.Grid
	radius := b.Config.Corridor.HalfWidth
	coords := GridCoords(g.HalfExtent, g.Step)

	for _, x := range coords {
		for _, z := range coords {
			report.Cells++
			if CellExcluded(x, z, radius) {
				report.Excluded++
				continue
			}
			bld := b.newBuilding(b.SampleBuilding(x, z))
			parent.AddChild(bld.Node)
			out = append(out, bld)
			report.Placed++
		}
	}
	return out, report
}

func (b *Builder) newBuilding(spec BuildingSpec) *Building {
	pos := rl.Vector3{X: spec.CellX + spec.JitterX, Y: spec.Height / 2, Z: spec.CellZ + spec.JitterZ}
	size := rl.Vector3{X: spec.Width, Y: spec.Height, Z: spec.Depth}

	node := engine.NewNode(fmt.Sprintf("Building_%d_%d", int(spec.CellX), int(spec.CellZ)), engine.KindBuilding, pos)
	node.Transform.Rotation.Y = spec.Yaw * rl.Rad2deg
	mr := components.NewMeshRenderer(assets.MeshCube, size, b.material(spec.Variant.material()))
	mr.Caps = b.material(assets.MatRoof)
	node.AddComponent(mr)

	info := &components.BuildingInfo{
		Height:  roundInt(spec.Height),
		Width:   roundInt(spec.Width),
		Depth:   roundInt(spec.Depth),
		Variant: spec.Variant.String(),
		CellX:   spec.CellX,
		CellZ:   spec.CellZ,
	}
	node.AddComponent(info)
	return &Building{Node: node, Spec: spec, Info: info}
}

// Attached reports whether the building is still part of a scene.
func (bld *Building) Attached() bool {
	return bld.Node.Scene != nil
}

func roundInt(v float32) int {
	return int(math.Round(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
