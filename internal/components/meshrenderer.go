package components

import (
	"math"

	"neoncity/internal/assets"
	"neoncity/internal/engine"
	"neoncity/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MeshRenderer draws a generated primitive centred on its node. Caps, when
// set on a cube, is drawn over the top face.
type MeshRenderer struct {
	engine.BaseComponent
	Mesh     assets.MeshKey
	Material *assets.Material
	Caps     *assets.Material
}

func NewMeshRenderer(meshType assets.MeshType, size rl.Vector3, mat *assets.Material) *MeshRenderer {
	return &MeshRenderer{
		Mesh:     assets.MeshKey{Type: meshType, Size: size},
		Material: mat,
	}
}

// LocalBounds implements engine.Bounded
func (m *MeshRenderer) LocalBounds() physics.AABB {
	return physics.NewAABBFromCenter(rl.Vector3{}, m.Mesh.Size)
}

// ringSegments is the number of straight tube pieces a torus is drawn with.
const ringSegments = 48

// ringPoints is the tube centre line of a torus in the node's frame, closed
// so the last point repeats the first. The ring lies in the XZ plane.
func (m *MeshRenderer) ringPoints() []rl.Vector3 {
	s := m.Mesh.Size
	major := s.X/2 - s.Y/2
	pts := make([]rl.Vector3, 0, ringSegments+1)
	for i := 0; i <= ringSegments; i++ {
		sin, cos := math.Sincos(float64(i) * 2 * math.Pi / ringSegments)
		pts = append(pts, rl.Vector3{X: major * float32(cos), Z: major * float32(sin)})
	}
	return pts
}

func (m *MeshRenderer) drawRing(world rl.Matrix, color rl.Color) {
	tube := m.Mesh.Size.Y / 2
	pts := m.ringPoints()
	prev := rl.Vector3Transform(pts[0], world)
	for _, p := range pts[1:] {
		next := rl.Vector3Transform(p, world)
		rl.DrawCylinderEx(prev, next, tube, tube, 8, color)
		prev = next
	}
}

func (m *MeshRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.Material == nil {
		return
	}

	world := g.WorldMatrix()
	if m.Mesh.Type == assets.MeshTorus {
		m.drawRing(world, m.Material.Shade())
		return
	}
	model, ok := assets.Model(m.Mesh.Type)
	if !ok {
		return
	}
	model.Transform = rl.MatrixMultiply(m.Mesh.Transform(), world)
	rl.DrawModel(model, rl.Vector3Zero(), 1.0, m.Material.Shade())

	if m.Caps != nil && m.Mesh.Type == assets.MeshCube {
		size := m.Mesh.Size
		roof, _ := assets.Model(assets.MeshPlane)
		lift := rl.MatrixTranslate(0, size.Y/2+0.02, 0)
		top := assets.MeshKey{Type: assets.MeshPlane, Size: rl.Vector3{X: size.X, Z: size.Z}}
		roof.Transform = rl.MatrixMultiply(rl.MatrixMultiply(top.Transform(), lift), world)
		rl.DrawModel(roof, rl.Vector3Zero(), 1.0, m.Caps.Shade())
	}
}
