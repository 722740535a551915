package city

import (
	"fmt"

	"neoncity/internal/assets"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface heights keep the coplanar layers from z-fighting.
const (
	roadY     = 0.01
	sidewalkY = 0.015
	edgeY     = 0.029
	dashY     = 0.03
)

// CorridorGeometry lists the nodes emitted for one corridor.
type CorridorGeometry struct {
	Axis      config.Axis
	Center    float32
	Road      *engine.GameObject
	Sidewalks [2]*engine.GameObject
	Edges     [2]*engine.GameObject
	Dashes    []*engine.GameObject
}

// DashPositions returns the centres of the dashed centre line along a road
// of the given length. The first dash sits one dash length in from the
// start; a trailing partial dash is dropped.
func DashPositions(length, dash, gap float32) []float32 {
	if length <= 0 || dash <= 0 || gap < 0 {
		return nil
	}
	half := length / 2
	stride := dash + gap
	var out []float32
	for i := 0; ; i++ {
		pos := -half + dash + float32(i)*stride
		if pos > half-dash {
			break
		}
		out = append(out, pos)
	}
	return out
}

// along maps an (along-axis, across-axis) pair to world XZ for the axis.
func along(axis config.Axis, a, across, y float32) rl.Vector3 {
	if axis == config.AxisZ {
		return rl.Vector3{X: across, Y: y, Z: a}
	}
	return rl.Vector3{X: a, Y: y, Z: across}
}

// planeSize maps a (length, width) pair to a plane size for the axis.
func planeSize(axis config.Axis, length, width float32) rl.Vector3 {
	if axis == config.AxisZ {
		return rl.Vector3{X: width, Z: length}
	}
	return rl.Vector3{X: length, Z: width}
}

// BuildCorridor emits a road running along axis, offset to center on the
// other axis. Road and sidewalks go under roads, painted lines under markings.
func (b *Builder) BuildCorridor(roads, markings *engine.GameObject, cor config.Corridor, mk config.Markings, axis config.Axis, center float32) CorridorGeometry {
	geo := CorridorGeometry{Axis: axis, Center: center}
	L, W := cor.RoadLength, cor.RoadWidth

	geo.Road = b.mesh("Road_"+string(axis), engine.KindRoad,
		along(axis, 0, center, roadY), assets.MeshPlane, planeSize(axis, L, W), assets.MatRoad)
	roads.AddChild(geo.Road)

	walkOffset := W/2 + cor.SidewalkWidth/2
	for i, side := range []float32{-1, 1} {
		if cor.SidewalkWidth <= 0 {
			break
		}
		walk := b.mesh(fmt.Sprintf("Sidewalk_%s_%d", axis, i), engine.KindSidewalkStrip,
			along(axis, 0, center+side*walkOffset, sidewalkY), assets.MeshPlane,
			planeSize(axis, L, cor.SidewalkWidth), assets.MatSidewalk)
		roads.AddChild(walk)
		geo.Sidewalks[i] = walk
	}

	for i, pos := range DashPositions(L, mk.DashLength, mk.DashGap) {
		dash := b.mesh(fmt.Sprintf("Dash_%s_%d", axis, i), engine.KindLaneMarking,
			along(axis, pos, center, dashY), assets.MeshPlane,
			planeSize(axis, mk.DashLength, mk.DashWidth), assets.MatDash)
		markings.AddChild(dash)
		geo.Dashes = append(geo.Dashes, dash)
	}

	edgeOffset := W/2 - mk.EdgeInset
	for i, side := range []float32{-1, 1} {
		edge := b.mesh(fmt.Sprintf("Edge_%s_%d", axis, i), engine.KindLaneMarking,
			along(axis, 0, center+side*edgeOffset, edgeY), assets.MeshPlane,
			planeSize(axis, L, mk.EdgeWidth), assets.MatEdge)
		markings.AddChild(edge)
		geo.Edges[i] = edge
	}

	return geo
}
