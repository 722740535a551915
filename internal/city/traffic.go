package city

import (
	"fmt"
	"math"

	"neoncity/internal/assets"
	"neoncity/internal/components"
	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CarColors is the neon body palette vehicles are painted from.
var CarColors = []rl.Color{
	{R: 0xff, G: 0x33, B: 0x55, A: 255},
	{R: 0x38, G: 0xbd, B: 0xf8, A: 255},
	{R: 0xa8, G: 0x55, B: 0xf7, A: 255},
	{R: 0xf9, G: 0x73, B: 0x16, A: 255},
	{R: 0x22, G: 0xc5, B: 0x5e, A: 255},
}

// Vehicle is one car on a lane. Only Pos changes after spawn.
type Vehicle struct {
	Node      *engine.GameObject
	Lane      string
	Axis      config.Axis
	Direction int
	Speed     float32
	Lateral   float32
	Pos       float64 // along the travel axis
}

// Heading is the yaw in radians that points the car's +X nose along its
// direction of travel.
func (v *Vehicle) Heading() float32 {
	dx, dz := 0.0, 0.0
	if v.Axis == config.AxisZ {
		dz = float64(v.Direction)
	} else {
		dx = float64(v.Direction)
	}
	return float32(math.Atan2(-dz, dx))
}

func (v *Vehicle) sync() {
	p := &v.Node.Transform.Position
	if v.Axis == config.AxisZ {
		p.Z = float32(v.Pos)
	} else {
		p.X = float32(v.Pos)
	}
}

// Step advances the vehicle by dt seconds and wraps it onto the road.
func (v *Vehicle) Step(dt, length float64) {
	v.Pos = Wrap(v.Pos+float64(v.Speed)*float64(v.Direction)*dt, length)
	v.sync()
}

// Wrap folds pos back into [-length/2, length/2], carrying any overshoot
// past one end in from the other.
func Wrap(pos, length float64) float64 {
	half := length / 2
	if pos <= half && pos >= -half {
		return pos
	}
	if length <= 0 {
		return 0
	}
	w := math.Mod(pos+half, length)
	if w < 0 {
		w += length
	}
	return w - half
}

type Lane struct {
	Spec     config.Lane
	Vehicles []*Vehicle
}

// Traffic owns every lane. Lanes are never resized after spawn.
type Traffic struct {
	Length float64
	Lanes  []*Lane
}

// SpawnPosition is the initial along-axis position of the i-th vehicle.
func SpawnPosition(lane config.Lane, roadLength float32, i int) float64 {
	half := float64(roadLength) / 2
	offset := float64(i) * float64(lane.Spacing(roadLength))
	if lane.Direction < 0 {
		return half - offset
	}
	return -half + offset
}

// Lateral is the across-axis placement of a lane's vehicles.
func Lateral(lane config.Lane, lateral float32) float32 {
	if lane.Axis == config.AxisZ {
		return lane.Offset + float32(lane.Direction)*lateral
	}
	return lane.Offset - float32(lane.Direction)*lateral
}

// SpawnTraffic creates every lane's vehicle pool under parent.
func (b *Builder) SpawnTraffic(parent *engine.GameObject) *Traffic {
	cfg := b.Config
	t := &Traffic{Length: float64(cfg.Corridor.RoadLength)}
	for _, spec := range cfg.Traffic.Lanes {
		lane := &Lane{Spec: spec}
		for i := 0; i < spec.Count; i++ {
			v := &Vehicle{
				Lane:      spec.Key,
				Axis:      spec.Axis,
				Direction: spec.Direction,
				Speed:     spec.Speed,
				Lateral:   Lateral(spec, cfg.Traffic.LateralOffset),
				Pos:       SpawnPosition(spec, cfg.Corridor.RoadLength, i),
			}
			color := CarColors[b.Rand.Intn(len(CarColors))]
			v.Node = b.newCar(fmt.Sprintf("Car_%s_%d", spec.Key, i), color)
			v.Node.AddComponent(&components.VehicleInfo{Lane: spec.Key, Speed: spec.Speed})
			v.Node.Transform.Position = along(spec.Axis, float32(v.Pos), v.Lateral, cfg.Traffic.RideHeight)
			v.Node.Transform.Rotation.Y = v.Heading() * rl.Rad2deg
			parent.AddChild(v.Node)
			lane.Vehicles = append(lane.Vehicles, v)
		}
		t.Lanes = append(t.Lanes, lane)
	}
	return t
}

// newCar builds a composite car whose nose points along local +X.
func (b *Builder) newCar(name string, color rl.Color) *engine.GameObject {
	root := engine.NewNode(name, engine.KindVehicle, rl.Vector3{})

	body := engine.NewNode(name+"_Body", engine.KindVehicle, rl.Vector3{Y: 0.55})
	body.AddComponent(components.NewMeshRenderer(assets.MeshCube, rl.Vector3{X: 3.8, Y: 1.1, Z: 2}, assets.CarPaint(color)))
	root.AddChild(body)

	cabin := b.mesh(name+"_Cabin", engine.KindVehicle, rl.Vector3{X: -0.1, Y: 1.1},
		assets.MeshCube, rl.Vector3{X: 2, Y: 0.9, Z: 1.6}, assets.MatCabin)
	root.AddChild(cabin)

	for i, side := range []float32{-1, 1} {
		lamp := b.mesh(fmt.Sprintf("%s_Headlight_%d", name, i), engine.KindVehicle,
			rl.Vector3{X: 1.9, Y: 0.5, Z: side * 0.6},
			assets.MeshCube, rl.Vector3{X: 0.15, Y: 0.2, Z: 0.25}, assets.MatHeadlight)
		root.AddChild(lamp)
	}
	return root
}

// Update moves every vehicle by dt seconds.
func (t *Traffic) Update(dt float64) {
	for _, lane := range t.Lanes {
		for _, v := range lane.Vehicles {
			v.Step(dt, t.Length)
		}
	}
}

func (t *Traffic) Lane(key string) *Lane {
	for _, l := range t.Lanes {
		if l.Spec.Key == key {
			return l
		}
	}
	return nil
}

// Count is the total number of vehicles.
func (t *Traffic) Count() int {
	n := 0
	for _, l := range t.Lanes {
		n += len(l.Vehicles)
	}
	return n
}

// Each calls fn for every vehicle in lane order.
func (t *Traffic) Each(fn func(*Vehicle)) {
	for _, l := range t.Lanes {
		for _, v := range l.Vehicles {
			fn(v)
		}
	}
}
