package config

import (
	"errors"
	"fmt"
	"math"
)

// Corridor describes one road corridor. HalfWidth is the exclusion radius
// measured from the road's centre line.
type Corridor struct {
	RoadWidth     float32 `yaml:"road_width" json:"road_width"`
	SidewalkWidth float32 `yaml:"sidewalk_width" json:"sidewalk_width"`
	RoadLength    float32 `yaml:"road_length" json:"road_length"`
	HalfWidth     float32 `yaml:"half_width" json:"half_width"`
}

// Markings sizes the painted lane markings.
type Markings struct {
	DashLength float32 `yaml:"dash_length" json:"dash_length"`
	DashWidth  float32 `yaml:"dash_width" json:"dash_width"`
	DashGap    float32 `yaml:"dash_gap" json:"dash_gap"`
	EdgeWidth  float32 `yaml:"edge_width" json:"edge_width"`
	EdgeInset  float32 `yaml:"edge_inset" json:"edge_inset"`
}

type Axis string

const (
	AxisX Axis = "x"
	AxisZ Axis = "z"
)

// Lane is one directional traffic path. Offset is the corridor centre the
// lane's vehicles are placed against.
type Lane struct {
	Key       string  `yaml:"key" json:"key"`
	Axis      Axis    `yaml:"axis" json:"axis"`
	Direction int     `yaml:"direction" json:"direction"`
	Speed     float32 `yaml:"speed" json:"speed"`
	Count     int     `yaml:"count" json:"count"`
	Offset    float32 `yaml:"offset" json:"offset"`
}

// Spacing is the longitudinal gap between consecutive vehicles.
func (l Lane) Spacing(roadLength float32) float32 {
	if l.Count <= 0 {
		return 0
	}
	return roadLength / float32(l.Count)
}

type Traffic struct {
	LateralOffset float32 `yaml:"lateral_offset" json:"lateral_offset"`
	RideHeight    float32 `yaml:"ride_height" json:"ride_height"`
	Lanes         []Lane  `yaml:"lanes" json:"lanes"`
}

type Grid struct {
	HalfExtent float32    `yaml:"half_extent" json:"half_extent"`
	Step       float32    `yaml:"step" json:"step"`
	Jitter     float32    `yaml:"jitter" json:"jitter"`
	MaxYaw     float32    `yaml:"max_yaw" json:"max_yaw"` // radians, total spread
	Width      [2]float32 `yaml:"width" json:"width"`
	Depth      [2]float32 `yaml:"depth" json:"depth"`
	Height     [2]float32 `yaml:"height" json:"height"`
}

type Lamps struct {
	Enabled  bool    `yaml:"enabled" json:"enabled"`
	Spacing  float32 `yaml:"spacing" json:"spacing"`
	EndInset float32 `yaml:"end_inset" json:"end_inset"`
	Setback  float32 `yaml:"setback" json:"setback"`
	Range    float32 `yaml:"range" json:"range"`
}

// Clearance parameterises the junction pass: the square half-size is
// RadiusFactor * RoadWidth, and boxes shorter than MinHeight are ignored.
type Clearance struct {
	RadiusFactor float32 `yaml:"radius_factor" json:"radius_factor"`
	MinHeight    float32 `yaml:"min_height" json:"min_height"`
}

type Sign struct {
	IslandRadius float32 `yaml:"island_radius" json:"island_radius"`
	IslandHeight float32 `yaml:"island_height" json:"island_height"`
	Lift         float32 `yaml:"lift" json:"lift"`
	Amplitude    float32 `yaml:"amplitude" json:"amplitude"`
	TimeScale    float32 `yaml:"time_scale" json:"time_scale"`
	SpinSpeed    float32 `yaml:"spin_speed" json:"spin_speed"`
	Width        float32 `yaml:"width" json:"width"`
	Height       float32 `yaml:"height" json:"height"`
}

type Config struct {
	Seed      int64     `yaml:"seed" json:"seed"`
	Corridor  Corridor  `yaml:"corridor" json:"corridor"`
	Markings  Markings  `yaml:"markings" json:"markings"`
	Traffic   Traffic   `yaml:"traffic" json:"traffic"`
	Grid      Grid      `yaml:"grid" json:"grid"`
	Lamps     Lamps     `yaml:"lamps" json:"lamps"`
	Clearance Clearance `yaml:"clearance" json:"clearance"`
	Sign      Sign      `yaml:"sign" json:"sign"`
}

const (
	roadWidth     = 40
	sidewalkWidth = 12
	citySize      = 600
	extraRing     = 200
)

// Default returns the reference layout: a 1400-unit cross of 40-unit roads
// with a building grid out to 500 units.
func Default() Config {
	return Config{
		Corridor: Corridor{
			RoadWidth:     roadWidth,
			SidewalkWidth: sidewalkWidth,
			RoadLength:    citySize + extraRing*2 + 400,
			HalfWidth:     roadWidth/2 + sidewalkWidth + 8,
		},
		Markings: Markings{
			DashLength: 10,
			DashWidth:  0.8,
			DashGap:    14,
			EdgeWidth:  0.4,
			EdgeInset:  1,
		},
		Traffic: Traffic{
			LateralOffset: 6,
			RideHeight:    0.7,
			Lanes: []Lane{
				{Key: "x1", Axis: AxisX, Direction: 1, Speed: 24, Count: 10, Offset: 4},
				{Key: "x2", Axis: AxisX, Direction: -1, Speed: 24, Count: 10, Offset: -4},
				{Key: "z1", Axis: AxisZ, Direction: 1, Speed: 22, Count: 10, Offset: 4},
				{Key: "z2", Axis: AxisZ, Direction: -1, Speed: 22, Count: 10, Offset: -4},
			},
		},
		Grid: Grid{
			HalfExtent: citySize/2 + extraRing,
			Step:       30,
			Jitter:     4,
			MaxYaw:     0.08,
			Width:      [2]float32{6, 16},
			Depth:      [2]float32{6, 14},
			Height:     [2]float32{18, 88},
		},
		Lamps: Lamps{
			Enabled:  true,
			Spacing:  48,
			EndInset: 20,
			Setback:  4,
			Range:    50,
		},
		Clearance: Clearance{
			RadiusFactor: 1.4,
			MinHeight:    2,
		},
		Sign: Sign{
			IslandRadius: 14,
			IslandHeight: 0.8,
			Lift:         11,
			Amplitude:    0.7,
			TimeScale:    1.2,
			SpinSpeed:    0.35,
			Width:        24,
			Height:       20,
		},
	}
}

// JunctionRadius is the half-size of the square kept clear at the origin.
func (c Config) JunctionRadius() float32 {
	return c.Clearance.RadiusFactor * c.Corridor.RoadWidth
}

// Validate checks the semantic invariants the schema cannot express. All
// violations are reported together.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	cor := c.Corridor
	if !positive(cor.RoadWidth) || !positive(cor.RoadLength) || cor.SidewalkWidth < 0 {
		add("corridor: road_width and road_length must be > 0, sidewalk_width >= 0")
	}
	if cor.HalfWidth < cor.RoadWidth/2+cor.SidewalkWidth {
		add("corridor: half_width %.2f must be >= road_width/2 + sidewalk_width (%.2f)",
			cor.HalfWidth, cor.RoadWidth/2+cor.SidewalkWidth)
	}

	m := c.Markings
	if !positive(m.DashLength) || !positive(m.DashWidth) || m.DashGap < 0 || !positive(m.EdgeWidth) {
		add("markings: dash_length, dash_width, edge_width must be > 0 and dash_gap >= 0")
	}
	if m.EdgeInset < 0 || m.EdgeInset > cor.RoadWidth/2 {
		add("markings: edge_inset %.2f must lie within half the road width", m.EdgeInset)
	}

	seen := make(map[string]bool, len(c.Traffic.Lanes))
	for i, l := range c.Traffic.Lanes {
		if l.Key == "" {
			add("traffic.lanes[%d]: key is required", i)
		} else if seen[l.Key] {
			add("traffic.lanes[%d]: duplicate key %q", i, l.Key)
		}
		seen[l.Key] = true
		if l.Axis != AxisX && l.Axis != AxisZ {
			add("traffic.lanes[%d]: axis %q must be x or z", i, l.Axis)
		}
		if l.Direction != 1 && l.Direction != -1 {
			add("traffic.lanes[%d]: direction must be 1 or -1, got %d", i, l.Direction)
		}
		if l.Speed < 0 {
			add("traffic.lanes[%d]: speed must be >= 0", i)
		}
		if l.Count < 0 {
			add("traffic.lanes[%d]: count must be >= 0", i)
		}
	}

	g := c.Grid
	if !positive(g.Step) || g.HalfExtent < 0 {
		add("grid: step must be > 0 and half_extent >= 0")
	}
	ranges := []struct {
		name string
		r    [2]float32
	}{{"width", g.Width}, {"depth", g.Depth}, {"height", g.Height}}
	for _, rg := range ranges {
		if !positive(rg.r[0]) || rg.r[1] < rg.r[0] {
			add("grid.%s: range [%.2f, %.2f] must be positive and ordered", rg.name, rg.r[0], rg.r[1])
		}
	}
	if g.Jitter < 0 || g.MaxYaw < 0 {
		add("grid: jitter and max_yaw must be >= 0")
	}
	// Half the widest footprint plus jitter must stay out of the corridor
	// for the exclusion rule alone to keep buildings off the road.
	reach := float32(math.Hypot(float64(g.Width[1]), float64(g.Depth[1])))/2 + g.Jitter/2
	if cor.HalfWidth-reach < cor.RoadWidth/2 {
		add("grid: buildings up to %.2f wide can reach the road from a cell at half_width %.2f", reach*2, cor.HalfWidth)
	}

	if c.Lamps.Enabled && !positive(c.Lamps.Spacing) {
		add("lamps: spacing must be > 0")
	}

	if !positive(c.Clearance.RadiusFactor) || c.Clearance.MinHeight < 0 {
		add("clearance: radius_factor must be > 0 and min_height >= 0")
	}

	s := c.Sign
	if !positive(s.IslandRadius) || !positive(s.TimeScale) || !positive(s.Width) || !positive(s.Height) {
		add("sign: island_radius, time_scale, width and height must be > 0")
	}

	return errors.Join(errs...)
}

func positive(v float32) bool {
	return v > 0 && !math.IsInf(float64(v), 0)
}
