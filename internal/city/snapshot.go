package city

import "neoncity/internal/config"

// VehicleState is the observable pose of one vehicle.
type VehicleState struct {
	ID   uint64  `json:"id"`
	Lane string  `json:"lane"`
	X    float32 `json:"x"`
	Z    float32 `json:"z"`
	Yaw  float32 `json:"yaw"`
}

// FrameSnapshot is an immutable copy of one frame, safe to hand to other
// goroutines.
type FrameSnapshot struct {
	Frame    uint64         `json:"frame"`
	Elapsed  float64        `json:"elapsed"`
	Vehicles []VehicleState `json:"vehicles"`
	SignY    float32        `json:"sign_y"`
	SignYaw  float32        `json:"sign_yaw"`
}

func (s *SceneState) Snapshot() FrameSnapshot {
	snap := FrameSnapshot{Frame: s.Frame, Elapsed: s.Elapsed}
	if s.Traffic != nil {
		snap.Vehicles = make([]VehicleState, 0, s.Traffic.Count())
		s.Traffic.Each(func(v *Vehicle) {
			p := v.Node.Transform.Position
			snap.Vehicles = append(snap.Vehicles, VehicleState{
				ID:   v.Node.UID,
				Lane: v.Lane,
				X:    p.X,
				Z:    p.Z,
				Yaw:  v.Heading(),
			})
		})
	}
	if s.Sign != nil {
		snap.SignY, snap.SignYaw = s.Sign.Pose()
	}
	return snap
}

type BuildingRecord struct {
	ID      uint64  `json:"id"`
	X       float32 `json:"x"`
	Z       float32 `json:"z"`
	Height  int     `json:"height"`
	Width   int     `json:"width"`
	Depth   int     `json:"depth"`
	Variant string  `json:"variant"`
}

// Layout is the static description of a generated city.
type Layout struct {
	Seed      int64            `json:"seed"`
	Corridor  config.Corridor  `json:"corridor"`
	Lanes     []config.Lane    `json:"lanes"`
	Buildings []BuildingRecord `json:"buildings"`
	Cleared   int              `json:"cleared"`
	Lamps     int              `json:"lamps"`
}

func (c *City) Layout() Layout {
	l := Layout{
		Seed:     c.Config.Seed,
		Corridor: c.Config.Corridor,
		Lanes:    append([]config.Lane(nil), c.Config.Traffic.Lanes...),
		Cleared:  len(c.Clearance.Removed),
		Lamps:    len(c.Scene.FindByTag(TagLampPole)),
	}
	for _, b := range c.Standing() {
		p := b.Node.Transform.Position
		l.Buildings = append(l.Buildings, BuildingRecord{
			ID:      b.Node.UID,
			X:       p.X,
			Z:       p.Z,
			Height:  b.Info.Height,
			Width:   b.Info.Width,
			Depth:   b.Info.Depth,
			Variant: b.Info.Variant,
		})
	}
	return l
}
