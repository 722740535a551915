package city

import (
	"math"
	"testing"

	"neoncity/internal/config"
	"neoncity/internal/engine"
)

func TestClockTick(t *testing.T) {
	var c Clock
	if dt, el := c.Tick(5); dt != 0 || el != 0 {
		t.Errorf("Expected first tick (0, 0), got (%v, %v)", dt, el)
	}
	if dt, el := c.Tick(5.5); dt != 0.5 || el != 0.5 {
		t.Errorf("Expected (0.5, 0.5), got (%v, %v)", dt, el)
	}
	if dt, el := c.Tick(5.2); dt != 0 || el != 0.5 {
		t.Errorf("Expected a stale timestamp to be ignored, got (%v, %v)", dt, el)
	}
	if dt, el := c.Tick(8); dt != 2.5 || el != 3 {
		t.Errorf("Expected (2.5, 3), got (%v, %v)", dt, el)
	}
}

func TestSceneStateStep(t *testing.T) {
	cfg := singleLaneConfig(1200, 4, 24, 1)
	b := newTestBuilder(cfg)
	traffic := b.SpawnTraffic(engine.NewGameObject("Vehicles"))
	sign := b.BuildRoundabout(engine.NewGameObject("Roundabout"))
	state := NewSceneState(traffic, sign)

	v := traffic.Lanes[0].Vehicles[2]
	start := v.Pos
	for i := 0; i < 10; i++ {
		state.Step(0.1)
	}

	if state.Frame != 10 {
		t.Errorf("Expected 10 frames, got %d", state.Frame)
	}
	if !approx(state.Elapsed, 1, 1e-9) {
		t.Errorf("Expected 1s elapsed, got %v", state.Elapsed)
	}
	if !approx(v.Pos, start+24, 1e-6) {
		t.Errorf("Expected vehicle at %v, got %v", start+24, v.Pos)
	}
	offset, _ := SignPose(1, sign.Params)
	if y, _ := sign.Pose(); !approx(float64(y), offset, 1e-4) {
		t.Errorf("Expected sign at %v, got %v", offset, y)
	}
}

func TestSceneStateSnapshot(t *testing.T) {
	cfg := config.Default()
	b := newTestBuilder(cfg)
	state := NewSceneState(b.SpawnTraffic(engine.NewGameObject("Vehicles")), b.BuildRoundabout(engine.NewGameObject("R")))
	state.Step(1)

	snap := state.Snapshot()
	if snap.Frame != 1 {
		t.Errorf("Expected frame 1, got %d", snap.Frame)
	}
	if len(snap.Vehicles) != 40 {
		t.Fatalf("Expected 40 vehicles, got %d", len(snap.Vehicles))
	}
	first := state.Traffic.Lanes[0].Vehicles[0]
	if snap.Vehicles[0].ID != first.Node.UID || snap.Vehicles[0].Lane != "x1" {
		t.Errorf("Expected first vehicle x1/%d, got %s/%d", first.Node.UID, snap.Vehicles[0].Lane, snap.Vehicles[0].ID)
	}

	state.Step(1)
	if snap.Vehicles[0].X == first.Node.Transform.Position.X {
		t.Errorf("Expected the snapshot to be detached from later frames")
	}
}

func TestSnapshotSignYawMonotonic(t *testing.T) {
	cfg := config.Default()
	b := newTestBuilder(cfg)
	state := NewSceneState(nil, b.BuildRoundabout(engine.NewGameObject("R")))

	prev := float32(-1)
	for i := 0; i < 40; i++ {
		state.Step(1)
		yaw := state.Snapshot().SignYaw
		if yaw <= prev {
			t.Fatalf("Expected increasing sign yaw at frame %d, got %v after %v", state.Frame, yaw, prev)
		}
		prev = yaw
	}
	if prev < 2*math.Pi {
		t.Errorf("Expected yaw past one full turn after 40s, got %v", prev)
	}
}
