package city

import (
	"math"
	"testing"

	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func defaultSignParams() SignParams {
	return SignParamsFrom(config.Default().Sign)
}

func TestSignPoseDeterministic(t *testing.T) {
	p := defaultSignParams()
	for _, ts := range []float64{0, 0.25, 3.7, 1000.125} {
		o1, y1 := SignPose(ts, p)
		o2, y2 := SignPose(ts, p)
		if o1 != o2 || y1 != y2 {
			t.Errorf("Expected identical pose at t=%v, got (%v, %v) and (%v, %v)", ts, o1, y1, o2, y2)
		}
	}
}

func TestSignPoseAtZero(t *testing.T) {
	p := defaultSignParams()
	offset, yaw := SignPose(0, p)
	if offset != p.Base || yaw != 0 {
		t.Errorf("Expected (%v, 0) at t=0, got (%v, %v)", p.Base, offset, yaw)
	}
}

func TestSignOffsetPeriodic(t *testing.T) {
	p := defaultSignParams()
	period := 2 * math.Pi / p.TimeScale
	for _, ts := range []float64{0, 0.4, 1.9, 12.3} {
		a, _ := SignPose(ts, p)
		b, _ := SignPose(ts+period, p)
		if !approx(a, b, 1e-9) {
			t.Errorf("Expected offset at t=%v to repeat after %v, got %v and %v", ts, period, a, b)
		}
		if a < p.Base-p.Amplitude-1e-9 || a > p.Base+p.Amplitude+1e-9 {
			t.Errorf("Offset %v outside base +- amplitude", a)
		}
	}
}

func TestSignYawMonotonic(t *testing.T) {
	p := defaultSignParams()
	prev := math.Inf(-1)
	for i := 0; i <= 1000; i++ {
		_, yaw := SignPose(float64(i)*0.05, p)
		if yaw < prev {
			t.Fatalf("Expected non-decreasing yaw, got %v after %v", yaw, prev)
		}
		prev = yaw
	}
	if _, yaw := SignPose(10, p); !approx(yaw, 10*1.2*0.35, 1e-9) {
		t.Errorf("Expected yaw 4.2 at t=10, got %v", yaw)
	}
}

func TestSignApply(t *testing.T) {
	node := engine.NewNode("Sign", engine.KindSign, rl.Vector3{})
	sign := &Sign{Node: node, Params: defaultSignParams()}
	sign.Apply(2)

	offset, yaw := SignPose(2, sign.Params)
	y, gotYaw := sign.Pose()
	if !approx(float64(y), offset, 1e-4) {
		t.Errorf("Expected sign height %v, got %v", offset, y)
	}
	if !approx(float64(gotYaw), yaw, 1e-4) {
		t.Errorf("Expected sign yaw %v, got %v", yaw, gotYaw)
	}
	if deg := float64(node.Transform.Rotation.Y); !approx(deg, math.Mod(yaw, 2*math.Pi)*180/math.Pi, 1e-3) {
		t.Errorf("Expected node rotation folded into one turn, got %v", deg)
	}
}

func TestSignPoseKeepsFullTurns(t *testing.T) {
	node := engine.NewNode("Sign", engine.KindSign, rl.Vector3{})
	sign := &Sign{Node: node, Params: defaultSignParams()}

	// 0.42 rad/s passes a full turn after about 15s.
	sign.Apply(30)
	_, yaw := sign.Pose()
	if !approx(float64(yaw), 30*1.2*0.35, 1e-4) {
		t.Errorf("Expected unwrapped yaw %v, got %v", 30*1.2*0.35, yaw)
	}
	if node.Transform.Rotation.Y >= 360 {
		t.Errorf("Expected node rotation below 360 degrees, got %v", node.Transform.Rotation.Y)
	}
}

func TestSignRestsAboveIsland(t *testing.T) {
	sc := config.Default().Sign
	p := SignParamsFrom(sc)
	top := float64(islandCenterY(sc) + sc.IslandHeight/2)
	if !approx(p.Base-top, float64(sc.Lift), 1e-5) {
		t.Errorf("Expected sign base %v above the island, got %v", sc.Lift, p.Base-top)
	}
}
