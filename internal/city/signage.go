package city

import (
	"math"

	"neoncity/internal/config"
	"neoncity/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SignParams drives the floating sign. TimeScale converts seconds into the
// animation phase; SpinSpeed is the yaw gained per unit of phase.
type SignParams struct {
	Base      float64
	Amplitude float64
	TimeScale float64
	SpinSpeed float64
}

// SignPose is the sign's vertical position and yaw (radians) at elapsed
// time t. It depends on nothing but its arguments.
func SignPose(t float64, p SignParams) (offset, yaw float64) {
	phase := t * p.TimeScale
	return p.Base + p.Amplitude*math.Sin(phase), phase * p.SpinSpeed
}

type Sign struct {
	Node   *engine.GameObject
	Params SignParams
	yaw    float64
}

// Apply poses the sign for elapsed time t. The node's rotation is folded
// into one turn; the accumulated yaw is kept for Pose.
func (s *Sign) Apply(t float64) {
	offset, yaw := SignPose(t, s.Params)
	s.yaw = yaw
	s.Node.Transform.Position.Y = float32(offset)
	s.Node.Transform.Rotation.Y = float32(math.Mod(yaw, 2*math.Pi)) * rl.Rad2deg
}

// Pose returns the sign's current height and its unwrapped yaw in radians.
func (s *Sign) Pose() (float32, float32) {
	return s.Node.Transform.Position.Y, float32(s.yaw)
}

// SignParamsFrom derives the animation parameters, resting the sign Lift
// units above the island top.
func SignParamsFrom(sc config.Sign) SignParams {
	return SignParams{
		Base:      float64(islandCenterY(sc) + sc.IslandHeight/2 + sc.Lift),
		Amplitude: float64(sc.Amplitude),
		TimeScale: float64(sc.TimeScale),
		SpinSpeed: float64(sc.SpinSpeed),
	}
}
