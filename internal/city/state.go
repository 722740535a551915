package city

// Clock turns monotonically increasing timestamps (seconds) into a frame
// delta and the time elapsed since the first tick.
type Clock struct {
	start, last float64
	started     bool
}

// Tick records now. The first tick yields a zero delta. A timestamp older
// than the previous one yields a zero delta rather than running time
// backwards.
func (c *Clock) Tick(now float64) (dt, elapsed float64) {
	if !c.started {
		c.start, c.last, c.started = now, now, true
		return 0, 0
	}
	if now > c.last {
		dt = now - c.last
		c.last = now
	}
	return dt, c.last - c.start
}

func (c *Clock) Elapsed() float64 {
	return c.last - c.start
}

// SceneState is everything the animation loop mutates between frames.
type SceneState struct {
	Traffic *Traffic
	Sign    *Sign
	Clock   Clock
	Frame   uint64
	Elapsed float64
}

func NewSceneState(traffic *Traffic, sign *Sign) *SceneState {
	s := &SceneState{Traffic: traffic, Sign: sign}
	s.Clock.Tick(0)
	return s
}

// Advance runs one frame at timestamp now.
func (s *SceneState) Advance(now float64) {
	dt, elapsed := s.Clock.Tick(now)
	s.apply(dt, elapsed)
}

// Step runs one frame dt seconds after the previous one.
func (s *SceneState) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.Advance(s.Clock.last + dt)
}

func (s *SceneState) apply(dt, elapsed float64) {
	s.Frame++
	s.Elapsed = elapsed
	if s.Traffic != nil {
		s.Traffic.Update(dt)
	}
	if s.Sign != nil {
		s.Sign.Apply(elapsed)
	}
}
