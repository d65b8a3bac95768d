package game

// ZoomStep is the zoom factor applied per scroll notch.
const ZoomStep = 1.1

// Config sizes the scene. The zero value is not usable; start from DefaultConfig.
type Config struct {
	Width, Height int   // logical screen size (px)
	Stars         int   // star field population
	Seed          int64 // seeds planet phases and the star field
}

// DefaultConfig returns an 800x600 scene with 200 stars.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, Stars: 200}
}

// Center returns the point every body orbits.
func (c Config) Center() Point {
	return Point{X: float64(c.Width / 2), Y: float64(c.Height / 2)}
}

// Input is one tick's worth of polled user commands.
type Input struct {
	Quit        bool
	TogglePause bool
	Scroll      int // notches: positive zooms in, negative zooms out
}

// Sim is the orrery state. It owns every body and star for its lifetime and
// is only touched from the game loop.
type Sim struct {
	Zoom    float64
	Paused  bool
	Center  Point
	Sun     *Body
	Planets []*Body
	Stars   *StarField
	Ticks   uint64

	bodies  []*Body // Sun first, then Planets
	hovered []*Body
}

// NewSim builds the scene from cfg. Bodies are placed once at zoom 1 so hover
// tests are meaningful before the first tick.
func NewSim(cfg Config) *Sim {
	rng := NewRand(cfg.Seed)
	sun, planets := NewSolarSystem(rng)
	stars := NewStarField(cfg.Stars, cfg.Width, cfg.Height, rng)

	s := &Sim{
		Zoom:    1.0,
		Center:  cfg.Center(),
		Sun:     sun,
		Planets: planets,
		Stars:   stars,
		bodies:  append([]*Body{sun}, planets...),
	}
	for _, b := range s.bodies {
		b.Place(s.Center, s.Zoom)
	}
	return s
}

// Bodies returns the Sun followed by the planets in draw order.
func (s *Sim) Bodies() []*Body { return s.bodies }

// TogglePause freezes or resumes every orbit.
func (s *Sim) TogglePause() { s.Paused = !s.Paused }

// ZoomIn scales the scene up one step. Zoom is unbounded.
func (s *Sim) ZoomIn() { s.Zoom *= ZoomStep }

// ZoomOut scales the scene down one step. Zoom is unbounded.
func (s *Sim) ZoomOut() { s.Zoom /= ZoomStep }

// Apply executes the polled commands and reports whether the user asked to quit.
func (s *Sim) Apply(in Input) bool {
	if in.Quit {
		return true
	}
	if in.TogglePause {
		s.TogglePause()
	}
	for i := 0; i < in.Scroll; i++ {
		s.ZoomIn()
	}
	for i := 0; i > in.Scroll; i-- {
		s.ZoomOut()
	}
	return false
}

// Tick advances the scene by one frame. Each body is placed from its current
// angle before it advances, so the drawn position and hover test both use
// the pre-advance phase.
func (s *Sim) Tick(pointer Point) {
	s.Ticks++
	s.Stars.Update()

	s.hovered = s.hovered[:0]
	for _, b := range s.bodies {
		b.Place(s.Center, s.Zoom)
		b.Advance(s.Paused)
		if b.IsHovered(pointer) {
			s.hovered = append(s.hovered, b)
		}
	}
}

// Hovered returns the bodies under the pointer after the last Tick, Sun first.
// The slice is reused by the next Tick.
func (s *Sim) Hovered() []*Body { return s.hovered }
