package game

import (
	"math"
	"testing"
)

// far is a pointer position no body can be near.
var far = Point{X: -1000, Y: -1000}

func newTestSim(seed int64) *Sim {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return NewSim(cfg)
}

func angles(s *Sim) []float64 {
	out := make([]float64, 0, len(s.Bodies()))
	for _, b := range s.Bodies() {
		out = append(out, b.Angle)
	}
	return out
}

func TestNewSim(t *testing.T) {
	s := newTestSim(1)

	if s.Zoom != 1 || s.Paused {
		t.Errorf("initial state zoom=%v paused=%v, want 1 false", s.Zoom, s.Paused)
	}
	if s.Center != (Point{400, 300}) {
		t.Errorf("Center = %v, want (400, 300)", s.Center)
	}
	if len(s.Planets) != 8 || s.Stars.Len() != 200 {
		t.Errorf("got %d planets and %d stars, want 8 and 200", len(s.Planets), s.Stars.Len())
	}
	if s.Bodies()[0] != s.Sun {
		t.Error("Bodies()[0] is not the Sun")
	}
	for i, p := range s.Planets {
		if p.Name != PlanetSpecs[i].Name {
			t.Errorf("planet %d = %s, want %s", i, p.Name, PlanetSpecs[i].Name)
		}
		if p.Angle < 0 || p.Angle >= 2*math.Pi {
			t.Errorf("%s initial angle %v outside [0, 2π)", p.Name, p.Angle)
		}
	}
	if s.Sun.Angle != 0 || s.Sun.X != 400 || s.Sun.Y != 300 {
		t.Errorf("Sun at angle %v pos (%v, %v), want 0 at center", s.Sun.Angle, s.Sun.X, s.Sun.Y)
	}
}

func TestNewSimSeeded(t *testing.T) {
	a, b := angles(newTestSim(5)), angles(newTestSim(5))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("body %d angle %v vs %v for the same seed", i, a[i], b[i])
		}
	}
	c := angles(newTestSim(6))
	same := true
	for i := 1; i < len(a); i++ {
		same = same && a[i] == c[i]
	}
	if same {
		t.Error("different seeds produced identical planet phases")
	}
}

func TestTickAdvancesOneFrame(t *testing.T) {
	s := newTestSim(11)
	before := angles(s)

	s.Tick(far)

	if s.Sun.Angle != 0 {
		t.Errorf("Sun angle = %v, want 0", s.Sun.Angle)
	}
	for i, p := range s.Planets {
		want := before[i+1] + PlanetSpecs[i].Speed/2
		if p.Angle != want {
			t.Errorf("%s angle = %v, want %v", p.Name, p.Angle, want)
		}
	}
	if s.Ticks != 1 {
		t.Errorf("Ticks = %d, want 1", s.Ticks)
	}
}

func TestTickPlacesBeforeAdvancing(t *testing.T) {
	s := newTestSim(2)
	earth := s.Planets[2]
	theta := earth.Angle

	s.Tick(far)

	wantX := s.Center.X + 120*math.Cos(theta)
	wantY := s.Center.Y + 120*math.Sin(theta)
	if math.Abs(earth.X-wantX) > eps || math.Abs(earth.Y-wantY) > eps {
		t.Errorf("Earth at (%v, %v), want (%v, %v)", earth.X, earth.Y, wantX, wantY)
	}
}

func TestPauseFreezesAngles(t *testing.T) {
	s := newTestSim(3)
	s.Tick(far)

	s.Apply(Input{TogglePause: true})
	if !s.Paused {
		t.Fatal("expected paused")
	}
	frozen := angles(s)
	for i := 0; i < 100; i++ {
		s.Tick(far)
	}
	for i, a := range angles(s) {
		if a != frozen[i] {
			t.Errorf("body %d moved while paused: %v -> %v", i, frozen[i], a)
		}
	}

	s.Apply(Input{TogglePause: true})
	s.Tick(far)
	for i, b := range s.Bodies() {
		if want := frozen[i] + b.AngularSpeed; b.Angle != want {
			t.Errorf("%s resumed at %v, want %v", b.Name, b.Angle, want)
		}
	}
}

func TestZoomScroll(t *testing.T) {
	s := newTestSim(4)

	s.Apply(Input{Scroll: 1})
	if math.Abs(s.Zoom-1.1) > eps {
		t.Errorf("zoom after one scroll up = %v, want 1.1", s.Zoom)
	}
	s.Apply(Input{Scroll: -1})
	if math.Abs(s.Zoom-1) > eps {
		t.Errorf("zoom after up+down = %v, want 1", s.Zoom)
	}
	s.Apply(Input{Scroll: -1})
	if math.Abs(s.Zoom-1/1.1) > eps {
		t.Errorf("zoom after one scroll down = %v, want %v", s.Zoom, 1/1.1)
	}
	s.Apply(Input{Scroll: 1})

	for i := 0; i < 10; i++ {
		s.Apply(Input{Scroll: 1})
	}
	if math.Abs(s.Zoom-math.Pow(1.1, 10)) > 1e-9 {
		t.Errorf("zoom after 10 ups = %v, want %v", s.Zoom, math.Pow(1.1, 10))
	}
	for i := 0; i < 10; i++ {
		s.Apply(Input{Scroll: -1})
	}
	if math.Abs(s.Zoom-1) > 1e-12 {
		t.Errorf("zoom after 10 ups and 10 downs = %v, want 1", s.Zoom)
	}
}

func TestZoomIsUnbounded(t *testing.T) {
	s := newTestSim(4)
	s.Apply(Input{Scroll: 200})
	if s.Zoom < 1e8 {
		t.Errorf("zoom after 200 ups = %v, expected no upper clamp", s.Zoom)
	}
	s.Apply(Input{Scroll: -400})
	if s.Zoom > 1e-8 {
		t.Errorf("zoom after net 200 downs = %v, expected no lower clamp", s.Zoom)
	}
}

func TestApplyQuit(t *testing.T) {
	s := newTestSim(4)
	if !s.Apply(Input{Quit: true, TogglePause: true, Scroll: 1}) {
		t.Fatal("Apply did not report quit")
	}
	if s.Paused || s.Zoom != 1 {
		t.Error("quit tick should not mutate state")
	}
	if s.Apply(Input{}) {
		t.Error("empty input reported quit")
	}
}

func TestHoveredBeforeFirstTick(t *testing.T) {
	s := newTestSim(8)
	mars := s.Planets[3]
	if !mars.IsHovered(Point{mars.X, mars.Y}) {
		t.Fatal("body not hoverable at its construction position")
	}
	want := s.Center.X + 160*math.Cos(mars.Angle)
	if math.Abs(mars.X-want) > eps {
		t.Errorf("Mars placed at x=%v before first tick, want %v", mars.X, want)
	}
}

func TestHoveredSingleBody(t *testing.T) {
	s := newTestSim(9)
	mercury := s.Planets[0]
	pointer := Point{
		X: s.Center.X + 60*math.Cos(mercury.Angle),
		Y: s.Center.Y + 60*math.Sin(mercury.Angle),
	}

	s.Tick(pointer)

	hovered := s.Hovered()
	if len(hovered) != 1 || hovered[0] != mercury {
		names := make([]string, len(hovered))
		for i, b := range hovered {
			names[i] = b.Name
		}
		t.Fatalf("Hovered = %v, want [Mercury]", names)
	}

	s.Tick(far)
	if len(s.Hovered()) != 0 {
		t.Errorf("Hovered not cleared, got %d bodies", len(s.Hovered()))
	}
}

func TestHoveredOverlappingBodies(t *testing.T) {
	s := newTestSim(10)
	s.Zoom = 0.01 // every orbit collapses within 4px of center

	s.Tick(s.Center)

	hovered := s.Hovered()
	if len(hovered) != len(s.Bodies()) {
		t.Fatalf("hovered %d bodies, want all %d", len(hovered), len(s.Bodies()))
	}
	for i, b := range s.Bodies() {
		if hovered[i] != b {
			t.Errorf("hovered[%d] = %s, want %s", i, hovered[i].Name, b.Name)
		}
	}
}
