package game

import (
	"fmt"
	"math"
	"strconv"
)

// Body display constants.
const (
	HoverRadius     = 15.0 // pointer distance (px) that counts as hovering
	BaseDisplaySize = 20.0 // sprite size (px) at zoom 1 and scale 1
	MinDisplaySize  = 10   // sprites never shrink below this (px)
	ScaleBoost      = 1.5  // applied to every catalog scale
)

// Point is a position in screen pixels.
type Point struct {
	X, Y float64
}

// Body is anything drawn on a fixed circular orbit around the scene center.
// The Sun is a Body with zero orbit and zero speed.
type Body struct {
	Name         string
	OrbitRadius  float64 // distance from center at zoom 1 (px)
	AngularSpeed float64 // radians per tick
	Angle        float64 // current phase (radians)
	DisplayScale float64
	X, Y         float64 // screen position from the last Place

	Mass    float64 // kg
	Radius  float64 // km
	Gravity float64 // cached SurfaceGravity(Mass, Radius)
}

// NewBody builds a body from its catalog entry at the given starting phase.
// The nominal speed is halved. Panics on a non-positive radius: the catalog
// is fixed, so that is a programming error.
func NewBody(spec BodySpec, angle float64) *Body {
	if spec.Radius <= 0 {
		panic(fmt.Sprintf("game: body %q has non-positive radius %v", spec.Name, spec.Radius))
	}
	return &Body{
		Name:         spec.Name,
		OrbitRadius:  spec.Orbit,
		AngularSpeed: spec.Speed / 2,
		Angle:        angle,
		DisplayScale: spec.Scale * ScaleBoost,
		Mass:         spec.Mass,
		Radius:       spec.Radius,
		Gravity:      SurfaceGravity(spec.Mass, spec.Radius),
	}
}

// Place recomputes the screen position from the current angle and returns
// the zoomed orbit radius.
func (b *Body) Place(center Point, zoom float64) float64 {
	orbit := b.OrbitRadius * zoom
	b.X = center.X + orbit*math.Cos(b.Angle)
	b.Y = center.Y + orbit*math.Sin(b.Angle)
	return orbit
}

// Advance moves the body along its orbit by one tick unless paused.
func (b *Body) Advance(paused bool) {
	if paused {
		return
	}
	b.Angle += b.AngularSpeed
}

// DisplaySize returns the sprite edge length in pixels at the given zoom.
func (b *Body) DisplaySize(zoom float64) int {
	return max(MinDisplaySize, int(math.Floor(BaseDisplaySize*zoom*b.DisplayScale)))
}

// IsHovered reports whether p lies within HoverRadius of the last placed position.
func (b *Body) IsHovered(p Point) bool {
	return math.Hypot(p.X-b.X, p.Y-b.Y) < HoverRadius
}

// Tooltip is the one-line description shown while the body is hovered.
func (b *Body) Tooltip() string {
	return fmt.Sprintf("%s - Gravity: %.2e m/s² - Radius: %s km",
		b.Name, b.Gravity, strconv.FormatFloat(b.Radius, 'f', -1, 64))
}
