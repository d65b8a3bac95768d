package game

import (
	"math"
	"math/rand/v2"
)

// BodySpec is a fixed catalog entry for one body.
type BodySpec struct {
	Name   string
	Orbit  float64 // display units at zoom 1
	Speed  float64 // nominal radians per tick, halved by NewBody
	Scale  float64
	Mass   float64 // kg
	Radius float64 // km
}

// SunSpec is the body fixed at the center of the scene.
var SunSpec = BodySpec{Name: "Sun", Orbit: 0, Speed: 0, Scale: 2.0, Mass: 1.989e30, Radius: 696340}

// PlanetSpecs lists the planets in draw order, innermost first.
var PlanetSpecs = []BodySpec{
	{Name: "Mercury", Orbit: 60, Speed: 0.02, Scale: 0.4, Mass: 3.3011e23, Radius: 2439.7},
	{Name: "Venus", Orbit: 90, Speed: 0.015, Scale: 0.6, Mass: 4.8675e24, Radius: 6051.8},
	{Name: "Earth", Orbit: 120, Speed: 0.012, Scale: 0.7, Mass: 5.972e24, Radius: 6371},
	{Name: "Mars", Orbit: 160, Speed: 0.01, Scale: 0.6, Mass: 6.4171e23, Radius: 3389.5},
	{Name: "Jupiter", Orbit: 220, Speed: 0.007, Scale: 1.4, Mass: 1.8982e27, Radius: 69911},
	{Name: "Saturn", Orbit: 280, Speed: 0.005, Scale: 1.3, Mass: 5.6834e26, Radius: 58232},
	{Name: "Uranus", Orbit: 340, Speed: 0.003, Scale: 1.0, Mass: 8.6810e25, Radius: 25362},
	{Name: "Neptune", Orbit: 400, Speed: 0.002, Scale: 1.0, Mass: 1.02413e26, Radius: 24622},
}

// BodyNames returns the Sun followed by every planet, in draw order.
func BodyNames() []string {
	names := make([]string, 0, len(PlanetSpecs)+1)
	names = append(names, SunSpec.Name)
	for _, p := range PlanetSpecs {
		names = append(names, p.Name)
	}
	return names
}

// NewRand returns a PCG source derived from seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed>>16|1)))
}

// NewSolarSystem builds the Sun and the planets. Each planet starts at a
// random phase in [0, 2π); the Sun starts at phase 0.
func NewSolarSystem(rng *rand.Rand) (*Body, []*Body) {
	sun := NewBody(SunSpec, 0)
	planets := make([]*Body, len(PlanetSpecs))
	for i, spec := range PlanetSpecs {
		planets[i] = NewBody(spec, rng.Float64()*2*math.Pi)
	}
	return sun, planets
}
