package game

// G is the gravitational constant in m³·kg⁻¹·s⁻².
const G = 6.67430e-11

// SurfaceGravity returns G·mass/radius².
//
// Radius is in kilometres, matching the body catalog, so the result is the
// catalog's display figure rather than an SI acceleration (Earth gives
// ~9.82e6). radius must be non-zero; NewBody enforces that for every body.
func SurfaceGravity(mass, radius float64) float64 {
	return G * mass / (radius * radius)
}
