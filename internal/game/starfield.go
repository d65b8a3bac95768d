package game

import (
	"math/rand/v2"

	"github.com/mlange-42/ark/ecs"
)

// Twinkle brightness bounds and speed range.
const (
	MinBrightness = 100.0
	MaxBrightness = 255.0
	MinTwinkle    = 0.5
	MaxTwinkle    = 2.0
)

// Position is a fixed screen position component.
type Position struct {
	X, Y float64
}

// Twinkle is an oscillating brightness component.
type Twinkle struct {
	Brightness float64 // always within [MinBrightness, MaxBrightness]
	Speed      float64 // brightness change per tick
	Direction  float64 // +1 brightening, -1 dimming
}

// Step moves brightness one tick and bounces off the bounds.
func (t *Twinkle) Step() {
	t.Brightness += t.Direction * t.Speed
	if t.Brightness >= MaxBrightness {
		t.Brightness = MaxBrightness
		t.Direction = -1
	} else if t.Brightness <= MinBrightness {
		t.Brightness = MinBrightness
		t.Direction = 1
	}
}

// StarField is the twinkling background. Stars live as ECS entities for the
// life of the field.
type StarField struct {
	world  *ecs.World
	filter *ecs.Filter2[Position, Twinkle]
	count  int
}

// NewStarField scatters n stars over [0, width]×[0, height].
func NewStarField(n, width, height int, rng *rand.Rand) *StarField {
	w := ecs.NewWorld(max(n, 1))
	mapper := ecs.NewMap2[Position, Twinkle](w)

	for i := 0; i < n; i++ {
		mapper.NewEntity(
			&Position{X: float64(rng.IntN(width + 1)), Y: float64(rng.IntN(height + 1))},
			&Twinkle{
				Brightness: MinBrightness + float64(rng.IntN(int(MaxBrightness-MinBrightness)+1)),
				Speed:      MinTwinkle + rng.Float64()*(MaxTwinkle-MinTwinkle),
				Direction:  1,
			},
		)
	}

	return &StarField{
		world:  w,
		filter: ecs.NewFilter2[Position, Twinkle](w),
		count:  n,
	}
}

// Len returns the number of stars.
func (f *StarField) Len() int { return f.count }

// Update steps every star's twinkle once.
func (f *StarField) Update() {
	query := f.filter.Query()
	for query.Next() {
		_, tw := query.Get()
		tw.Step()
	}
}

// Each calls fn for every star. Iteration order is stable between calls.
func (f *StarField) Each(fn func(pos Position, tw Twinkle)) {
	query := f.filter.Query()
	for query.Next() {
		pos, tw := query.Get()
		fn(*pos, *tw)
	}
}
