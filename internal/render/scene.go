package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/orrery/orrery/internal/game"
)

// TooltipOffset is the distance from the pointer to a tooltip's corner.
const TooltipOffset = 10

// SceneRenderer draws a game.Sim to an Ebitengine screen.
type SceneRenderer struct {
	Font    *FontAtlas
	sprites map[string]*ebiten.Image
}

// NewSceneRenderer uploads one decoded image per body name.
func NewSceneRenderer(font *FontAtlas, images map[string]image.Image) *SceneRenderer {
	sprites := make(map[string]*ebiten.Image, len(images))
	for name, img := range images {
		sprites[name] = ebiten.NewImageFromImage(img)
	}
	return &SceneRenderer{Font: font, sprites: sprites}
}

// Draw renders one frame: background, stars, the Sun, planets with their
// orbit guides, then a tooltip for every hovered body.
func (r *SceneRenderer) Draw(screen *ebiten.Image, sim *game.Sim, pointer image.Point) {
	screen.Fill(ColorBackground)

	sim.Stars.Each(func(pos game.Position, tw game.Twinkle) {
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), 1, StarColor(tw.Brightness), false)
	})

	for _, b := range sim.Bodies() {
		r.drawBody(screen, b, sim.Center, sim.Zoom)
	}

	for _, b := range sim.Hovered() {
		r.Font.DrawString(screen, b.Tooltip(), pointer.X+TooltipOffset, pointer.Y+TooltipOffset, ColorTooltip)
	}
}

// drawBody draws the orbit guide (if any) and the body sprite centered on
// its last placed position.
func (r *SceneRenderer) drawBody(screen *ebiten.Image, b *game.Body, center game.Point, zoom float64) {
	orbit := b.OrbitRadius * zoom
	if b.OrbitRadius > 0 {
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(int(orbit)), 1, ColorOrbitGuide, false)
	}

	sprite, ok := r.sprites[b.Name]
	if !ok {
		return
	}
	size := b.DisplaySize(zoom)
	bounds := sprite.Bounds()

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(size)/float64(bounds.Dx()), float64(size)/float64(bounds.Dy()))
	op.GeoM.Translate(float64(int(b.X)-size/2), float64(int(b.Y)-size/2))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, &op)
}
