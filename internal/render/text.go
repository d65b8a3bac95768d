package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/orrery/orrery/internal/glyph"
)

// FontAtlas holds the glyph sheet on the GPU with cached sub-images.
type FontAtlas struct {
	sheet  *glyph.Sheet
	image  *ebiten.Image
	glyphs map[rune]*ebiten.Image
}

// NewFontAtlas uploads the 7x13 glyph sheet once at startup.
func NewFontAtlas() *FontAtlas {
	sheet := glyph.NewSheet()
	return &FontAtlas{
		sheet:  sheet,
		image:  ebiten.NewImageFromImage(sheet.Image),
		glyphs: make(map[rune]*ebiten.Image),
	}
}

// Glyph returns the cached sub-image for r.
func (a *FontAtlas) Glyph(r rune) *ebiten.Image {
	if g, ok := a.glyphs[r]; ok {
		return g
	}
	g := a.image.SubImage(a.sheet.Cell(r)).(*ebiten.Image)
	a.glyphs[r] = g
	return g
}

// DrawString renders s with its top-left corner at (x, y).
func (a *FontAtlas) DrawString(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	var op ebiten.DrawImageOptions
	for _, p := range a.sheet.Layout(s, x, y) {
		op = ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(p.X), float64(p.Y))
		op.ColorScale.ScaleWithColor(clr)
		screen.DrawImage(a.Glyph(p.Rune), &op)
	}
}
