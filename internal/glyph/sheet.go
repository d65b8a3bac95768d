// Package glyph rasterises a fixed-size bitmap font into a single sheet so
// strings can be drawn by blitting one cell per rune.
package glyph

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	SheetCols = 16
	SheetRows = 16
	Fallback  = '?'
)

// Sheet holds Latin-1 glyphs (codes 0-255) laid out in a 16x16 grid of
// equally sized cells. Glyph pixels are white; callers tint them.
type Sheet struct {
	Image   *image.NRGBA
	CellW   int
	CellH   int
	Advance int
}

// NewSheet renders every printable Latin-1 rune of basicfont.Face7x13.
func NewSheet() *Sheet {
	face := basicfont.Face7x13
	return newSheet(face, face.Advance, face.Height, face.Ascent)
}

func newSheet(face font.Face, cellW, cellH, ascent int) *Sheet {
	img := image.NewNRGBA(image.Rect(0, 0, SheetCols*cellW, SheetRows*cellH))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	for code := 0; code < SheetCols*SheetRows; code++ {
		if !printable(rune(code)) {
			continue
		}
		x := (code % SheetCols) * cellW
		y := (code / SheetCols) * cellH
		d.Dot = fixed.P(x, y+ascent)
		d.DrawString(string(rune(code)))
	}

	return &Sheet{Image: img, CellW: cellW, CellH: cellH, Advance: cellW}
}

// printable skips the C0 and C1 control ranges and the space characters.
func printable(r rune) bool {
	return (r > 0x20 && r < 0x7f) || (r > 0xa0 && r <= 0xff)
}

// Cell returns the sheet rectangle for r. Runes outside Latin-1 map to
// Fallback.
func (s *Sheet) Cell(r rune) image.Rectangle {
	if r < 0 || r > 0xff {
		r = Fallback
	}
	x := (int(r) % SheetCols) * s.CellW
	y := (int(r) / SheetCols) * s.CellH
	return image.Rect(x, y, x+s.CellW, y+s.CellH)
}

// Placement is one glyph of a laid-out string.
type Placement struct {
	Rune rune
	X, Y int // top-left of the destination cell
}

// Layout positions str on a single line starting at (x, y). Blank runes
// advance the pen but produce no placement.
func (s *Sheet) Layout(str string, x, y int) []Placement {
	out := make([]Placement, 0, len(str))
	pen := x
	for _, r := range str {
		if r > 0xff {
			r = Fallback
		}
		if printable(r) {
			out = append(out, Placement{Rune: r, X: pen, Y: y})
		}
		pen += s.Advance
	}
	return out
}
