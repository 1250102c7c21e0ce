// Package mock provides a small in-memory display for testing drawing
// code. It records which pixels were drawn and whether they were on or
// off, and renders that as a text pattern that tests can compare
// against.
package mock

import (
	"fmt"
	"image/color"
	"strings"

	"deedles.dev/xraster/geom"
	"github.com/stretchr/testify/require"
)

// Size is the width and height of a Display.
const Size = 64

// Colors that map to the on and off states of a Display. Any other
// color is on if it is closer to white than to black.
var (
	On  = color.Gray{Y: 0xFF}
	Off = color.Gray{Y: 0}
)

type pixel uint8

const (
	unset pixel = iota
	off
	on
)

func (p pixel) rune() byte {
	switch p {
	case off:
		return '.'
	case on:
		return '#'
	default:
		return ' '
	}
}

// Display is a Size by Size monochrome display with its top-left
// pixel at the origin. The zero value is ready to use.
//
// By default, drawing outside of the display or drawing the same pixel
// twice panics, as either usually means that the code under test has
// an off-by-one error.
type Display struct {
	AllowOutOfBounds bool
	AllowOverdraw    bool

	pixels [Size * Size]pixel
}

var bounds = geom.RectAtOrigin(geom.SzEqual(Size))

// BoundingBox returns the area of the display.
func (d *Display) BoundingBox() geom.Rectangle {
	return bounds
}

// SetPixel records p as drawn in the on or off state depending on c.
func (d *Display) SetPixel(p geom.Point, c color.Color) {
	if !bounds.Contains(p) {
		if d.AllowOutOfBounds {
			return
		}
		panic(fmt.Errorf("mock: pixel %v is outside of the display %v", p, bounds))
	}

	i := p.Y*Size + p.X
	if d.pixels[i] != unset && !d.AllowOverdraw {
		panic(fmt.Errorf("mock: pixel %v drawn more than once", p))
	}

	d.pixels[i] = off
	if color.GrayModel.Convert(c).(color.Gray).Y >= 0x80 {
		d.pixels[i] = on
	}
}

// Get returns the state of the pixel at p. drawn is false if p has not
// been drawn or is outside of the display.
func (d *Display) Get(p geom.Point) (isOn, drawn bool) {
	if !bounds.Contains(p) {
		return false, false
	}

	px := d.pixels[p.Y*Size+p.X]
	return px == on, px != unset
}

// AffectedArea returns the smallest rectangle that contains every
// drawn pixel, or the zero rectangle if nothing was drawn.
func (d *Display) AffectedArea() geom.Rectangle {
	return geom.Envelope(func(yield func(geom.Rectangle) bool) {
		for p := range bounds.All() {
			if _, drawn := d.Get(p); drawn {
				if !yield(geom.Rt(p, geom.SzEqual(1))) {
					return
				}
			}
		}
	})
}

// Pattern renders the display as one string per row, with '#' for
// pixels that are on, '.' for pixels that are off, and ' ' for pixels
// that were not drawn. It starts at the origin and stops at the last
// row and column that were drawn to.
func (d *Display) Pattern() []string {
	area := d.AffectedArea()
	br, ok := area.BottomRight()
	if !ok {
		return nil
	}

	visible := geom.RectWithCorners(geom.Point{}, br)
	lines := make([]string, 0, visible.Size.Height)
	var line strings.Builder
	for y := range visible.Rows().All() {
		line.Reset()
		for x := range visible.Columns().All() {
			line.WriteByte(d.pixels[y*Size+x].rune())
		}
		lines = append(lines, line.String())
	}
	return lines
}

// AssertPattern fails the test if the display does not match pattern.
func (d *Display) AssertPattern(t require.TestingT, pattern []string) {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}

	require.Equal(t, pattern, d.Pattern())
}
