// Package geom provides integer raster geometry for small displays.
//
// It is patterned after image.Rectangle and image.Point, but a
// Rectangle is stored as a top-left corner and an unsigned size rather
// than as two corners, and every operation that crosses between sizes
// and coordinates saturates instead of wrapping. All types are plain
// values and every operation returns a new value.
package geom

import (
	"fmt"
	"image"
)

// Point is a position on the pixel grid.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p+q, clamped to the int32 range.
func (p Point) Add(q Point) Point {
	return Pt(addInt32(p.X, q.X), addInt32(p.Y, q.Y))
}

// Sub returns p-q, clamped to the int32 range.
func (p Point) Sub(q Point) Point {
	return Pt(subInt32(p.X, q.X), subInt32(p.Y, q.Y))
}

// AddSize offsets p by s.
func (p Point) AddSize(s Size) Point {
	return Pt(
		clampInt32(int64(p.X)+int64(s.Width)),
		clampInt32(int64(p.Y)+int64(s.Height)),
	)
}

// SubSize offsets p by -s.
func (p Point) SubSize(s Size) Point {
	return Pt(
		clampInt32(int64(p.X)-int64(s.Width)),
		clampInt32(int64(p.Y)-int64(s.Height)),
	)
}

// ComponentMin returns the point made of the smaller of each of the
// coordinates of p and q.
func (p Point) ComponentMin(q Point) Point {
	return Pt(min(p.X, q.X), min(p.Y, q.Y))
}

// ComponentMax returns the point made of the larger of each of the
// coordinates of p and q.
func (p Point) ComponentMax(q Point) Point {
	return Pt(max(p.X, q.X), max(p.Y, q.Y))
}

// ImagePoint converts p to an image.Point.
func (p Point) ImagePoint() image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// Size is the extent of something on the pixel grid.
type Size struct {
	Width, Height uint32
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h uint32) Size {
	return Size{Width: w, Height: h}
}

// SzEqual returns a size with both dimensions set to v.
func SzEqual(v uint32) Size {
	return Sz(v, v)
}

// SizeFromCorners returns the size of the smallest rectangle that
// includes both a and b as pixels.
func SizeFromCorners(a, b Point) Size {
	span := func(a, b int32) uint32 {
		d := int64(b) - int64(a)
		if d < 0 {
			d = -d
		}
		return clampUint32(d + 1)
	}
	return Sz(span(a.X, b.X), span(a.Y, b.Y))
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Add returns s+o, saturating at the largest representable size.
func (s Size) Add(o Size) Size {
	return Sz(addUint32(s.Width, o.Width), addUint32(s.Height, o.Height))
}

// Sub returns s-o, saturating at zero.
func (s Size) Sub(o Size) Size {
	return Sz(subUint32(s.Width, o.Width), subUint32(s.Height, o.Height))
}

// Div divides both dimensions by v.
func (s Size) Div(v uint32) Size {
	return Sz(s.Width/v, s.Height/v)
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Area returns the number of pixels covered by a rectangle of size s.
func (s Size) Area() uint64 {
	return uint64(s.Width) * uint64(s.Height)
}
