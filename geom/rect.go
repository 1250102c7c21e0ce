package geom

import (
	"cmp"
	"fmt"
	"image"
)

// Rectangle is an axis-aligned rectangle on the pixel grid, given by
// the position of its top-left pixel and its size.
//
// A rectangle with a zero width or height is zero-sized. It contains
// no points and has no bottom-right corner, but it still has a
// position, and Intersection and Envelope treat it as occupying the
// single pixel at TopLeft.
//
// Rectangles are comparable and can be used as map keys.
type Rectangle struct {
	TopLeft Point
	Size    Size
}

// Rt is shorthand for Rectangle{TopLeft: topLeft, Size: size}.
func Rt(topLeft Point, size Size) Rectangle {
	return Rectangle{TopLeft: topLeft, Size: size}
}

// RectAtOrigin returns a rectangle of the given size with its top-left
// corner at (0,0).
func RectAtOrigin(size Size) Rectangle {
	return Rt(Point{}, size)
}

// RectWithCorners returns the smallest rectangle that contains both
// corners. The corners may be given in any order and both of them are
// pixels of the result.
func RectWithCorners(c1, c2 Point) Rectangle {
	return Rt(c1.ComponentMin(c2), SizeFromCorners(c1, c2))
}

// RectWithCenter returns a rectangle of the given size centered on
// center.
//
// When a dimension is even there is no center pixel, so the rectangle
// extends one pixel further toward the top-left than toward the
// bottom-right. As a result, calling Center on the returned rectangle
// yields a point one pixel up or to the left of center for even
// dimensions.
func RectWithCenter(center Point, size Size) Rectangle {
	return Rt(center.SubSize(centerOffset(size)), size)
}

// ZeroRect returns the zero-sized rectangle at the origin. It is the
// same as Rectangle{}.
func ZeroRect() Rectangle {
	return Rectangle{}
}

// centerOffset is the offset from the top-left corner of a rectangle
// of the given size to its center.
func centerOffset(size Size) Size {
	return size.Sub(SzEqual(1)).Div(2)
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%v+%v", r.TopLeft, r.Size)
}

// Compare orders rectangles by the X and then Y coordinate of their
// top-left corners and then by width and height. It is suitable for
// use with slices.SortFunc.
func (r Rectangle) Compare(other Rectangle) int {
	return cmp.Or(
		cmp.Compare(r.TopLeft.X, other.TopLeft.X),
		cmp.Compare(r.TopLeft.Y, other.TopLeft.Y),
		cmp.Compare(r.Size.Width, other.Size.Width),
		cmp.Compare(r.Size.Height, other.Size.Height),
	)
}

// BoundingBox returns r. It exists so that Rectangle satisfies
// Dimensions.
func (r Rectangle) BoundingBox() Rectangle {
	return r
}

// Center returns the center pixel of r. For even dimensions the
// result is rounded toward the top-left.
func (r Rectangle) Center() Point {
	return r.TopLeft.AddSize(centerOffset(r.Size))
}

// BottomRight returns the bottom-right pixel of r. The smallest
// rectangle that has one is 1x1, so ok is false if r is zero-sized.
func (r Rectangle) BottomRight() (p Point, ok bool) {
	if r.IsZeroSized() {
		return Point{}, false
	}

	return Pt(
		clampInt32(int64(r.TopLeft.X)+int64(r.Size.Width)-1),
		clampInt32(int64(r.TopLeft.Y)+int64(r.Size.Height)-1),
	), true
}

// Contains reports whether p is a pixel of r. A zero-sized rectangle
// contains nothing.
func (r Rectangle) Contains(p Point) bool {
	if p.X < r.TopLeft.X || p.Y < r.TopLeft.Y {
		return false
	}

	br, ok := r.BottomRight()
	return ok && p.X <= br.X && p.Y <= br.Y
}

// ContainsRect reports whether every pixel occupied by other is also
// a pixel of r. A zero-sized other occupies only its top-left pixel.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	if !r.Contains(other.TopLeft) {
		return false
	}
	return r.Contains(other.AnchorPoint(BottomRight))
}

// IsZeroSized reports whether r has a zero width or height.
func (r Rectangle) IsZeroSized() bool {
	return r.Size.IsZero()
}

// Rows returns the range of Y coordinates covered by r.
func (r Rectangle) Rows() Range {
	if r.IsZeroSized() {
		return Range{Start: r.TopLeft.Y, End: r.TopLeft.Y}
	}
	return Range{
		Start: r.TopLeft.Y,
		End:   clampInt32(int64(r.TopLeft.Y) + int64(r.Size.Height)),
	}
}

// Columns returns the range of X coordinates covered by r.
func (r Rectangle) Columns() Range {
	if r.IsZeroSized() {
		return Range{Start: r.TopLeft.X, End: r.TopLeft.X}
	}
	return Range{
		Start: r.TopLeft.X,
		End:   clampInt32(int64(r.TopLeft.X) + int64(r.Size.Width)),
	}
}

// Translate moves r by p.
func (r Rectangle) Translate(p Point) Rectangle {
	return Rt(r.TopLeft.Add(p), r.Size)
}

// Intersection returns the largest rectangle contained in both r and
// other. If they don't overlap, the result is the zero rectangle.
//
// If exactly one of the two is zero-sized, it is treated as the single
// pixel at its top-left corner and returned unchanged when the other
// rectangle contains that pixel.
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	rbr, rok := r.BottomRight()
	obr, ook := other.BottomRight()

	switch {
	case rok && ook:
		// Checking the corners of each rectangle against the other is
		// not enough: a tall thin rectangle can cross a short wide one
		// without either containing a corner of the other.
		if overlaps(inclusive(r.TopLeft.X, rbr.X), inclusive(other.TopLeft.X, obr.X)) &&
			overlaps(inclusive(r.TopLeft.Y, rbr.Y), inclusive(other.TopLeft.Y, obr.Y)) {
			return RectWithCorners(
				r.TopLeft.ComponentMax(other.TopLeft),
				rbr.ComponentMin(obr),
			)
		}

	case ook:
		if other.Contains(r.TopLeft) {
			return r
		}

	case rok:
		if r.Contains(other.TopLeft) {
			return other
		}
	}

	return ZeroRect()
}

// Envelope returns the smallest rectangle that contains both r and
// other. For this purpose, zero-sized dimensions are treated as having
// a size of 1 so that a zero-sized rectangle still contributes its
// position to the result.
func (r Rectangle) Envelope(other Rectangle) Rectangle {
	return RectWithCorners(
		r.TopLeft.ComponentMin(other.TopLeft),
		r.AnchorPoint(BottomRight).ComponentMax(other.AnchorPoint(BottomRight)),
	)
}

// axisShift returns the portion of delta that applies to an anchor at
// position pos along one axis. Both AnchorX and AnchorY number their
// anchors near edge, center, far edge.
func axisShift(delta int64, pos uint8) int64 {
	switch pos {
	case 1:
		return delta / 2
	case 2:
		return delta
	default:
		return 0
	}
}

// anchorDelta is the distance from the near edge of a dimension of
// length size to the anchor at pos. Zero sizes behave like a size of
// 1.
func anchorDelta(size uint32, pos uint8) int64 {
	return axisShift(int64(max(satInt32(size), 1))-1, pos)
}

// AnchorX returns the X coordinate of the given vertical line of r.
func (r Rectangle) AnchorX(a AnchorX) int32 {
	return clampInt32(int64(r.TopLeft.X) + anchorDelta(r.Size.Width, uint8(a)))
}

// AnchorY returns the Y coordinate of the given horizontal line of r.
func (r Rectangle) AnchorY(a AnchorY) int32 {
	return clampInt32(int64(r.TopLeft.Y) + anchorDelta(r.Size.Height, uint8(a)))
}

// AnchorPoint returns the position of the given anchor of r. Unlike
// BottomRight, this is defined for zero-sized rectangles, which behave
// like 1x1 rectangles.
func (r Rectangle) AnchorPoint(a AnchorPoint) Point {
	return Pt(r.AnchorX(a.X()), r.AnchorY(a.Y()))
}

// resizeShift is how far the near edge of a dimension moves when it
// is resized from one length to another while keeping the anchor at
// pos in place. Zero sizes behave like a size of 1.
func resizeShift(from, to uint32, pos uint8) int64 {
	return axisShift(int64(max(satInt32(from), 1))-int64(max(satInt32(to), 1)), pos)
}

// Resized returns a copy of r with the given size, positioned so that
// the given anchor stays in the same place. When the change in a
// dimension is odd and the anchor is centered, the extra pixel goes
// to the bottom-right.
func (r Rectangle) Resized(size Size, anchor AnchorPoint) Rectangle {
	return r.ResizedWidth(size.Width, anchor.X()).ResizedHeight(size.Height, anchor.Y())
}

// ResizedWidth is like Resized but only changes the width.
func (r Rectangle) ResizedWidth(width uint32, anchor AnchorX) Rectangle {
	r.TopLeft.X = clampInt32(int64(r.TopLeft.X) + resizeShift(r.Size.Width, width, uint8(anchor)))
	r.Size.Width = width
	return r
}

// ResizedHeight is like Resized but only changes the height.
func (r Rectangle) ResizedHeight(height uint32, anchor AnchorY) Rectangle {
	r.TopLeft.Y = clampInt32(int64(r.TopLeft.Y) + resizeShift(r.Size.Height, height, uint8(anchor)))
	r.Size.Height = height
	return r
}

// Offset grows r by amount pixels on every side, or shrinks it if
// amount is negative. Shrinking stops at a size of zero. The result is
// centered on the same point as r.
func (r Rectangle) Offset(amount int32) Rectangle {
	d := int64(amount) * 2
	grow := func(v uint32) uint32 {
		return clampUint32(int64(v) + d)
	}

	return RectWithCenter(r.Center(), Sz(grow(r.Size.Width), grow(r.Size.Height)))
}

// Points returns a cursor over the pixels of r.
func (r Rectangle) Points() Points {
	return newPoints(r)
}

// ImageRect converts r to the equivalent image.Rectangle, whose Max
// corner is exclusive.
func (r Rectangle) ImageRect() image.Rectangle {
	cols, rows := r.Columns(), r.Rows()
	return image.Rect(int(cols.Start), int(rows.Start), int(cols.End), int(rows.End))
}

// FromImageRect converts an image.Rectangle to a Rectangle. The input
// is canonicalized first and coordinates outside of the int32 range
// are clamped.
func FromImageRect(r image.Rectangle) Rectangle {
	r = r.Canon()
	tl := Pt(satInt32(r.Min.X), satInt32(r.Min.Y))
	return Rt(tl, Sz(
		satUint32(int64(satInt32(r.Max.X))-int64(tl.X)),
		satUint32(int64(satInt32(r.Max.Y))-int64(tl.Y)),
	))
}
