package xraster

import (
	"image/color"

	"deedles.dev/xraster/geom"
)

// DrawTarget is something that pixels can be drawn onto, such as a
// display or an in-memory framebuffer. Its bounding box is the area
// that can be drawn to.
type DrawTarget interface {
	geom.Dimensions

	// SetPixel sets the pixel at p to c. It is never called with a
	// point outside of the target's bounding box by the functions in
	// this package.
	SetPixel(p geom.Point, c color.Color)
}

// RectFiller is implemented by DrawTargets that can fill a rectangle
// faster than pixel by pixel. The rectangle passed to FillRect is
// always within the target's bounding box.
type RectFiller interface {
	FillRect(r geom.Rectangle, c color.Color)
}

// Draw sets every pixel of shape that lies within dst to c.
func Draw(dst DrawTarget, shape geom.Shape, c color.Color) {
	clip := shape.BoundingBox().Intersection(dst.BoundingBox())
	if clip.IsZeroSized() {
		return
	}

	for p := range shape.All() {
		if clip.Contains(p) {
			dst.SetPixel(p, c)
		}
	}
}

// Fill sets every pixel of r that lies within dst to c.
func Fill(dst DrawTarget, r geom.Rectangle, c color.Color) {
	r = r.Intersection(dst.BoundingBox())
	if r.IsZeroSized() {
		return
	}

	if f, ok := dst.(RectFiller); ok {
		f.FillRect(r, c)
		return
	}

	for p := range r.All() {
		dst.SetPixel(p, c)
	}
}

// StrokeAlignment is the position of a stroke relative to the edge of
// the shape it outlines.
type StrokeAlignment int

const (
	// StrokeInside places the whole stroke inside the shape.
	StrokeInside StrokeAlignment = iota

	// StrokeCenter centers the stroke on the edge. For odd widths the
	// extra pixel is inside the shape.
	StrokeCenter

	// StrokeOutside places the whole stroke outside the shape.
	StrokeOutside
)

// outset is how many pixels of a stroke of the given width lie
// outside of the edge.
func (a StrokeAlignment) outset(width uint32) uint32 {
	switch a {
	case StrokeCenter:
		return width / 2
	case StrokeOutside:
		return width
	default:
		return 0
	}
}

// StrokeBounds returns the bounding box of r when it is outlined with
// a stroke of the given width and alignment.
func StrokeBounds(r geom.Rectangle, width uint32, align StrokeAlignment) geom.Rectangle {
	return r.Offset(int32(min(align.outset(width), 1<<31-1)))
}

// Stroke outlines r with a stroke of the given width. If the stroke is
// wide enough to cover the whole rectangle, the result is the same as
// filling StrokeBounds.
func Stroke(dst DrawTarget, r geom.Rectangle, width uint32, align StrokeAlignment, c color.Color) {
	if width == 0 {
		return
	}

	outer := StrokeBounds(r, width, align)
	inner := outer.Offset(-int32(min(width, 1<<31-1)))
	if inner.IsZeroSized() {
		Fill(dst, outer, c)
		return
	}

	clip := outer.Intersection(dst.BoundingBox())
	for p := range clip.All() {
		if !inner.Contains(p) {
			dst.SetPixel(p, c)
		}
	}
}
