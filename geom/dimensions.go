package geom

import "iter"

// Dimensions is implemented by anything that occupies a region of the
// pixel grid.
type Dimensions interface {
	// BoundingBox returns the smallest rectangle that contains every
	// pixel of the shape.
	BoundingBox() Rectangle
}

// PointsIter is implemented by anything that can list the pixels it
// covers.
type PointsIter interface {
	// All yields every pixel covered by the shape. Each pixel is
	// yielded once.
	All() iter.Seq[Point]
}

// Shape is a region of the pixel grid that a rasterizer can draw.
// Rectangle is the simplest Shape.
type Shape interface {
	Dimensions
	PointsIter

	// Contains reports whether p is one of the shape's pixels.
	Contains(p Point) bool
}

var _ Shape = Rectangle{}

// Envelope returns the smallest rectangle that envelopes every
// rectangle yielded by rects, following the rules of
// Rectangle.Envelope. It returns the zero rectangle if rects yields
// nothing.
func Envelope(rects iter.Seq[Rectangle]) Rectangle {
	var (
		env   Rectangle
		first = true
	)
	for r := range rects {
		if first {
			env, first = r.Envelope(r), false
			continue
		}
		env = env.Envelope(r)
	}
	return env
}

// BoundingBoxOf returns the envelope of the bounding boxes of shapes.
func BoundingBoxOf(shapes ...Dimensions) Rectangle {
	return Envelope(func(yield func(Rectangle) bool) {
		for _, s := range shapes {
			if !yield(s.BoundingBox()) {
				return
			}
		}
	})
}
