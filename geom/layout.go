package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the left one w pixels wide.
func hsplit(r Rectangle, w uint32) (left, right Rectangle) {
	w = min(w, r.Size.Width)
	left = r.ResizedWidth(w, AnchorXLeft)
	right = Rt(r.TopLeft.AddSize(Sz(w, 0)), Sz(r.Size.Width-w, r.Size.Height))
	return left, right
}

func hsplitHalf(r Rectangle) (left, right Rectangle) {
	return hsplit(r, r.Size.Width/2)
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the top one h pixels tall.
func vsplit(r Rectangle, h uint32) (top, bottom Rectangle) {
	h = min(h, r.Size.Height)
	top = r.ResizedHeight(h, AnchorYTop)
	bottom = Rt(r.TopLeft.AddSize(Sz(0, h)), Sz(r.Size.Width, r.Size.Height-h))
	return top, bottom
}

func vsplitHalf(r Rectangle) (top, bottom Rectangle) {
	return vsplit(r, r.Size.Height/2)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively split
// each section halfway to the right and then downwards. In other
// words,
//
//	tiles := make([]geom.Rectangle, 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an interator instead of inserting them
// into a slice.
func TiledRightThenDown(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}

		split, next := hsplitHalf, vsplitHalf

		c, n := split(r)
		if numtiles == 1 {
			yield(r)
			return
		}
		for range numtiles - 2 {
			if !yield(c) {
				return
			}

			split, next = next, split
			c, n = split(n)
		}

		if !yield(c) {
			return
		}
		yield(n)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}
		if numtiles == 1 {
			yield(r)
			return
		}

		first, rem := hsplit(r, uint32(uint64(r.Size.Width)*2/3))
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rectangle, 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
//
// If the height of r is not evenly divisible, the remaining rows at
// the bottom are not covered by any tile.
func TileEvenVertically(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledEvenVertically(len(tiles), r))
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}

		h := r.Size.Height / uint32(numtiles)
		c, _ := vsplit(r, h)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translate(Pt(0, satInt32(h)))
		}
	}
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rectangle, 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally(tiles []Rectangle, r Rectangle) {
	insertTilesFromSeq(tiles, TiledEvenHorizontally(len(tiles), r))
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally(numtiles int, r Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 {
			return
		}

		w := r.Size.Width / uint32(numtiles)
		c, _ := hsplit(r, w)
		for range numtiles {
			if !yield(c) {
				return
			}
			c = c.Translate(Pt(satInt32(w), 0))
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows(tiles []Rectangle, r Rectangle, cols int) {
	insertTilesFromSeq(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows(numtiles int, r Rectangle, cols int) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}
		rows := TiledEvenVertically(numrows, r)

		for row := range rows {
			if numtiles <= 0 {
				break
			}

			numcols := min(numtiles, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			numtiles -= numcols
		}
	}
}

// VerticalStack returns an iterator that yields the rectangle
// provided and then identical copies shifted downwards by its height
// repeatedly, thus producing an infinite vertical stack of rectangles
// below the first. The stack stops if it reaches the bottom of the
// coordinate space.
func VerticalStack(first Rectangle) iter.Seq[Rectangle] {
	return func(yield func(Rectangle) bool) {
		shift := Pt(0, satInt32(max(first.Size.Height, 1)))
		for {
			if !yield(first) {
				return
			}

			next := first.Translate(shift)
			if next == first {
				return
			}
			first = next
		}
	}
}

// ArrangeVerticalStack arranges the subsequent rectangles of rects
// underneath the first vertically, expanding all for which it is
// necessary so that they are all the same width including the first.
func ArrangeVerticalStack(rects []Rectangle) {
	if len(rects) <= 1 {
		return
	}

	prev := rects[0]
	for _, rect := range rects {
		prev.Size.Width = max(prev.Size.Width, rect.Size.Width)
	}
	rects[0] = prev

	for i := 1; i < len(rects); i++ {
		rects[i] = Rt(
			Pt(prev.TopLeft.X, prev.Rows().End),
			Sz(prev.Size.Width, rects[i].Size.Height),
		)
		prev = rects[i]
	}
}

// Align moves inner so that its anchor point lines up with the same
// anchor point of outer. For example, aligning with BottomRight puts
// the bottom-right pixel of inner on the bottom-right pixel of outer.
func Align(outer, inner Rectangle, anchor AnchorPoint) Rectangle {
	return inner.Translate(outer.AnchorPoint(anchor).Sub(inner.AnchorPoint(anchor)))
}

func insertTilesFromSeq(tiles []Rectangle, s iter.Seq[Rectangle]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
