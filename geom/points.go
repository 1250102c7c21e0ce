package geom

import "iter"

// Points is a cursor over the pixels of a rectangle in row-major
// order: left to right along the top row, then the next row down, and
// so on. It copies the bounds of the rectangle it was created from and
// can only be walked once.
//
// The zero value yields nothing.
type Points struct {
	rows    Range
	columns Range
	cur     Point
}

func newPoints(r Rectangle) Points {
	rows, columns := r.Rows(), r.Columns()
	if rows.IsEmpty() || columns.IsEmpty() {
		return Points{}
	}

	return Points{
		rows:    rows,
		columns: columns,
		cur:     Pt(columns.Start, rows.Start),
	}
}

// Next returns the next pixel. Once every pixel has been returned, ok
// is false and it continues to be false on every further call.
func (p *Points) Next() (pt Point, ok bool) {
	if !p.rows.Contains(p.cur.Y) {
		return Point{}, false
	}

	pt = p.cur
	p.cur.X++
	if p.cur.X >= p.columns.End {
		p.cur.X = p.columns.Start
		p.cur.Y++
	}
	return pt, true
}

// Len returns the number of pixels remaining.
func (p *Points) Len() uint64 {
	if !p.rows.Contains(p.cur.Y) {
		return 0
	}

	rows := uint64(int64(p.rows.End) - int64(p.cur.Y))
	return rows*uint64(p.columns.Len()) - uint64(int64(p.cur.X)-int64(p.columns.Start))
}

// All yields the remaining pixels, advancing p as it goes.
func (p *Points) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for {
			pt, ok := p.Next()
			if !ok || !yield(pt) {
				return
			}
		}
	}
}

// All yields every pixel of r in row-major order. Unlike a Points
// cursor, the returned sequence starts over each time it is ranged
// over.
func (r Rectangle) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		p := r.Points()
		for {
			pt, ok := p.Next()
			if !ok || !yield(pt) {
				return
			}
		}
	}
}
