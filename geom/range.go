package geom

import (
	"fmt"
	"iter"
)

// Range is a half-open range [Start, End) of coordinates along one
// axis. It is empty if End <= Start.
type Range struct {
	Start, End int32
}

func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// IsEmpty reports whether r contains no coordinates.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Len returns the number of coordinates in r.
func (r Range) Len() uint32 {
	if r.IsEmpty() {
		return 0
	}
	return uint32(int64(r.End) - int64(r.Start))
}

// Contains reports whether v is in r.
func (r Range) Contains(v int32) bool {
	return r.Start <= v && v < r.End
}

// All yields the coordinates of r in ascending order.
func (r Range) All() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for v := r.Start; v < r.End; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// inclusiveRange is the closed range [first, last].
type inclusiveRange struct {
	first, last int32
}

func inclusive(first, last int32) inclusiveRange {
	return inclusiveRange{first: first, last: last}
}

func (r inclusiveRange) contains(v int32) bool {
	return r.first <= v && v <= r.last
}

// overlaps reports whether two closed ranges share at least one
// coordinate. Either b contains one of the ends of a or a strictly
// contains b.
func overlaps(a, b inclusiveRange) bool {
	return b.contains(a.first) ||
		b.contains(a.last) ||
		(a.first < b.first && a.last > b.last)
}
