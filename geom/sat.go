package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// satInt32 converts v to an int32, clamping it to the int32 range.
func satInt32[T constraints.Integer](v T) int32 {
	if v < 0 {
		if int64(v) < math.MinInt32 {
			return math.MinInt32
		}
		return int32(v)
	}
	if uint64(v) > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}

// satUint32 converts v to a uint32, clamping negative values to zero.
func satUint32[T constraints.Integer](v T) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

func clampInt32(v int64) int32 {
	return satInt32(v)
}

func clampUint32(v int64) uint32 {
	return satUint32(v)
}

func addInt32(a, b int32) int32 {
	return clampInt32(int64(a) + int64(b))
}

func subInt32(a, b int32) int32 {
	return clampInt32(int64(a) - int64(b))
}

func addUint32(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

func subUint32(a, b uint32) uint32 {
	if b > a {
		return 0
	}
	return a - b
}
