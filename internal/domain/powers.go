package domain

import (
	"iter"
	"math"
)

// Powers yields base⁰, base¹, base², ... while the power does not exceed
// limit. Values are produced lazily, one per iteration step.
//
// The sequence ends early instead of overflowing int64, and for bases that
// cannot grow (-1, 0, 1) it ends once a value would repeat.
func Powers(base, limit int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		seen := make(map[int64]struct{}, 2)

		for power := int64(1); power <= limit; {
			if _, dup := seen[power]; dup {
				return
			}

			if !yield(power) {
				return
			}

			if base > 1 || base < -1 {
				if abs(power) > math.MaxInt64/abs(base) {
					return
				}
			} else {
				seen[power] = struct{}{}
			}

			power *= base
		}
	}
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
