package stat

import "math"

// ArgMax returns the index of the largest non-NaN value in xs. Ties are
// resolved in favour of the first occurrence. The result is -1 if xs
// holds no value other than NaN.
func ArgMax(xs []float64) int {
	best := -1
	for i, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if best == -1 || x > xs[best] {
			best = i
		}
	}
	return best
}

// GroupArgMax partitions the indices of values by the value of groups
// and returns for every group the index of its largest value. Groups
// are returned in ascending order. A group without any non-NaN value
// yields the index -1. Observations with a NaN group are ignored.
func GroupArgMax(groups, values []float64) (levels []float64, idx []int) {
	if len(groups) != len(values) {
		panic("stat: length mismatch")
	}
	members := make(map[float64][]int)
	set := make(map[float64]struct{})
	for i, g := range groups {
		if math.IsNaN(g) {
			continue
		}
		members[g] = append(members[g], i)
		set[g] = struct{}{}
	}
	levels = sortedKeys(set)
	idx = make([]int, len(levels))
	for li, g := range levels {
		rows := members[g]
		sub := make([]float64, len(rows))
		for j, i := range rows {
			sub[j] = values[i]
		}
		if best := ArgMax(sub); best >= 0 {
			idx[li] = rows[best]
		} else {
			idx[li] = -1
		}
	}
	return levels, idx
}
