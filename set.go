package plot

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// -------------------------------------------------------------------------
// Float Set

// FloatSet is a set of float64 values. NaN is never a member.
type FloatSet map[float64]struct{}

func NewFloatSet() FloatSet {
	return make(FloatSet)
}

// NewFloatSetFrom collects the distinct non-NaN values of xs.
func NewFloatSetFrom(xs []float64) FloatSet {
	s := NewFloatSet()
	for _, x := range xs {
		s.Add(x)
	}
	return s
}

func (s FloatSet) String() string {
	parts := make([]string, 0, len(s))
	for _, x := range s.Elements() {
		parts = append(parts, fmt.Sprintf("%g", x))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Add adds x to s. Adding NaN is a no-op.
func (s FloatSet) Add(x float64) {
	if math.IsNaN(x) {
		return
	}
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s FloatSet) Contains(x float64) bool {
	_, ok := s[x]
	return ok
}

// Join adds all elements of t to s.
func (s FloatSet) Join(t FloatSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

// Elements returns the members of s in ascending order.
func (s FloatSet) Elements() []float64 {
	elems := make([]float64, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Float64s(elems)
	return elems
}

// Index returns a lookup from member to its rank in Elements.
func (s FloatSet) Index() map[float64]int {
	idx := make(map[float64]int, len(s))
	for i, x := range s.Elements() {
		idx[x] = i
	}
	return idx
}

// -------------------------------------------------------------------------
// String Set

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

func NewStringSetFrom(init []string) StringSet {
	s := NewStringSet()
	for _, v := range init {
		s.Add(v)
	}
	return s
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Contains reports membership of x in s.
func (s StringSet) Contains(x string) bool {
	_, ok := s[x]
	return ok
}

// Remove removes all elements of t from s. (Set difference)
func (s StringSet) Remove(t StringSet) {
	for x := range t {
		delete(s, x)
	}
}

// Elements returns the members of s in ascending order.
func (s StringSet) Elements() []string {
	elems := make([]string, 0, len(s))
	for x := range s {
		elems = append(elems, x)
	}
	sort.Strings(elems)
	return elems
}
