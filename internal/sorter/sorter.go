// Package sorter fills and sorts the integer array of a run.
package sorter

import "slices"

// DefaultItems is the array length of the canonical run.
const DefaultItems = 10

// CompareFunc is a three-way comparison: negative when a < b, zero when
// equal, positive when a > b.
type CompareFunc func(a, b int) int

// CompareInts compares two integers and returns -1, 0 or +1.
func CompareInts(a, b int) int {
	return b2i(a > b) - b2i(a < b)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Generate returns n integers where value[i] = i*i + i.
func Generate(n int) []int {
	ints := make([]int, n)
	for i := range ints {
		ints[i] = i*i + i
	}
	return ints
}

// Sort orders ints in place, ascending under cmp. Stability is not
// guaranteed. A nil cmp means CompareInts.
func Sort(ints []int, cmp CompareFunc) {
	if cmp == nil {
		cmp = CompareInts
	}
	slices.SortFunc(ints, cmp)
}

// IsSorted reports whether ints is non-decreasing under cmp.
func IsSorted(ints []int, cmp CompareFunc) bool {
	if cmp == nil {
		cmp = CompareInts
	}
	return slices.IsSortedFunc(ints, cmp)
}
