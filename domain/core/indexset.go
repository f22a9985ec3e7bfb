package core

import (
	"sort"
)

// IndexSet is a sorted, deduplicated set of object indices. It is the
// currency of all approximation outputs: members, approximations and regions
// are all IndexSets over the same information table. An IndexSet is treated
// as read-only once returned from a computation.
type IndexSet []int

// NewIndexSet builds an IndexSet from arbitrary indices (sorts, dedupes)
func NewIndexSet(indices ...int) IndexSet {
	if len(indices) == 0 {
		return IndexSet{}
	}
	sorted := make([]int, len(indices))
	copy(sorted, indices)
	sort.Ints(sorted)

	out := sorted[:1]
	for _, idx := range sorted[1:] {
		if idx != out[len(out)-1] {
			out = append(out, idx)
		}
	}
	return IndexSet(out)
}

// FullIndexSet returns the set {0, 1, ..., n-1}
func FullIndexSet(n int) IndexSet {
	out := make(IndexSet, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Len returns the number of indices in the set
func (s IndexSet) Len() int {
	return len(s)
}

// IsEmpty checks if the set has no indices
func (s IndexSet) IsEmpty() bool {
	return len(s) == 0
}

// Contains checks membership via binary search
func (s IndexSet) Contains(idx int) bool {
	i := sort.SearchInts(s, idx)
	return i < len(s) && s[i] == idx
}

// Union returns the merged set of s and other
func (s IndexSet) Union(other IndexSet) IndexSet {
	out := make(IndexSet, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, other[j:]...)
	return out
}

// Intersect returns the indices present in both s and other
func (s IndexSet) Intersect(other IndexSet) IndexSet {
	out := make(IndexSet, 0)
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	return out
}

// Diff returns the indices of s not present in other
func (s IndexSet) Diff(other IndexSet) IndexSet {
	out := make(IndexSet, 0, len(s))
	j := 0
	for _, idx := range s {
		for j < len(other) && other[j] < idx {
			j++
		}
		if j < len(other) && other[j] == idx {
			continue
		}
		out = append(out, idx)
	}
	return out
}

// IsSubsetOf checks whether every index of s is in other
func (s IndexSet) IsSubsetOf(other IndexSet) bool {
	j := 0
	for _, idx := range s {
		for j < len(other) && other[j] < idx {
			j++
		}
		if j >= len(other) || other[j] != idx {
			return false
		}
	}
	return true
}

// Intersects checks whether s and other share at least one index
func (s IndexSet) Intersects(other IndexSet) bool {
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			i++
		case s[i] > other[j]:
			j++
		default:
			return true
		}
	}
	return false
}

// Equal checks structural equality
func (s IndexSet) Equal(other IndexSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}
