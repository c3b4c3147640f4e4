package specification

import "sort"

// stateSet is a sorted, deduplicated membership set over state indices,
// mirroring ambiguity.Set's sorted-support/binary-search idiom.
type stateSet struct {
	members []int
}

func newStateSet(indices []int, bound int) (stateSet, error) {
	cp := append([]int(nil), indices...)
	sort.Ints(cp)
	deduped := cp[:0]
	for i, v := range cp {
		if v < 0 || v >= bound {
			return stateSet{}, ErrOutOfRange
		}
		if i == 0 || v != deduped[len(deduped)-1] {
			deduped = append(deduped, v)
		}
	}
	return stateSet{members: deduped}, nil
}

func (s stateSet) contains(state int) bool {
	i := sort.SearchInts(s.members, state)
	return i < len(s.members) && s.members[i] == state
}
