package ambiguity

import "sort"

// VertexIter lazily enumerates the vertices of the feasible polytope of an
// IntervalAmbiguitySet, per spec.md §4.4. Each distinct vertex is yielded
// exactly once (not once per permutation): the generator walks permutations
// of the support, skipping those that revisit an already-emitted cut point,
// via the "largest prefix index with a larger successor" advance rule.
type VertexIter struct {
	set       *Set
	perm      []int
	exhausted bool
}

// VertexGenerator returns a fresh VertexIter over s, starting permutation
// identity-ordered over the support.
func (s *Set) VertexGenerator() *VertexIter {
	perm := make([]int, len(s.Support))
	for i := range perm {
		perm[i] = i
	}
	return &VertexIter{set: s, perm: perm}
}

// Next returns the next vertex as a length-Targets probability vector (zero
// outside the support), or ok=false once every vertex has been emitted.
func (it *VertexIter) Next() (vertex []float64, ok bool) {
	if it.exhausted {
		return nil, false
	}
	vertex, breakIdx := it.emit()
	// A zero budget leaves L as the only vertex.
	if it.set.Budget() <= 0 || !it.advance(breakIdx) {
		it.exhausted = true
	}
	return vertex, true
}

// emit computes the vertex for the current permutation: walk perm in order,
// filling the gap at each position until the budget is exhausted (step 1-2
// of §4.4's algorithm), recording the break index at which the budget ran
// out (or the last position, if the budget is consumed exactly on the final
// element).
func (it *VertexIter) emit() ([]float64, int) {
	s := it.set
	out := make([]float64, s.Targets)
	for i, pos := range s.Support {
		out[pos] = s.Lower[i]
	}
	budget := s.Budget()
	breakIdx := len(it.perm) - 1
	for j, pi := range it.perm {
		pos := s.Support[pi]
		g := s.Gap[pi]
		if budget <= g {
			out[pos] += budget
			breakIdx = j
			break
		}
		out[pos] += g
		budget -= g
	}
	return out, breakIdx
}

// advance mutates perm in place to the next permutation restricted to the
// prefix [0, breakIdx], per step 3 of §4.4: find the largest j ≤ breakIdx
// for which some later position holds a greater label, swap in the smallest
// such greater label, then sort the suffix ascending. Returns false once no
// such j exists (the generator is exhausted).
func (it *VertexIter) advance(breakIdx int) bool {
	perm := it.perm
	j := -1
search:
	for cand := breakIdx; cand >= 0; cand-- {
		for k := cand + 1; k < len(perm); k++ {
			if perm[cand] < perm[k] {
				j = cand
				break search
			}
		}
	}
	if j == -1 {
		return false
	}

	bestK := -1
	for k := j + 1; k < len(perm); k++ {
		if perm[k] > perm[j] && (bestK == -1 || perm[k] < perm[bestK]) {
			bestK = k
		}
	}
	perm[j], perm[bestK] = perm[bestK], perm[j]
	sort.Ints(perm[j+1:])
	return true
}
