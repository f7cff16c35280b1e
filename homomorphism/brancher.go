package homomorphism

import (
	"sort"
)

// Brancher selects the next domain to branch on and the order in
// which to try its remaining values.
type Brancher struct {
	Model Model
}

// FindBranchDomain returns the index, within domains, of the
// non-fixed domain with the smallest count, tie-broken by largest
// pattern degree (graph 0) and then by first occurrence. It returns
// -1 when every domain is fixed, denoting a complete assignment.
func (b Brancher) FindBranchDomain(domains Domains) int {
	best := -1
	for i, d := range domains {
		if d.Fixed {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		cur := domains[best]
		if d.Count < cur.Count ||
			(d.Count == cur.Count && b.Model.PatternDegree(0, d.V) > b.Model.PatternDegree(0, cur.V)) {
			best = i
		}
	}
	return best
}

// OrderValues rewrites branchV[:n] in place according to mode. Degree
// and AntiDegree need no randomness and always run; Biased and Random
// need rng and are a no-op (leaving branchV in its existing order) if
// the caller has none configured.
func (b Brancher) OrderValues(branchV []int, n int, mode ValueOrdering, rng randSource) {
	switch mode {
	case Degree:
		degreeSort(b.Model, branchV[:n], false)
	case AntiDegree:
		degreeSort(b.Model, branchV[:n], true)
	case Biased:
		if rng == nil {
			return
		}
		softmaxShuffle(b.Model, branchV[:n], rng)
	case Random:
		if rng == nil {
			return
		}
		rng.Shuffle(n, func(i, j int) { branchV[i], branchV[j] = branchV[j], branchV[i] })
	}
}

// randSource is the subset of *rand.Rand the brancher needs; declared
// as an interface so tests can supply a deterministic stub.
type randSource interface {
	Int63n(n int64) int64
	Shuffle(n int, swap func(i, j int))
}

func degreeSort(m Model, branchV []int, reverse bool) {
	sort.SliceStable(branchV, func(i, j int) bool {
		if reverse {
			return m.TargetDegree(0, branchV[i]) < m.TargetDegree(0, branchV[j])
		}
		return m.TargetDegree(0, branchV[i]) > m.TargetDegree(0, branchV[j])
	})
}

// softmaxShuffle repeatedly draws a vertex with probability
// proportional to 2^degree and moves it to the front of the
// not-yet-placed suffix. Exponents are shifted down by
// largest_target_degree-K so the running total never overflows an
// int64, per spec.md §4.1.
func softmaxShuffle(m Model, branchV []int, rng randSource) {
	const sufficientSpaceForAddingUp = 64 - 1 - 18 // bits.UintSize - sign bit - headroom
	largest := m.LargestTargetDegree()

	expish := func(degree int) int64 {
		shift := degree - largest + sufficientSpaceForAddingUp
		if shift < 0 {
			shift = 0
		}
		if shift > 62 {
			shift = 62
		}
		return int64(1) << uint(shift)
	}

	n := len(branchV)
	var total int64
	for _, v := range branchV {
		total += expish(m.TargetDegree(0, v))
	}

	for start := 0; start < n; start++ {
		selectScore := rng.Int63n(total) + 1

		selectElement := start
		for selectElement+1 < n {
			selectScore -= expish(m.TargetDegree(0, branchV[selectElement]))
			if selectScore <= 0 {
				break
			}
			selectElement++
		}

		total -= expish(m.TargetDegree(0, branchV[selectElement]))
		branchV[selectElement], branchV[start] = branchV[start], branchV[selectElement]
	}
}
