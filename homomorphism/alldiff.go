package homomorphism

// DefaultAllDifferent is a sound, possibly-incomplete cheap
// all-different filter: a single pass of the Hall-set argument over
// domains of size 1 and 2 (the cases cheap enough to check on every
// propagation step without a full bipartite-matching pass).
//
// For every non-fixed domain of size 1, that value is excluded from
// every other domain (this subsumes what plain injectivity filtering
// already does for the just-assigned vertex, but also catches values
// forced unit by an earlier pass in the same fixpoint loop). For
// every pair of non-fixed size-2 domains holding the same two values,
// that pair of values is excluded from every other domain (a Hall set
// of size 2); other size-2 unions, such as {a} with {a,b}, are not
// checked by this second pass.
type DefaultAllDifferent struct{}

// Filter implements AllDifferentFilter.
func (DefaultAllDifferent) Filter(targetSize int, domains Domains) bool {
	for i := range domains {
		if domains[i].Fixed || domains[i].Count != 1 {
			continue
		}
		v, _ := domains[i].Values.FindFirst()
		for j := range domains {
			if j == i || domains[j].Fixed {
				continue
			}
			if domains[j].Values.Test(v) {
				domains[j].Values.Reset(v)
				domains[j].Count--
				if domains[j].Count == 0 {
					return false
				}
			}
		}
	}

	for i := range domains {
		if domains[i].Fixed || domains[i].Count != 2 {
			continue
		}
		for j := i + 1; j < len(domains); j++ {
			if domains[j].Fixed || domains[j].Count != 2 {
				continue
			}
			if !domains[i].Values.Equal(domains[j].Values) {
				continue
			}
			hallSet := domains[i].Values
			for k := range domains {
				if k == i || k == j || domains[k].Fixed {
					continue
				}
				var removed []int
				hallSet.ForEach(func(v int) bool {
					if domains[k].Values.Test(v) {
						removed = append(removed, v)
					}
					return true
				})
				for _, v := range removed {
					domains[k].Values.Reset(v)
				}
				if len(removed) > 0 {
					domains[k].Count = domains[k].Values.Count()
					if domains[k].Count == 0 {
						return false
					}
				}
			}
		}
	}

	return true
}
