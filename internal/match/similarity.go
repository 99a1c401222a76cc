package match

// frequencies builds a token -> occurrence count map for a span.
func frequencies(span []int32) map[int32]int {
	freq := make(map[int32]int, len(span))
	for _, t := range span {
		freq[t]++
	}
	return freq
}

// WeightedJaccard computes the multiset Jaccard similarity of two token
// spans: the sum of per-token minimum counts over the sum of per-token
// maximum counts. Symmetric, bounded in [0,1], and 1.0 exactly when the
// spans are permutations of each other. Two empty spans score 0.
func WeightedJaccard(a, b []int32) float64 {
	x := frequencies(a)
	y := frequencies(b)

	intersection := 0
	for t, ca := range x {
		if cb, ok := y[t]; ok {
			if cb < ca {
				intersection += cb
			} else {
				intersection += ca
			}
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}
