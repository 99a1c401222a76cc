package match

// HasNearDuplicateNaive reports whether any query-length window of doc
// scores at least threshold against query. No pruning; every window is
// scored. Used as the correctness baseline for the prefiltered
// scanners.
func HasNearDuplicateNaive(doc, query []int32, threshold float64) bool {
	if len(query) == 0 || len(doc) < len(query) {
		return false
	}
	for start := 0; start+len(query) <= len(doc); start++ {
		if WeightedJaccard(query, doc[start:start+len(query)]) >= threshold {
			return true
		}
	}
	return false
}

// HasNearDuplicate reports whether doc contains a span near-duplicate
// to query. set must have been built from query with Fingerprints using
// the same n and strategy. At each position the document-side n-gram
// fingerprint gates the expensive similarity check: only on a set hit
// are the query-length windows around the position scored. The first
// window meeting threshold ends the scan.
//
// A true near-duplicate that shares no exact n-gram with the query is
// missed. That recall gap is the price of the prefilter and is part of
// the contract; smaller n trades speed for recall.
func HasNearDuplicate(doc, query []int32, set Set, threshold float64, n int, strategy Strategy) bool {
	if len(query) == 0 || len(doc) < len(query) || n < 1 || n > len(query) {
		return false
	}
	last := len(doc) - len(query)

	if strategy == StrategyRolling {
		rh := NewRollingHash()
		for _, t := range doc[:n] {
			rh.Append(uint64(uint32(t)))
		}
		for pos := 0; ; pos++ {
			if set.Contains(rh.Sum()) && verifyAround(doc, query, pos, n, threshold) {
				return true
			}
			if pos == last {
				return false
			}
			rh.Slide(uint64(uint32(doc[pos])), uint64(uint32(doc[pos+n])))
		}
	}

	buf := make([]byte, 4*n)
	for pos := 0; pos <= last; pos++ {
		if set.Contains(directHash(doc[pos:pos+n], buf)) && verifyAround(doc, query, pos, n, threshold) {
			return true
		}
	}
	return false
}

// verifyAround scores the query-length document windows starting at
// every offset in the inclusive range [max(0, pos-len(query)+n), pos].
// Any n-gram shared between query and a near-duplicate span must sit
// inside the span, so the span's start can be at most len(query)-n
// positions before the hit.
func verifyAround(doc, query []int32, pos, n int, threshold float64) bool {
	start := pos - len(query) + n
	if start < 0 {
		start = 0
	}
	for j := start; j <= pos; j++ {
		if WeightedJaccard(query, doc[j:j+len(query)]) >= threshold {
			return true
		}
	}
	return false
}
