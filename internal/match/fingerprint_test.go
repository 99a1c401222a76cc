package match

import "testing"

func TestFingerprintsWindowCount(t *testing.T) {
	seq := []int32{1, 2, 3, 4, 5}

	for _, strategy := range []Strategy{StrategyDirect, StrategyRolling} {
		set := Fingerprints(seq, 2, strategy)
		// 4 distinct windows, no repeats in this sequence.
		if len(set) != 4 {
			t.Errorf("%v: got %d fingerprints, want 4", strategy, len(set))
		}
	}
}

func TestFingerprintsMergeDuplicateWindows(t *testing.T) {
	// [1,2] occurs twice; the set keeps one fingerprint for it.
	seq := []int32{1, 2, 3, 1, 2}

	for _, strategy := range []Strategy{StrategyDirect, StrategyRolling} {
		set := Fingerprints(seq, 2, strategy)
		if len(set) != 3 {
			t.Errorf("%v: got %d fingerprints, want 3", strategy, len(set))
		}
	}
}

func TestFingerprintsAtMostWindowCount(t *testing.T) {
	seq := []int32{5, 5, 5, 1, 5, 5, 2, 5, 5, 5}

	for _, strategy := range []Strategy{StrategyDirect, StrategyRolling} {
		for n := 1; n <= len(seq); n++ {
			set := Fingerprints(seq, n, strategy)
			if windows := len(seq) - n + 1; len(set) > windows {
				t.Errorf("%v n=%d: %d fingerprints exceeds %d windows", strategy, n, len(set), windows)
			}
		}
	}
}

func TestFingerprintsDegenerate(t *testing.T) {
	tests := []struct {
		name string
		seq  []int32
		n    int
	}{
		{"empty sequence", nil, 3},
		{"sequence shorter than window", []int32{1, 2}, 3},
		{"zero width", []int32{1, 2, 3}, 0},
		{"negative width", []int32{1, 2, 3}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, strategy := range []Strategy{StrategyDirect, StrategyRolling} {
				if set := Fingerprints(tt.seq, tt.n, strategy); len(set) != 0 {
					t.Errorf("%v: got %d fingerprints, want empty set", strategy, len(set))
				}
			}
		})
	}
}

func TestFingerprintsDeterministic(t *testing.T) {
	seq := []int32{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 9, 8, 7}

	for _, strategy := range []Strategy{StrategyDirect, StrategyRolling} {
		a := Fingerprints(seq, 4, strategy)
		b := Fingerprints(seq, 4, strategy)
		if len(a) != len(b) {
			t.Fatalf("%v: set sizes differ: %d vs %d", strategy, len(a), len(b))
		}
		for fp := range a {
			if !b.Contains(fp) {
				t.Errorf("%v: fingerprint %d missing on second build", strategy, fp)
			}
		}
	}
}

func TestFingerprintsContentSensitive(t *testing.T) {
	// Windows with identical contents fingerprint identically across
	// separate sequences; order matters within a window.
	for _, strategy := range []Strategy{StrategyDirect, StrategyRolling} {
		a := Fingerprints([]int32{1, 2, 3}, 3, strategy)
		b := Fingerprints([]int32{1, 2, 3}, 3, strategy)
		for fp := range a {
			if !b.Contains(fp) {
				t.Errorf("%v: same contents produced different fingerprints", strategy)
			}
		}

		reversed := Fingerprints([]int32{3, 2, 1}, 3, strategy)
		for fp := range a {
			if reversed.Contains(fp) {
				t.Errorf("%v: reversed window produced the same fingerprint", strategy)
			}
		}
	}
}

func TestRollingFingerprintsMatchPrimedHash(t *testing.T) {
	// Every rolling fingerprint must equal the hash of that window
	// primed from scratch.
	seq := []int32{4, 1, 4, 2, 8, 5, 7, 1}
	const n = 3

	set := Fingerprints(seq, n, StrategyRolling)
	for i := 0; i+n <= len(seq); i++ {
		rh := NewRollingHash()
		for _, tok := range seq[i : i+n] {
			rh.Append(uint64(uint32(tok)))
		}
		if !set.Contains(rh.Sum()) {
			t.Errorf("window at %d: primed hash %d not in rolling set", i, rh.Sum())
		}
	}
}
