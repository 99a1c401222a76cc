package match

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Strategy selects how window fingerprints are computed. The two
// families are internally consistent but not comparable with each
// other: a set built with one strategy must only be probed with the
// same strategy.
type Strategy int

const (
	// StrategyDirect hashes each window's raw contents with xxhash.
	// O(n) per position; fastest for small n.
	StrategyDirect Strategy = iota
	// StrategyRolling maintains a polynomial hash incrementally.
	// O(1) per position after priming; fastest for large n.
	StrategyRolling
)

func (s Strategy) String() string {
	switch s {
	case StrategyDirect:
		return "direct"
	case StrategyRolling:
		return "rolling"
	}
	return "unknown"
}

// Set holds the fingerprints of every width-n window of a sequence,
// duplicates merged.
type Set map[uint64]struct{}

// Contains reports whether fp is in the set.
func (s Set) Contains(fp uint64) bool {
	_, ok := s[fp]
	return ok
}

// Fingerprints builds the fingerprint set for every contiguous width-n
// window of seq. A sequence shorter than n, or n < 1, yields an empty
// set.
func Fingerprints(seq []int32, n int, strategy Strategy) Set {
	set := make(Set)
	if n < 1 || len(seq) < n {
		return set
	}
	if strategy == StrategyRolling {
		rh := NewRollingHash()
		for _, t := range seq[:n] {
			rh.Append(uint64(uint32(t)))
		}
		set[rh.Sum()] = struct{}{}
		for i := n; i < len(seq); i++ {
			rh.Slide(uint64(uint32(seq[i-n])), uint64(uint32(seq[i])))
			set[rh.Sum()] = struct{}{}
		}
		return set
	}
	buf := make([]byte, 4*n)
	for i := 0; i+n <= len(seq); i++ {
		set[directHash(seq[i:i+n], buf)] = struct{}{}
	}
	return set
}

// directHash computes the direct-strategy fingerprint of one window.
// buf is a caller-owned scratch slice of at least 4*len(window) bytes.
func directHash(window []int32, buf []byte) uint64 {
	for i, t := range window {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(t))
	}
	return xxhash.Sum64(buf[:4*len(window)])
}
