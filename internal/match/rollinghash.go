package match

const (
	hashBase    uint64 = 31
	hashModulus uint64 = 1_000_000_007
)

// RollingHash maintains the polynomial hash of a fixed-width sliding
// window over a stream of symbols. The window is built once with Append
// and then shifted in O(1) with Slide. Symbols and the running hash stay
// below the modulus, so every intermediate product fits in a uint64.
type RollingHash struct {
	hash       uint64
	basePower  uint64 // base^(windowSize-1) mod modulus, used for eviction
	windowSize int
}

// NewRollingHash returns an empty accumulator.
func NewRollingHash() *RollingHash {
	return &RollingHash{basePower: 1}
}

// Append extends the window by one symbol. Only used while priming the
// initial window; mixing Append and Slide changes the window width.
func (r *RollingHash) Append(sym uint64) {
	r.hash = (r.hash*hashBase + sym%hashModulus) % hashModulus
	r.windowSize++
	if r.windowSize > 1 {
		r.basePower = (r.basePower * hashBase) % hashModulus
	}
}

// Slide evicts the oldest symbol and admits a new one, keeping the
// window width fixed. The caller supplies the evicted symbol; no bounds
// checking happens here.
func (r *RollingHash) Slide(old, next uint64) {
	r.hash = (r.hash + hashModulus - (old%hashModulus*r.basePower)%hashModulus) % hashModulus
	r.hash = (r.hash*hashBase + next%hashModulus) % hashModulus
}

// Sum returns the hash of the current window.
func (r *RollingHash) Sum() uint64 {
	return r.hash
}
