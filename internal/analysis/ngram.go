// Package analysis summarizes the move sequences of journaled runs.
package analysis

import (
	"slices"
	"sort"

	"github.com/SeamusWaldron/gocube_animator/pkg/types"
)

// NGram is a move sequence that occurs more than once in a run.
type NGram struct {
	N        int      `json:"n"`
	Sequence []string `json:"sequence"`
	Tokens   []uint8  `json:"-"`
	Count    int      `json:"count"`
	First    int      `json:"first"` // index of the first occurrence
}

// NGramReport contains the results of n-gram mining.
type NGramReport struct {
	TopNGrams map[int][]NGram `json:"top_ngrams"` // Keyed by n
}

// RollingHash implements Rabin-Karp rolling hash for efficient n-gram detection.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a new rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
		pow:    1,
	}
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Roll pushes token into the window, dropping the oldest once it is full.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)
	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	return slices.Clone(rh.window)
}

// Ready returns true if the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// MineNGrams finds the top-K most frequent repeated n-grams for each n in
// [minN, maxN]. Ties go to the sequence seen first.
func MineNGrams(moves []types.Move, minN, maxN, topK int) *NGramReport {
	report := &NGramReport{TopNGrams: make(map[int][]NGram)}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = m.Token()
	}

	for n := max(minN, 1); n <= maxN && n <= len(tokens); n++ {
		if ngrams := mineN(tokens, n, topK); len(ngrams) > 0 {
			report.TopNGrams[n] = ngrams
		}
	}
	return report
}

func mineN(tokens []uint8, n, topK int) []NGram {
	// Colliding sequences share a bucket.
	buckets := make(map[uint64][]*NGram)
	var order []*NGram

	rh := NewRollingHash(n)
	for i, tok := range tokens {
		rh.Roll(tok)
		if !rh.Ready() {
			continue
		}
		window := rh.Window()
		var hit *NGram
		for _, ng := range buckets[rh.Hash()] {
			if slices.Equal(ng.Tokens, window) {
				hit = ng
				break
			}
		}
		if hit == nil {
			hit = &NGram{N: n, Tokens: window, First: i - n + 1}
			buckets[rh.Hash()] = append(buckets[rh.Hash()], hit)
			order = append(order, hit)
		}
		hit.Count++
	}

	var repeated []NGram
	for _, ng := range order {
		if ng.Count < 2 {
			continue
		}
		ng.Sequence = make([]string, len(ng.Tokens))
		for j, tok := range ng.Tokens {
			ng.Sequence[j] = types.MoveFromToken(tok).Notation()
		}
		repeated = append(repeated, *ng)
	}

	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].Count > repeated[j].Count
	})
	if len(repeated) > topK {
		repeated = repeated[:topK]
	}
	return repeated
}
