// Package dice isolates every random draw of the simulation behind a small
// interface so rolls can be pinned in tests.
package dice

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

// Source yields integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a deterministic PCG generator for seed.
func New(seed int64) *rand.Rand {
	// #nosec G404 -- simulation rolls, not secrets.
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Chance reports whether a percent roll succeeds. Chances <= 0 and >= 100
// are decided without drawing.
func Chance(src Source, percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return src.IntN(100) < percent
}

// Between draws uniformly from the inclusive range [lo, hi].
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Weighted picks an index with probability proportional to weights[i].
// Non-positive weights are never picked. It returns 0 when all weights are empty.
func Weighted(src Source, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	roll := src.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
