// Package noise generates reproducible Gaussian samples for the AWGN
// channel model. It delegates the actual sampling to gonum's distuv.Normal
// rather than hand-rolling a Box-Muller transform, matching the pack's own
// precedent of reaching for gonum when a distribution is needed.
package noise

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator produces independent zero-mean Gaussian samples at a caller-
// chosen standard deviation. It is safe for concurrent use; the AWGN
// channel that owns it is specified as single-threaded, but the generator
// itself takes no chances.
type Generator struct {
	mu   sync.Mutex
	dist distuv.Normal
}

// New creates a Generator seeded deterministically from seed, or from the
// current time if seed is nil.
func New(seed *uint64) *Generator {
	var src rand.Source
	if seed != nil {
		src = rand.NewSource(*seed)
	} else {
		src = rand.NewSource(uint64(time.Now().UnixNano()))
	}

	return &Generator{
		dist: distuv.Normal{Mu: 0, Sigma: 1, Src: src},
	}
}

// Sample draws one N(0, sigma^2) value.
func (g *Generator) Sample(sigma float64) float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.dist.Sigma = sigma
	return g.dist.Rand()
}
