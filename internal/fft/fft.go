// Package fft implements the iterative, in-place, radix-2
// decimation-in-time Cooley–Tukey transform that backs the public FFT/IFFT
// functions and the OFDM modem. It deliberately does not precompute a
// global twiddle-factor table (unlike the teacher's FastPlan): butterfly
// blocks advance their own twiddle recurrence independently, which is what
// makes the parallel stage executor safe without shared state.
package fft

import (
	"context"
	"math"

	"github.com/cwbudde/miniofdm/internal/dsptypes"
	"golang.org/x/sync/errgroup"
)

// ParallelThreshold is the number of independent butterfly blocks a stage
// must exceed before it is split across goroutines. Stages at or
// below the threshold run serially to avoid scheduling overhead.
const ParallelThreshold = 1024

// renormInterval is the number of inner butterfly steps between twiddle
// renormalisations. The multiplicative recurrence w_{j+1} = w_j * W_S
// drifts off the unit circle over long runs; re-normalising every 32
// steps keeps it accurate for stages with S >> 1024 in float32.
const renormInterval = 32

// Forward performs the forward DFT of seq in place. The caller must
// ensure len(seq) is a power of two; IsPowerOfTwo should be checked first.
func Forward[T dsptypes.Complex](seq []T) {
	transform(seq, 1)
}

// Inverse performs the inverse DFT of seq in place, scaled by 1/N so that
// Inverse(Forward(x)) reproduces x up to floating tolerance. The caller
// must ensure len(seq) is a power of two.
func Inverse[T dsptypes.Complex](seq []T) {
	transform(seq, -1)
	n := len(seq)
	invN := 1.0 / float64(n)
	for i, v := range seq {
		re, im := dsptypes.Parts(v)
		seq[i] = dsptypes.FromFloat64[T](re*invN, im*invN)
	}
}

// transform runs the shared bit-reversal + butterfly-stage pipeline. sign
// is +1 for the forward transform and -1 for the inverse, matching
// W_S = exp(-i*2*pi*sign/S).
func transform[T dsptypes.Complex](seq []T, sign float64) {
	n := len(seq)
	if n <= 1 {
		return
	}

	bitReversePermute(seq)

	for s := 2; s <= n; s <<= 1 {
		runStage(seq, s, sign)
	}
}

// runStage processes every independent block of length s within seq,
// choosing serial or parallel execution based on the block count.
func runStage[T dsptypes.Complex](seq []T, s int, sign float64) {
	half := s / 2
	numBlocks := len(seq) / s

	theta := -2 * math.Pi * sign / float64(s)
	cosT, sinT := math.Cos(theta), math.Sin(theta)

	if numBlocks <= ParallelThreshold {
		for block := 0; block < numBlocks; block++ {
			butterflyBlock(seq[block*s:block*s+s], half, cosT, sinT)
		}
		return
	}

	g, _ := errgroup.WithContext(context.Background())
	for block := 0; block < numBlocks; block++ {
		base := block * s
		g.Go(func() error {
			butterflyBlock(seq[base:base+s], half, cosT, sinT)
			return nil
		})
	}
	_ = g.Wait()
}

// butterflyBlock computes the radix-2 butterflies for a single block of
// length 2*half, advancing its own twiddle recurrence from w=1 with no
// state shared between blocks.
func butterflyBlock[T dsptypes.Complex](block []T, half int, cosT, sinT float64) {
	wr, wi := 1.0, 0.0

	for j := 0; j < half; j++ {
		if j&(renormInterval-1) == 0 {
			mag := math.Hypot(wr, wi)
			if mag != 0 {
				wr /= mag
				wi /= mag
			}
		}

		even := block[j]
		odd := block[j+half]

		er, ei := dsptypes.Parts(even)
		oddRe, oddIm := dsptypes.Parts(odd)

		// t = odd * w
		tr := oddRe*wr - oddIm*wi
		ti := oddRe*wi + oddIm*wr

		block[j] = dsptypes.FromFloat64[T](er+tr, ei+ti)
		block[j+half] = dsptypes.FromFloat64[T](er-tr, ei-ti)

		nwr := wr*cosT - wi*sinT
		nwi := wr*sinT + wi*cosT
		wr, wi = nwr, nwi
	}
}
