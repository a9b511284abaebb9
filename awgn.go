package miniofdm

import (
	"math"

	"github.com/cwbudde/miniofdm/internal/dsptypes"
	"github.com/cwbudde/miniofdm/internal/noise"
)

// Awgn is a stateful additive white Gaussian noise channel parameterised
// by signal-to-noise ratio. It owns a seeded, deterministic Gaussian
// sample generator; the channel itself is intended for single-threaded
// use, per the core's concurrency model.
type Awgn[T Complex] struct {
	snrLinear float64
	gen       *noise.Generator
}

// NewAwgn creates a channel at the given SNR, expressed in decibels. An
// optional seed makes the noise sequence reproducible; without one, the
// generator seeds itself from the current time.
func NewAwgn[T Complex](snrDB float64, seed ...uint64) *Awgn[T] {
	var seedPtr *uint64
	if len(seed) > 0 {
		seedPtr = &seed[0]
	}

	return &Awgn[T]{
		snrLinear: dbToLinear(snrDB),
		gen:       noise.New(seedPtr),
	}
}

// SetSNR updates the channel's SNR, expressed in decibels.
func (a *Awgn[T]) SetSNR(snrDB float64) {
	a.snrLinear = dbToLinear(snrDB)
}

// Apply adds independent complex Gaussian noise to every sample of signal
// in place and returns the noise-only sequence that was added, of the
// same length. If signalIsUnitPower is true, the signal power is assumed
// to be 1 (as guaranteed on average by the 16-QAM mapper); otherwise it is
// measured from signal itself via a Kahan-compensated mean of |s|^2. An
// empty signal returns an empty, unmodified slice.
func (a *Awgn[T]) Apply(signal []T, signalIsUnitPower bool) []T {
	if len(signal) == 0 {
		return signal[:0]
	}

	ps := 1.0
	if !signalIsUnitPower {
		ps = noise.MeasurePower(signal)
	}

	sigma2 := ps / (2 * a.snrLinear)
	sigma := math.Sqrt(sigma2)

	out := make([]T, len(signal))
	for i, s := range signal {
		nr := a.gen.Sample(sigma)
		ni := a.gen.Sample(sigma)
		n := dsptypes.FromFloat64[T](nr, ni)

		out[i] = n
		sre, sim := dsptypes.Parts(s)
		signal[i] = dsptypes.FromFloat64[T](sre+nr, sim+ni)
	}

	return out
}

func dbToLinear(snrDB float64) float64 {
	return math.Pow(10, snrDB/10)
}
