package miniofdm

import (
	"math"
	"testing"
)

func TestAwgnMeanAndVariance(t *testing.T) {
	t.Parallel()

	const snrDB = 10.0
	const n = 200000

	signal := make([]complex128, n)
	ch := NewAwgn[complex128](snrDB, 42)
	noise := ch.Apply(signal, true)

	var sumRe, sumIm, sumSq float64
	for _, v := range noise {
		sumRe += real(v)
		sumIm += imag(v)
		sumSq += real(v)*real(v) + imag(v)*imag(v)
	}

	meanRe := sumRe / n
	meanIm := sumIm / n
	if math.Abs(meanRe) > 0.05 || math.Abs(meanIm) > 0.05 {
		t.Fatalf("mean = (%g, %g), want within 0.05 of 0", meanRe, meanIm)
	}

	snrLinear := math.Pow(10, snrDB/10)
	wantVariancePerDim := 1.0 / (2 * snrLinear)
	gotVariance := sumSq / n / 2 // average over both real and imaginary dimensions

	if math.Abs(gotVariance-wantVariancePerDim)/wantVariancePerDim > 0.05 {
		t.Fatalf("per-dimension variance = %g, want %g within 5%%", gotVariance, wantVariancePerDim)
	}
}

func TestAwgnEmptySignal(t *testing.T) {
	t.Parallel()

	ch := NewAwgn[complex128](20, 1)
	out := ch.Apply(nil, true)
	if len(out) != 0 {
		t.Fatalf("Apply(nil) = %v, want empty", out)
	}
}

func TestAwgnSetSNRChangesVariance(t *testing.T) {
	t.Parallel()

	ch := NewAwgn[complex128](0, 7)

	lowNoise := make([]complex128, 10000)
	_ = ch.Apply(lowNoise, true)

	ch.SetSNR(40)
	highSNR := make([]complex128, 10000)
	noiseAtHighSNR := ch.Apply(highSNR, true)

	var powLow, powHigh float64
	for i := range lowNoise {
		powLow += real(lowNoise[i])*real(lowNoise[i]) + imag(lowNoise[i])*imag(lowNoise[i])
	}
	for _, v := range noiseAtHighSNR {
		powHigh += real(v)*real(v) + imag(v)*imag(v)
	}

	if powHigh >= powLow {
		t.Fatalf("expected less noise power at higher SNR: low=%g high=%g", powLow, powHigh)
	}
}

func TestAwgnMeasuredPowerPath(t *testing.T) {
	t.Parallel()

	signal := make([]complex128, 5000)
	for i := range signal {
		signal[i] = complex(2, 0) // power 4, not unit
	}

	ch := NewAwgn[complex128](10, 3)
	noise := ch.Apply(signal, false)

	var sumSq float64
	for _, v := range noise {
		sumSq += real(v)*real(v) + imag(v)*imag(v)
	}
	gotVariance := sumSq / float64(len(noise)) / 2

	wantVariance := 4.0 / (2 * math.Pow(10, 1))
	if math.Abs(gotVariance-wantVariance)/wantVariance > 0.1 {
		t.Fatalf("per-dimension variance = %g, want %g", gotVariance, wantVariance)
	}
}
