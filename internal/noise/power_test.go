package noise

import (
	"math"
	"testing"
)

func TestMeasurePowerUnitPower(t *testing.T) {
	t.Parallel()

	signal := make([]complex128, 1000)
	for i := range signal {
		signal[i] = complex(1, 0)
	}

	got := MeasurePower(signal)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("MeasurePower = %g, want 1", got)
	}
}

func TestMeasurePowerEmpty(t *testing.T) {
	t.Parallel()

	if got := MeasurePower([]complex128{}); got != 0 {
		t.Fatalf("MeasurePower(empty) = %g, want 0", got)
	}
}

func TestMeasurePowerMixedMagnitudes(t *testing.T) {
	t.Parallel()

	signal := []complex128{3 + 4i, 0, 1}
	// |3+4i|^2=25, |0|^2=0, |1|^2=1 -> mean = 26/3
	got := MeasurePower(signal)
	want := 26.0 / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("MeasurePower = %g, want %g", got, want)
	}
}
