package noise

import "github.com/cwbudde/miniofdm/internal/dsptypes"

// MeasurePower returns the mean squared magnitude of signal using a
// Kahan-compensated running sum. A naive accumulator loses precision for
// long float32 sequences; the compensation term keeps the measurement
// accurate even when the running sum grows much larger than any single
// term.
func MeasurePower[T dsptypes.Complex](signal []T) float64 {
	if len(signal) == 0 {
		return 0
	}

	sum := 0.0
	comp := 0.0

	for _, s := range signal {
		term := dsptypes.Mag2(s)
		y := term - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}
