package miniofdm

import "errors"

// Sentinel errors returned by the core DSP operations.
var (
	// ErrBadSize is returned when an FFT or OFDM length precondition is
	// violated: a non power-of-two transform length, a cyclic-prefix
	// length outside (0, N], or a destination slice of the wrong length.
	ErrBadSize = errors.New("miniofdm: invalid size")

	// ErrOutOfRange is returned by Ring.At when the requested index is
	// not less than the ring's capacity.
	ErrOutOfRange = errors.New("miniofdm: index out of range")

	// ErrNearest is returned when a demapper cannot locate a nearest
	// constellation point. Unreachable for the fixed 16-QAM table, which
	// is finite and non-empty; kept for symmetry with larger alphabets.
	ErrNearest = errors.New("miniofdm: no nearest symbol")
)
