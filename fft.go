package miniofdm

import (
	"fmt"

	"github.com/cwbudde/miniofdm/internal/fft"
)

// FFT performs the forward discrete Fourier transform of seq in place.
// len(seq) must be a positive power of two; otherwise seq is left
// untouched and ErrBadSize is returned.
func FFT[T Complex](seq []T) error {
	if !fft.IsPowerOfTwo(len(seq)) {
		return fmt.Errorf("%w: length %d is not a power of two", ErrBadSize, len(seq))
	}

	fft.Forward(seq)
	return nil
}

// IFFT performs the inverse discrete Fourier transform of seq in place,
// scaled by 1/len(seq) so that IFFT(FFT(x)) reproduces x up to floating
// tolerance. len(seq) must be a positive power of two.
func IFFT[T Complex](seq []T) error {
	if !fft.IsPowerOfTwo(len(seq)) {
		return fmt.Errorf("%w: length %d is not a power of two", ErrBadSize, len(seq))
	}

	fft.Inverse(seq)
	return nil
}

// FFTNew returns the forward transform of seq as a freshly allocated
// slice, leaving seq unmodified. It is an allocating wrapper around FFT.
func FFTNew[T Complex](seq []T) ([]T, error) {
	out := make([]T, len(seq))
	copy(out, seq)

	if err := FFT(out); err != nil {
		return nil, err
	}

	return out, nil
}

// IFFTNew returns the inverse transform of seq as a freshly allocated
// slice, leaving seq unmodified. It is an allocating wrapper around IFFT.
func IFFTNew[T Complex](seq []T) ([]T, error) {
	out := make([]T, len(seq))
	copy(out, seq)

	if err := IFFT(out); err != nil {
		return nil, err
	}

	return out, nil
}
