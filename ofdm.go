package miniofdm

import (
	"fmt"

	"github.com/cwbudde/miniofdm/internal/fft"
)

// TxInto writes the time-domain, cyclic-prefixed OFDM symbol for the
// frequency-domain block X into dst, in place. len(X) must be a power of
// two (call it N) and 0 < cpLen <= N; dst must have length N+cpLen.
//
// dst[cpLen:] is set to IFFT(X) and dst[:cpLen] is set to a copy of the
// last cpLen samples of that IFFT output, i.e. dst[k] = dst[N+k] for
// k in [0, cpLen).
func TxInto[T Complex](dst, X []T, cpLen int) error {
	n := len(X)
	if !fft.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: frame length %d is not a power of two", ErrBadSize, n)
	}
	if cpLen <= 0 || cpLen > n {
		return fmt.Errorf("%w: cyclic prefix length %d outside (0, %d]", ErrBadSize, cpLen, n)
	}
	if len(dst) != n+cpLen {
		return fmt.Errorf("%w: dst length %d, want %d", ErrBadSize, len(dst), n+cpLen)
	}

	copy(dst[cpLen:], X)

	body := dst[cpLen:]
	fft.Inverse(body)

	copy(dst[:cpLen], dst[n:n+cpLen])
	return nil
}

// Tx allocates and returns the time-domain, cyclic-prefixed OFDM symbol
// for X. It is an allocating wrapper around TxInto.
func Tx[T Complex](X []T, cpLen int) ([]T, error) {
	if cpLen <= 0 {
		return nil, fmt.Errorf("%w: cyclic prefix length %d is not positive", ErrBadSize, cpLen)
	}

	dst := make([]T, len(X)+cpLen)
	if err := TxInto(dst, X, cpLen); err != nil {
		return nil, err
	}
	return dst, nil
}

// RxInto recovers the frequency-domain estimate of a received OFDM symbol
// y into dst, in place. len(y) must equal N+cpLen for some power-of-two N
// and 0 < cpLen <= N; dst must have length N. The receiver drops the
// first cpLen samples and runs a forward FFT on the remainder; it performs
// no equalisation, timing, or frequency correction.
func RxInto[T Complex](dst, y []T, cpLen int) error {
	n := len(y) - cpLen
	if cpLen <= 0 || n <= 0 || !fft.IsPowerOfTwo(n) || cpLen > n {
		return fmt.Errorf("%w: received length %d, cp %d yields invalid frame size", ErrBadSize, len(y), cpLen)
	}
	if len(dst) != n {
		return fmt.Errorf("%w: dst length %d, want %d", ErrBadSize, len(dst), n)
	}

	copy(dst, y[cpLen:])
	fft.Forward(dst)
	return nil
}

// Rx allocates and returns the frequency-domain estimate of a received
// OFDM symbol y. It is an allocating wrapper around RxInto.
func Rx[T Complex](y []T, cpLen int) ([]T, error) {
	n := len(y) - cpLen
	if n < 0 {
		n = 0
	}

	dst := make([]T, n)
	if err := RxInto(dst, y, cpLen); err != nil {
		return nil, err
	}
	return dst, nil
}
