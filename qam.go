package miniofdm

import (
	"github.com/cwbudde/miniofdm/internal/dsptypes"
	"github.com/cwbudde/miniofdm/internal/qam"
)

// Encode maps a byte stream to 16-QAM symbols. Each byte contributes two
// symbols: the high nibble first, the low nibble second. Output length is
// 2*len(data).
func Encode[T Complex](data []byte) []T {
	out := make([]T, 0, 2*len(data))

	for _, b := range data {
		hiPt := qam.NormalizedPoint(int(b >> 4))
		loPt := qam.NormalizedPoint(int(b & 0x0f))
		out = append(out,
			dsptypes.FromFloat64[T](real(hiPt), imag(hiPt)),
			dsptypes.FromFloat64[T](real(loPt), imag(loPt)),
		)
	}

	return out
}

// DecodeHard demaps 16-QAM symbols back to bytes by nearest-point search.
// Symbols are consumed in pairs; the high nibble comes from the first
// symbol of each pair, the low nibble from the second. A trailing odd
// symbol is discarded. Output length is len(symbols)/2.
func DecodeHard[T Complex](symbols []T) []byte {
	n := len(symbols) / 2
	out := make([]byte, n)

	for i := 0; i < n; i++ {
		hi := labelOf(symbols[2*i])
		lo := labelOf(symbols[2*i+1])
		out[i] = byte(hi<<4 | lo)
	}

	return out
}

// DecodeSoft demaps 16-QAM symbols back to bytes using max-log LLR
// soft-decision demodulation at the given per-real-dimension noise
// variance sigma2. Each LLR is (min d^2 over bit-0 labels - min d^2 over
// bit-1 labels) / sigma2, so a positive LLR resolves its bit to 1 and a
// zero or negative LLR resolves it to 0; magnitude scales
// with 1/sigma2, so callers comparing against a non-zero threshold must
// account for that scale. With no noise this reduces to DecodeHard.
func DecodeSoft[T Complex](symbols []T, sigma2 float64) []byte {
	n := len(symbols) / 2
	out := make([]byte, n)

	for i := 0; i < n; i++ {
		hi := softLabelOf(symbols[2*i], sigma2)
		lo := softLabelOf(symbols[2*i+1], sigma2)
		out[i] = byte(hi<<4 | lo)
	}

	return out
}

func labelOf[T Complex](s T) int {
	re, im := dsptypes.Parts(s)
	r := complex(re, im) * complex(qam.InvEta, 0)
	return qam.Nearest(r)
}

func softLabelOf[T Complex](s T, sigma2 float64) int {
	re, im := dsptypes.Parts(s)
	r := complex(re, im) * complex(qam.InvEta, 0)
	llr := qam.LLRs(r, sigma2)

	// LLRs returns (min0 - min1) / sigma2: a positive value means the
	// nearest bit-1 hypothesis is closer, so the bit resolves to 1.
	label := 0
	for k, v := range llr {
		if v > 0 {
			label |= 1 << k
		}
	}

	return label
}
