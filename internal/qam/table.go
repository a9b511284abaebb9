// Package qam implements the fixed 16-point Gray-coded constellation used
// by the core's 16-QAM mapper/demapper: the unnormalised point table,
// squared-distance nearest search, and max-log LLR computation. Genericity
// over complex64/complex128 is handled at the call sites in the root
// package; this package works in float64/complex128 throughout since the
// table itself is a small fixed lookup, not a hot loop.
package qam

import "math"

// BitsPerSymbol is the number of information bits carried by one 16-QAM
// symbol.
const BitsPerSymbol = 4

// Eta is the amplitude-normalisation factor applied to every unnormalised
// table point so the mean symbol power equals 1: 1/sqrt(10).
var Eta = 1.0 / math.Sqrt(10)

// InvEta is 1/Eta = sqrt(10); the demapper multiplies received samples by
// InvEta before comparing against the unnormalised table.
var InvEta = math.Sqrt(10)

// points is the Gray-coded 16-QAM table indexed by 4-bit label
// b3 b2 b1 b0 (index == label). Adjacent rows (Hamming distance 1) are
// geometric neighbours along exactly one axis; this exact ordering is part
// of the wire contract and must not be re-derived.
var points = [16]complex128{
	0:  complex(-3, -3),
	1:  complex(-3, -1),
	2:  complex(-3, 3),
	3:  complex(-3, 1),
	4:  complex(-1, -3),
	5:  complex(-1, -1),
	6:  complex(-1, 3),
	7:  complex(-1, 1),
	8:  complex(3, -3),
	9:  complex(3, -1),
	10: complex(3, 3),
	11: complex(3, 1),
	12: complex(1, -3),
	13: complex(1, -1),
	14: complex(1, 3),
	15: complex(1, 1),
}

// Point returns the unnormalised constellation point for the given 4-bit
// Gray label.
func Point(label int) complex128 {
	return points[label]
}

// NormalizedPoint returns the unit-average-power point for the given
// label, i.e. Eta * Point(label).
func NormalizedPoint(label int) complex128 {
	return complex(Eta, 0) * points[label]
}

func dist2(a, b complex128) float64 {
	d := a - b
	re, im := real(d), imag(d)
	return re*re + im*im
}

// Nearest returns the label of the table entry closest to r (already
// scaled by InvEta, i.e. in the unnormalised grid's units), breaking ties
// in favour of the lowest label.
func Nearest(r complex128) int {
	best := 0
	bestDist := dist2(r, points[0])

	for label := 1; label < len(points); label++ {
		d := dist2(r, points[label])
		if d < bestDist {
			bestDist = d
			best = label
		}
	}

	return best
}

// LLRs computes the four max-log-approximated log-likelihood ratios for
// r (already scaled by InvEta) given the per-real-dimension noise
// variance sigma2. LLR[k] corresponds to bit k of the Gray label (k=0 is
// the label's least-significant bit). LLR[k] is (min0 - min1) / sigma2,
// where min0 and min1 are the smallest squared distances over labels
// whose bit k is 0 and 1 respectively, so a positive LLR indicates bit k
// is more likely 1 than 0.
func LLRs(r complex128, sigma2 float64) [BitsPerSymbol]float64 {
	var min0, min1 [BitsPerSymbol]float64
	for k := range min0 {
		min0[k] = math.Inf(1)
		min1[k] = math.Inf(1)
	}

	for label := 0; label < len(points); label++ {
		d := dist2(r, points[label])
		for k := 0; k < BitsPerSymbol; k++ {
			if (label>>k)&1 == 0 {
				if d < min0[k] {
					min0[k] = d
				}
			} else if d < min1[k] {
				min1[k] = d
			}
		}
	}

	var llr [BitsPerSymbol]float64
	for k := range llr {
		llr[k] = (min0[k] - min1[k]) / sigma2
	}

	return llr
}
