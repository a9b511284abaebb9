package miniofdm

import (
	"math"
	"testing"
)

func closeEnoughC128(a, b complex128, tol float64) bool {
	d := a - b
	return math.Hypot(real(d), imag(d)) <= tol
}

func TestFFTIFFTRoundTripF64(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 4096; n <<= 1 {
		seq := make([]complex128, n)
		for i := range seq {
			seq[i] = complex(math.Sin(float64(i)*0.7), math.Cos(float64(i)*1.3))
		}
		original := append([]complex128(nil), seq...)

		if err := FFT(seq); err != nil {
			t.Fatalf("n=%d: FFT: %v", n, err)
		}
		if err := IFFT(seq); err != nil {
			t.Fatalf("n=%d: IFFT: %v", n, err)
		}

		for i := range seq {
			if !closeEnoughC128(seq[i], original[i], 1e-9) {
				t.Fatalf("n=%d i=%d: got %v, want %v", n, i, seq[i], original[i])
			}
		}
	}
}

func TestFFTIFFTRoundTripF32(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 1024; n <<= 1 {
		seq := make([]complex64, n)
		for i := range seq {
			seq[i] = complex64(complex(math.Sin(float64(i)*0.7), math.Cos(float64(i)*1.3)))
		}
		original := append([]complex64(nil), seq...)

		if err := FFT(seq); err != nil {
			t.Fatalf("n=%d: FFT: %v", n, err)
		}
		if err := IFFT(seq); err != nil {
			t.Fatalf("n=%d: IFFT: %v", n, err)
		}

		for i := range seq {
			got, want := seq[i], original[i]
			d := got - want
			abs := math.Hypot(float64(real(d)), float64(imag(d)))
			rel := abs / math.Max(1, math.Hypot(float64(real(want)), float64(imag(want))))
			if abs > 1e-5 && rel > 1e-6 {
				t.Fatalf("n=%d i=%d: got %v, want %v (abs=%g rel=%g)", n, i, got, want, abs, rel)
			}
		}
	}
}

func TestFFTBadSizeLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	seq := []complex128{0, 1, 2}
	original := append([]complex128(nil), seq...)

	if err := FFT(seq); err == nil {
		t.Fatal("expected error for non-power-of-two length")
	}

	for i := range seq {
		if seq[i] != original[i] {
			t.Fatalf("FFT mutated input on failure: got %v, want %v", seq, original)
		}
	}
}

func TestFFTKnownSequence(t *testing.T) {
	t.Parallel()

	seq := []complex128{0, 1, 2, 3, 4, 5, 6, 7}
	if err := FFT(seq); err != nil {
		t.Fatal(err)
	}
	if err := IFFT(seq); err != nil {
		t.Fatal(err)
	}

	want := []complex128{0, 1, 2, 3, 4, 5, 6, 7}
	for i := range want {
		if !closeEnoughC128(seq[i], want[i], 1e-9) {
			t.Fatalf("i=%d: got %v, want %v", i, seq[i], want[i])
		}
	}
}

func TestFFTNewLeavesInputUnmodified(t *testing.T) {
	t.Parallel()

	seq := []complex128{1, 2, 3, 4}
	original := append([]complex128(nil), seq...)

	if _, err := FFTNew(seq); err != nil {
		t.Fatal(err)
	}

	for i := range seq {
		if seq[i] != original[i] {
			t.Fatalf("FFTNew mutated its input")
		}
	}
}
