// Package dsptypes holds the generic type constraints shared by every
// numeric package in the module, and the small conversion helpers that let
// algorithms stay parametric over precision with no runtime branching.
package dsptypes

// Complex is the type constraint satisfied by the two complex types the
// core is instantiated over.
type Complex interface {
	complex64 | complex128
}

// Float is the floating-point type constraint corresponding to Complex.
type Float interface {
	float32 | float64
}

// FromFloat64 builds a value of T from float64 real/imaginary components,
// rounding to float32 when T is complex64. Generic code cannot name T's
// component type directly, so construction goes through a type switch on
// the zero value, mirroring the teacher's complexFromFloat64 helper.
func FromFloat64[T Complex](re, im float64) T {
	var zero T

	switch any(zero).(type) {
	case complex64:
		v, _ := any(complex(float32(re), float32(im))).(T)
		return v
	case complex128:
		v, _ := any(complex(re, im)).(T)
		return v
	default:
		panic("dsptypes: unsupported complex type")
	}
}

// Parts returns the real and imaginary components of v as float64,
// regardless of T's underlying precision.
func Parts[T Complex](v T) (re, im float64) {
	switch c := any(v).(type) {
	case complex64:
		return float64(real(c)), float64(imag(c))
	case complex128:
		return real(c), imag(c)
	default:
		panic("dsptypes: unsupported complex type")
	}
}

// Mag2 returns the squared magnitude of v as a float64, regardless of T's
// underlying precision.
func Mag2[T Complex](v T) float64 {
	re, im := Parts(v)
	return re*re + im*im
}

// Conj returns the complex conjugate of v.
func Conj[T Complex](v T) T {
	re, im := Parts(v)
	return FromFloat64[T](re, -im)
}
