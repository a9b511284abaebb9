// Package miniofdm is a teaching-grade OFDM baseband DSP core: an
// iterative radix-2 FFT/IFFT engine, an OFDM modem that wraps it with a
// cyclic prefix, a Gray-coded 16-QAM mapper/demapper with hard- and
// soft-decision demodulation, an AWGN channel, and a sliding ring buffer
// that stages numeric output for an external visualiser.
//
// Every numeric type in the core is generic over Complex (complex64 or
// complex128), chosen once per instantiation with no runtime branching.
// The package is a library: it has no persisted state, no wire protocol,
// and no CLI surface of its own (see cmd/miniofdmdemo for a minimal
// driver).
package miniofdm
