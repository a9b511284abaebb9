// Command miniofdmdemo runs the OFDM pipeline for a handful of ticks and
// prints the decoded text and signal-level summary for each, standing in
// for the (excluded) interactive plotting surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/cwbudde/miniofdm"
)

func main() {
	n := flag.Int("n", 64, "OFDM subcarrier count (power of two)")
	cpLen := flag.Int("cp", 16, "cyclic prefix length")
	snrDB := flag.Float64("snr", 15, "channel SNR in dB")
	ticks := flag.Int("ticks", 5, "number of pipeline ticks to run")
	payload := flag.String("payload", "The quick brown fox jumps over the lazy dog.", "round-robin payload text")
	seed := flag.Uint64("seed", 1, "AWGN PRNG seed")
	flag.Parse()

	cfg := miniofdm.Config{
		N:            *n,
		CPLen:        *cpLen,
		BytesPerTick: *n / 2,
		HistoryLen:   *n * 4,
	}

	channel := miniofdm.NewAwgn[complex128](*snrDB, *seed)
	source := miniofdm.NewStringPayload(*payload)
	pipeline := miniofdm.NewPipeline(cfg, source, channel)

	for tick := 0; tick < *ticks; tick++ {
		view, err := pipeline.Tick()
		if err != nil {
			log.Fatalf("tick %d: %v", tick, err)
		}

		fmt.Printf("tick %d: decoded=%q noise-rms=%.4f\n", tick, view.DecodedText, rms(view.NoiseTime))
	}
}

func rms(samples []complex128) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += real(s)*real(s) + imag(s)*imag(s)
	}

	return math.Sqrt(sum / float64(len(samples)))
}
