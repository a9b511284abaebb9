package miniofdm

// PayloadSource supplies the next K bytes of application payload to a
// Pipeline tick. Implementations decide what "next" means: round-robin
// over a fixed string, draining a queue fed by a UI widget, or anything
// else a caller wires in.
type PayloadSource interface {
	Next(k int) []byte
}

// StringPayload round-robins over a fixed byte string, wrapping back to
// the start once exhausted. It is not safe for concurrent use.
type StringPayload struct {
	data   []byte
	cursor int
}

// NewStringPayload creates a PayloadSource that cycles over s.
func NewStringPayload(s string) *StringPayload {
	return &StringPayload{data: []byte(s)}
}

// Next returns the next k bytes, wrapping around the payload as needed.
// It returns fewer than k bytes only if the payload itself is empty.
func (p *StringPayload) Next(k int) []byte {
	if len(p.data) == 0 {
		return nil
	}

	out := make([]byte, 0, k)
	for len(out) < k {
		remaining := k - len(out)
		avail := len(p.data) - p.cursor
		take := remaining
		if take > avail {
			take = avail
		}

		out = append(out, p.data[p.cursor:p.cursor+take]...)
		p.cursor += take
		if p.cursor >= len(p.data) {
			p.cursor = 0
		}
	}

	return out
}

// Config holds the OFDM frame parameters a Pipeline drives on every tick.
type Config struct {
	// N is the number of subcarriers per OFDM frame; must be a power of
	// two.
	N int
	// CPLen is the cyclic-prefix length, in (0, N].
	CPLen int
	// BytesPerTick is the number of payload bytes pulled per tick. It
	// must equal N/2 so that one frame of N symbols exactly carries
	// BytesPerTick*2 symbols (two symbols per byte).
	BytesPerTick int
	// HistoryLen is the capacity of each sliding display buffer.
	HistoryLen int
}

// FrameView is the snapshot a Pipeline exposes to an external visualiser
// after one tick: the transmitted constellation, the three time-domain
// windows (tx, noise-only, rx), and the latest decoded-text window.
type FrameView[T Complex] struct {
	TxSymbols   []T
	TxTime      []T
	NoiseTime   []T
	RxTime      []T
	DecodedText []byte
}

// Pipeline drives one OFDM frame per tick: pull payload bytes, encode to
// symbols, modulate with a cyclic prefix, pass through an AWGN channel,
// demodulate, decode, and stage every numeric view in a ring buffer owned
// by the Pipeline itself. No state is retained between ticks beyond the
// ring buffers and the payload cursor; there are no package-level
// globals.
type Pipeline[T Complex] struct {
	cfg     Config
	payload PayloadSource
	channel *Awgn[T]

	txSymbols   *Ring[T]
	txTime      *Ring[T]
	noiseTime   *Ring[T]
	rxTime      *Ring[T]
	decodedText *Ring[byte]
}

// NewPipeline creates a Pipeline with its own rings and channel, scoped to
// the caller's lifetime. payload and channel are owned by the returned
// Pipeline for as long as it is used.
func NewPipeline[T Complex](cfg Config, payload PayloadSource, channel *Awgn[T]) *Pipeline[T] {
	return &Pipeline[T]{
		cfg:         cfg,
		payload:     payload,
		channel:     channel,
		txSymbols:   NewRing[T](cfg.HistoryLen),
		txTime:      NewRing[T](cfg.HistoryLen),
		noiseTime:   NewRing[T](cfg.HistoryLen),
		rxTime:      NewRing[T](cfg.HistoryLen),
		decodedText: NewRing[byte](cfg.HistoryLen),
	}
}

// Tick drives one frame end to end: payload -> symbols -> tx -> channel ->
// rx -> decoded bytes, staging every intermediate numeric view into the
// Pipeline's ring buffers, and returns the resulting FrameView.
func (p *Pipeline[T]) Tick() (FrameView[T], error) {
	payload := p.payload.Next(p.cfg.BytesPerTick)
	symbols := Encode[T](payload)

	txTime, err := Tx(symbols, p.cfg.CPLen)
	if err != nil {
		return FrameView[T]{}, err
	}

	rxTime := make([]T, len(txTime))
	copy(rxTime, txTime)

	noise := p.channel.Apply(rxTime, true)

	rxSymbols, err := Rx(rxTime, p.cfg.CPLen)
	if err != nil {
		return FrameView[T]{}, err
	}

	decoded := DecodeHard(rxSymbols)

	p.txSymbols.PushRange(symbols)
	p.txTime.PushRange(txTime)
	p.noiseTime.PushRange(noise)
	p.rxTime.PushRange(rxTime)
	p.decodedText.PushRange(decoded)

	return FrameView[T]{
		TxSymbols:   symbols,
		TxTime:      txTime,
		NoiseTime:   noise,
		RxTime:      rxTime,
		DecodedText: decoded,
	}, nil
}
