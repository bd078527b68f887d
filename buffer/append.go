package buffer

import "github.com/arloliu/ordcode/internal/pool"

// AppendWriter is a single-ended, growable writer backed by a byte buffer
// (not pooled) with the amortized growth strategy from internal/pool (fixed
// chunks below the size threshold, 25% growth above it). It is used by the
// non-order-preserving presets (params.PortableBinary, params.NativeBinary)
// where there is no tail-metadata discipline to honor: both Write and
// WriteTail simply append, matching the Rust source's impl of WriteBytes /
// TailWriteBytes directly on Vec<u8>.
type AppendWriter struct {
	buf *pool.ByteBuffer
}

// NewAppendWriter creates an append-only writer. sizeHint, when positive,
// pre-sizes the backing buffer (typically from codec.CalculateSize) to
// avoid reallocation; zero or negative falls back to the pool's default.
func NewAppendWriter(sizeHint int) *AppendWriter {
	if sizeHint <= 0 {
		sizeHint = pool.DefaultBufferSize
	}

	return &AppendWriter{buf: pool.NewByteBuffer(sizeHint)}
}

func (w *AppendWriter) Write(value []byte) error {
	w.buf.Grow(len(value))
	w.buf.MustWrite(value)

	return nil
}

// WriteTail appends, the same as Write: an append-only buffer has no
// meaningful notion of a separate tail region.
func (w *AppendWriter) WriteTail(value []byte) error {
	return w.Write(value)
}

// Bytes returns the bytes written so far. The returned slice shares the
// writer's backing array; do not retain it across further writes.
func (w *AppendWriter) Bytes() []byte { return w.buf.Bytes() }

// Len returns the number of bytes written so far.
func (w *AppendWriter) Len() int { return w.buf.Len() }
