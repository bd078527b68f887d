// Package pool provides the growable byte buffer AppendWriter builds on.
package pool

const (
	// DefaultBufferSize is the initial capacity a fresh ByteBuffer grows
	// from when the caller has no better size hint.
	DefaultBufferSize = 1024 * 16 // 16KiB
	// growThreshold is the capacity above which Grow switches from
	// fixed-chunk growth to proportional growth.
	growThreshold = 4 * DefaultBufferSize
)

// ByteBuffer is a growable []byte with an amortized growth strategy, used by
// buffer.AppendWriter for the non-order-preserving presets that have no
// fixed tail region to write into.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite appends data to the buffer. Callers must call Grow first to
// ensure capacity; MustWrite itself never reallocates.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold requiredBytes more bytes without
// reallocating. If the buffer already has sufficient spare capacity, Grow
// does nothing.
//
// Growth strategy: buffers under growThreshold grow by a fixed
// DefaultBufferSize chunk to minimize reallocations while small; larger
// buffers grow by 25% of current capacity to balance memory use against
// reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultBufferSize
	if cap(bb.B) > growThreshold {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}
