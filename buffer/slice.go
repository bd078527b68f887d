package buffer

import "github.com/arloliu/ordcode/errs"

// SliceReader is a double-ended reader over an immutable byte slice. It
// holds two cursors, front and back, that advance inward and must not cross;
// each read consumes from one end only, so head-side and tail-side reads of
// the same underlying bytes can be interleaved freely by the caller.
type SliceReader struct {
	buf []byte
}

// NewSliceReader wraps buf for head/tail reading. buf is not copied; the
// reader borrows it for the duration of the read and must not outlive it.
func NewSliceReader(buf []byte) *SliceReader {
	return &SliceReader{buf: buf}
}

func (r *SliceReader) Peek(n int) ([]byte, error) {
	if n > len(r.buf) {
		return nil, errs.New(errs.PrematureEndOfInput)
	}

	return r.buf[:n], nil
}

func (r *SliceReader) Advance(n int) {
	r.buf = r.buf[n:]
}

func (r *SliceReader) Remaining() []byte { return r.buf }

func (r *SliceReader) IsExhausted() error {
	if len(r.buf) == 0 {
		return nil
	}

	return errs.New(errs.BufferUnderflow)
}

func (r *SliceReader) PeekTail(n int) ([]byte, error) {
	if n > len(r.buf) {
		return nil, errs.New(errs.PrematureEndOfInput)
	}

	return r.buf[len(r.buf)-n:], nil
}

func (r *SliceReader) AdvanceTail(n int) {
	r.buf = r.buf[:len(r.buf)-n]
}

// SliceWriter is a double-ended writer over a mutable byte slice, with the
// invariant 0 <= head <= tail <= len(buf). Head writes grow forward from the
// front; tail writes grow backward from the back. A write that would make
// head exceed tail fails with errs.BufferOverflow instead of silently
// corrupting the other side's region.
type SliceWriter struct {
	buf  []byte
	head int
	tail int
}

// NewSliceWriter wraps buf for head/tail writing. The caller is responsible
// for sizing buf large enough to hold everything it intends to write —
// codec.CalculateSize computes the exact size required.
func NewSliceWriter(buf []byte) *SliceWriter {
	return &SliceWriter{buf: buf, head: 0, tail: len(buf)}
}

func (w *SliceWriter) Write(value []byte) error {
	if w.head+len(value) > w.tail {
		return errs.New(errs.BufferOverflow)
	}

	copy(w.buf[w.head:], value)
	w.head += len(value)

	return nil
}

func (w *SliceWriter) WriteTail(value []byte) error {
	if w.head+len(value) > w.tail {
		return errs.New(errs.BufferOverflow)
	}

	end := w.tail - len(value)
	copy(w.buf[end:w.tail], value)
	w.tail = end

	return nil
}

// IsComplete fails with errs.BufferUnderflow unless the head and tail
// cursors have met, i.e. the buffer was filled exactly.
func (w *SliceWriter) IsComplete() error {
	if w.head == w.tail {
		return nil
	}

	return errs.New(errs.BufferUnderflow)
}

// Finalize collapses the unused middle region — the gap between where head
// writes stopped and tail writes started — so that the bytes written via
// WriteTail become contiguous with the bytes written via Write. It returns
// the length of the resulting contiguous region, which is always <=
// len(buf). After Finalize, head and tail cursors are both set to that
// length, so Bytes() reflects it directly.
func (w *SliceWriter) Finalize() int {
	if w.head == w.tail {
		w.head = len(w.buf)
		w.tail = w.head

		return len(w.buf)
	}

	copy(w.buf[w.head:], w.buf[w.tail:])
	n := len(w.buf) - (w.tail - w.head)
	w.head = n
	w.tail = n

	return n
}

// Bytes returns the portion of buf written so far via Finalize's contiguous
// layout. Call only after Finalize.
func (w *SliceWriter) Bytes() []byte { return w.buf[:w.head] }
