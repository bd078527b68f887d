package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ordcode/errs"
)

func TestSliceReaderHeadAndTail(t *testing.T) {
	require := require.New(t)

	buf := []byte("aabbd21")
	r := NewSliceReader(buf)

	var gotHead, gotT1, gotT2, gotTail []byte
	require.NoError(ReadN(r, 3, func(b []byte) error { gotHead = append([]byte(nil), b...); return nil }))
	require.Equal([]byte("aab"), gotHead)

	require.NoError(ReadTailN(r, 1, func(b []byte) error { gotT1 = append([]byte(nil), b...); return nil }))
	require.Equal([]byte("1"), gotT1)

	require.NoError(ReadTailN(r, 1, func(b []byte) error { gotT2 = append([]byte(nil), b...); return nil }))
	require.Equal([]byte("2"), gotT2)

	require.NoError(ReadN(r, 2, func(b []byte) error { gotTail = append([]byte(nil), b...); return nil }))
	require.Equal([]byte("bd"), gotTail)

	require.NoError(r.IsExhausted())
}

func TestSliceReaderUnderflow(t *testing.T) {
	require := require.New(t)

	r := NewSliceReader([]byte{1, 2, 3})
	_, err := r.Peek(10)
	require.ErrorIs(err, errs.New(errs.PrematureEndOfInput))

	_, err = r.PeekTail(10)
	require.ErrorIs(err, errs.New(errs.PrematureEndOfInput))
}

func TestSliceWriterHeadTailRoundTrip(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 7)
	w := NewSliceWriter(buf)

	require.NoError(w.Write([]byte("aa")))
	require.NoError(w.WriteTail([]byte("1")))
	require.NoError(w.Write([]byte("bb")))
	require.NoError(w.WriteTail([]byte("2")))
	require.NoError(w.Write([]byte("d")))
	require.NoError(w.IsComplete())
	require.Equal([]byte("aabbd21"), buf)

	n := w.Finalize()
	require.Equal(7, n)
}

func TestSliceWriterFinalizeCollapsesGap(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 16)
	w := NewSliceWriter(buf)
	require.NoError(w.Write([]byte{1, 2, 3}))
	require.NoError(w.WriteTail([]byte{9}))

	n := w.Finalize()
	require.Equal(4, n)
	require.Equal([]byte{1, 2, 3, 9}, w.Bytes())
	require.NoError(w.IsComplete())
}

func TestSliceWriterOverflow(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 2)
	w := NewSliceWriter(buf)
	require.NoError(w.Write([]byte{1, 2}))

	err := w.Write([]byte{3})
	require.ErrorIs(err, errs.New(errs.BufferOverflow))

	err = w.WriteTail([]byte{3})
	require.ErrorIs(err, errs.New(errs.BufferOverflow))
}

func TestReadFromTailAndWriteToTail(t *testing.T) {
	require := require.New(t)

	buf := make([]byte, 10)
	w := NewSliceWriter(buf)
	wt := WriteToTail{W: w}
	require.NoError(wt.Write([]byte{0, 1}))
	require.Equal([]byte{0, 1}, buf[8:10])

	r := NewSliceReader(buf)
	rt := ReadFromTail{R: r}
	got, err := rt.Peek(2)
	require.NoError(err)
	require.Equal([]byte{0, 1}, got)
	rt.Advance(2)
	require.Equal(8, len(r.Remaining()))
}

func TestAppendWriterAppendsOnBothEnds(t *testing.T) {
	require := require.New(t)

	w := NewAppendWriter(0)
	require.NoError(w.Write([]byte{1, 2}))
	require.NoError(w.WriteTail([]byte{3, 4}))
	require.Equal([]byte{1, 2, 3, 4}, w.Bytes())
	require.Equal(4, w.Len())
}
