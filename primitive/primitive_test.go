package primitive

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/params"
)

func encodeBytes(t *testing.T, order params.Order, f func(buffer.WriteHead) error) []byte {
	t.Helper()

	w := buffer.NewAppendWriter(0)
	require.NoError(t, f(w))

	return append([]byte(nil), w.Bytes()...)
}

func TestUint16ConcreteScenario(t *testing.T) {
	require := require.New(t)

	asc := encodeBytes(t, params.Ascending, func(w buffer.WriteHead) error {
		return EncodeUint16(w, 258, params.Ascending)
	})
	require.Equal([]byte{0x01, 0x02}, asc)

	desc := encodeBytes(t, params.Descending, func(w buffer.WriteHead) error {
		return EncodeUint16(w, 258, params.Descending)
	})
	require.Equal([]byte{0xFE, 0xFD}, desc)

	r := buffer.NewSliceReader(asc)
	v, err := DecodeUint16(r, params.Ascending)
	require.NoError(err)
	require.EqualValues(258, v)
}

func TestIntegerRoundTripAndOrder(t *testing.T) {
	require := require.New(t)

	u8pairs := [][2]uint8{{0, 1}, {0, 255}, {127, 128}, {254, 255}}
	for _, p := range u8pairs {
		for _, order := range []params.Order{params.Ascending, params.Descending} {
			a := encodeBytes(t, order, func(w buffer.WriteHead) error { return EncodeUint8(w, p[0], order) })
			b := encodeBytes(t, order, func(w buffer.WriteHead) error { return EncodeUint8(w, p[1], order) })
			cmp := bytes.Compare(a, b)
			if order == params.Ascending {
				require.Negative(cmp)
			} else {
				require.Positive(cmp)
			}

			ra := buffer.NewSliceReader(a)
			got, err := DecodeUint8(ra, order)
			require.NoError(err)
			require.Equal(p[0], got)
		}
	}
}

func TestSignedIntRoundTripAndOrder(t *testing.T) {
	require := require.New(t)

	pairs := [][2]int32{
		{math.MinInt32, math.MinInt32 + 1},
		{-1, 0},
		{0, 1},
		{math.MaxInt32 - 1, math.MaxInt32},
		{math.MinInt32, math.MaxInt32},
	}
	for _, p := range pairs {
		a := encodeBytes(t, params.Ascending, func(w buffer.WriteHead) error { return EncodeInt32(w, p[0], params.Ascending) })
		b := encodeBytes(t, params.Ascending, func(w buffer.WriteHead) error { return EncodeInt32(w, p[1], params.Ascending) })
		require.Negative(bytes.Compare(a, b))

		ra := buffer.NewSliceReader(a)
		got, err := DecodeInt32(ra, params.Ascending)
		require.NoError(err)
		require.Equal(p[0], got)

		da := encodeBytes(t, params.Descending, func(w buffer.WriteHead) error { return EncodeInt32(w, p[0], params.Descending) })
		db := encodeBytes(t, params.Descending, func(w buffer.WriteHead) error { return EncodeInt32(w, p[1], params.Descending) })
		require.Positive(bytes.Compare(da, db))
	}
}

func TestFloatOrderAndSignedZero(t *testing.T) {
	require := require.New(t)

	negZero := encodeBytes(t, params.Ascending, func(w buffer.WriteHead) error { return EncodeFloat32(w, float32(math.Copysign(0, -1)), params.Ascending) })
	posZero := encodeBytes(t, params.Ascending, func(w buffer.WriteHead) error { return EncodeFloat32(w, 0, params.Ascending) })
	require.Negative(bytes.Compare(negZero, posZero))

	pairs := []struct{ a, b float64 }{
		{math.Inf(-1), -1},
		{-1, 0},
		{0, 1},
		{1, math.Inf(1)},
		{math.SmallestNonzeroFloat64, 1},
	}
	for _, p := range pairs {
		a := encodeBytes(t, params.Ascending, func(w buffer.WriteHead) error { return EncodeFloat64(w, p.a, params.Ascending) })
		b := encodeBytes(t, params.Ascending, func(w buffer.WriteHead) error { return EncodeFloat64(w, p.b, params.Ascending) })
		require.Negativef(bytes.Compare(a, b), "expected %v < %v", p.a, p.b)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []float64{0, math.Copysign(0, -1), 1, -1, math.Inf(1), math.Inf(-1),
		math.MaxFloat64, math.SmallestNonzeroFloat64, math.NaN()}
	for _, order := range []params.Order{params.Ascending, params.Descending} {
		for _, v := range values {
			enc := encodeBytes(t, order, func(w buffer.WriteHead) error { return EncodeFloat64(w, v, order) })
			r := buffer.NewSliceReader(enc)
			got, err := DecodeFloat64(r, order)
			require.NoError(err)
			if math.IsNaN(v) {
				require.True(math.IsNaN(got))
			} else {
				require.Equal(v, got)
			}
		}
	}
}

func TestBoolAndChar(t *testing.T) {
	require := require.New(t)

	for _, order := range []params.Order{params.Ascending, params.Descending} {
		enc := encodeBytes(t, order, func(w buffer.WriteHead) error { return EncodeBool(w, true, order) })
		r := buffer.NewSliceReader(enc)
		v, err := DecodeBool(r, order)
		require.NoError(err)
		require.True(v)

		enc = encodeBytes(t, order, func(w buffer.WriteHead) error { return EncodeChar(w, '日', order) })
		r = buffer.NewSliceReader(enc)
		ch, err := DecodeChar(r, order)
		require.NoError(err)
		require.Equal('日', ch)
	}
}

func TestInvertBuffer(t *testing.T) {
	require := require.New(t)

	b := []byte{0x00, 0xFF, 0x0F}
	InvertBuffer(b)
	require.Equal([]byte{0xFF, 0x00, 0xF0}, b)
}
