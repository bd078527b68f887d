package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/params"
)

type sample struct {
	A uint16
	B string
}

func (s *sample) EncodeOrdcode(enc *Encoder) error {
	if err := enc.EncodeUint16(s.A); err != nil {
		return err
	}

	return enc.EncodeString(s.B)
}

func (s *sample) DecodeOrdcode(dec *Decoder) error {
	a, err := dec.DecodeUint16()
	if err != nil {
		return err
	}

	b, err := dec.DecodeString()
	if err != nil {
		return err
	}

	s.A, s.B = a, b

	return nil
}

func encodeWithPreset(t *testing.T, v Encodable, preset params.Preset) []byte {
	t.Helper()

	size, err := CalculateSize(v, preset)
	require.NoError(t, err)

	buf := make([]byte, size)
	w := buffer.NewSliceWriter(buf)
	enc := NewEncoder(w, preset)
	require.NoError(t, v.EncodeOrdcode(enc))
	require.NoError(t, w.IsComplete())
	n := w.Finalize()

	return w.Bytes()[:n]
}

func TestStructConcreteScenario(t *testing.T) {
	require := require.New(t)

	s := &sample{A: 1, B: "abc"}
	got := encodeWithPreset(t, s, params.AscendingOrder)
	require.Equal([]byte{0x00, 0x01, 0x61, 0x62, 0x63, 0x07}, got)

	var out sample
	r := buffer.NewSliceReader(got)
	dec := NewDecoder(r, params.AscendingOrder)
	require.NoError(out.DecodeOrdcode(dec))
	require.Equal(s.A, out.A)
	require.Equal(s.B, out.B)
	require.NoError(r.IsExhausted())
}

func TestCalculateSizeMatchesActualEncoding(t *testing.T) {
	require := require.New(t)

	s := &sample{A: 4242, B: "a longer string of bytes"}
	size, err := CalculateSize(s, params.AscendingOrder)
	require.NoError(err)

	got := encodeWithPreset(t, s, params.AscendingOrder)
	require.Len(got, size)
}

func TestStructRoundTripPortableAndNativeBinary(t *testing.T) {
	require := require.New(t)

	for _, preset := range []params.Preset{params.PortableBinary, params.NativeBinary} {
		s := &sample{A: 999, B: "portable"}
		got := encodeWithPreset(t, s, preset)

		var out sample
		r := buffer.NewSliceReader(got)
		dec := NewDecoder(r, preset)
		require.NoError(out.DecodeOrdcode(dec))
		require.Equal(*s, out)
		require.NoError(r.IsExhausted())
	}
}

type withOptionAndSeq struct {
	Tag   *uint32
	Items []uint16
}

func (v *withOptionAndSeq) EncodeOrdcode(enc *Encoder) error {
	if err := enc.EncodeOption(v.Tag != nil); err != nil {
		return err
	}

	if v.Tag != nil {
		if err := enc.EncodeUint32(*v.Tag); err != nil {
			return err
		}
	}

	return enc.EncodeSeq(len(v.Items), func(i int) error {
		return enc.EncodeUint16(v.Items[i])
	})
}

func (v *withOptionAndSeq) DecodeOrdcode(dec *Decoder) error {
	present, err := dec.DecodeOption()
	if err != nil {
		return err
	}

	if present {
		tag, err := dec.DecodeUint32()
		if err != nil {
			return err
		}
		v.Tag = &tag
	} else {
		v.Tag = nil
	}

	v.Items = nil
	_, err = dec.DecodeSeq(func(i int) error {
		item, err := dec.DecodeUint16()
		if err != nil {
			return err
		}
		v.Items = append(v.Items, item)

		return nil
	})

	return err
}

func TestOptionAndSeqRoundTrip(t *testing.T) {
	require := require.New(t)

	tag := uint32(7)
	cases := []*withOptionAndSeq{
		{Tag: &tag, Items: []uint16{1, 2, 3}},
		{Tag: nil, Items: nil},
		{Tag: nil, Items: []uint16{}},
	}

	for _, preset := range []params.Preset{params.AscendingOrder, params.PortableBinary} {
		for _, c := range cases {
			got := encodeWithPreset(t, c, preset)

			var out withOptionAndSeq
			r := buffer.NewSliceReader(got)
			dec := NewDecoder(r, preset)
			require.NoError(out.DecodeOrdcode(dec))

			if c.Tag == nil {
				require.Nil(out.Tag)
			} else {
				require.Equal(*c.Tag, *out.Tag)
			}
			require.Equal(len(c.Items), len(out.Items))
			for i := range c.Items {
				require.Equal(c.Items[i], out.Items[i])
			}
		}
	}
}

type variantValue struct {
	discriminant uint32
	payload      uint16
}

func (v *variantValue) EncodeOrdcode(enc *Encoder) error {
	if err := enc.EncodeDiscriminant(v.discriminant); err != nil {
		return err
	}

	return enc.EncodeUint16(v.payload)
}

func (v *variantValue) DecodeOrdcode(dec *Decoder) error {
	d, err := dec.DecodeDiscriminant()
	if err != nil {
		return err
	}

	p, err := dec.DecodeUint16()
	if err != nil {
		return err
	}

	v.discriminant, v.payload = d, p

	return nil
}

func TestLongStringRoundTripExercisesMultiByteTailVarint(t *testing.T) {
	require := require.New(t)

	// 192 bytes: encodedLen64(192) == 2, so the length varint written to
	// the tail under AscendingOrder spans two bytes, unlike every other
	// case in this file (all single-byte lengths/discriminants).
	long := make([]byte, 192)
	for i := range long {
		long[i] = byte('a' + i%26)
	}

	s := &sample{A: 1, B: string(long)}

	for _, preset := range []params.Preset{params.AscendingOrder, params.PortableBinary} {
		got := encodeWithPreset(t, s, preset)

		var out sample
		r := buffer.NewSliceReader(got)
		dec := NewDecoder(r, preset)
		require.NoError(out.DecodeOrdcode(dec))
		require.Equal(*s, out)
		require.NoError(r.IsExhausted())
	}
}

func TestEnumVariantRoundTrip(t *testing.T) {
	require := require.New(t)

	v := &variantValue{discriminant: 2, payload: 0xBEEF}
	got := encodeWithPreset(t, v, params.AscendingOrder)

	var out variantValue
	r := buffer.NewSliceReader(got)
	dec := NewDecoder(r, params.AscendingOrder)
	require.NoError(out.DecodeOrdcode(dec))
	require.Equal(*v, out)
}
