package codec

import (
	"math"
	"unicode/utf8"

	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/endian"
	"github.com/arloliu/ordcode/errs"
	"github.com/arloliu/ordcode/params"
	"github.com/arloliu/ordcode/primitive"
	"github.com/arloliu/ordcode/varint"
)

// Decoder drives a single structured deserialization. A value implementing
// Decodable calls back into the Decoder's typed methods in exactly the
// order its Encodable counterpart called the matching Encoder methods.
type Decoder struct {
	r      buffer.ReadTail
	preset params.Preset
}

// NewDecoder returns a Decoder that reads through r under preset.
func NewDecoder(r buffer.ReadTail, preset params.Preset) *Decoder {
	return &Decoder{r: r, preset: preset}
}

// Preset returns the preset this Decoder was constructed with.
func (d *Decoder) Preset() params.Preset { return d.preset }

func (d *Decoder) nativeEngine() endian.EndianEngine {
	if d.preset.Endianness() == params.Native {
		return endian.GetNativeEndianEngine()
	}

	return nil
}

func (d *Decoder) order() params.Order { return d.preset.Order() }

// DecodeUint8 reads one byte.
func (d *Decoder) DecodeUint8() (uint8, error) {
	if d.nativeEngine() != nil {
		b, err := d.r.Peek(1)
		if err != nil {
			return 0, err
		}
		v := b[0]
		d.r.Advance(1)

		return v, nil
	}

	return primitive.DecodeUint8(d.r, d.order())
}

// DecodeUint16 reads two bytes.
func (d *Decoder) DecodeUint16() (uint16, error) {
	if eng := d.nativeEngine(); eng != nil {
		b, err := d.r.Peek(2)
		if err != nil {
			return 0, err
		}
		v := eng.Uint16(b)
		d.r.Advance(2)

		return v, nil
	}

	return primitive.DecodeUint16(d.r, d.order())
}

// DecodeUint32 reads four bytes.
func (d *Decoder) DecodeUint32() (uint32, error) {
	if eng := d.nativeEngine(); eng != nil {
		b, err := d.r.Peek(4)
		if err != nil {
			return 0, err
		}
		v := eng.Uint32(b)
		d.r.Advance(4)

		return v, nil
	}

	return primitive.DecodeUint32(d.r, d.order())
}

// DecodeUint64 reads eight bytes.
func (d *Decoder) DecodeUint64() (uint64, error) {
	if eng := d.nativeEngine(); eng != nil {
		b, err := d.r.Peek(8)
		if err != nil {
			return 0, err
		}
		v := eng.Uint64(b)
		d.r.Advance(8)

		return v, nil
	}

	return primitive.DecodeUint64(d.r, d.order())
}

// DecodeInt8 reads one byte.
func (d *Decoder) DecodeInt8() (int8, error) {
	if d.nativeEngine() != nil {
		u, err := d.DecodeUint8()

		return int8(u), err //nolint:gosec
	}

	return primitive.DecodeInt8(d.r, d.order())
}

// DecodeInt16 reads two bytes.
func (d *Decoder) DecodeInt16() (int16, error) {
	if d.nativeEngine() != nil {
		u, err := d.DecodeUint16()

		return int16(u), err //nolint:gosec
	}

	return primitive.DecodeInt16(d.r, d.order())
}

// DecodeInt32 reads four bytes.
func (d *Decoder) DecodeInt32() (int32, error) {
	if d.nativeEngine() != nil {
		u, err := d.DecodeUint32()

		return int32(u), err //nolint:gosec
	}

	return primitive.DecodeInt32(d.r, d.order())
}

// DecodeInt64 reads eight bytes.
func (d *Decoder) DecodeInt64() (int64, error) {
	if d.nativeEngine() != nil {
		u, err := d.DecodeUint64()

		return int64(u), err //nolint:gosec
	}

	return primitive.DecodeInt64(d.r, d.order())
}

// DecodeFloat32 reads four bytes.
func (d *Decoder) DecodeFloat32() (float32, error) {
	if d.nativeEngine() != nil {
		u, err := d.DecodeUint32()
		if err != nil {
			return 0, err
		}

		return math.Float32frombits(u), nil
	}

	return primitive.DecodeFloat32(d.r, d.order())
}

// DecodeFloat64 reads eight bytes.
func (d *Decoder) DecodeFloat64() (float64, error) {
	if d.nativeEngine() != nil {
		u, err := d.DecodeUint64()
		if err != nil {
			return 0, err
		}

		return math.Float64frombits(u), nil
	}

	return primitive.DecodeFloat64(d.r, d.order())
}

// DecodeBool reads one byte.
func (d *Decoder) DecodeBool() (bool, error) {
	u, err := d.DecodeUint8()
	if err != nil {
		return false, err
	}

	return u != 0, nil
}

// DecodeChar reads four bytes and validates the resulting code point.
func (d *Decoder) DecodeChar() (rune, error) {
	if d.nativeEngine() != nil {
		u, err := d.DecodeUint32()
		if err != nil {
			return 0, err
		}

		if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
			return 0, errs.New(errs.InvalidUTF8Encoding)
		}

		return rune(u), nil //nolint:gosec
	}

	return primitive.DecodeChar(d.r, d.order())
}

// DecodeBytes reads a length-prefixed raw byte string.
func (d *Decoder) DecodeBytes() ([]byte, error) {
	n, err := d.readLen()
	if err != nil {
		return nil, err
	}

	var out []byte
	err = buffer.ReadN(d.r, n, func(b []byte) error {
		out = append([]byte(nil), b...)

		return nil
	})

	return out, err
}

// DecodeString reads a length-prefixed UTF-8 byte string.
func (d *Decoder) DecodeString() (string, error) {
	b, err := d.DecodeBytes()
	if err != nil {
		return "", err
	}

	if !utf8.Valid(b) {
		return "", errs.New(errs.InvalidUTF8Encoding)
	}

	return string(b), nil
}

// DecodeOption reads the presence tag and reports whether the value is
// present. The caller is responsible for decoding the inner value when it
// is.
func (d *Decoder) DecodeOption() (bool, error) {
	tag, err := d.DecodeUint8()
	if err != nil {
		return false, err
	}

	switch tag {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errs.New(errs.InvalidTagEncoding)
	}
}

// DecodeUnit reads nothing.
func (d *Decoder) DecodeUnit() error { return nil }

// DecodeDiscriminant reads an enum variant's discriminant.
func (d *Decoder) DecodeDiscriminant() (uint32, error) {
	return varint.ReadUint32(metaReader(d.r, d.preset))
}

// DecodeSeqLen reads a sequence or map's element count.
func (d *Decoder) DecodeSeqLen() (int, error) {
	return d.readLen()
}

// DecodeSeq reads the element count, then calls f once per index in [0, n)
// to decode each element, and returns n.
func (d *Decoder) DecodeSeq(f func(i int) error) (int, error) {
	n, err := d.readLen()
	if err != nil {
		return 0, err
	}

	for i := range n {
		if err := f(i); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// DecodeMap reads the element count, then calls f once per index in [0, n);
// f is expected to decode a key followed by its value.
func (d *Decoder) DecodeMap(f func(i int) error) (int, error) {
	return d.DecodeSeq(f)
}

// Decode decodes into v by calling its DecodeOrdcode method.
func (d *Decoder) Decode(v Decodable) error {
	return v.DecodeOrdcode(d)
}

// DecodeAny reports that this format cannot deserialize into a
// self-describing, unknown shape.
func (d *Decoder) DecodeAny() error {
	return errs.New(errs.DeserializeAnyNotSupported)
}

// DecodeIdentifier reports that this format cannot deserialize a field
// identifier outside of a statically known schema.
func (d *Decoder) DecodeIdentifier() error {
	return errs.New(errs.DeserializeIdentifierNotSupported)
}

// IgnoreAny reports that this format cannot skip a value of unknown shape.
func (d *Decoder) IgnoreAny() error {
	return errs.New(errs.DeserializeIgnoredAny)
}

func (d *Decoder) readLen() (int, error) {
	n, err := varint.ReadUint64(metaReader(d.r, d.preset))
	if err != nil {
		return 0, err
	}

	return int(n), nil //nolint:gosec
}
