package codec

import (
	"math"

	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/endian"
	"github.com/arloliu/ordcode/errs"
	"github.com/arloliu/ordcode/params"
	"github.com/arloliu/ordcode/primitive"
	"github.com/arloliu/ordcode/varint"
)

// Encoder drives a single structured serialization. A value implementing
// Encodable calls back into the Encoder's typed methods once per field, in
// declaration order; Encoder routes each call to the primitive codec or the
// varint length/discriminant codec, and to the tail or the head of w
// depending on the preset.
type Encoder struct {
	w      buffer.WriteTail
	preset params.Preset
}

// NewEncoder returns an Encoder that writes through w under preset. w is
// typically a *buffer.SliceWriter sized by CalculateSize, or a
// *buffer.AppendWriter when preset does not use tail-metadata.
func NewEncoder(w buffer.WriteTail, preset params.Preset) *Encoder {
	return &Encoder{w: w, preset: preset}
}

// Preset returns the preset this Encoder was constructed with, so an
// Encodable can special-case behavior per preset if it needs to.
func (e *Encoder) Preset() params.Preset { return e.preset }

func (e *Encoder) nativeEngine() endian.EndianEngine {
	if e.preset.Endianness() == params.Native {
		return endian.GetNativeEndianEngine()
	}

	return nil
}

func (e *Encoder) order() params.Order { return e.preset.Order() }

// EncodeUint8 writes an order-dependent (or, under NativeBinary, raw) byte.
func (e *Encoder) EncodeUint8(v uint8) error {
	if e.nativeEngine() != nil {
		return e.w.Write([]byte{v})
	}

	return primitive.EncodeUint8(e.w, v, e.order())
}

// EncodeUint16 writes v.
func (e *Encoder) EncodeUint16(v uint16) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint16(nil, v))
	}

	return primitive.EncodeUint16(e.w, v, e.order())
}

// EncodeUint32 writes v.
func (e *Encoder) EncodeUint32(v uint32) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint32(nil, v))
	}

	return primitive.EncodeUint32(e.w, v, e.order())
}

// EncodeUint64 writes v.
func (e *Encoder) EncodeUint64(v uint64) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint64(nil, v))
	}

	return primitive.EncodeUint64(e.w, v, e.order())
}

// EncodeInt8 writes v.
func (e *Encoder) EncodeInt8(v int8) error {
	if e.nativeEngine() != nil {
		return e.w.Write([]byte{uint8(v)})
	}

	return primitive.EncodeInt8(e.w, v, e.order())
}

// EncodeInt16 writes v.
func (e *Encoder) EncodeInt16(v int16) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint16(nil, uint16(v)))
	}

	return primitive.EncodeInt16(e.w, v, e.order())
}

// EncodeInt32 writes v.
func (e *Encoder) EncodeInt32(v int32) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint32(nil, uint32(v)))
	}

	return primitive.EncodeInt32(e.w, v, e.order())
}

// EncodeInt64 writes v.
func (e *Encoder) EncodeInt64(v int64) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint64(nil, uint64(v)))
	}

	return primitive.EncodeInt64(e.w, v, e.order())
}

// EncodeFloat32 writes v. Under NativeBinary, floats are written as raw
// IEEE-754 bits with no order-preserving mask, matching spec.md's "native
// endianness mode skips the mask" rule.
func (e *Encoder) EncodeFloat32(v float32) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint32(nil, math.Float32bits(v)))
	}

	return primitive.EncodeFloat32(e.w, v, e.order())
}

// EncodeFloat64 writes v.
func (e *Encoder) EncodeFloat64(v float64) error {
	if eng := e.nativeEngine(); eng != nil {
		return e.w.Write(eng.AppendUint64(nil, math.Float64bits(v)))
	}

	return primitive.EncodeFloat64(e.w, v, e.order())
}

// EncodeBool writes v.
func (e *Encoder) EncodeBool(v bool) error {
	var u uint8
	if v {
		u = 1
	}

	return e.EncodeUint8(u)
}

// EncodeChar writes v's Unicode code point.
func (e *Encoder) EncodeChar(v rune) error {
	return e.EncodeUint32(uint32(v)) //nolint:gosec
}

// EncodeBytes writes a length-prefixed raw byte string: no escaping, since
// this is for a single field, not one that will be concatenated with other
// variable-length fields inside an order-preserving key (use package escape
// directly for that).
func (e *Encoder) EncodeBytes(v []byte) error {
	if err := e.writeLen(len(v)); err != nil {
		return err
	}

	return e.w.Write(v)
}

// EncodeString writes v as a length-prefixed UTF-8 byte string.
func (e *Encoder) EncodeString(v string) error {
	return e.EncodeBytes([]byte(v))
}

// EncodeOption writes the presence tag (0 absent, 1 present). The caller is
// responsible for following a present tag with the inner value's encoding.
func (e *Encoder) EncodeOption(present bool) error {
	return e.EncodeBool(present)
}

// EncodeUnit writes nothing: the unit value and unit structs carry no bytes.
func (e *Encoder) EncodeUnit() error { return nil }

// EncodeDiscriminant writes an enum variant's discriminant.
func (e *Encoder) EncodeDiscriminant(index uint32) error {
	return varint.WriteUint32(metaWriter(e.w, e.preset), index)
}

// EncodeSeqLen writes a sequence or map's element count. Unbounded sequences
// (unknown length) cannot be serialized; callers must know n up front.
func (e *Encoder) EncodeSeqLen(n int) error {
	return e.writeLen(n)
}

// EncodeSeq writes n, then calls f once per index in [0, n) to encode each
// element.
func (e *Encoder) EncodeSeq(n int, f func(i int) error) error {
	if err := e.EncodeSeqLen(n); err != nil {
		return err
	}

	for i := range n {
		if err := f(i); err != nil {
			return err
		}
	}

	return nil
}

// EncodeMap writes n, then calls f once per index in [0, n); f is expected
// to encode a key followed by its value.
func (e *Encoder) EncodeMap(n int, f func(i int) error) error {
	return e.EncodeSeq(n, f)
}

// Encode encodes v by calling its EncodeOrdcode method.
func (e *Encoder) Encode(v Encodable) error {
	return v.EncodeOrdcode(e)
}

func (e *Encoder) writeLen(n int) error {
	if n < 0 {
		return errs.New(errs.SerializeSequenceMustHaveLength)
	}

	return varint.WriteUint64(metaWriter(e.w, e.preset), uint64(n)) //nolint:gosec
}
