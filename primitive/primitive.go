// Package primitive implements the order-preserving codec for fixed-width
// scalars — Component B of ordcode: unsigned and signed integers, floats,
// booleans, and chars.
//
// Every encoded value is a fixed-width, big-endian byte string chosen so
// that byte-wise comparison of two encodings matches numeric comparison of
// the two source values. Signed integers get there by XOR-ing the sign bit
// before falling through to the unsigned path; floats by a mask derived from
// the IEEE-754 sign bit that maps the whole bit pattern monotonically onto
// an unsigned range. Descending order is the bitwise complement of the
// ascending encoding, which also composes correctly when encodings are
// concatenated — see InvertBuffer.
package primitive

import (
	"math"

	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/errs"
	"github.com/arloliu/ordcode/params"
)

// VERSION is the wire format version of the primitive codec (spec.md §6).
const VERSION = 1

func applyOrder(order params.Order, b []byte) {
	if order == params.Descending {
		InvertBuffer(b)
	}
}

// InvertBuffer bitwise-complements every byte of b in place. Used to turn an
// ascending-encoded buffer into its descending counterpart, either per-field
// here or over an entire finalized structured encoding in the root ordcode
// package.
func InvertBuffer(b []byte) {
	for i, v := range b {
		b[i] = ^v
	}
}

// EncodeUint8 writes value as one order-dependent byte.
func EncodeUint8(w buffer.WriteHead, value uint8, order params.Order) error {
	b := [1]byte{value}
	applyOrder(order, b[:])

	return w.Write(b[:])
}

// DecodeUint8 reads one order-dependent byte.
func DecodeUint8(r buffer.ReadHead, order params.Order) (uint8, error) {
	b, err := r.Peek(1)
	if err != nil {
		return 0, err
	}

	v := b[0]
	if order == params.Descending {
		v = ^v
	}

	r.Advance(1)

	return v, nil
}

// EncodeUint16 writes value big-endian, complemented under Descending order.
func EncodeUint16(w buffer.WriteHead, value uint16, order params.Order) error {
	var b [2]byte
	b[0] = byte(value >> 8)
	b[1] = byte(value)
	applyOrder(order, b[:])

	return w.Write(b[:])
}

// DecodeUint16 is the inverse of EncodeUint16.
func DecodeUint16(r buffer.ReadHead, order params.Order) (uint16, error) {
	b, err := r.Peek(2)
	if err != nil {
		return 0, err
	}

	v := uint16(b[0])<<8 | uint16(b[1])
	if order == params.Descending {
		v = ^v
	}

	r.Advance(2)

	return v, nil
}

// EncodeUint32 writes value big-endian, complemented under Descending order.
func EncodeUint32(w buffer.WriteHead, value uint32, order params.Order) error {
	var b [4]byte
	b[0] = byte(value >> 24)
	b[1] = byte(value >> 16)
	b[2] = byte(value >> 8)
	b[3] = byte(value)
	applyOrder(order, b[:])

	return w.Write(b[:])
}

// DecodeUint32 is the inverse of EncodeUint32.
func DecodeUint32(r buffer.ReadHead, order params.Order) (uint32, error) {
	b, err := r.Peek(4)
	if err != nil {
		return 0, err
	}

	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	if order == params.Descending {
		v = ^v
	}

	r.Advance(4)

	return v, nil
}

// EncodeUint64 writes value big-endian, complemented under Descending order.
func EncodeUint64(w buffer.WriteHead, value uint64, order params.Order) error {
	var b [8]byte
	for i := range 8 {
		b[i] = byte(value >> (56 - 8*i))
	}
	applyOrder(order, b[:])

	return w.Write(b[:])
}

// DecodeUint64 is the inverse of EncodeUint64.
func DecodeUint64(r buffer.ReadHead, order params.Order) (uint64, error) {
	b, err := r.Peek(8)
	if err != nil {
		return 0, err
	}

	var v uint64
	for i := range 8 {
		v = v<<8 | uint64(b[i])
	}

	if order == params.Descending {
		v = ^v
	}

	r.Advance(8)

	return v, nil
}

// EncodeInt8 flips the sign bit (XOR with the type's minimum value) so that
// the signed range maps monotonically onto the unsigned range, then writes
// via the unsigned path.
func EncodeInt8(w buffer.WriteHead, value int8, order params.Order) error {
	return EncodeUint8(w, uint8(value)^0x80, order)
}

// DecodeInt8 is the inverse of EncodeInt8.
func DecodeInt8(r buffer.ReadHead, order params.Order) (int8, error) {
	u, err := DecodeUint8(r, order)
	if err != nil {
		return 0, err
	}

	return int8(u ^ 0x80), nil //nolint:gosec
}

// EncodeInt16 is the signed analogue of EncodeUint16.
func EncodeInt16(w buffer.WriteHead, value int16, order params.Order) error {
	return EncodeUint16(w, uint16(value)^0x8000, order)
}

// DecodeInt16 is the inverse of EncodeInt16.
func DecodeInt16(r buffer.ReadHead, order params.Order) (int16, error) {
	u, err := DecodeUint16(r, order)
	if err != nil {
		return 0, err
	}

	return int16(u ^ 0x8000), nil //nolint:gosec
}

// EncodeInt32 is the signed analogue of EncodeUint32.
func EncodeInt32(w buffer.WriteHead, value int32, order params.Order) error {
	return EncodeUint32(w, uint32(value)^0x80000000, order)
}

// DecodeInt32 is the inverse of EncodeInt32.
func DecodeInt32(r buffer.ReadHead, order params.Order) (int32, error) {
	u, err := DecodeUint32(r, order)
	if err != nil {
		return 0, err
	}

	return int32(u ^ 0x80000000), nil //nolint:gosec
}

// EncodeInt64 is the signed analogue of EncodeUint64.
func EncodeInt64(w buffer.WriteHead, value int64, order params.Order) error {
	return EncodeUint64(w, uint64(value)^0x8000000000000000, order)
}

// DecodeInt64 is the inverse of EncodeInt64.
func DecodeInt64(r buffer.ReadHead, order params.Order) (int64, error) {
	u, err := DecodeUint64(r, order)
	if err != nil {
		return 0, err
	}

	return int64(u ^ 0x8000000000000000), nil //nolint:gosec
}

// EncodeBool writes false as 0, true as 1, through the u8 path.
func EncodeBool(w buffer.WriteHead, value bool, order params.Order) error {
	var v uint8
	if value {
		v = 1
	}

	return EncodeUint8(w, v, order)
}

// DecodeBool is the inverse of EncodeBool.
func DecodeBool(r buffer.ReadHead, order params.Order) (bool, error) {
	v, err := DecodeUint8(r, order)
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// EncodeChar writes v's Unicode code point through the u32 path.
func EncodeChar(w buffer.WriteHead, value rune, order params.Order) error {
	return EncodeUint32(w, uint32(value), order)
}

// DecodeChar is the inverse of EncodeChar. It rejects code points that are
// not valid Unicode scalar values (surrogate halves, or out of range) with
// errs.InvalidUTF8Encoding, matching std::char::from_u32's validation.
func DecodeChar(r buffer.ReadHead, order params.Order) (rune, error) {
	u, err := DecodeUint32(r, order)
	if err != nil {
		return 0, err
	}

	v := rune(u)
	if u > 0x10FFFF || (u >= 0xD800 && u <= 0xDFFF) {
		return 0, errs.New(errs.InvalidUTF8Encoding)
	}

	return v, nil
}

// EncodeFloat32 encodes value so that byte-wise comparison of the result
// matches IEEE-754 total ordering of positive/negative magnitudes (NaNs are
// not canonicalized: distinct NaN bit patterns encode distinctly). Let b be
// the bit pattern as a signed
// int32. The mask m = (b >> 31) | MinInt32 flips only the sign bit for
// positive values (mapping them into the upper half, ascending) and flips
// every bit for negative values (reversing their native descending order
// into ascending).
func EncodeFloat32(w buffer.WriteHead, value float32, order params.Order) error {
	t := int32(math.Float32bits(value)) //nolint:gosec
	mask := (t >> 31) | math.MinInt32
	ov := uint32(t ^ mask) //nolint:gosec

	return EncodeUint32(w, ov, order)
}

// DecodeFloat32 is the inverse of EncodeFloat32.
func DecodeFloat32(r buffer.ReadHead, order params.Order) (float32, error) {
	raw, err := DecodeUint32(r, order)
	if err != nil {
		return 0, err
	}

	val := int32(raw) //nolint:gosec
	mask := ((val ^ math.MinInt32) >> 31) | math.MinInt32

	return math.Float32frombits(uint32(val ^ mask)), nil //nolint:gosec
}

// EncodeFloat64 is the float64 analogue of EncodeFloat32.
func EncodeFloat64(w buffer.WriteHead, value float64, order params.Order) error {
	t := int64(math.Float64bits(value))
	mask := (t >> 63) | math.MinInt64
	ov := uint64(t ^ mask) //nolint:gosec

	return EncodeUint64(w, ov, order)
}

// DecodeFloat64 is the inverse of EncodeFloat64.
func DecodeFloat64(r buffer.ReadHead, order params.Order) (float64, error) {
	raw, err := DecodeUint64(r, order)
	if err != nil {
		return 0, err
	}

	val := int64(raw)
	mask := ((val ^ math.MinInt64) >> 63) | math.MinInt64

	return math.Float64frombits(uint64(val ^ mask)), nil //nolint:gosec
}

// WriteComplementBytes writes the bitwise complement of input to w, one byte
// at a time — the primitive that both descending-order escaping (package
// escape) and the unescaped byte-sequence helpers build on.
func WriteComplementBytes(w buffer.WriteHead, input []byte) error {
	for _, v := range input {
		if err := w.Write([]byte{^v}); err != nil {
			return err
		}
	}

	return nil
}
