// Package ordcode provides an order-preserving binary codec: encoding
// structured Go values into byte sequences whose lexicographic order
// matches the natural order of the source values, for use as keys in
// ordered key-value stores (LSM trees, B-trees).
//
// # Core features
//
//   - Order-preserving encodings of integers, floats, bools and chars
//     (package primitive), byte strings (package escape), plus a varint
//     codec for lengths and enum discriminants that does not need to
//     preserve order (package varint)
//   - A double-ended buffer abstraction (package buffer) that keeps
//     length/discriminant metadata out of the order-significant region
//   - Four parameter presets (package params): AscendingOrder,
//     DescendingOrder, PortableBinary, NativeBinary
//   - A structured serializer/deserializer (package codec) driven by the
//     Encodable/Decodable interfaces, with an exact size calculator
//
// # Basic usage
//
//	type Key struct {
//		Shard uint16
//		Name  string
//	}
//
//	func (k *Key) EncodeOrdcode(enc *codec.Encoder) error {
//		if err := enc.EncodeUint16(k.Shard); err != nil {
//			return err
//		}
//		return enc.EncodeString(k.Name)
//	}
//
//	func (k *Key) DecodeOrdcode(dec *codec.Decoder) error {
//		shard, err := dec.DecodeUint16()
//		if err != nil {
//			return err
//		}
//		name, err := dec.DecodeString()
//		if err != nil {
//			return err
//		}
//		k.Shard, k.Name = shard, name
//		return nil
//	}
//
//	b, err := ordcode.SerializeToBytes(&Key{Shard: 1, Name: "abc"}, params.Ascending)
//	var out Key
//	err = ordcode.DeserializeFromSlice(&out, b, params.Ascending)
package ordcode

import (
	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/codec"
	"github.com/arloliu/ordcode/errs"
	"github.com/arloliu/ordcode/params"
	"github.com/arloliu/ordcode/primitive"
)

// CalculateSize returns the exact number of bytes v would serialize to
// under preset, so callers can pre-size a destination slice.
func CalculateSize(v codec.Encodable, preset params.Preset) (int, error) {
	return codec.CalculateSize(v, preset)
}

// SerializeToSlice serializes v into slice under preset, writing within
// len(slice) and returning the number of leading bytes of slice the
// encoding occupies. slice must be at least as large as
// CalculateSize(v, preset) reports; use that to size it exactly.
//
// preset must be params.AscendingOrder, params.PortableBinary, or
// params.NativeBinary. params.DescendingOrder is not valid here: the
// structured serializer only ever runs its field-level codecs under
// Ascending order (params.go explains why), so descending output goes
// through SerializeToSliceOrder instead, which encodes ascending and then
// bit-inverts the whole finalized buffer.
func SerializeToSlice(v codec.Encodable, slice []byte, preset params.Preset) (int, error) {
	w := buffer.NewSliceWriter(slice)
	enc := codec.NewEncoder(w, preset)

	if err := v.EncodeOrdcode(enc); err != nil {
		return 0, err
	}

	return w.Finalize(), nil
}

// SerializeToSliceOrder serializes v under params.AscendingOrder and, when
// order is params.Descending, bit-inverts the finalized bytes — the
// structured-serializer analogue of package primitive's per-value
// Descending handling (spec.md §3).
func SerializeToSliceOrder(v codec.Encodable, slice []byte, order params.Order) (int, error) {
	n, err := SerializeToSlice(v, slice, params.AscendingOrder)
	if err != nil {
		return 0, err
	}

	if order == params.Descending {
		primitive.InvertBuffer(slice[:n])
	}

	return n, nil
}

// SerializeToBytes serializes v into a freshly allocated, exactly sized
// byte slice under the given order.
func SerializeToBytes(v codec.Encodable, order params.Order) ([]byte, error) {
	size, err := codec.CalculateSize(v, params.AscendingOrder)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size)

	n, err := SerializeToSliceOrder(v, buf, order)
	if err != nil {
		return nil, err
	}

	return buf[:n], nil
}

// DeserializeFromSlice deserializes into v from slice, which was produced
// by Serialize* under the given order. slice is consumed entirely; for
// Descending order, slice is bit-inverted in place before decoding (the
// inverse of Serialize*'s post-encode inversion), so callers that still
// need the original bytes afterward should pass a copy.
func DeserializeFromSlice(v codec.Decodable, slice []byte, order params.Order) error {
	if order == params.Descending {
		primitive.InvertBuffer(slice)
	}

	r := buffer.NewSliceReader(slice)
	dec := codec.NewDecoder(r, params.AscendingOrder)

	return v.DecodeOrdcode(dec)
}

// DeserializeFromSlicePreset deserializes into v from slice using preset
// directly, with no implicit bit-inversion — for PortableBinary and
// NativeBinary payloads, which were never inverted on the way out.
func DeserializeFromSlicePreset(v codec.Decodable, slice []byte, preset params.Preset) error {
	r := buffer.NewSliceReader(slice)
	dec := codec.NewDecoder(r, preset)

	return v.DecodeOrdcode(dec)
}

// SerializeToVector serializes v under preset into a growable buffer,
// without needing CalculateSize first. preset must not use tail-metadata
// placement (params.PortableBinary or params.NativeBinary): a growable
// append-only buffer has no fixed tail to write into, matching
// original_source/lib.rs's head-only "bin" serialization mode (SPEC_FULL.md
// §5). Ordered presets must go through SerializeToSlice/SerializeToBytes,
// which need the exact size up front to honor tail discipline.
func SerializeToVector(v codec.Encodable, preset params.Preset) ([]byte, error) {
	if preset.UseTail() {
		return nil, errs.Newf(errs.BufferOverflow, "SerializeToVector requires a non-tail preset, got %v", preset.Order())
	}

	w := buffer.NewAppendWriter(0)
	enc := codec.NewEncoder(w, preset)

	if err := v.EncodeOrdcode(enc); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}
