// Package codec implements ordcode's structured serializer and
// deserializer (Component G) and the size calculator that pre-sizes
// buffers for them (Component F).
//
// There is no reflection-based walk here: a Go type opts into encoding by
// implementing Encodable, whose EncodeOrdcode method calls back into an
// *Encoder once per field, in declaration order, using the Encoder method
// that matches that field's shape (EncodeUint16, EncodeBytes, EncodeSeq,
// and so on). Decodable is the mirror image. This is option (b) from
// spec.md §9's design notes on generic value traversal without reflection:
// it matches the intent of the source crate's callback-driven serde visitor
// trait without requiring a reflection-free visitor ecosystem crate that Go
// does not have.
//
// The size calculator is not a second, hand-duplicated walk of each type.
// SizeCalculator implements the same buffer.WriteTail interface an Encoder
// writes through, counting bytes instead of copying them; driving an
// Encoder backed by a SizeCalculator through the exact same EncodeOrdcode
// call runs precisely the bytes-written accounting a real encode would,
// which is what spec.md §8's size-exactness property requires by
// construction rather than by keeping two hand-written walks in sync.
package codec

import (
	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/params"
)

// Encodable is implemented by types that know how to write themselves
// through an *Encoder. Composite types call back into the Encoder once per
// field, in declaration order; the concatenation of those field encodings
// is the composite's own encoding (spec.md §3).
type Encodable interface {
	EncodeOrdcode(enc *Encoder) error
}

// Decodable is the mirror image of Encodable: DecodeOrdcode reads fields
// from a *Decoder in the same declaration order EncodeOrdcode wrote them.
type Decodable interface {
	DecodeOrdcode(dec *Decoder) error
}

// EncodableFunc adapts a plain function to Encodable, for callers encoding
// an ad-hoc value shape without declaring a named type.
type EncodableFunc func(enc *Encoder) error

func (f EncodableFunc) EncodeOrdcode(enc *Encoder) error { return f(enc) }

// DecodableFunc adapts a plain function to Decodable.
type DecodableFunc func(dec *Decoder) error

func (f DecodableFunc) DecodeOrdcode(dec *Decoder) error { return f(dec) }

// metaWriter returns the WriteHead that sequence lengths and enum
// discriminants should go through: the tail adapter in tail-metadata mode,
// the writer itself otherwise.
func metaWriter(w buffer.WriteTail, preset params.Preset) buffer.WriteHead {
	if preset.UseTail() {
		return buffer.WriteToTail{W: w}
	}

	return w
}

func metaReader(r buffer.ReadTail, preset params.Preset) buffer.ReadHead {
	if preset.UseTail() {
		return buffer.ReadFromTail{R: r}
	}

	return r
}
