// Package params defines the compile-time parameter presets that select
// ordering, endianness, and metadata placement for the rest of ordcode —
// Component E of the spec. Where the source crate uses zero-sized marker
// types and associated constants to pick these at compile time, the Go
// idiom is a small set of immutable Preset values.
package params

// Order is the lexicographical ordering a preset asks the codec to
// preserve. There are no ordering marks in the serialized data: using
// different orders for serialization and deserialization of the same bytes
// is undefined behavior.
type Order uint8

const (
	// Ascending preserves byte-wise order equal to the natural order of
	// the encoded values.
	Ascending Order = iota
	// Descending preserves byte-wise order equal to the reverse of the
	// natural order.
	Descending
	// Unordered is semantically identical to Ascending; it documents that
	// the caller does not rely on ordering.
	Unordered
)

func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	case Unordered:
		return "unordered"
	default:
		return "unknown"
	}
}

// Endianness selects the byte order primitive integers are encoded with.
// Order-preserving presets always pin Big, since only big-endian places
// integers in the same relative order as their numeric value.
type Endianness uint8

const (
	Big Endianness = iota
	Little
	Native
)

func (e Endianness) String() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	case Native:
		return "native"
	default:
		return "unknown"
	}
}

// Preset bundles the parameters that select all of a serializer's
// behavior: ordering, endianness, and whether sequence lengths /
// enum discriminants are written to the tail of a double-ended buffer
// (tail-metadata mode) or inline at the head.
//
// Every preset's SeqLenEncoder and DiscriminantEncoder are the varint
// codecs in package varint (64-bit for lengths, 32-bit for discriminants);
// there is currently no preset that needs a different metadata encoding, so
// Preset does not expose them as swappable fields.
type Preset struct {
	order      Order
	endianness Endianness
	useTail    bool
	version    uint32
}

// Order reports the preset's lexicographical ordering.
func (p Preset) Order() Order { return p.order }

// Endianness reports the preset's integer byte order.
func (p Preset) Endianness() Endianness { return p.endianness }

// UseTail reports whether sequence lengths and discriminants are written to
// the tail of a double-ended buffer rather than inline at the head.
func (p Preset) UseTail() bool { return p.useTail }

// Version is the wire format version this preset's encoding corresponds to;
// an incompatible change to how a preset encodes values must bump it.
func (p Preset) Version() uint32 { return p.version }

var (
	// AscendingOrder preserves lexicographical ascending order end to end:
	// big-endian primitives, tail-placed lengths/discriminants so the head
	// holds only order-significant bytes. This is the only preset valid for
	// a structured serializer that must preserve ordering.
	AscendingOrder = Preset{order: Ascending, endianness: Big, useTail: true, version: 1}

	// DescendingOrder preserves lexicographical descending order. The
	// structured serializer (package codec) does not use this preset
	// directly — descending output is produced by encoding under
	// AscendingOrder and then bit-inverting the finalized buffer, which is
	// cheaper and composes correctly under concatenation (spec.md §3). This
	// preset exists for callers of package primitive directly.
	DescendingOrder = Preset{order: Descending, endianness: Big, useTail: true, version: 1}

	// PortableBinary is ascending-ordered and big-endian like
	// AscendingOrder, but writes lengths/discriminants at the head — it
	// does not promise order preservation across concatenated fields, so
	// there's no reason to pay for tail discipline.
	PortableBinary = Preset{order: Ascending, endianness: Big, useTail: false, version: 1}

	// NativeBinary is the fastest, least portable preset: native
	// endianness, no ordering promise, lengths/discriminants at the head.
	NativeBinary = Preset{order: Unordered, endianness: Native, useTail: false, version: 1}
)
