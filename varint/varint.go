// Package varint implements the compact, non-order-preserving unsigned
// integer encoding ordcode uses for sequence lengths and enum discriminants.
//
// Unlike the primitive package, varint encodings of different values are not
// comparable byte-wise — that is fine because this encoding is only ever
// used for metadata: under the tail-metadata preset it lives at the tail of a
// buffer, never inside the order-significant head region, and the presets
// that write it inline at the head do not promise ordering. The encoded length is recoverable from the
// trailing-zero count of the first byte alone, which keeps decode branch-free
// and makes the format cheap to skip over without decoding.
package varint

import (
	"encoding/binary"
	"math/bits"

	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/errs"
)

// encodedLen64 reports the number of bytes needed to encode value, in 1..=9.
// It gives the same lengths as varu64_encoded_len's lookup table, computed
// here from the number of significant bits: value fits in L bytes of 7-bit
// payload each (L <= 8), or needs the 9-byte escape for the top range.
func encodedLen64(value uint64) uint8 {
	if value == 0 {
		return 1
	}

	lz := bits.LeadingZeros64(value)
	// Smallest L such that value < 2^(7*L); lz counts leading zero bits of
	// value, so 64-lz is the number of significant bits.
	significant := 64 - lz
	l := (significant + 6) / 7
	if l > 9 {
		l = 9
	}

	return uint8(l) //nolint:gosec
}

func encodedLen32(value uint32) uint8 {
	if value == 0 {
		return 1
	}

	lz := bits.LeadingZeros32(value)
	significant := 32 - lz
	l := (significant + 6) / 7
	if l > 5 {
		l = 5
	}

	return uint8(l) //nolint:gosec
}

// DecodedLen returns the total encoded length implied by a varint's first
// byte: the number of trailing zero bits plus one.
func DecodedLen(firstByte byte) uint8 {
	return uint8(bits.TrailingZeros8(firstByte)) + 1 //nolint:gosec
}

// EncodedLen64 returns the byte length that Encode64 would produce for value.
func EncodedLen64(value uint64) int { return int(encodedLen64(value)) }

// EncodedLen32 returns the byte length that Encode32 would produce for value.
func EncodedLen32(value uint32) int { return int(encodedLen32(value)) }

// Encode64 encodes value into a 9-byte scratch array and returns the number
// of leading bytes of out that hold the encoding.
func Encode64(out *[9]byte, value uint64) uint8 {
	length := encodedLen64(value)
	if length == 9 {
		out[0] = 0
		binary.LittleEndian.PutUint64(out[1:9], value)

		return length
	}

	encoded := ((value << 1) | 1) << (length - 1)

	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], encoded)
	copy(out[:8], tmp[:])

	return length
}

// Encode32 encodes value into a 5-byte scratch array and returns the number
// of leading bytes of out that hold the encoding.
func Encode32(out *[5]byte, value uint32) uint8 {
	length := encodedLen32(value)
	if length == 5 {
		out[0] = 0xF0
		binary.LittleEndian.PutUint32(out[1:5], value)

		return length
	}

	encoded := ((value << 1) | 1) << (length - 1)

	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], encoded)
	copy(out[:4], tmp[:])

	return length
}

// WriteUint64 encodes value and writes it to w.
//
// The first byte is written in its own Write call, followed by the
// remaining length-1 bytes in a second call, mirroring
// varu64_encode_to_writer's split in original_source/varint.rs. Under a
// plain head writer this is equivalent to one combined write; under
// buffer.WriteToTail, where each Write call retracts the tail cursor
// further left, the split is what puts the first byte at the tail-most
// position so ReadUint64's matching split-read lines up with it.
func WriteUint64(w buffer.WriteHead, value uint64) error {
	var tmp [9]byte
	length := Encode64(&tmp, value)

	if err := w.Write(tmp[:1]); err != nil {
		return err
	}

	if length == 1 {
		return nil
	}

	return w.Write(tmp[1:length])
}

// WriteUint32 encodes value and writes it to w. See WriteUint64 for why the
// write is split into a first-byte call and a remainder call.
func WriteUint32(w buffer.WriteHead, value uint32) error {
	var tmp [5]byte
	length := Encode32(&tmp, value)

	if err := w.Write(tmp[:1]); err != nil {
		return err
	}

	if length == 1 {
		return nil
	}

	return w.Write(tmp[1:length])
}

// decode64 decodes a varint of the given encodedLength from bytes, which
// must hold at least encodedLength bytes starting with firstByte as
// bytes[0]. Non-canonical encodings (more bytes than the value needs) are
// always rejected.
func decode64(encodedLength uint8, bytes []byte) (uint64, error) {
	if len(bytes) < int(encodedLength) {
		return 0, errs.New(errs.PrematureEndOfInput)
	}

	var tmp [8]byte

	var result uint64
	if encodedLength == 9 {
		copy(tmp[:], bytes[1:9])
		result = binary.LittleEndian.Uint64(tmp[:])
	} else {
		copy(tmp[:encodedLength], bytes[:encodedLength])
		result = binary.LittleEndian.Uint64(tmp[:]) >> encodedLength
	}

	if encodedLength != 1 && result < (uint64(1)<<(7*(encodedLength-1))) {
		return 0, errs.New(errs.InvalidVarintEncoding)
	}

	return result, nil
}

func decode32(encodedLength uint8, bytes []byte) (uint32, error) {
	if encodedLength > 5 {
		return 0, errs.New(errs.InvalidVarintEncoding)
	}

	if len(bytes) < int(encodedLength) {
		return 0, errs.New(errs.PrematureEndOfInput)
	}

	var tmp [4]byte

	var result uint32
	if encodedLength == 5 {
		copy(tmp[:], bytes[1:5])
		result = binary.LittleEndian.Uint32(tmp[:])
	} else {
		copy(tmp[:encodedLength], bytes[:encodedLength])
		result = binary.LittleEndian.Uint32(tmp[:]) >> encodedLength
	}

	if encodedLength != 1 && result < (uint32(1)<<(7*(encodedLength-1))) {
		return 0, errs.New(errs.InvalidVarintEncoding)
	}

	return result, nil
}

// DecodeUint64FromSlice decodes a varint at the start of bytes, returning
// the value and its encoded length.
func DecodeUint64FromSlice(bytes []byte) (uint64, uint8, error) {
	if len(bytes) == 0 {
		return 0, 0, errs.New(errs.PrematureEndOfInput)
	}

	length := DecodedLen(bytes[0])
	v, err := decode64(length, bytes)
	if err != nil {
		return 0, 0, err
	}

	return v, length, nil
}

// DecodeUint32FromSlice decodes a varint at the start of bytes, returning
// the value and its encoded length.
func DecodeUint32FromSlice(bytes []byte) (uint32, uint8, error) {
	if len(bytes) == 0 {
		return 0, 0, errs.New(errs.PrematureEndOfInput)
	}

	length := DecodedLen(bytes[0])
	v, err := decode32(length, bytes)
	if err != nil {
		return 0, 0, err
	}

	return v, length, nil
}

// ReadUint64 decodes a varint from r.
//
// The first byte is peeked and advanced past on its own, and the remaining
// length-1 bytes are peeked and advanced past separately, mirroring
// WriteUint64's split write. Peeking the full length-byte window in one
// call (as a plain slice decode can) would be wrong here: under
// buffer.ReadFromTail, a single Peek(length) reads the tail-most length
// bytes in buffer order, which is the reverse of how two independent
// WriteToTail calls laid them down. Advancing past the first byte before
// peeking the remainder re-anchors the second peek on the correct side of
// the just-consumed byte for both head and tail readers.
func ReadUint64(r buffer.ReadHead) (uint64, error) {
	first, err := r.Peek(1)
	if err != nil {
		return 0, err
	}
	firstByte := first[0]
	length := DecodedLen(firstByte)
	r.Advance(1)

	var buf [9]byte
	buf[0] = firstByte

	if length > 1 {
		rest, err := r.Peek(int(length) - 1)
		if err != nil {
			return 0, err
		}
		copy(buf[1:length], rest)
		r.Advance(int(length) - 1)
	}

	return decode64(length, buf[:length])
}

// ReadUint32 decodes a varint from r. See ReadUint64 for why the first byte
// is peeked/advanced separately from the remainder.
func ReadUint32(r buffer.ReadHead) (uint32, error) {
	first, err := r.Peek(1)
	if err != nil {
		return 0, err
	}
	firstByte := first[0]
	length := DecodedLen(firstByte)
	if length > 5 {
		return 0, errs.New(errs.InvalidVarintEncoding)
	}
	r.Advance(1)

	var buf [5]byte
	buf[0] = firstByte

	if length > 1 {
		rest, err := r.Peek(int(length) - 1)
		if err != nil {
			return 0, err
		}
		copy(buf[1:length], rest)
		r.Advance(int(length) - 1)
	}

	return decode32(length, buf[:length])
}
