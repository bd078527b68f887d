// Package escape implements the prefix-free byte-sequence encoding ordcode
// uses so that variable-length byte strings can be concatenated inside a
// composite key and still sort and parse correctly — Component C of the
// spec.
//
// The encoding walks the input byte-by-byte: the distinguished START byte
// (0xF8 ascending) is escaped as {START, ESC}, every other byte passes
// through unchanged, and the whole sequence ends with a {START, TERM} pair.
// Because START never appears unescaped except as the lead-in to ESC or
// TERM, a decoder can scan forward for it unambiguously, and because the
// terminator is itself distinguishable from an escape, concatenating two
// encoded sequences decodes back into exactly the original two sequences.
//
// Descending order reuses the same algorithm over the bitwise-complemented
// alphabet (START=0x07, ESC=0x00, TERM=0xFE) and complements every
// non-START content byte too, which is equivalent to bit-inverting the
// entire ascending encoding.
package escape

import (
	"bytes"

	"github.com/arloliu/ordcode/buffer"
	"github.com/arloliu/ordcode/errs"
	"github.com/arloliu/ordcode/params"
	"github.com/arloliu/ordcode/primitive"
)

type alphabet struct {
	start, esc, term byte
}

var ascAlphabet = alphabet{start: 0xF8, esc: 0xFF, term: 0x01}
var descAlphabet = alphabet{start: ^ascAlphabet.start, esc: ^ascAlphabet.esc, term: ^ascAlphabet.term}

func alphabetFor(order params.Order) alphabet {
	if order == params.Descending {
		return descAlphabet
	}

	return ascAlphabet
}

// Encode writes value's prefix-free escaped encoding to w.
func Encode(w buffer.WriteHead, value []byte, order params.Order) error {
	a := alphabetFor(order)
	desc := order == params.Descending

	for _, b := range value {
		if b == ascAlphabet.start {
			if err := w.Write([]byte{a.start, a.esc}); err != nil {
				return err
			}

			continue
		}

		ob := b
		if desc {
			ob = ^b
		}

		if err := w.Write([]byte{ob}); err != nil {
			return err
		}
	}

	return w.Write([]byte{a.start, a.term})
}

// applyOverEsc scans forward through rb's remaining buffer for occurrences
// of start, invoking f with the chunk up to and including each occurrence
// and the byte that follows it. f returns false to stop (the terminator was
// found); when advance is true, applyOverEsc then advances rb past exactly
// the bytes consumed.
func applyOverEsc(rb buffer.ReadHead, start byte, advance bool, f func(chunk []byte, follow byte) (bool, error)) error {
	b := rb.Remaining()
	total := 0

	for {
		pos := bytes.IndexByte(b, start)
		if pos < 0 || pos+1 >= len(b) {
			return errs.New(errs.PrematureEndOfInput)
		}

		cont, err := f(b[:pos+1], b[pos+1])
		if err != nil {
			return err
		}

		total += pos + 2
		b = b[pos+2:]

		if !cont {
			break
		}
	}

	if advance {
		rb.Advance(total)
	}

	return nil
}

// unescapedLength computes the decoded length of the next escaped sequence
// in rb without consuming it.
func unescapedLength(rb buffer.ReadHead, a alphabet) (int, error) {
	length := 0
	err := applyOverEsc(rb, a.start, false, func(chunk []byte, follow byte) (bool, error) {
		switch follow {
		case a.esc:
			length += len(chunk)

			return true, nil
		case a.term:
			length += len(chunk) - 1

			return false, nil
		default:
			return false, errs.New(errs.InvalidByteSequenceEscape)
		}
	})

	return length, err
}

// BytesLength returns the number of raw bytes the next escaped sequence in
// rb decodes to, without consuming it — lets callers pre-size a destination
// buffer before calling Decode.
func BytesLength(rb buffer.ReadHead, order params.Order) (int, error) {
	return unescapedLength(rb, alphabetFor(order))
}

// DecodeToWriter decodes the next escaped sequence from rb, writing the
// unescaped content to out, and consumes exactly the encoded bytes from rb.
func DecodeToWriter(rb buffer.ReadHead, out buffer.WriteHead, order params.Order) error {
	a := alphabetFor(order)
	desc := order == params.Descending

	return applyOverEsc(rb, a.start, true, func(chunk []byte, follow byte) (bool, error) {
		switch follow {
		case a.esc:
			if desc {
				return true, primitive.WriteComplementBytes(out, chunk)
			}

			return true, out.Write(chunk)
		case a.term:
			content := chunk[:len(chunk)-1]
			if desc {
				return false, primitive.WriteComplementBytes(out, content)
			}

			return false, out.Write(content)
		default:
			return false, errs.New(errs.InvalidByteSequenceEscape)
		}
	})
}

// Decode decodes the next escaped sequence from rb into a freshly allocated
// slice, consuming exactly the encoded bytes.
func Decode(rb buffer.ReadHead, order params.Order) ([]byte, error) {
	length, err := BytesLength(rb, order)
	if err != nil {
		return nil, err
	}

	out := buffer.NewAppendWriter(length)
	if err := DecodeToWriter(rb, out, order); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// EncodeNoesc writes value with no escaping or terminator: the raw bytes
// under Ascending order, their bitwise complement under Descending. Usable
// only when the sequence either runs to end-of-buffer or its length is
// known to the caller some other way.
func EncodeNoesc(w buffer.WriteHead, value []byte, order params.Order) error {
	if order == params.Descending {
		return primitive.WriteComplementBytes(w, value)
	}

	return w.Write(value)
}

// DecodeNoescToWriter decodes rb's entire remaining buffer as an
// unescaped, unterminated sequence, writing to out and consuming
// everything rb has left.
func DecodeNoescToWriter(rb buffer.ReadHead, out buffer.WriteHead, order params.Order) error {
	b := rb.Remaining()

	var err error
	if order == params.Descending {
		err = primitive.WriteComplementBytes(out, b)
	} else {
		err = out.Write(b)
	}

	if err != nil {
		return err
	}

	rb.Advance(len(b))

	return nil
}

// DecodeNoesc decodes rb's entire remaining buffer as an unescaped,
// unterminated byte sequence. Like DecodeNoescToWriter, it consumes to
// end-of-buffer, since the encoding carries no terminator.
func DecodeNoesc(rb buffer.ReadHead, order params.Order) ([]byte, error) {
	out := buffer.NewAppendWriter(len(rb.Remaining()))
	if err := DecodeNoescToWriter(rb, out, order); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
