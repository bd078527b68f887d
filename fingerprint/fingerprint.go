// Package fingerprint computes an opt-in schema/version check for readers of
// ordcode-encoded data.
//
// ordcode's wire format is deliberately not self-describing (spec.md §6): a
// reader must already know the exact sequence of Encode calls a writer used,
// since there is no embedded type information to recover it from. That is a
// correct tradeoff for a key codec, but it means a reader given bytes from
// the wrong schema version gets silently wrong values instead of a clear
// error.
//
// fingerprint closes that gap without touching the wire format itself: a
// writer computes Of(schemaDescriptor) once, stores it next to the encoded
// bytes (not inside them), and a reader compares its own Of(schemaDescriptor)
// against the stored value before attempting to decode.
package fingerprint

import "github.com/arloliu/ordcode/internal/hash"

// Of returns the 64-bit fingerprint of a schema descriptor string.
//
// The descriptor is whatever string a caller chooses to uniquely name a
// schema and its version — e.g. "orders.v3: (u64, string, bool)". Two
// descriptors that differ in any byte produce unrelated fingerprints.
func Of(schemaDescriptor string) uint64 {
	return hash.ID(schemaDescriptor)
}

// Matches reports whether schemaDescriptor's fingerprint equals want. Readers
// use this to fail fast on a schema mismatch instead of decoding garbage.
func Matches(schemaDescriptor string, want uint64) bool {
	return Of(schemaDescriptor) == want
}
