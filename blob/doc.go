// Package blob compresses the non-order-preserving half of a key/value pair.
//
// ordcode's codec package produces order-preserving key bytes that must never
// be transformed after encoding — compressing them would destroy the byte
// ordering the whole library exists to guarantee. Values stored alongside
// those keys carry no such constraint, and are frequently the larger of the
// two: this package gives them a compression envelope.
//
// blob only makes sense paired with params.PortableBinary or
// params.NativeBinary output (spec.md's non-ordered presets), since those are
// the only payloads this library produces that are safe to run through a
// general-purpose compressor.
//
// # Supported algorithms
//
//   - None: no compression, for data that is already compressed or too small
//     to benefit.
//   - Zstd: best compression ratio, moderate speed. Ships as a pure-Go
//     implementation by default; an opt-in cgo-accelerated path exists behind
//     a build tag (see zstd_cgo.go).
//   - S2: a Snappy derivative balancing speed and ratio.
//   - LZ4: fastest decompression, moderate ratio.
//
// # Example
//
//	codec, _ := blob.GetCodec(blob.CompressionZstd)
//	compressed, _ := codec.Compress(valueBytes)
//	original, _ := codec.Decompress(compressed)
package blob
