package blob

import "fmt"

// Compressor compresses a value payload before it is stored or transmitted
// alongside an order-preserving key.
type Compressor interface {
	// Compress compresses data and returns the compressed result.
	//
	// data is not modified. The compressing codecs return a newly allocated
	// slice; NoopCodec returns data itself.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// Decompress decompresses data and returns the original result.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a Codec for the given compression algorithm.
//
// Parameters:
//   - compression: algorithm selector (None, Zstd, S2, or LZ4)
//   - target: description of the caller's use, used only in the error message
//
// Returns:
//   - Codec: a usable compressor/decompressor pair
//   - error: if compression names an algorithm this package does not implement
func CreateCodec(compression Compression, target string) (Codec, error) {
	switch compression {
	case CompressionNone:
		return NewNoopCodec(), nil
	case CompressionZstd:
		return NewZstdCodec(), nil
	case CompressionS2:
		return NewS2Codec(), nil
	case CompressionLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compression)
	}
}

var builtinCodecs = map[Compression]Codec{
	CompressionNone: NewNoopCodec(),
	CompressionZstd: NewZstdCodec(),
	CompressionS2:   NewS2Codec(),
	CompressionLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a shared built-in Codec for the given compression
// algorithm. The returned Codec is safe for concurrent use.
func GetCodec(compression Compression) (Codec, error) {
	if codec, ok := builtinCodecs[compression]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression: %s", compression)
}
