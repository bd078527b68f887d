package blob

// Compression identifies the algorithm used to compress a non-order-preserving
// payload. It is entirely independent of the order-preserving key codec: a
// Compression value is never embedded in, nor derived from, ordered key
// bytes, since compressing those would destroy the ordering they exist to
// provide.
type Compression uint8

const (
	// CompressionNone stores the payload unchanged.
	CompressionNone Compression = 0x1
	// CompressionZstd uses Zstandard, favoring ratio over speed.
	CompressionZstd Compression = 0x2
	// CompressionS2 uses S2 (a Snappy derivative), balancing ratio and speed.
	CompressionS2 Compression = 0x3
	// CompressionLZ4 uses LZ4, favoring decompression speed.
	CompressionLZ4 Compression = 0x4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
