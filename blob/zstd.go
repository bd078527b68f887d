package blob

// ZstdCodec compresses using Zstandard, favoring compression ratio over
// speed. It is the right choice for cold storage, archival, or network
// transmission of value payloads where bandwidth matters more than latency.
//
// The default build uses the pure-Go implementation (zstd_pure.go); an
// opt-in cgo-accelerated implementation is available behind a build tag, see
// zstd_cgo.go.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
