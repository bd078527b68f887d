//go:build nobuild

package blob

import (
	"github.com/valyala/gozstd"
)

// Compress compresses data using the cgo-accelerated gozstd binding.
//
// Disabled by default: this file builds only with -tags nobuild, which also
// excludes zstd_pure.go. Use that tag to opt into the cgo path in a build
// that can link libzstd.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
