// Package hash provides the fast, non-cryptographic hash fingerprint.Of
// builds a schema fingerprint on top of.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the xxHash64 digest of data, used as a schema fingerprint
// rather than for content-addressing or deduplication.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
