package hashing

import (
	"strconv"

	"github.com/zeebo/xxh3"
)

// XXH3 returns the 64-bit XXH3 hash of the given Hashable as a hex-encoded
// string. XXH3 is a fast non-cryptographic hash; use it for in-memory
// collections where throughput matters and adversarial collisions are not a
// concern. For anything security-sensitive, use Sha256 instead.
func XXH3(hashable Hashable) (string, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return strconv.FormatUint(h.Sum64(), 16), nil
}

// Compile-time check that XXH3 is a HashFunc.
var _ HashFunc = XXH3
