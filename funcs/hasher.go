package funcs

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// Hasher maps a memo-cache key to a 64-bit bucket. Collisions are tolerated:
// a [Memo] always compares full keys inside a bucket.
type Hasher interface {
	Hash(key string) uint64
}

// HasherName identifies a built-in [Hasher].
type HasherName string

const (
	// HasherXXH3 selects [XXH3Hasher], the default.
	HasherXXH3 HasherName = "xxh3"
	// HasherBlake2b selects the keyed [Blake2bHasher]. Use it when argument
	// lists come from untrusted input and bucket flooding is a concern.
	HasherBlake2b HasherName = "blake2b"
)

// NewHasher builds the named hasher. seed applies to xxh3, key to blake2b.
func NewHasher(name HasherName, seed uint64, key []byte) (Hasher, error) {
	switch name {
	case "", HasherXXH3:
		return XXH3Hasher{Seed: seed}, nil
	case HasherBlake2b:
		return NewBlake2bHasher(key)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, name)
}

// XXH3Hasher hashes keys with seeded XXH3-64.
type XXH3Hasher struct {
	Seed uint64
}

func (h XXH3Hasher) Hash(key string) uint64 {
	return xxh3.HashSeed([]byte(key), h.Seed)
}

// Blake2bHasher hashes keys with keyed BLAKE2b truncated to 64 bits.
type Blake2bHasher struct {
	key []byte
}

// NewBlake2bHasher returns a hasher keyed with key, which may be empty and
// must not exceed 64 bytes.
func NewBlake2bHasher(key []byte) (*Blake2bHasher, error) {
	if _, err := blake2b.New(8, key); err != nil {
		return nil, fmt.Errorf("%w: blake2b key: %v", ErrInvalidConfig, err)
	}
	return &Blake2bHasher{key: append([]byte(nil), key...)}, nil
}

func (h *Blake2bHasher) Hash(key string) uint64 {
	d, _ := blake2b.New(8, h.key)
	d.Write([]byte(key))
	return binary.LittleEndian.Uint64(d.Sum(nil))
}
