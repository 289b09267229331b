package ledger

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"strings"
	"time"

	"go.dedis.ch/kyber/v4/suites"
	"golang.org/x/crypto/blake2b"
)

// Hasher builds the hash function used to seal blocks. A block hash is the
// first 8 bytes of the digest, read big-endian.
type Hasher func() hash.Hash

// FNV64a is a fast non-cryptographic hasher. It detects accidental
// corruption only.
var FNV64a Hasher = func() hash.Hash { return fnv.New64a() }

// Blake2b hashes with unkeyed BLAKE2b-256.
var Blake2b Hasher = func() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// defaultHasher seals blocks of a Blockchain built without WithHasher.
var defaultHasher = FNV64a

// SuiteHasher returns the hash function of the kyber cipher suite with the
// given name, e.g. "Ed25519" (SHA-256).
func SuiteHasher(name string) (Hasher, error) {
	suite, err := suites.Find(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownHasher, name)
	}
	return suite.Hash, nil
}

// HasherByName resolves "fnv", "blake2b" or the name of a kyber suite.
func HasherByName(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", "fnv", "fnv64a":
		return FNV64a, nil
	case "blake2b":
		return Blake2b, nil
	}
	return SuiteHasher(name)
}

// sum64 feeds data, timestamp and previous hash to a fresh hash state.
// Data is terminated by 0xff so that no two payloads share an encoding
// prefix with the fields that follow it.
func (h Hasher) sum64(data string, timestamp time.Time, previous uint64) uint64 {
	buf := make([]byte, 0, len(data)+1+16)
	buf = append(buf, data...)
	buf = append(buf, 0xff)
	buf = binary.BigEndian.AppendUint64(buf, uint64(timestamp.UnixNano()))
	buf = binary.BigEndian.AppendUint64(buf, previous)

	state := h()
	state.Write(buf)
	return binary.BigEndian.Uint64(state.Sum(nil)[:8])
}
