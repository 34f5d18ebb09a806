package random

import (
	"encoding/binary"
	"math/bits"
)

// Murmur3 (32-bit) constants, matching scala.util.hashing.MurmurHash3.
const (
	murmurC1 uint32 = 0xcc9e2d51
	murmurC2 uint32 = 0x1b873593
	murmurM  uint32 = 5
	murmurN  uint32 = 0xe6546b64

	// murmurArraySeed seeds the first hash pass. It is the fixed
	// MurmurHash3.arraySeed constant of the reference implementation.
	murmurArraySeed uint32 = 0x3c074a61
)

// hashSeed diffuses a user-supplied seed into the initial generator state.
// The eight big-endian bytes of the seed are hashed twice: the first pass is
// seeded with [murmurArraySeed], the second pass with the result of the
// first. The first hash forms the low half of the state and the second hash
// the high half. The reference doubles exercised by TestSourceFloat64 pin
// every constant and shift in this file.
func hashSeed(seed int64) int64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))
	lo := bytesHash(buf[:], murmurArraySeed)
	hi := bytesHash(buf[:], lo)
	return int64(hi)<<32 | int64(lo)&0xFFFFFFFF
}

// bytesHash is the 32-bit Murmur3 hash over data, processing little-endian
// 4-byte blocks followed by a 0-3 byte tail and the avalanche finalizer.
func bytesHash(data []byte, seed uint32) uint32 {
	h := seed

	blocks := len(data) / 4 * 4
	for i := 0; i < blocks; i += 4 {
		h = mix(h, binary.LittleEndian.Uint32(data[i:]))
	}

	var k uint32
	tail := data[blocks:]
	if len(tail) >= 3 {
		k ^= uint32(tail[2]) << 16
	}
	if len(tail) >= 2 {
		k ^= uint32(tail[1]) << 8
	}
	if len(tail) >= 1 {
		k ^= uint32(tail[0])
		k *= murmurC1
		k = bits.RotateLeft32(k, 15)
		k *= murmurC2
		h ^= k
	}

	h ^= uint32(len(data))
	return fmix(h)
}

// mix folds one 4-byte block into the running hash.
func mix(h, k uint32) uint32 {
	k *= murmurC1
	k = bits.RotateLeft32(k, 15)
	k *= murmurC2

	h ^= k
	h = bits.RotateLeft32(h, 13)
	return h*murmurM + murmurN
}

// fmix is the Murmur3 finalization avalanche.
func fmix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}
