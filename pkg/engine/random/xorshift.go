// Package random provides the deterministic pseudo-random source backing the
// engine's sampling functions. The source reproduces, bit for bit, the stream
// of the legacy XORShift generator used by the foreign compute engine, so
// that a seeded sample returns the same rows on either system.
package random

// Source is a 64-bit XORShift pseudo-random source. A Source is owned by a
// single caller and is not safe for concurrent use.
type Source struct {
	seed int64
}

// NewSource returns a Source whose internal state is derived from seed via
// [hashSeed]. Every int64 is a valid seed.
func NewSource(seed int64) *Source {
	return &Source{seed: hashSeed(seed)}
}

// next advances the state by one XORShift step and returns the low bits of
// the new state, truncated to a 32-bit lane. bits must be in [0, 32].
//
// The middle shift is logical, not arithmetic. An arithmetic shift would
// smear the sign bit into the state and diverge from the reference stream.
func (s *Source) next(bits uint) int32 {
	next := s.seed ^ (s.seed << 21)
	next ^= int64(uint64(next) >> 35)
	next ^= next << 4
	s.seed = next
	return int32(next & (1<<bits - 1))
}

// Float64 returns the next value in [0, 1). The 26+27 bit split forming the
// 53-bit mantissa matches java.util.Random.nextDouble and is required for
// stream compatibility; any other split yields a different stream.
func (s *Source) Float64() float64 {
	high := int64(s.next(26)) << 27
	low := int64(s.next(27))
	return float64(high+low) / float64(int64(1)<<53)
}
