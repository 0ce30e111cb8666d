// Package lcg implements the linear congruential generator used for pixel
// jittering.
//
// A Source is not safe for concurrent use. Each tracer worker owns its own
// Source, seeded from the seed carried by its block request.
package lcg

import "time"

const (
	multiplier uint32 = 214013
	increment  uint32 = 2531011

	outputMask  = 0x7FFF
	outputScale = float32(outputMask)

	// Odd constant used to spread derived worker seeds apart.
	seedStride uint32 = 0x9E3779B9
)

// The Sampler interface is implemented by random sources that yield floats
// in the [0, 1] range.
type Sampler interface {
	Float32() float32
}

// A Source is a 32-bit linear congruential generator.
type Source struct {
	state uint32
	clock func() int64
}

// Create a new source. A zero seed leaves the source unseeded; it will then
// seed itself from the wall clock on its first draw.
func New(seed uint32) *Source {
	return &Source{
		state: seed,
		clock: unixClock,
	}
}

// Reset the generator state. A zero seed marks the source as unseeded.
func (s *Source) Seed(seed uint32) {
	s.state = seed
}

// Get the current generator state.
func (s *Source) State() uint32 {
	return s.state
}

// Advance the generator and return a float in [0, 1].
func (s *Source) Float32() float32 {
	if s.state == 0 {
		// A wall-clock value of exactly zero is indistinguishable from
		// "unseeded" and will re-seed on the next draw.
		s.state = uint32(s.clock())
	}
	s.state = multiplier*s.state + increment
	return float32((s.state>>16)&outputMask) / outputScale
}

// Generate a seed from the wall clock.
func TimeSeed() uint32 {
	return uint32(unixClock())
}

// Derive a distinct, non-zero seed for a worker from a base seed.
func Derive(base uint32, worker int) uint32 {
	seed := base + uint32(worker)*seedStride
	if seed == 0 {
		seed = seedStride
	}
	return seed
}

func unixClock() int64 {
	return time.Now().Unix()
}

// A fixed sampler always returns the same value. With a value of 0.5 it
// disables pixel jittering.
type Fixed float32

// Return the fixed value.
func (f Fixed) Float32() float32 {
	return float32(f)
}
