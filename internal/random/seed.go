// Package random provides the entropy sources behind unseeded board generation.
//
// Seeded generation never reads from here; it builds a private PCG per call.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
	"sync"

	"svw.info/blackbox/internal/ports"
)

// NewSeed draws a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Entropy reads from crypto/rand and falls back to the runtime-seeded
// math/rand/v2 generator if the OS source fails. Safe for concurrent use.
type Entropy struct{}

func (Entropy) Uint64() uint64 {
	seed, err := NewSeed()
	if err != nil {
		return mrand.Uint64()
	}
	return seed
}

// Default returns the process-wide entropy source.
func Default() ports.RandomSource { return Entropy{} }

// FixedSource cycles through a fixed list of values.
type FixedSource struct {
	mu     sync.Mutex
	values []uint64
	next   int
}

// Fixed returns a deterministic source. With no values it always yields 0.
func Fixed(values ...uint64) *FixedSource {
	return &FixedSource{values: append([]uint64(nil), values...)}
}

func (f *FixedSource) Uint64() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[f.next]
	f.next = (f.next + 1) % len(f.values)
	return v
}
