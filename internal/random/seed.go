// Package random provides cryptographic seed generation helpers.
//
// Seeds come from crypto/rand and initialise math/rand sources. A
// *rand.Rand is not safe for concurrent use, so every unit of parallel work
// builds its own source from its own seed.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
)

// Seeder produces seeds for new random sources.
type Seeder func() (int64, error)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	return seedFrom(crand.Reader)
}

// NewRand builds an independent source seeded by seeder. A nil seeder
// uses NewSeed.
func NewRand(seeder Seeder) (*rand.Rand, error) {
	if seeder == nil {
		seeder = NewSeed
	}
	seed, err := seeder()
	if err != nil {
		return nil, err
	}
	return rand.New(rand.NewSource(seed)), nil
}

// Fixed returns a Seeder that always yields seed. Tests use it to make
// simulations reproducible.
func Fixed(seed int64) Seeder {
	return func() (int64, error) { return seed, nil }
}

func seedFrom(r io.Reader) (int64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
