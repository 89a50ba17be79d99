// Package dice models weighted six-sided dice and the fixed catalog of
// non-transitive dice compared by the tournament.
package dice

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/nontransitive/internal/platform/errors"
)

// Sides is the number of faces on every die.
const Sides = 6

// ErrEmptyName indicates a die was constructed without a name.
var ErrEmptyName = apperrors.New(apperrors.CodeDiceEmptyName, "die name is required")

// ErrInvalidFaces indicates a die has a negative face value.
var ErrInvalidFaces = apperrors.New(apperrors.CodeDiceInvalidFaces, "die faces must be non-negative")

// ErrInvalidRollCount indicates a non-positive number of draws was requested.
var ErrInvalidRollCount = apperrors.New(apperrors.CodeDiceInvalidRollCount, "roll count must be positive")

// Die is an immutable six-sided die with arbitrary face values. Every face is
// equally likely; face order only matters for display.
type Die struct {
	name  string
	faces [Sides]int
}

// New validates and builds a die.
func New(name string, faces [Sides]int) (Die, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Die{}, ErrEmptyName
	}
	for i, face := range faces {
		if face < 0 {
			return Die{}, apperrors.Detail(ErrInvalidFaces,
				fmt.Sprintf("%s face %d is negative: %d", name, i, face),
				map[string]string{"die": name, "face": strconv.Itoa(face)})
		}
	}
	return Die{name: name, faces: faces}, nil
}

// MustNew builds a die and panics on invalid input. Used for the catalog.
func MustNew(name string, faces [Sides]int) Die {
	d, err := New(name, faces)
	if err != nil {
		panic("dice: MustNew: " + err.Error())
	}
	return d
}

// Name returns the die's display name.
func (d Die) Name() string { return d.name }

// Faces returns a copy of the die's face values.
func (d Die) Faces() [Sides]int { return d.faces }

// String implements fmt.Stringer.
func (d Die) String() string { return d.name }

// IsZero reports whether d is the zero Die.
func (d Die) IsZero() bool { return d.name == "" }

// Roll draws one face uniformly from rng.
func (d Die) Roll(rng *rand.Rand) int {
	return d.faces[rng.Intn(Sides)]
}

// Sum returns the total of n independent draws.
func (d Die) Sum(rng *rand.Rand, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += d.Roll(rng)
	}
	return total
}

// MaxFace returns the largest face value.
func (d Die) MaxFace() int {
	m := d.faces[0]
	for _, face := range d.faces[1:] {
		m = max(m, face)
	}
	return m
}

// Distribution returns the exact probability of every total of n draws,
// indexed by total. The slice has length n*MaxFace()+1.
func (d Die) Distribution(n int) ([]float64, error) {
	if n < 1 {
		return nil, apperrors.Detail(ErrInvalidRollCount,
			fmt.Sprintf("roll count must be positive, got %d", n),
			map[string]string{"die": d.name, "rolls": strconv.Itoa(n)})
	}

	single := make([]float64, d.MaxFace()+1)
	for _, face := range d.faces {
		single[face] += 1.0 / Sides
	}

	dist := single
	for i := 1; i < n; i++ {
		next := make([]float64, len(dist)+len(single)-1)
		for total, p := range dist {
			if p == 0 {
				continue
			}
			for face, q := range single {
				next[total+face] += p * q
			}
		}
		dist = next
	}
	return dist, nil
}
