package dice

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewRejectsInvalidDice(t *testing.T) {
	tcs := []struct {
		name  string
		faces [Sides]int
		want  error
	}{
		{name: "", faces: [Sides]int{1, 2, 3, 4, 5, 6}, want: ErrEmptyName},
		{name: "   ", faces: [Sides]int{1, 2, 3, 4, 5, 6}, want: ErrEmptyName},
		{name: "Broken", faces: [Sides]int{1, 2, -3, 4, 5, 6}, want: ErrInvalidFaces},
	}

	for _, tc := range tcs {
		_, err := New(tc.name, tc.faces)
		if !errors.Is(err, tc.want) {
			t.Fatalf("New(%q, %v) error = %v, want %v", tc.name, tc.faces, err, tc.want)
		}
	}
}

func TestNewTrimsName(t *testing.T) {
	d, err := New("  Plain ", [Sides]int{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if d.Name() != "Plain" {
		t.Fatalf("expected trimmed name, got %q", d.Name())
	}
}

func TestFacesReturnsCopy(t *testing.T) {
	faces := Red.Faces()
	faces[0] = 100
	if Red.Faces()[0] != 4 {
		t.Fatal("mutating returned faces changed the die")
	}
}

// TestRollFaceFrequencies checks that each face value appears in proportion
// to how many faces carry it.
func TestRollFaceFrequencies(t *testing.T) {
	const draws = 1_000_000
	rng := rand.New(rand.NewSource(7))

	for _, d := range Catalog() {
		counts := map[int]int{}
		for i := 0; i < draws; i++ {
			counts[d.Roll(rng)]++
		}

		want := map[int]float64{}
		for _, face := range d.Faces() {
			want[face] += 1.0 / Sides
		}
		for face, p := range want {
			got := float64(counts[face]) / draws
			if math.Abs(got-p) > 0.01 {
				t.Fatalf("%s face %d frequency = %.4f, want %.4f±0.01", d.Name(), face, got, p)
			}
		}
		if len(counts) != len(want) {
			t.Fatalf("%s rolled unexpected faces: %v", d.Name(), counts)
		}
	}
}

func TestSumStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		total := Olive.Sum(rng, 4)
		if total < 0 || total > 20 || total%5 != 0 {
			t.Fatalf("unexpected Olive 4-roll total %d", total)
		}
	}
}

func TestDistributionSingleRoll(t *testing.T) {
	dist, err := Red.Distribution(1)
	if err != nil {
		t.Fatalf("Distribution returned error: %v", err)
	}
	if len(dist) != 10 {
		t.Fatalf("expected 10 totals, got %d", len(dist))
	}
	if math.Abs(dist[4]-5.0/6) > 1e-12 || math.Abs(dist[9]-1.0/6) > 1e-12 {
		t.Fatalf("unexpected Red distribution: %v", dist)
	}
}

func TestDistributionSumsToOne(t *testing.T) {
	for _, d := range Catalog() {
		for n := 1; n <= 10; n++ {
			dist, err := d.Distribution(n)
			if err != nil {
				t.Fatalf("%s.Distribution(%d) error: %v", d.Name(), n, err)
			}
			sum := 0.0
			for _, p := range dist {
				sum += p
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Fatalf("%s.Distribution(%d) sums to %v", d.Name(), n, sum)
			}
		}
	}
}

func TestDistributionRejectsNonPositiveRolls(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := Blue.Distribution(n); !errors.Is(err, ErrInvalidRollCount) {
			t.Fatalf("Distribution(%d) error = %v, want %v", n, err, ErrInvalidRollCount)
		}
	}
}
