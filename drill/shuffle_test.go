package drill

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestShuffleKeepsInputAndMultiset(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	original := slices.Clone(input)
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 50; i++ {
		out := Shuffle(input, rng)
		if !slices.Equal(input, original) {
			t.Fatalf("input was mutated: %v", input)
		}
		sorted := slices.Clone(out)
		slices.Sort(sorted)
		if !slices.Equal(sorted, original) {
			t.Fatalf("expected permutation of %v, got %v", original, out)
		}
	}
}

func TestShuffleEdgeCases(t *testing.T) {
	t.Parallel()

	if out := Shuffle([]string{}, nil); len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
	if out := Shuffle([]string{"あ"}, nil); len(out) != 1 || out[0] != "あ" {
		t.Fatalf("expected single element to survive, got %v", out)
	}
}

func TestShuffleIsUniform(t *testing.T) {
	t.Parallel()

	const trials = 60000
	rng := rand.New(rand.NewPCG(42, 7))
	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		counts[fmt.Sprint(Shuffle([]int{0, 1, 2}, rng))]++
	}

	if len(counts) != 6 {
		t.Fatalf("expected all 6 permutations, got %d: %v", len(counts), counts)
	}
	expected := trials / 6
	for perm, count := range counts {
		if count < expected-500 || count > expected+500 {
			t.Fatalf("permutation %s drawn %d times, expected about %d", perm, count, expected)
		}
	}
}

func TestShuffleSeededIsReproducible(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := Shuffle(input, rand.New(rand.NewPCG(9, 9)))
	b := Shuffle(input, rand.New(rand.NewPCG(9, 9)))
	if !slices.Equal(a, b) {
		t.Fatalf("expected equal seeds to give equal order: %v vs %v", a, b)
	}
}

func TestPick(t *testing.T) {
	t.Parallel()

	input := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name    string
		n       int
		shuffle bool
		want    int
	}{
		{name: "all when zero", n: 0, want: 5},
		{name: "limit", n: 3, want: 3},
		{name: "clamped", n: 10, want: 5},
		{name: "shuffled limit", n: 2, shuffle: true, want: 2},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Pick(input, tc.n, tc.shuffle, rand.New(rand.NewPCG(3, 4)))
			if len(got) != tc.want {
				t.Fatalf("expected %d items, got %d", tc.want, len(got))
			}
			if !tc.shuffle && !slices.Equal(got, input[:tc.want]) {
				t.Fatalf("expected prefix of input, got %v", got)
			}
		})
	}
}
