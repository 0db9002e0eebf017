package core

import (
	"slices"
	"testing"
)

func TestSampleIndicesDistinct(t *testing.T) {
	rng := NewRNG(11)
	sample := rng.SampleIndices(100, 40)
	if len(sample) != 40 {
		t.Fatalf("sample length %d, expected 40", len(sample))
	}
	seen := map[int]bool{}
	for _, idx := range sample {
		if idx < 0 || idx >= 100 {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d drawn twice", idx)
		}
		seen[idx] = true
	}
}

func TestSampleIndicesClamps(t *testing.T) {
	rng := NewRNG(11)
	if got := rng.SampleIndices(5, 9); len(got) != 5 {
		t.Fatalf("k > n: sample length %d, expected 5", len(got))
	}
	if got := rng.SampleIndices(5, 0); got != nil {
		t.Fatalf("k = 0: expected nil, got %v", got)
	}
	if got := rng.SampleIndices(0, 0); got != nil {
		t.Fatalf("empty domain: expected nil, got %v", got)
	}
}

func TestSeededStreamsMatch(t *testing.T) {
	a := NewRNG(1234)
	b := NewRNG(1234)
	if !slices.Equal(a.Perm(20), b.Perm(20)) {
		t.Fatal("same seed produced different permutations")
	}
	if !slices.Equal(a.SampleIndices(50, 10), b.SampleIndices(50, 10)) {
		t.Fatal("same seed produced different samples")
	}
	for i := 0; i < 100; i++ {
		if a.IntN(8) != b.IntN(8) {
			t.Fatalf("streams diverged at draw %d", i)
		}
	}
}
