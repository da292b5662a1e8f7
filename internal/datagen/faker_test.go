package datagen

import (
	"testing"
	"time"
)

func TestFakerDeterministicWithSeed(t *testing.T) {
	f1 := NewFakerWithSeed(42)
	f2 := NewFakerWithSeed(42)

	for i := 0; i < 10; i++ {
		if got1, got2 := f1.Int(0, 1000), f2.Int(0, 1000); got1 != got2 {
			t.Fatalf("Seeded fakers diverged at iteration %d: %d vs %d", i, got1, got2)
		}
	}
}

func TestDateRange(t *testing.T) {
	f := NewFakerWithSeed(1)
	start := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		d := f.DateRange(start, end)
		if d.Before(start) || d.After(end) {
			t.Fatalf("Date %v outside range [%v, %v]", d, start, end)
		}
	}
}

func TestDateRangeInvertedBounds(t *testing.T) {
	f := NewFakerWithSeed(1)
	start := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	if d := f.DateRange(start, end); !d.Equal(start) {
		t.Errorf("Expected start date for inverted bounds, got %v", d)
	}
}

func TestChoose(t *testing.T) {
	f := NewFakerWithSeed(7)
	items := []string{"a", "b", "c"}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		v := Choose(f, items)
		seen[v] = true
	}
	for _, item := range items {
		if !seen[item] {
			t.Errorf("Choose never returned %q in 100 draws", item)
		}
	}

	var empty []string
	if v := Choose(f, empty); v != "" {
		t.Errorf("Choose on empty slice should return zero value, got %q", v)
	}
}

func TestChooseWeighted(t *testing.T) {
	f := NewFakerWithSeed(7)
	items := []string{"common", "rare"}
	weights := []int{95, 5}

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		counts[ChooseWeighted(f, items, weights)]++
	}

	if counts["common"] < counts["rare"] {
		t.Errorf("Expected 'common' to dominate, got %v", counts)
	}
}

func TestSample(t *testing.T) {
	f := NewFakerWithSeed(3)
	items := []int{1, 2, 3, 4, 5}

	out := Sample(f, items, 3)
	if len(out) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(out))
	}
	seen := make(map[int]bool)
	for _, v := range out {
		if seen[v] {
			t.Errorf("Sample returned duplicate value %d", v)
		}
		seen[v] = true
	}

	if got := Sample(f, items, 10); len(got) != len(items) {
		t.Errorf("Oversized sample should cap at input length, got %d", len(got))
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Expected 'hel', got %q", got)
	}
	if got := Truncate("hi", 10); got != "hi" {
		t.Errorf("Expected 'hi', got %q", got)
	}
}
