package ngrams

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewCounter_InvalidN(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := NewCounter(n); !errors.Is(err, ErrInvalidN) {
			t.Errorf("NewCounter(%d) error = %v, want ErrInvalidN", n, err)
		}
	}
}

func TestCounter_Add(t *testing.T) {
	counter, err := NewCounter(2)
	if err != nil {
		t.Fatalf("NewCounter(2): %v", err)
	}

	counter.Add([]string{"A", "B", "C"})

	expected := map[string]int{"A B": 1, "B C": 1}
	if counter.Len() != len(expected) {
		t.Fatalf("Len() = %d, want %d", counter.Len(), len(expected))
	}
	for key, want := range expected {
		if got := counter.Count(key); got != want {
			t.Errorf("Count(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestCounter_ShortContext(t *testing.T) {
	counter, _ := NewCounter(3)

	counter.Add([]string{"A", "B"})
	counter.Add([]string{})
	counter.Add([]string{"X"})

	if counter.Len() != 0 {
		t.Errorf("contexts shorter than n contributed %d n-grams", counter.Len())
	}
}

func TestCounter_Unigrams(t *testing.T) {
	counter, _ := NewCounter(1)

	counter.Add([]string{"A", "B", "A"})

	if got := counter.Count("A"); got != 2 {
		t.Errorf("Count(A) = %d, want 2", got)
	}
	if got := counter.Count("B"); got != 1 {
		t.Errorf("Count(B) = %d, want 1", got)
	}
}

// Counting contexts together equals summing separate counts.
func TestCounter_Additive(t *testing.T) {
	c1 := []string{"A", "B", "C"}
	c2 := []string{"B", "C", "D"}

	together, _ := NewCounter(2)
	together.Add(c1)
	together.Add(c2)

	alone1, _ := NewCounter(2)
	alone1.Add(c1)
	alone2, _ := NewCounter(2)
	alone2.Add(c2)

	for _, key := range []string{"A B", "B C", "C D"} {
		want := alone1.Count(key) + alone2.Count(key)
		if got := together.Count(key); got != want {
			t.Errorf("Count(%q) = %d, want %d", key, got, want)
		}
	}
}

func TestCounter_Merge(t *testing.T) {
	a, _ := NewCounter(2)
	a.Add([]string{"A", "B", "C"})
	b, _ := NewCounter(2)
	b.Add([]string{"A", "B"})

	if err := a.Merge(b); err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if got := a.Count("A B"); got != 2 {
		t.Errorf("Count(A B) after merge = %d, want 2", got)
	}
	if got := a.Count("B C"); got != 1 {
		t.Errorf("Count(B C) after merge = %d, want 1", got)
	}
}

func TestCounter_MergeWidthMismatch(t *testing.T) {
	a, _ := NewCounter(2)
	b, _ := NewCounter(3)

	if err := a.Merge(b); err == nil {
		t.Error("merging counters of different widths should fail")
	}
}

func TestCounter_WriteTo(t *testing.T) {
	counter, _ := NewCounter(2)
	counter.Add([]string{"A", "B", "C"})
	counter.Add([]string{"A", "B"})

	var buf bytes.Buffer
	if _, err := counter.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	parsed, err := ReadFrequencies(&buf)
	if err != nil {
		t.Fatalf("ReadFrequencies: %v", err)
	}
	if parsed.Len() != counter.Len() {
		t.Fatalf("round trip Len() = %d, want %d", parsed.Len(), counter.Len())
	}
	counter.Each(func(key string, count int) {
		if got := parsed.Count(key); got != count {
			t.Errorf("round trip Count(%q) = %d, want %d", key, got, count)
		}
	})
	if parsed.N() != 2 {
		t.Errorf("round trip N() = %d, want 2", parsed.N())
	}
}
