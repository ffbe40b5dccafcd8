package ngrams

import (
	"path/filepath"
	"testing"
)

func TestFSTRoundTrip(t *testing.T) {
	counter, _ := NewCounter(2)
	counter.Add([]string{"A", "B", "C", "A", "B"})
	counter.Add([]string{"X", "Y"})

	path := filepath.Join(t.TempDir(), "grams.fst")
	if err := counter.WriteFST(path); err != nil {
		t.Fatalf("WriteFST: %v", err)
	}

	loaded, err := ReadFST(path)
	if err != nil {
		t.Fatalf("ReadFST: %v", err)
	}

	if loaded.Len() != counter.Len() {
		t.Fatalf("loaded Len() = %d, want %d", loaded.Len(), counter.Len())
	}
	if loaded.N() != counter.N() {
		t.Errorf("loaded N() = %d, want %d", loaded.N(), counter.N())
	}
	counter.Each(func(key string, count int) {
		if got := loaded.Count(key); got != count {
			t.Errorf("loaded Count(%q) = %d, want %d", key, got, count)
		}
	})
}

func TestFSTRoundTrip_Empty(t *testing.T) {
	counter, _ := NewCounter(3)

	path := filepath.Join(t.TempDir(), "empty.fst")
	if err := counter.WriteFST(path); err != nil {
		t.Fatalf("WriteFST: %v", err)
	}

	loaded, err := ReadFST(path)
	if err != nil {
		t.Fatalf("ReadFST: %v", err)
	}
	if loaded.Len() != 0 {
		t.Errorf("empty table loaded Len() = %d, want 0", loaded.Len())
	}
}
