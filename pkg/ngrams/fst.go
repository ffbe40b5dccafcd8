package ngrams

import (
	"os"
	"sort"
	"strings"

	"github.com/blevesearch/vellum"
)

// WriteFST persists the frequency table as a vellum FST: sorted n-gram keys
// with the count as the value. At tens of millions of distinct n-grams the
// FST form is far more compact than the text file and can be opened mmap'd
// without parsing.
func (c *Counter) WriteFST(path string) error {
	keys := make([]string, 0, len(c.counts))
	for key := range c.counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	builder, err := vellum.New(file, nil)
	if err != nil {
		file.Close()
		return err
	}

	for _, key := range keys {
		if err := builder.Insert([]byte(key), uint64(c.counts[key])); err != nil {
			builder.Close()
			file.Close()
			return err
		}
	}

	if err := builder.Close(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// ReadFST reconstructs a counter from an FST written by WriteFST. The window
// width is inferred from the keys; an empty table comes back with width 1.
func ReadFST(path string) (*Counter, error) {
	fst, err := vellum.Open(path)
	if err != nil {
		return nil, err
	}
	defer fst.Close()

	counts := make(map[string]int, fst.Len())
	iter, err := fst.Iterator(nil, nil)
	for err == nil {
		key, count := iter.Current()
		counts[string(key)] = int(count)
		err = iter.Next()
	}
	if err != vellum.ErrIteratorDone {
		return nil, err
	}

	return fromCounts(counts), nil
}

// fromCounts wraps a prebuilt table, inferring n from the first key.
func fromCounts(counts map[string]int) *Counter {
	n := 1
	for key := range counts {
		n = len(strings.Fields(key))
		break
	}
	return &Counter{n: n, counts: counts}
}
