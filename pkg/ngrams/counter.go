// Package ngrams accumulates n-gram frequency tables over context streams.
package ngrams

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidN reports a non-positive window width.
var ErrInvalidN = errors.New("ngrams: n must be positive")

// Counter accumulates n-gram frequencies across contexts. The table is keyed
// by the exact space-joined token string and only ever grows during a run;
// it is the single persistent structure of a counting pass, so its size is
// bounded by distinct-n-gram cardinality rather than corpus size.
type Counter struct {
	n      int
	counts map[string]int
}

// NewCounter creates a counter for n-grams of width n.
// A non-positive n is a configuration error.
func NewCounter(n int) (*Counter, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidN, n)
	}
	return &Counter{n: n, counts: make(map[string]int)}, nil
}

// N returns the window width.
func (c *Counter) N() int {
	return c.n
}

// Add slides the window across one context and increments each n-gram's
// count. A context shorter than n contributes nothing.
func (c *Counter) Add(context []string) {
	for i := 0; i+c.n <= len(context); i++ {
		c.counts[strings.Join(context[i:i+c.n], " ")]++
	}
}

// Count returns the observed count for one space-joined n-gram key.
func (c *Counter) Count(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct n-grams observed so far.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Each calls fn once per distinct n-gram, in the table's native iteration
// order.
func (c *Counter) Each(fn func(key string, count int)) {
	for key, count := range c.counts {
		fn(key, count)
	}
}

// Merge folds another counter's table into this one. Counting is additive,
// so merging per-worker counters is equivalent to counting their inputs in
// one table. Both counters must share the same width.
func (c *Counter) Merge(other *Counter) error {
	if other.n != c.n {
		return fmt.Errorf("ngrams: cannot merge %d-gram table into %d-gram table", other.n, c.n)
	}
	for key, count := range other.counts {
		c.counts[key] += count
	}
	return nil
}

// WriteTo emits one line per distinct n-gram: the count, a single space,
// then the n-gram's space-joined tokens. Emission order is the table's
// native iteration order; sorting is a separate post-processing step.
func (c *Counter) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for key, count := range c.counts {
		n, err := fmt.Fprintf(bw, "%d %s\n", count, key)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}
