package ngrams

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize bounds a single frequency-file line; generous even for very
// wide n-grams.
const maxLineSize = 1024 * 1024

// ReadFrequencies parses a frequency file written by WriteTo ("count SP
// ngram" per line) back into a counter. Blank lines are ignored. The window
// width is inferred from the keys; an empty file comes back with width 1.
func ReadFrequencies(r io.Reader) (*Counter, error) {
	counts := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		count, key, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("ngrams: line %d: missing count separator", lineNo)
		}
		parsed, err := strconv.Atoi(count)
		if err != nil {
			return nil, fmt.Errorf("ngrams: line %d: bad count: %w", lineNo, err)
		}
		counts[key] += parsed
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return fromCounts(counts), nil
}
