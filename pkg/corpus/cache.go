package corpus

import (
	"bufio"
	"os"
	"strings"

	"github.com/TomerAberbach/wikipedia-ngrams/pkg/ngrams"
)

// scannerBufSize handles very long lines: a whole article on one corpus
// line, or a context extracted from one.
const scannerBufSize = 4 * 1024 * 1024

// CountCacheFile streams a previously extracted context cache (one context
// per line, tokens space-separated) straight into the counter, bypassing
// context extraction entirely.
func CountCacheFile(path string, counter *ngrams.Counter) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufSize)
	for scanner.Scan() {
		if fields := strings.Fields(scanner.Text()); len(fields) > 0 {
			counter.Add(fields)
		}
	}
	return scanner.Err()
}
