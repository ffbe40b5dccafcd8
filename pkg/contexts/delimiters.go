package contexts

// delimiters maps each opening delimiter token to its matching closer.
// Openers of different kinds may nest arbitrarily inside one another; an
// opener only ever matches its own literal closer.
var delimiters = map[string]string{
	"-LRB-": "-RRB-",
	"[":     "]",
	"``":    "''",
}

// closers is the set of closing delimiter tokens.
var closers = map[string]struct{}{
	"-RRB-": {},
	"]":     {},
	"''":    {},
}

// SplitDelimited carves bracketed and quoted spans out of one flat token
// sequence. Every matched span becomes an independent context, processed the
// same way in turn; delimiter tokens themselves are discarded. An opener
// whose closer never appears is discarded and its interior stays in place.
//
// Nesting depth is driven by the input, so the pending spans live on an
// explicit work list rather than the call stack. The relative order of the
// returned contexts follows the work list (last extracted first); callers
// treat contexts independently and must not rely on it.
func SplitDelimited(tokens []string) [][]string {
	var out [][]string
	pending := [][]string{tokens}

	for len(pending) > 0 {
		seq := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		var current []string
		for i := 0; i < len(seq); i++ {
			tok := seq[i]
			closer, isOpener := delimiters[tok]
			if !isOpener {
				if _, isCloser := closers[tok]; isCloser {
					// Orphan closer, no opener to pair with.
					continue
				}
				current = append(current, tok)
				continue
			}

			j := i + 1
			for j < len(seq) && seq[j] != closer {
				j++
			}
			if j == len(seq) {
				// Closer never found: drop the opener only.
				continue
			}
			if j > i+1 {
				pending = append(pending, seq[i+1:j])
			}
			i = j
		}

		// Possibly empty; empty contexts are only dropped by the letter filter.
		out = append(out, current)
	}
	return out
}
