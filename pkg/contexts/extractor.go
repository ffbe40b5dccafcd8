// Package contexts converts tokenized sentences into normalized,
// delimiter-free, alphabetic-only token sequences ("contexts"), the unit fed
// into n-gram counting.
package contexts

// Extractor turns one tokenized sentence into zero or more clean contexts.
type Extractor struct {
	normalizer *Normalizer
}

// NewExtractor creates an extractor with the default normalizer pipeline.
func NewExtractor() *Extractor {
	return &Extractor{normalizer: NewNormalizer()}
}

// NewExtractorWithNormalizer creates an extractor with a custom normalizer.
func NewExtractorWithNormalizer(n *Normalizer) *Extractor {
	return &Extractor{normalizer: n}
}

// Extract runs the full transformation chain over one sentence's raw tokens:
// closing-quote splitting, contraction merging, per-token normalization,
// delimiter span extraction, numeric splitting, then letter filtering.
// Contexts that end up empty are dropped here, at the very end.
//
// Extract is safe for concurrent use: it holds no per-call state beyond its
// arguments, and the normalization cache is thread-safe.
func (e *Extractor) Extract(sentence []string) [][]string {
	tokens := SplitClosingQuotes(sentence)
	tokens = MergeContractions(tokens)
	for i, tok := range tokens {
		tokens[i] = e.normalizer.Normalize(tok)
	}

	var out [][]string
	for _, delimited := range SplitDelimited(tokens) {
		for _, segment := range SplitNumeric(delimited) {
			if filtered := FilterLetters(segment); len(filtered) > 0 {
				out = append(out, filtered)
			}
		}
	}
	return out
}
