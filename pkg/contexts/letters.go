package contexts

import "strings"

// FilterLetters reduces each token in a context to its uppercase A-Z letters.
// Tokens that become empty are removed. Order is preserved. A context left
// with zero tokens comes back empty; dropping it is the caller's final step.
func FilterLetters(context []string) []string {
	out := make([]string, 0, len(context))
	for _, tok := range context {
		if filtered := letterize(tok); filtered != "" {
			out = append(out, filtered)
		}
	}
	return out
}

// letterize uppercases a token and keeps only the 26 uppercase Latin letters.
func letterize(token string) string {
	var b strings.Builder
	b.Grow(len(token))
	for _, r := range strings.ToUpper(token) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
