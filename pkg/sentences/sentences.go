// Package sentences provides thin sentence segmentation and Penn Treebank
// style word tokenization for plain article text. It is deliberately
// simplistic: downstream context extraction only needs delimiter tokens
// (-LRB-, -RRB-, [, ], ``, '') and split-off contraction suffixes to be
// recognizable, not linguistics-grade boundaries.
package sentences

import (
	"regexp"
	"strings"
)

var sentenceEnd = regexp.MustCompile(`([.!?]+)(\s+|$)`)

// Split breaks article text into sentences at terminal punctuation runs.
// Abbreviation periods are not treated specially; a false break merely
// yields two shorter sentences, which context extraction tolerates.
func Split(text string) []string {
	delimited := sentenceEnd.ReplaceAllString(text, "$1\x00")
	parts := strings.Split(delimited, "\x00")

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// contractionSuffix matches the clitics the Penn Treebank splits from their
// host word ("isn't" -> "is" + "n't", "John's" -> "John" + "'s").
var contractionSuffix = regexp.MustCompile(`(?i)(n't|'s|'re|'ve|'ll|'d|'m)$`)

// Tokenize converts one sentence into Penn Treebank style word tokens:
// round brackets become -LRB-/-RRB-, double quotes become ``/'', sentence
// punctuation and contraction suffixes are split into their own tokens.
func Tokenize(sentence string) []string {
	var b strings.Builder
	b.Grow(len(sentence) * 2)

	inQuote := false
	for _, r := range sentence {
		switch r {
		case '(':
			b.WriteString(" -LRB- ")
		case ')':
			b.WriteString(" -RRB- ")
		case '[':
			b.WriteString(" [ ")
		case ']':
			b.WriteString(" ] ")
		case '“': // left curly double quote
			b.WriteString(" `` ")
		case '”': // right curly double quote
			b.WriteString(" '' ")
		case '"':
			if inQuote {
				b.WriteString(" '' ")
			} else {
				b.WriteString(" `` ")
			}
			inQuote = !inQuote
		case ',', ';', ':', '!', '?':
			b.WriteByte(' ')
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}

	var tokens []string
	for _, field := range strings.Fields(b.String()) {
		tokens = append(tokens, splitWordToken(field)...)
	}
	return tokens
}

// splitWordToken splits trailing periods and contraction suffixes from one
// whitespace-delimited field.
func splitWordToken(field string) []string {
	var trailing []string
	for len(field) > 1 && strings.HasSuffix(field, ".") {
		field = strings.TrimSuffix(field, ".")
		trailing = append(trailing, ".")
	}

	if m := contractionSuffix.FindString(field); m != "" && len(m) < len(field) {
		head := field[:len(field)-len(m)]
		return append([]string{head, m}, trailing...)
	}
	if field == "" {
		return trailing
	}
	return append([]string{field}, trailing...)
}
