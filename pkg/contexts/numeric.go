package contexts

// SplitNumeric splits a context at every token containing an ASCII digit.
// The digit-bearing token is discarded; everything before it becomes one
// segment and the suffix after it is processed the same way via the work
// list. A context with no digit-bearing token comes back as one segment.
// Empty segments survive here and are only dropped by the letter filter.
func SplitNumeric(tokens []string) [][]string {
	var out [][]string
	pending := [][]string{tokens}

	for len(pending) > 0 {
		seq := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		split := false
		for i, tok := range seq {
			if !hasDigit(tok) {
				continue
			}
			out = append(out, seq[:i])
			pending = append(pending, seq[i+1:])
			split = true
			break
		}
		if !split {
			out = append(out, seq)
		}
	}
	return out
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
