package contexts

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// CacheSize is the maximum number of entries in the token normalization cache.
// Article text repeats tokens heavily, so most lookups hit. At ~50 bytes per
// entry, 100k entries uses approximately 5MB of memory.
const CacheSize = 100_000

// Normalizer applies a configurable pipeline of normalization steps to one token.
type Normalizer struct {
	steps []NormalizerFunc
	cache *lru.Cache[string, string]
}

// NewNormalizer creates a normalizer with the default pipeline and caching enabled.
func NewNormalizer() *Normalizer {
	cache, _ := lru.New[string, string](CacheSize)
	return &Normalizer{
		steps: []NormalizerFunc{NFKDDecompose},
		cache: cache,
	}
}

// NewNormalizerWithSteps creates a normalizer with a custom pipeline.
// Caching is disabled since step behavior is caller-defined.
func NewNormalizerWithSteps(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(token string) string {
	if n.cache != nil {
		if out, ok := n.cache.Get(token); ok {
			return out
		}
	}

	out := token
	for _, step := range n.steps {
		out = step(out)
	}

	if n.cache != nil {
		n.cache.Add(token, out)
	}
	return out
}

// CacheLen returns the number of cached tokens (0 if caching is disabled).
func (n *Normalizer) CacheLen() int {
	if n.cache == nil {
		return 0
	}
	return n.cache.Len()
}

// ClearCache clears the memoization cache.
func (n *Normalizer) ClearCache() {
	if n.cache != nil {
		n.cache.Purge()
	}
}

// NFKDDecompose applies Unicode NFKD normalization.
// Decomposes é → e + combining_acute, ﬁ → fi, etc.
// Malformed input encoding passes through unchanged rather than failing.
func NFKDDecompose(s string) string {
	return norm.NFKD.String(s)
}
