package rule

import (
	"sync"

	"golang.org/x/text/unicode/norm"

	"nativelint/internal/source"
)

// TestIDRegistry records testID string literals observed during one analysis
// run. It is a single injected object with run lifetime, shared by every
// file's Context; files may be analysed concurrently, so access is
// mutex-guarded. Values are NFC-normalised before comparison so visually
// identical ids collide.
type TestIDRegistry struct {
	mu   sync.Mutex
	seen map[string]source.Span
}

// NewTestIDRegistry returns an empty registry for one run.
func NewTestIDRegistry() *TestIDRegistry {
	return &TestIDRegistry{
		seen: make(map[string]source.Span),
	}
}

// Observe records an occurrence of id at span. It returns the span of the
// first occurrence and whether this call was a duplicate. The first
// occurrence of an id is never a duplicate.
func (r *TestIDRegistry) Observe(id string, span source.Span) (first source.Span, duplicate bool) {
	key := norm.NFC.String(id)

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.seen[key]; ok {
		return prev, true
	}
	r.seen[key] = span
	return span, false
}

// Len returns the number of distinct ids observed.
func (r *TestIDRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
