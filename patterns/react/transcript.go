package react

import (
	"strings"
	"sync"
)

// Transcript is the append-only conversation history of one run: the user
// request, the model's normalized replies, and the observation entries. The
// loop controller owns the only instance; tools and the gateway receive
// derived strings, never the transcript itself.
type Transcript struct {
	mu      sync.RWMutex
	entries []string
}

// NewTranscript returns a new, empty [Transcript] ready for immediate use.
func NewTranscript() *Transcript {
	return &Transcript{
		entries: []string{},
	}
}

// Append stores entry at the end of the history.
func (t *Transcript) Append(entry string) {
	t.mu.Lock()
	t.entries = append(t.entries, entry)
	t.mu.Unlock()
}

// Len returns the number of entries stored.
func (t *Transcript) Len() int {
	t.mu.RLock()
	n := len(t.entries)
	t.mu.RUnlock()
	return n
}

// Entries returns a copy of all entries to avoid external mutation of
// internal state.
func (t *Transcript) Entries() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}

// Prompt renders the full history as the prompt for the next round, one
// entry per line block, in insertion order.
func (t *Transcript) Prompt() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return strings.Join(t.entries, "\n")
}
