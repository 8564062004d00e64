package registry

import (
	"errors"
	"fmt"
)

// ErrCapacity is returned when recording a new word would exceed the
// registry's configured word limit.
var ErrCapacity = errors.New("registry capacity exceeded")

// Record is the accounting state of one distinct word.
type Record struct {
	Word string
	// Count is the number of occurrences in the owning document. It stops
	// changing once the word is shared.
	Count uint64
	Owner Owner
}

// Registry maps words to records while preserving first-occurrence order.
// It is not safe for concurrent use.
type Registry struct {
	index    map[string]int
	records  []Record
	maxWords int
}

// New returns an empty registry. A positive maxWords caps the number of
// distinct words it accepts; zero means unlimited.
func New(maxWords int) *Registry {
	if maxWords < 0 {
		maxWords = 0
	}
	return &Registry{
		index:    make(map[string]int),
		maxWords: maxWords,
	}
}

// Record accounts one occurrence of word in the given 1-based document.
// The only failure is ErrCapacity, raised when word is new and the registry
// is full; existing records are unaffected.
func (r *Registry) Record(word string, document int) error {
	if document < 1 {
		panic(fmt.Sprintf("registry: document index must be positive, got %d", document))
	}
	if pos, ok := r.index[word]; ok {
		rec := &r.records[pos]
		owner, same := rec.Owner.observe(document)
		rec.Owner = owner
		if same {
			rec.Count++
		}
		return nil
	}
	if r.maxWords > 0 && len(r.records) >= r.maxWords {
		return fmt.Errorf("%w: %d distinct words", ErrCapacity, r.maxWords)
	}
	r.index[word] = len(r.records)
	r.records = append(r.records, Record{
		Word:  word,
		Count: 1,
		Owner: Exclusive(document),
	})
	return nil
}

// Lookup returns the record for word, if any.
func (r *Registry) Lookup(word string) (Record, bool) {
	pos, ok := r.index[word]
	if !ok {
		return Record{}, false
	}
	return r.records[pos], true
}

// Len returns the number of distinct words recorded.
func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns every record ever created, shared ones included, in
// first-occurrence order. The returned slice is a copy.
func (r *Registry) Records() []Record {
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}
