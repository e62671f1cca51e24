// types.go — exported constants, sentinel errors and the Corpus type.
//
// Error policy (same as everywhere in lexis): only package-level sentinels,
// matched with errors.Is; context is attached at call sites via %w wrapping.
package corpus

import "errors"

const (
	// MinWordLen is the shortest word length any Corpus may hold.
	// Single-character strings are never words here.
	MinWordLen = 2

	// MaxWordLen is the longest word length any Corpus may hold.
	MaxWordLen = 28
)

var (
	// ErrBucketMisaligned indicates a bucket whose byte length is not an
	// exact multiple of its word width, so it cannot be cut into records.
	ErrBucketMisaligned = errors.New("corpus: bucket length not a multiple of its width")

	// ErrUnsupportedWidth indicates bucket data supplied for a width
	// outside [MinWordLen, MaxWordLen].
	ErrUnsupportedWidth = errors.New("corpus: bucket width outside supported range")
)

// Corpus is an immutable word set partitioned by length. Index L of
// buckets holds the concatenation of all words of length L in ascending
// order; indices below MinWordLen stay empty. A Corpus is never mutated
// after construction, which is what makes unsynchronized concurrent reads
// safe.
//
// The zero value is a valid, empty corpus.
type Corpus struct {
	buckets [MaxWordLen + 1]string
	size    int
}

// New builds a Corpus from per-length bucket data: buckets[L] must be the
// ascending, delimiter-free concatenation of all words of length L.
//
// Only the structural invariant is checked here — each bucket must cut
// evenly into records of its width, and widths below MinWordLen must be
// empty. Word-level invariants (ordering, charset) are the caller's
// contract; the builder package validates them for external input, and
// the test suite asserts them for the embedded snapshot.
//
// Complexity: O(MaxWordLen) — no bucket bytes are scanned or copied.
func New(buckets [MaxWordLen + 1]string) (*Corpus, error) {
	var c Corpus
	for width, b := range buckets {
		if b == "" {
			continue
		}
		if width < MinWordLen {
			return nil, ErrUnsupportedWidth
		}
		if len(b)%width != 0 {
			return nil, ErrBucketMisaligned
		}
		c.buckets[width] = b
		c.size += len(b) / width
	}

	return &c, nil
}

// Bucket returns the fixed-width record buffer for the given word length.
// Lengths outside [MinWordLen, MaxWordLen] return the empty string, which
// routes wrong-length queries away from every stored word.
func (c *Corpus) Bucket(length int) string {
	if length < MinWordLen || length > MaxWordLen {
		return ""
	}

	return c.buckets[length]
}

// Size returns the total number of words in the corpus.
func (c *Corpus) Size() int { return c.size }

// SizeByLen returns the number of words of exactly the given length.
// Out-of-range lengths count zero words.
func (c *Corpus) SizeByLen(length int) int {
	if length < MinWordLen || length > MaxWordLen {
		return 0
	}

	return len(c.buckets[length]) / length
}
