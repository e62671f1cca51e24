package dict

import (
	"iter"
	"sync"

	"github.com/katalvlaran/lexis/corpus"
)

// Dict answers membership and enumeration queries over one Corpus.
// The zero value is not useful; obtain a Dict from New or Default.
type Dict struct {
	c *corpus.Corpus
}

// New returns a Dict querying the given corpus. A nil corpus falls back
// to the embedded snapshot, so New(nil) and Default() are equivalent.
func New(c *corpus.Corpus) *Dict {
	if c == nil {
		c = corpus.Embedded()
	}

	return &Dict{c: c}
}

// defaultDict wraps the embedded corpus exactly once process-wide.
var defaultDict = sync.OnceValue(func() *Dict {
	return &Dict{c: corpus.Embedded()}
})

// Default returns the Dict over the compiled-in word list. The package-level
// query functions all delegate to it.
func Default() *Dict { return defaultDict() }

// Exists reports whether word is in the dictionary.
//
// Words shorter than corpus.MinWordLen or longer than corpus.MaxWordLen are
// rejected up front. Anything else is resolved by one fixed-stride binary
// search in the bucket of matching length; strings containing bytes outside
// 'a'..'z' simply never compare equal to a stored record, so they report
// false without special-casing.
//
// No allocation; O(L·log n) for a word of length L.
func (d *Dict) Exists(word string) bool {
	length := len(word)
	if length < corpus.MinWordLen || length > corpus.MaxWordLen {
		return false
	}

	_, found := corpus.Search(d.c.Bucket(length), word, length)

	return found
}

// Words returns a lazy sequence of every word in the dictionary, each
// exactly once, in the documented order: ascending within a length,
// lengths ascending. The sequence is finite and restartable.
func (d *Dict) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for length := corpus.MinWordLen; length <= corpus.MaxWordLen; length++ {
			bucket := d.c.Bucket(length)
			for off := 0; off < len(bucket); off += length {
				if !yield(bucket[off : off+length]) {
					return
				}
			}
		}
	}
}

// WordsByLen returns a lazy sequence of every word of exactly the given
// length, in ascending order. Lengths outside the supported range yield an
// immediately empty sequence — not an error.
func (d *Dict) WordsByLen(length int) iter.Seq[string] {
	return func(yield func(string) bool) {
		bucket := d.c.Bucket(length)
		for off := 0; off < len(bucket); off += length {
			if !yield(bucket[off : off+length]) {
				return
			}
		}
	}
}

// Range returns a lazy sequence of every word w with begin ≤ w < end,
// comparing raw bytes. The interval is half-open; begin ≥ end yields an
// empty sequence.
//
// Walk: for each length bucket in ascending order, binary-search the
// insertion point of begin (begin's length may differ from the bucket
// width, so the bound is re-resolved per bucket), then emit records until
// one compares ≥ end. A bucket whose first candidate is already ≥ end is
// skipped, but later lengths are still visited — shorter strings can sort
// after longer ones, so no bucket's emptiness terminates the whole scan.
func (d *Dict) Range(begin, end string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if begin >= end {
			return
		}
		for length := corpus.MinWordLen; length <= corpus.MaxWordLen; length++ {
			bucket := d.c.Bucket(length)
			off, _ := corpus.Search(bucket, begin, length)
			for ; off < len(bucket); off += length {
				word := bucket[off : off+length]
				if word >= end {
					break
				}
				if !yield(word) {
					return
				}
			}
		}
	}
}

// Prefix returns a lazy sequence of every word that starts with p, in the
// same order Range uses. Prefix("") enumerates the whole dictionary.
func (d *Dict) Prefix(p string) iter.Seq[string] {
	return d.Range(p, prefixEnd(p))
}

// prefixEnd returns the smallest string that sorts after every string
// beginning with p. For a corpus of 'a'..'z' bytes a single 0x7f byte
// already bounds everything, which also covers the degenerate inputs
// (empty prefix, prefix of 0xff bytes) without a special case in Prefix.
func prefixEnd(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] < 0xff {
			bump := []byte(p[:i+1])
			bump[i]++

			return string(bump)
		}
	}

	return "\x7f"
}

// Count returns the total number of words in the dictionary. O(1).
func (d *Dict) Count() int { return d.c.Size() }

// CountByLen returns the number of words of exactly the given length;
// zero for out-of-range lengths. O(1).
func (d *Dict) CountByLen(length int) int { return d.c.SizeByLen(length) }

// Package-level forms of every query, delegating to Default().

// Exists reports whether word is in the embedded dictionary.
func Exists(word string) bool { return Default().Exists(word) }

// Words enumerates every word in the embedded dictionary.
func Words() iter.Seq[string] { return Default().Words() }

// WordsByLen enumerates every embedded word of exactly the given length.
func WordsByLen(length int) iter.Seq[string] { return Default().WordsByLen(length) }

// Range enumerates every embedded word w with begin ≤ w < end.
func Range(begin, end string) iter.Seq[string] { return Default().Range(begin, end) }

// Prefix enumerates every embedded word starting with p.
func Prefix(p string) iter.Seq[string] { return Default().Prefix(p) }

// Count returns the total number of words in the embedded dictionary.
func Count() int { return Default().Count() }

// CountByLen returns the number of embedded words of exactly the given length.
func CountByLen(length int) int { return Default().CountByLen(length) }
