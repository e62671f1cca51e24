// Package builder constructs a corpus.Corpus from an external word list —
// the validating front door for data that did not ship inside the binary.
//
// Input contract: one word per line (FromReader) or one word per slice
// element (FromWords), already in strictly ascending byte order, every
// byte in 'a'..'z'. Blank lines are ignored. The builder cuts the list
// into per-length buckets; a subsequence of a sorted list is itself
// sorted, so bucket order comes for free and is only verified, never
// re-established.
//
// The package offers the following key components:
//
//   - FromReader(r, opts...): parse a newline-delimited sorted word list.
//   - FromWords(words, opts...): same contract for an in-memory slice.
//   - Options:
//     – WithSkipOutOfRange(): silently drop words shorter than
//     corpus.MinWordLen or longer than corpus.MaxWordLen (useful for
//     snapshots that carry single-letter entries) instead of failing.
//
// Guarantees:
//
//   - Deterministic: the same input and options always produce an
//     identical corpus.
//   - Fast-fail validation with sentinel errors — branch with errors.Is:
//     ErrNotSorted, ErrDuplicateWord, ErrInvalidRune, ErrLengthOutOfRange.
//     Failures carry the offending line/position via %w wrapping.
//   - Never panics; a successfully returned corpus satisfies every corpus
//     invariant (alignment, strict ascending buckets, a–z charset).
//
// Complexity: O(total input bytes) time, one pass; output allocation equals
// the retained word bytes.
package builder
