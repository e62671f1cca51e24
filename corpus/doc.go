// Package corpus stores an immutable set of lowercase ASCII words,
// partitioned into fixed-width buckets by word length, and provides the
// binary-search primitive that every query in lexis is built on.
//
// Layout:
//
//	Bucket L (MinWordLen ≤ L ≤ MaxWordLen) is one string holding every
//	word of length L back to back, ascending, with no delimiters:
//	word i of bucket L occupies bytes [i·L, (i+1)·L). Lengths outside the
//	supported range map to the empty bucket, which makes any query against
//	them trivially empty rather than an error.
//
// Key properties:
//   - Embedded(): the compiled-in ~200k-word snapshot, materialized
//     exactly once process-wide (sync.OnceValue) and read-only afterwards,
//     so all accessors are safe for unsynchronized concurrent use.
//   - New(buckets): construct a Corpus from externally prepared buckets
//     (see the builder package for the validating front door).
//   - Search(bucket, target, width): fixed-stride binary search returning
//     either the byte offset of the target record or the offset at which
//     it would be inserted to keep the bucket sorted.
//
// Complexity:
//
//   - Search: O(L·log(n/L)) byte comparisons for a bucket of n bytes.
//   - Bucket / Size / SizeByLen: O(1).
//
// Invariants (guaranteed for Embedded, enforced by builder for external
// input, and asserted by this package's tests):
//   - every byte is in 'a'..'z';
//   - each bucket's length is an exact multiple of its width;
//   - records within a bucket are strictly increasing, so there are no
//     duplicates.
package corpus
