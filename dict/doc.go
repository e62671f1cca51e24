// Package dict is the query layer of lexis: membership checks and lazy
// enumerations over an immutable word corpus.
//
// Key features:
//   - Exists(word): true iff word is in the dictionary — one binary search
//     in the bucket matching the word's length, no allocation
//   - Words() / WordsByLen(n): lazy, finite, restartable sequences of every
//     word, or of every word with one exact length
//   - Range(begin, end): every word w with begin ≤ w < end (half-open)
//   - Prefix(p): every word starting with p, built on Range
//   - Stats(): total and per-length word counts
//
// All sequences are iter.Seq[string] values: each range-over restarts from
// the beginning (no shared cursor), and yielded strings are slices of the
// corpus buckets — borrowed, never copied.
//
// Yield order (documented contract): ascending within each word length,
// lengths visited in ascending order. This is NOT a single global
// lexicographic order across lengths; "aardwolf" (length 8) is yielded
// before "aardvarks" (length 9). Callers needing a global order must sort.
//
// Every operation is a total function: out-of-range lengths, absent words,
// empty or inverted ranges all degrade to false or an empty sequence —
// never an error.
//
// Complexity:
//
//   - Exists: O(L·log(n_L)) for a word of length L over n_L same-length words.
//   - Enumerations: O(result) after an O(L·log n_L) positioning per bucket.
//
// Concurrency: the corpus is read-only after one-time materialization, so
// every function and method here is safe for unsynchronized concurrent use.
package dict
