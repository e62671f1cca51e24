// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are NEVER wrapped with formatted strings at definition site.
//   - Implementations attach context (word position, the word itself)
//     using %w wrapping at the failure site.
package builder

import "errors"

// ErrNotSorted indicates the input word list is not in strictly ascending
// byte order. The corpus layout depends on sorted input; the builder
// verifies rather than sorts, so order violations are the caller's bug.
// Usage: if errors.Is(err, ErrNotSorted) { /* re-sort the source list */ }.
var ErrNotSorted = errors.New("builder: word list not in ascending order")

// ErrDuplicateWord indicates the same word appeared twice in a row.
// Buckets are strictly increasing, so duplicates can never be represented.
// Usage: if errors.Is(err, ErrDuplicateWord) { /* dedupe the source */ }.
var ErrDuplicateWord = errors.New("builder: duplicate word")

// ErrInvalidRune indicates a word containing a byte outside 'a'..'z'.
// The corpus stores lowercase ASCII only; mixed-case or unicode input must
// be normalized before building.
// Usage: if errors.Is(err, ErrInvalidRune) { /* normalize the source */ }.
var ErrInvalidRune = errors.New("builder: word contains a byte outside 'a'-'z'")

// ErrLengthOutOfRange indicates a word shorter than corpus.MinWordLen or
// longer than corpus.MaxWordLen. Use WithSkipOutOfRange to drop such
// entries silently instead of failing.
// Usage: if errors.Is(err, ErrLengthOutOfRange) { /* filter or skip */ }.
var ErrLengthOutOfRange = errors.New("builder: word length outside supported range")
