package builder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lexis/corpus"
)

// FromReader parses a newline-delimited word list from r and assembles a
// corpus. The list must already be in strictly ascending byte order with
// every byte in 'a'..'z'; blank lines are ignored. See the package doc for
// the full input contract.
//
// Returns the first validation failure wrapped around one of the package
// sentinels, or any read error from r.
func FromReader(r io.Reader, opts ...Option) (*corpus.Corpus, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		parts [corpus.MaxWordLen + 1]strings.Builder
		prev  string
		line  int
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line++
		word := scanner.Text()
		if word == "" {
			continue
		}
		if err := accept(&parts, &prev, word, cfg); err != nil {
			return nil, fmt.Errorf("FromReader: line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("FromReader: %w", err)
	}

	return assemble(&parts)
}

// FromWords assembles a corpus from an in-memory word list under the same
// contract as FromReader: strictly ascending, lowercase ASCII.
func FromWords(words []string, opts ...Option) (*corpus.Corpus, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var (
		parts [corpus.MaxWordLen + 1]strings.Builder
		prev  string
	)
	for i, word := range words {
		if err := accept(&parts, &prev, word, cfg); err != nil {
			return nil, fmt.Errorf("FromWords: word %d: %w", i, err)
		}
	}

	return assemble(&parts)
}

// accept validates one word against the running order state and appends it
// to its length bucket. Skipped out-of-range words still advance the order
// state, so a sorted source stays verifiable end to end.
func accept(parts *[corpus.MaxWordLen + 1]strings.Builder, prev *string, word string, cfg buildConfig) error {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return fmt.Errorf("%q: %w", word, ErrInvalidRune)
		}
	}

	if *prev != "" {
		if word == *prev {
			return fmt.Errorf("%q: %w", word, ErrDuplicateWord)
		}
		if word < *prev {
			return fmt.Errorf("%q after %q: %w", word, *prev, ErrNotSorted)
		}
	}
	*prev = word

	if len(word) < corpus.MinWordLen || len(word) > corpus.MaxWordLen {
		if cfg.skipOutOfRange {
			return nil
		}

		return fmt.Errorf("%q (length %d): %w", word, len(word), ErrLengthOutOfRange)
	}
	parts[len(word)].WriteString(word)

	return nil
}

// assemble freezes the per-length builders into an immutable Corpus.
func assemble(parts *[corpus.MaxWordLen + 1]strings.Builder) (*corpus.Corpus, error) {
	var buckets [corpus.MaxWordLen + 1]string
	for width := corpus.MinWordLen; width <= corpus.MaxWordLen; width++ {
		buckets[width] = parts[width].String()
	}

	c, err := corpus.New(buckets)
	if err != nil {
		// Unreachable for validated input; kept for contract completeness.
		return nil, fmt.Errorf("assemble: %w", err)
	}

	return c, nil
}
