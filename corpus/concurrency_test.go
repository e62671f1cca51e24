// Package corpus_test verifies that the embedded corpus is safe to share
// across goroutines: first use may race on materialization, every later
// access is a plain read.
package corpus_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexis/corpus"
)

// TestConcurrentFirstUse hammers Embedded from many goroutines so the
// one-time materialization is exercised under contention; every goroutine
// must observe the same instance.
func TestConcurrentFirstUse(t *testing.T) {
	const workers = 64
	instances := make([]*corpus.Corpus, workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(slot int) {
			defer wg.Done()
			instances[slot] = corpus.Embedded()
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		require.Same(t, instances[0], instances[i])
	}
}

// TestConcurrentSearch runs searches in parallel over shared buckets;
// with no mutation ever happening, every lookup must stay correct.
func TestConcurrentSearch(t *testing.T) {
	c := corpus.Embedded()
	bucket := c.Bucket(5)
	require.NotEmpty(t, bucket)

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(step int) {
			defer wg.Done()
			// Each worker probes a different stride of the bucket.
			for off := step * 5; off < len(bucket); off += workers * 5 {
				word := bucket[off : off+5]
				got, found := corpus.Search(bucket, word, 5)
				require.True(t, found, "word %q", word)
				require.Equal(t, off, got, "word %q", word)
			}
		}(w)
	}
	wg.Wait()
}
