package dict

import "github.com/katalvlaran/lexis/corpus"

// Stats summarizes a dictionary: the total word count and the count for
// every supported length. Indices of ByLen below corpus.MinWordLen are
// always zero.
type Stats struct {
	// Words is the total number of words.
	Words int

	// ByLen maps word length to the number of words of that length.
	ByLen [corpus.MaxWordLen + 1]int
}

// Stats computes the summary from bucket sizes alone — O(MaxWordLen),
// no word data is touched.
func (d *Dict) Stats() Stats {
	s := Stats{Words: d.c.Size()}
	for length := corpus.MinWordLen; length <= corpus.MaxWordLen; length++ {
		s.ByLen[length] = d.c.SizeByLen(length)
	}

	return s
}
