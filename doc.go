// Package lexis is a fast, allocation-free English word dictionary
// compiled straight into your binary — membership checks, enumeration
// and lexicographic range scans over ~200,000 words.
//
// 🚀 What is lexis?
//
//	A small, thread-safe, zero-dependency library that answers one
//	question quickly: "is this a valid word?" — plus the queries around it:
//		• Membership: Exists("rusty") in O(L·log n), no allocation
//		• Enumeration: every word, or every word of one exact length
//		• Ranges: all words in a half-open interval [begin, end)
//		• Prefix scans: all words starting with a given prefix
//		• External lists: build a corpus from your own sorted word list
//
// ✨ Why choose lexis?
//
//   - Footprint near the raw text size – words live in 27 fixed-width
//     buckets, one per length; no runtime hash table or tree is built
//   - Rock-solid guarantees – the corpus is immutable after one-time
//     materialization, so every query is safe for concurrent use
//   - Pure Go – no cgo, no hidden deps, no I/O at query time
//
// Under the hood, everything is organized under three subpackages:
//
//	corpus/  — the embedded bucketed word data + fixed-stride binary search
//	dict/    — the public query layer (Exists, Words, Range, Prefix, Stats)
//	builder/ — construct a corpus from a newline-delimited sorted word list
//
// Quick taste:
//
//	if dict.Exists("rusty") {
//	    fmt.Println("a real word")
//	}
//	for w := range dict.Range("aa", "ab") {
//	    fmt.Println(w) // the 20 words between "aa" and "ab"
//	}
//
// Dive into the per-package docs for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/lexis/dict
package lexis
