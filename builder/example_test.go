package builder_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lexis/builder"
	"github.com/katalvlaran/lexis/dict"
)

// ExampleFromReader builds a corpus from a newline-delimited sorted list
// and queries it through the dict layer.
func ExampleFromReader() {
	list := "ant\nbee\ncow\ncows\nfox\n"

	c, err := builder.FromReader(strings.NewReader(list))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	d := dict.New(c)
	fmt.Println(d.Count())
	fmt.Println(d.Exists("cow"), d.Exists("cat"))

	// Output:
	// 5
	// true false
}

// ExampleFromWords_withSkipOutOfRange normalizes a snapshot that still
// carries single-letter entries.
func ExampleFromWords_withSkipOutOfRange() {
	words := []string{"a", "aa", "ab", "i", "if"}

	c, err := builder.FromWords(words, builder.WithSkipOutOfRange())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Size())

	// Output:
	// 3
}
