package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexis/builder"
	"github.com/katalvlaran/lexis/corpus"
	"github.com/katalvlaran/lexis/dict"
)

func TestFromWords_Valid(t *testing.T) {
	c, err := builder.FromWords([]string{"ab", "an", "ant", "cat", "cats"})
	require.NoError(t, err)

	d := dict.New(c)
	assert.Equal(t, 5, d.Count())
	assert.True(t, d.Exists("ant"))
	assert.True(t, d.Exists("cats"))
	assert.False(t, d.Exists("dog"))
	assert.Equal(t, "aban", c.Bucket(2))
	assert.Equal(t, "antcat", c.Bucket(3))
	assert.Equal(t, "cats", c.Bucket(4))
}

func TestFromWords_Empty(t *testing.T) {
	c, err := builder.FromWords(nil)
	require.NoError(t, err)
	assert.Zero(t, c.Size())
}

func TestFromWords_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		words []string
		want  error
	}{
		{"unsorted", []string{"cat", "ant"}, builder.ErrNotSorted},
		{"duplicate", []string{"ant", "ant"}, builder.ErrDuplicateWord},
		{"uppercase", []string{"Ant"}, builder.ErrInvalidRune},
		{"digit", []string{"a1b"}, builder.ErrInvalidRune},
		{"space", []string{"an t"}, builder.ErrInvalidRune},
		{"unicode", []string{"naïve"}, builder.ErrInvalidRune},
		{"too short", []string{"a"}, builder.ErrLengthOutOfRange},
		{"too long", []string{strings.Repeat("z", corpus.MaxWordLen+1)}, builder.ErrLengthOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := builder.FromWords(tc.words)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFromWords_SkipOutOfRange(t *testing.T) {
	// "a" is dropped, but it still participates in the ordering check.
	c, err := builder.FromWords([]string{"a", "ab", "cat"}, builder.WithSkipOutOfRange())
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	// A skipped word out of order is still an ordering violation.
	_, err = builder.FromWords([]string{"ab", "a"}, builder.WithSkipOutOfRange())
	assert.ErrorIs(t, err, builder.ErrNotSorted)
}

func TestFromReader_Valid(t *testing.T) {
	in := "ab\nan\n\nant\ncat\n"
	c, err := builder.FromReader(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Size(), "blank lines are ignored")
	assert.True(t, dict.New(c).Exists("an"))
}

func TestFromReader_ReportsLine(t *testing.T) {
	_, err := builder.FromReader(strings.NewReader("ant\ncat\nbat\n"))
	require.ErrorIs(t, err, builder.ErrNotSorted)
	assert.Contains(t, err.Error(), "line 3")
}

// TestRoundTrip_Embedded rebuilds every bucket of the embedded snapshot
// through the validating builder and expects byte-identical output. This
// doubles as a full validation pass over the shipped data: any ordering,
// duplicate or charset defect in a data file fails here.
func TestRoundTrip_Embedded(t *testing.T) {
	src := corpus.Embedded()

	for length := corpus.MinWordLen; length <= corpus.MaxWordLen; length++ {
		bucket := src.Bucket(length)
		words := make([]string, 0, len(bucket)/length)
		for off := 0; off < len(bucket); off += length {
			words = append(words, bucket[off:off+length])
		}

		rebuilt, err := builder.FromWords(words)
		require.NoErrorf(t, err, "length %d", length)
		assert.Equalf(t, bucket, rebuilt.Bucket(length),
			"length %d bucket should rebuild byte-identical", length)
	}
}
