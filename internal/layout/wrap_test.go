package layout

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// measureByRunes charges ten pixels per rune, wide enough to make line
// breaks predictable in the tests below.
func measureByRunes(s string) int {
	return 10 * len([]rune(s))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth int
		expected []string
	}{
		{
			name:     "Empty text",
			text:     "",
			maxWidth: 500,
			expected: nil,
		},
		{
			name:     "Single short line",
			text:     "hello world",
			maxWidth: 500,
			expected: []string{"hello world"},
		},
		{
			name:     "Breaks at width",
			text:     "one two three four",
			maxWidth: 100, // fits 9 runes per line including trailing space
			expected: []string{"one two", "three", "four"},
		},
		{
			name:     "Word wider than the line gets its own line",
			text:     "a incomprehensibilities b",
			maxWidth: 100,
			expected: []string{"a", "incomprehensibilities", "b"},
		},
		{
			name:     "Exact fit is still a break",
			text:     "abcdefghi x",
			maxWidth: 100, // candidate "abcdefghi " measures exactly 100
			expected: []string{"abcdefghi", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.text, tt.maxWidth, measureByRunes)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// Committed lines stay under the limit and rejoining them reproduces the
// original word sequence.
func TestWrap_Properties(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog and keeps on running far away"

	for _, maxWidth := range []int{60, 100, 150, 400} {
		lines := Wrap(text, maxWidth, measureByRunes)

		for _, line := range lines {
			if len(strings.Split(line, " ")) > 1 {
				assert.Less(t, measureByRunes(line), maxWidth,
					"multi-word line %q exceeds width %d", line, maxWidth)
			}
		}

		assert.Equal(t, text, strings.Join(lines, " "),
			"rejoined lines differ at width %d", maxWidth)
	}
}
