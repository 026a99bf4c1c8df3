// Package layout provides deterministic text layout for the renderer
package layout

import "strings"

// Wrap splits text into lines that fit within maxWidthPx according to
// the supplied measurement function. Words are separated by single
// spaces; a candidate line is extended while its measured width stays
// strictly below maxWidthPx, otherwise it is committed and the word
// starts a new line. The final partial line is always committed. A word
// wider than maxWidthPx occupies a line of its own rather than being
// split. Empty text yields nil.
func Wrap(text string, maxWidthPx int, measure func(string) int) []string {
	if text == "" {
		return nil
	}

	var lines []string
	current := ""

	for _, word := range strings.Split(text, " ") {
		candidate := current + word + " "
		if measure(candidate) < maxWidthPx {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, strings.TrimRight(current, " "))
		}
		current = word + " "
	}

	if current != "" {
		lines = append(lines, strings.TrimRight(current, " "))
	}
	return lines
}
