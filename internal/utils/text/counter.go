// Package text provides small text measurement helpers shared by the
// scraping and summarization layers.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
//
//	CountRunes("hello")     // 5
//	CountRunes("hello世界")  // 7
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountLines counts the non-blank lines in text.
// Model output often separates lines with blank lines; those are not counted.
func CountLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
