// Package grapheme holds string-level helpers over Unicode text segmentation
// shared by the public grapheme and text packages.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, len(text))
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Words splits text at Unicode word boundaries (UAX #29). Concatenating the
// result yields text again; whitespace runs and punctuation are their own
// chunks.
func Words(text string) []string {
	if text == "" {
		return nil
	}
	out := make([]string, 0, 8)
	state := -1
	for text != "" {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		out = append(out, word)
	}
	return out
}

// Lines splits text on '\n'. A trailing '\r' on each line is dropped so CRLF
// input behaves like LF input. An empty text is a single empty line.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// IsNewline reports whether cluster is a hard line break.
func IsNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n"
}

// IsControl reports whether cluster is a single control character other than
// a line break. Tabs are controls.
func IsControl(cluster string) bool {
	r, n := utf8.DecodeRuneInString(cluster)
	return n == len(cluster) && n > 0 && r != '\n' && unicode.IsControl(r)
}

// TabAdvance returns the number of columns from col to the next tab stop.
func TabAdvance(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return tabWidth - col%tabWidth
}
