package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks text into lines no wider than width display cells,
// preferring word boundaries. Existing newlines are respected.
func wrapText(text string, width int) []string {
	if width <= 0 {
		return strings.Split(text, "\n")
	}
	var out []string
	for _, paragraph := range strings.Split(text, "\n") {
		out = append(out, wrapParagraph(paragraph, width)...)
	}
	return out
}

func wrapParagraph(paragraph string, width int) []string {
	words := strings.Fields(paragraph)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var line strings.Builder
	lineWidth := 0
	for _, word := range words {
		wordWidth := runewidth.StringWidth(word)
		if wordWidth > width {
			// A single oversized word is broken hard.
			if line.Len() > 0 {
				lines = append(lines, line.String())
				line.Reset()
				lineWidth = 0
			}
			lines = append(lines, breakWord(word, width)...)
			continue
		}
		sep := 0
		if line.Len() > 0 {
			sep = 1
		}
		if lineWidth+sep+wordWidth > width {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
			sep = 0
		}
		if sep == 1 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += wordWidth
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func breakWord(word string, width int) []string {
	var lines []string
	var chunk strings.Builder
	chunkWidth := 0
	for _, r := range word {
		rw := runewidth.RuneWidth(r)
		if chunkWidth+rw > width && chunk.Len() > 0 {
			lines = append(lines, chunk.String())
			chunk.Reset()
			chunkWidth = 0
		}
		chunk.WriteRune(r)
		chunkWidth += rw
	}
	if chunk.Len() > 0 {
		lines = append(lines, chunk.String())
	}
	return lines
}
