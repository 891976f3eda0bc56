// Package render splits fetched song content into per-instrument display
// lines. It is a pure transform over the broadcast payload; it holds no
// state of its own.
package render

import (
	"strings"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

// Line is one display row: a chord line above the lyric line it belongs
// to. Either side may be empty when the two blocks differ in length.
type Line struct {
	Chords string `json:"chords"`
	Lyrics string `json:"lyrics"`
}

// Lines pairs chord and lyric lines by index. The shorter block is
// padded with empty strings so no line of the longer block is lost.
func Lines(chords, lyrics string) []Line {
	chordLines := splitLines(chords)
	lyricLines := splitLines(lyrics)

	n := len(chordLines)
	if len(lyricLines) > n {
		n = len(lyricLines)
	}

	lines := make([]Line, n)
	for i := 0; i < n; i++ {
		if i < len(chordLines) {
			lines[i].Chords = chordLines[i]
		}
		if i < len(lyricLines) {
			lines[i].Lyrics = lyricLines[i]
		}
	}
	return lines
}

// ForInstrument renders song content for one instrument: vocalists see
// lyric lines only, everyone else sees chords paired with lyrics. When
// the song has neither block, nil is returned and the caller should fall
// back to the raw text.
func ForInstrument(content models.SongContent, instrument models.Instrument) []Line {
	if content.Chords == "" && content.Lyrics == "" {
		return nil
	}

	if instrument == models.InstrumentVocals {
		lyricLines := splitLines(content.Lyrics)
		lines := make([]Line, len(lyricLines))
		for i, l := range lyricLines {
			lines[i].Lyrics = l
		}
		return lines
	}

	return Lines(content.Chords, content.Lyrics)
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
