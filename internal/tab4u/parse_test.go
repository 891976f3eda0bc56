package tab4u

import "testing"

const searchFixture = `
<div class="recUpUnit ruSong">
	<a class="ruSongLink songLinkT" href="tabs/songs/12345_hey_jude.html">
		<div class="ruArtPhoto" style="background-image:url('/img/artists/beatles.jpg')"></div>
		<div class="sNameI19">Hey Jude /</div>
		<div class="aNameI19">The Beatles</div>
	</a>
</div>
<div class="recUpUnit ruSong">
	<a class="ruSongLink songLinkT" href="tabs/songs/67890_let_it_be.html">
		<div class="sNameI19">Let It Be /</div>
		<div class="aNameI19">The Beatles</div>
	</a>
</div>
`

const songFixture = `
<html><body>
<div id="songContentTPL">
<table>
<tr><td class="chords_en">C</td></tr>
<tr><td class="song vocals">Hey</td></tr>
<tr><td class="chords_en">G</td></tr>
<tr><td class="song vocals">Jude</td></tr>
</table>
</div>
</body></html>
`

func TestParseSearchResults(t *testing.T) {
	results := parseSearchResults(searchFixture, "https://example.test")

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}

	first := results[0]
	if first.Title != "Hey Jude" {
		t.Errorf("Expected title 'Hey Jude', got %q", first.Title)
	}
	if first.Artist != "The Beatles" {
		t.Errorf("Expected artist 'The Beatles', got %q", first.Artist)
	}
	if first.Link != "https://example.test/tabs/songs/12345_hey_jude.html" {
		t.Errorf("Unexpected link %q", first.Link)
	}
	if first.Image != "https://example.test/img/artists/beatles.jpg" {
		t.Errorf("Unexpected image %q", first.Image)
	}

	// Second result has no cover image.
	if results[1].Image != "" {
		t.Errorf("Expected empty image, got %q", results[1].Image)
	}
}

func TestParseSearchResultsEmpty(t *testing.T) {
	if results := parseSearchResults("<html><body>nothing here</body></html>", "https://example.test"); len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
}

func TestParseSongContent(t *testing.T) {
	content := parseSongContent(songFixture)

	if content.Chords != "C\nG" {
		t.Errorf("Expected chords 'C\\nG', got %q", content.Chords)
	}
	if content.Lyrics != "Hey\nJude" {
		t.Errorf("Expected lyrics 'Hey\\nJude', got %q", content.Lyrics)
	}
	if content.RawText != "C\nHey\nG\nJude" {
		t.Errorf("Expected interleaved raw text, got %q", content.RawText)
	}
	if content.ContentHTML == "" {
		t.Error("Expected the content block HTML to be kept")
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a<br>b", "a\nb"},
		{"a<br />b", "a\nb"},
		{"<b>bold</b> text", "bold text"},
		{"&quot;hi&quot;&nbsp;there", `"hi" there`},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := cleanText(tt.in); got != tt.want {
			t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
