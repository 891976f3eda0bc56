package tab4u

import (
	"html"
	"regexp"
	"strings"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

// Tab4U markup, as of the current site layout: search results are anchor
// blocks with song/artist name divs, song pages carry the content inside
// a songContentTPL block whose table cells alternate chord rows
// (td.chords*) and lyric rows (td.song*).
var (
	searchResultRe = regexp.MustCompile(`(?s)<a[^>]+class="[^"]*ruSongLink[^"]*"[^>]*href="([^"]+)"[^>]*>(.*?)</a>`)
	songNameRe     = regexp.MustCompile(`(?s)<div[^>]+class="sNameI19[^"]*"[^>]*>(.*?)</div>`)
	artistNameRe   = regexp.MustCompile(`(?s)<div[^>]+class="aNameI19[^"]*"[^>]*>(.*?)</div>`)
	coverImageRe   = regexp.MustCompile(`background-image:\s*url\('?([^')]+?)'?\)`)

	songContentRe = regexp.MustCompile(`(?s)<div[^>]+id="songContentTPL"[^>]*>(.*)</div>`)
	contentCellRe = regexp.MustCompile(`(?s)<td[^>]+class="(chords|song)[^"]*"[^>]*>(.*?)</td>`)

	brRe  = regexp.MustCompile(`(?i)<br\s*/?>`)
	tagRe = regexp.MustCompile(`<[^>]+>`)
)

func parseSearchResults(body, base string) []models.SongSummary {
	var results []models.SongSummary
	for _, m := range searchResultRe.FindAllStringSubmatch(body, -1) {
		href, block := m[1], m[2]

		name := songNameRe.FindStringSubmatch(block)
		if name == nil {
			continue
		}
		artist := artistNameRe.FindStringSubmatch(block)

		s := models.SongSummary{
			// Song titles carry a trailing separator in the list view.
			Title: strings.TrimSuffix(cleanText(name[1]), "/"),
			Link:  absoluteLink(href, base),
		}
		s.Title = strings.TrimSpace(s.Title)
		if artist != nil {
			s.Artist = cleanText(artist[1])
		}
		if img := coverImageRe.FindStringSubmatch(block); img != nil {
			s.Image = absoluteLink(img[1], base)
		}
		results = append(results, s)
	}
	return results
}

func parseSongContent(body string) *models.SongContent {
	content := &models.SongContent{}

	area := body
	if m := songContentRe.FindStringSubmatch(body); m != nil {
		content.ContentHTML = "<div id=\"songContentTPL\">" + m[1] + "</div>"
		area = m[1]
	}

	var chords, lyrics, raw []string
	for _, cell := range contentCellRe.FindAllStringSubmatch(area, -1) {
		kind, text := cell[1], cleanText(cell[2])
		switch kind {
		case "chords":
			chords = append(chords, text)
		case "song":
			lyrics = append(lyrics, text)
		}
		raw = append(raw, text)
	}

	content.Chords = strings.Join(chords, "\n")
	content.Lyrics = strings.Join(lyrics, "\n")
	content.RawText = strings.Join(raw, "\n")
	return content
}

// cleanText flattens a fragment of markup into plain text: line breaks
// become newlines, remaining tags are stripped, entities are unescaped.
func cleanText(s string) string {
	s = brRe.ReplaceAllString(s, "\n")
	s = tagRe.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(s)
}

func absoluteLink(href, base string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return base + "/" + strings.TrimLeft(href, "/")
}
