package models

// SongSummary is a search result: enough to show a song in a list and to
// fetch its full content later via Link.
type SongSummary struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	Link   string `json:"link"`
	Image  string `json:"image,omitempty"`
}

// SongContent is the fetched body of a song. Chords and Lyrics are
// newline-delimited and meant to be read line-aligned, but the two blocks
// are not guaranteed to have the same number of lines.
type SongContent struct {
	ContentHTML string `json:"contentHtml,omitempty"`
	RawText     string `json:"rawText"`
	Chords      string `json:"chords"`
	Lyrics      string `json:"lyrics"`
}

// FullSong is what gets broadcast to every connected client when the admin
// selects a song: the summary the admin picked plus the fetched content.
type FullSong struct {
	SongSummary
	SongContent
}
