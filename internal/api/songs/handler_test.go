package songs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jamoveo/jamoveo-backend/internal/models"
)

type stubFetcher struct {
	results []models.SongSummary
	content *models.SongContent
	err     error
}

func (s *stubFetcher) Search(ctx context.Context, query string) ([]models.SongSummary, error) {
	return s.results, s.err
}

func (s *stubFetcher) SongContent(ctx context.Context, link string) (*models.SongContent, error) {
	return s.content, s.err
}

func get(handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSearchSongs(t *testing.T) {
	t.Run("missing query", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{}}
		if rec := get(h.SearchSongs, "/api/songs/search-songs"); rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("no results", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{}}
		if rec := get(h.SearchSongs, "/api/songs/search-songs?query=zzz"); rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})

	t.Run("fetcher failure", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{err: errors.New("timeout")}}
		if rec := get(h.SearchSongs, "/api/songs/search-songs?query=x"); rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
	})

	t.Run("results", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{results: []models.SongSummary{
			{Title: "Hey Jude", Artist: "The Beatles", Link: "X"},
		}}}
		rec := get(h.SearchSongs, "/api/songs/search-songs?query=jude")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		var results []models.SongSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &results); err != nil {
			t.Fatalf("Bad response body: %v", err)
		}
		if len(results) != 1 || results[0].Title != "Hey Jude" {
			t.Errorf("Unexpected results: %+v", results)
		}
	})
}

func TestGetSongContent(t *testing.T) {
	content := &models.SongContent{Chords: "C\nG", Lyrics: "Hey\nJude", RawText: "C\nHey\nG\nJude"}

	t.Run("missing link", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{content: content}}
		if rec := get(h.GetSongContent, "/api/songs/get-song-content"); rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("content without instrument", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{content: content}}
		rec := get(h.GetSongContent, "/api/songs/get-song-content?link=X")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		var res struct {
			Chords string          `json:"chords"`
			Lines  json.RawMessage `json:"lines"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("Bad response body: %v", err)
		}
		if res.Chords != "C\nG" {
			t.Errorf("Unexpected chords %q", res.Chords)
		}
		if len(res.Lines) != 0 {
			t.Errorf("Expected no lines without an instrument, got %s", res.Lines)
		}
	})

	t.Run("content split for vocals", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{content: content}}
		rec := get(h.GetSongContent, "/api/songs/get-song-content?link=X&instrument=vocals")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		var res struct {
			Lines []struct {
				Chords string `json:"chords"`
				Lyrics string `json:"lyrics"`
			} `json:"lines"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("Bad response body: %v", err)
		}
		if len(res.Lines) != 2 || res.Lines[0].Lyrics != "Hey" || res.Lines[0].Chords != "" {
			t.Errorf("Expected lyric-only lines for vocals, got %+v", res.Lines)
		}
	})

	t.Run("fetcher failure", func(t *testing.T) {
		h := &SongHandler{Fetcher: &stubFetcher{err: errors.New("not found")}}
		if rec := get(h.GetSongContent, "/api/songs/get-song-content?link=X"); rec.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d", rec.Code)
		}
	})
}
