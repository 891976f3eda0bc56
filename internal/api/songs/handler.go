package songs

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/jamoveo/jamoveo-backend/internal/models"
	"github.com/jamoveo/jamoveo-backend/internal/render"
)

// Fetcher is the song search and content capability the handlers
// consume; the tab4u client implements it.
type Fetcher interface {
	Search(ctx context.Context, query string) ([]models.SongSummary, error)
	SongContent(ctx context.Context, link string) (*models.SongContent, error)
}

// SongHandler holds the dependencies for handling song-related HTTP requests.
type SongHandler struct {
	Fetcher Fetcher
}

// SearchSongs handles the HTTP GET request to search for songs.
// It expects the search text as a query parameter "query".
func (h *SongHandler) SearchSongs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "Missing query parameter", http.StatusBadRequest)
		return
	}

	results, err := h.Fetcher.Search(r.Context(), query)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Error searching songs for %q: %v", query, err)
		return
	}
	if len(results) == 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "No songs found"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(results)
	log.Printf("Search for %q returned %d songs", query, len(results))
}

// GetSongContent handles the HTTP GET request to fetch a song's full
// content by its "link" query parameter. When an "instrument" parameter
// is also given, the response carries the content pre-split into display
// lines for that instrument.
func (h *SongHandler) GetSongContent(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if link == "" {
		http.Error(w, "Missing link parameter", http.StatusBadRequest)
		return
	}

	content, err := h.Fetcher.SongContent(r.Context(), link)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		log.Printf("Error fetching song content for %q: %v", link, err)
		return
	}

	res := struct {
		*models.SongContent
		Lines []render.Line `json:"lines,omitempty"`
	}{SongContent: content}

	if instrument := r.URL.Query().Get("instrument"); models.ValidInstrument(instrument) {
		res.Lines = render.ForInstrument(*content, models.Instrument(instrument))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
