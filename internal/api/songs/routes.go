package songs

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSongRoutes registers the song search and content routes.
func RegisterSongRoutes(r *mux.Router, handler *SongHandler) {
	r.HandleFunc("/api/songs/search-songs", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[Songs] %s %s", r.Method, r.URL.Path)
		handler.SearchSongs(w, r)
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/songs/get-song-content", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[Songs] %s %s", r.Method, r.URL.Path)
		handler.GetSongContent(w, r)
	}).Methods(http.MethodGet)
}
