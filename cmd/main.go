package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"github.com/jamoveo/jamoveo-backend/internal/api/auth"
	"github.com/jamoveo/jamoveo-backend/internal/api/songs"
	"github.com/jamoveo/jamoveo-backend/internal/middleware"
	"github.com/jamoveo/jamoveo-backend/internal/session"
	"github.com/jamoveo/jamoveo-backend/internal/storage"
	"github.com/jamoveo/jamoveo-backend/internal/storage/memory"
	valkeystore "github.com/jamoveo/jamoveo-backend/internal/storage/valkey"
	"github.com/jamoveo/jamoveo-backend/internal/tab4u"
	"github.com/jamoveo/jamoveo-backend/internal/ws"
)

func main() {
	err := godotenv.Load()
	if os.IsNotExist(err) {
		log.Printf("no .env file found, skipping")
	} else if err != nil {
		log.Fatalf("failed loading .env file: %s", err)
	}

	var users storage.UserStore
	if addr := os.Getenv("VALKEY_ADDR"); addr != "" {
		store, err := valkeystore.NewUserStore(addr)
		if err != nil {
			log.Fatalf("failed connecting to valkey: %s", err)
		}
		defer store.Close()
		users = store
		log.Printf("Using valkey user store at %s", addr)
	} else {
		users = memory.NewUserStore()
		log.Printf("Using in-memory user store")
	}

	fetcher := tab4u.NewClient(os.Getenv("TAB4U_BASE_URL"))

	coordinator := session.NewCoordinator(fetcher)
	go coordinator.Run()

	authHandler := &auth.AuthHandler{
		Store:     users,
		JWTSecret: []byte(envOr("JWT_SECRET", "dev-secret")),
		AdminCode: envOr("ADMIN_REG_CODE", "dev-admin"),
	}
	songHandler := &songs.SongHandler{Fetcher: fetcher}
	wsHandler := &ws.Handler{Coordinator: coordinator}

	r := mux.NewRouter()
	r.Use(middleware.CORS(envOr("CORS_ORIGIN", "*")))
	auth.RegisterAuthRoutes(r, authHandler)
	songs.RegisterSongRoutes(r, songHandler)
	r.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		log.Printf("[WS] WebSocket %s", req.URL.String())
		wsHandler.ServeWS(w, req)
	})

	addr := ":" + envOr("PORT", "8080")
	log.Println("Server started at " + addr)
	log.Fatal(http.ListenAndServe(addr, r))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
