package auth

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes registers all registration and login routes.
func RegisterAuthRoutes(r *mux.Router, handler *AuthHandler) {
	r.HandleFunc("/api/register", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[Auth] %s %s", r.Method, r.URL.Path)
		handler.RegisterUser(w, r)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/admin/register", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[Auth] %s %s", r.Method, r.URL.Path)
		handler.RegisterAdmin(w, r)
	}).Methods(http.MethodPost)

	r.HandleFunc("/api/login", func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[Auth] %s %s", r.Method, r.URL.Path)
		handler.Login(w, r)
	}).Methods(http.MethodPost)
}
