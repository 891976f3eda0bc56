package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jamoveo/jamoveo-backend/internal/models"
	"github.com/jamoveo/jamoveo-backend/internal/storage"
)

const (
	minUsernameLen = 3
	minPasswordLen = 8
	tokenLifetime  = 7 * 24 * time.Hour
)

// AuthHandler holds the dependencies for handling registration and login.
type AuthHandler struct {
	Store     storage.UserStore
	JWTSecret []byte
	AdminCode string // registration code required to create the admin account
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// RegisterUser handles the HTTP POST request to create a player account.
// It expects a JSON payload with "username", "password" and "instrument".
func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username   string `json:"username"`
		Password   string `json:"password"`
		Instrument string `json:"instrument"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		log.Printf("Error decoding request body for RegisterUser: %v", err)
		return
	}

	if req.Username == "" || req.Password == "" || req.Instrument == "" {
		writeMessage(w, http.StatusBadRequest, "Username, password and instrument are required")
		return
	}
	if len(req.Password) < minPasswordLen {
		writeMessage(w, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}
	if len(req.Username) < minUsernameLen {
		writeMessage(w, http.StatusBadRequest, "Username must be at least 3 characters long")
		return
	}
	if !models.ValidInstrument(req.Instrument) {
		writeMessage(w, http.StatusBadRequest, "Please select a valid instrument")
		return
	}

	user, err := h.createUser(r, req.Username, req.Password, models.Instrument(req.Instrument), false)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
	log.Printf("Registered player: %s (%s)", user.Username, user.Instrument)
}

// RegisterAdmin handles the HTTP POST request to create the admin
// account. It expects "username", "password" and the admin registration
// "code". Only one admin account may exist.
func (h *AuthHandler) RegisterAdmin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Code     string `json:"code"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		log.Printf("Error decoding request body for RegisterAdmin: %v", err)
		return
	}

	if req.Username == "" || req.Password == "" || req.Code == "" {
		writeMessage(w, http.StatusBadRequest, "Username, password and admin code are required")
		return
	}
	if len(req.Password) < minPasswordLen {
		writeMessage(w, http.StatusBadRequest, "Password must be at least 8 characters long")
		return
	}
	if len(req.Username) < minUsernameLen {
		writeMessage(w, http.StatusBadRequest, "Username must be at least 3 characters long")
		return
	}
	if strings.TrimSpace(req.Code) != h.AdminCode {
		writeMessage(w, http.StatusForbidden, "Invalid admin registration code")
		return
	}

	hasAdmin, err := h.Store.HasAdmin(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Registration failed. Please try again.")
		log.Printf("Error checking for existing admin: %v", err)
		return
	}
	if hasAdmin {
		writeMessage(w, http.StatusConflict, "An admin account already exists")
		return
	}

	user, err := h.createUser(r, req.Username, req.Password, models.InstrumentNone, true)
	if err != nil {
		h.writeCreateError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
	log.Printf("Registered admin: %s", user.Username)
}

// Login handles the HTTP POST request to authenticate a user. On success
// it returns the user identity together with a signed session token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		log.Printf("Error decoding request body for Login: %v", err)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.Store.UserByName(r.Context(), req.Username)
	if errors.Is(err, storage.ErrNotFound) {
		writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	} else if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Login failed. Please try again.")
		log.Printf("Error loading user %s: %v", req.Username, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.signToken(user)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Login failed. Please try again.")
		log.Printf("Error signing token for %s: %v", user.Username, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user, "token": token})
	log.Printf("User logged in: %s - Role: %s", user.Username, roleName(user.IsAdmin))
}

func (h *AuthHandler) createUser(r *http.Request, username, password string, instrument models.Instrument, isAdmin bool) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:         uuid.NewString(),
		Username:   username,
		Password:   string(hashed),
		Instrument: instrument,
		IsAdmin:    isAdmin,
	}
	if err := h.Store.CreateUser(r.Context(), user); err != nil {
		return nil, err
	}
	return user, nil
}

func (h *AuthHandler) writeCreateError(w http.ResponseWriter, err error) {
	if errors.Is(err, storage.ErrExists) {
		writeMessage(w, http.StatusConflict, "This username is already taken")
		return
	}
	writeMessage(w, http.StatusInternalServerError, "Registration failed. Please try again.")
	log.Printf("Error creating user: %v", err)
}

func (h *AuthHandler) signToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        user.ID,
		"username":   user.Username,
		"isAdmin":    user.IsAdmin,
		"instrument": user.Instrument,
		"iat":        now.Unix(),
		"exp":        now.Add(tokenLifetime).Unix(),
	})
	return token.SignedString(h.JWTSecret)
}

func roleName(isAdmin bool) string {
	if isAdmin {
		return "Admin"
	}
	return "Player"
}
