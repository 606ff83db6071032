package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isanz/inkwell-be/internal/auth"
	"github.com/isanz/inkwell-be/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	users services.UserServiceProvider
	codec auth.TokenCodec
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, codec auth.TokenCodec) *AuthHandler {
	return &AuthHandler{users: users, codec: codec}
}

// CredentialsPayload defines the structure for register and login requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register handles new user registration. Success starts a session and
// redirects home; failure returns the full list of validation messages.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Register(payload.Username, payload.Password)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			writeErrors(w, verr.Messages)
		case errors.Is(err, services.ErrDuplicateUsername):
			writeErrors(w, []string{services.ErrDuplicateUsername.Error()})
		default:
			log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
			http.Error(w, "Failed to register user", http.StatusInternalServerError)
		}
		return
	}

	h.startSession(w, r, user.ID)
}

// Login handles user authentication. The two failure messages stay
// distinct, matching existing behavior.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.users.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) || errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Login failed")
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	h.startSession(w, r, user.ID)
}

// Logout clears the session cookie and redirects home.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// startSession issues a token for the user, sets the session cookie, and
// redirects to the landing page.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, userID string) {
	token, err := h.codec.Issue(userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to issue session token")
		http.Error(w, "Failed to start session", http.StatusInternalServerError)
		return
	}

	auth.SetSessionCookie(w, token)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// writeErrors returns the accumulated validation messages as one response.
func writeErrors(w http.ResponseWriter, msgs []string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(map[string][]string{"errors": msgs})
}
