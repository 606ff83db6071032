package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isanz/inkwell-be/internal/auth"
	"github.com/isanz/inkwell-be/internal/models"
	"github.com/isanz/inkwell-be/internal/services"
	"github.com/rs/zerolog/log"
)

// PostHandler handles HTTP requests for posts. Every route here sits
// behind the RequireUser guard, so the identity is never anonymous.
type PostHandler struct {
	posts services.PostServiceProvider
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts services.PostServiceProvider) *PostHandler {
	return &PostHandler{posts: posts}
}

// PostPayload defines the structure for create and update requests.
type PostPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PostView is a post together with whether the caller owns it.
type PostView struct {
	models.Post
	IsAuthor bool `json:"isAuthor"`
}

// Create handles the request to create a new post. Success redirects to
// the post's page.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := auth.IdentityFromContext(r.Context()).User

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.posts.Create(user.ID, payload.Title, payload.Body)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			writeErrors(w, verr.Messages)
			return
		}
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to create post")
		http.Error(w, "Failed to create post", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/post/"+post.ID, http.StatusSeeOther)
}

// Get handles the request to view a single post.
func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := auth.IdentityFromContext(r.Context()).User

	post, err := h.posts.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			writeNotFound(w)
			return
		}
		http.Error(w, "Failed to retrieve post", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PostView{Post: post, IsAuthor: post.OwnerID == user.ID})
}

// Dashboard lists the caller's own posts.
func (h *PostHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user := auth.IdentityFromContext(r.Context()).User

	posts, err := h.posts.ListByOwner(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to list posts")
		http.Error(w, "Failed to retrieve posts", http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(posts)
}

// Update handles the request to edit an existing post. Success redirects
// to the post's page.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := auth.IdentityFromContext(r.Context()).User
	id := chi.URLParam(r, "id")

	var payload PostPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	post, err := h.posts.Update(id, user.ID, payload.Title, payload.Body)
	if err != nil {
		h.writeMutationError(w, err, id, user.ID)
		return
	}

	http.Redirect(w, r, "/post/"+post.ID, http.StatusSeeOther)
}

// Delete handles the request to remove a post. Success redirects home.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := auth.IdentityFromContext(r.Context()).User
	id := chi.URLParam(r, "id")

	if err := h.posts.Delete(id, user.ID); err != nil {
		h.writeMutationError(w, err, id, user.ID)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// writeMutationError maps update/delete failures to their outcomes:
// not-found pages, the deny page for non-owners, and validation lists.
func (h *PostHandler) writeMutationError(w http.ResponseWriter, err error, postID, userID string) {
	var verr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrPostNotFound):
		writeNotFound(w)
	case errors.Is(err, services.ErrNotOwner):
		log.Warn().Str("post_id", postID).Str("user_id", userID).Msg("Blocked mutation by non-owner")
		writeDeny(w)
	case errors.As(err, &verr):
		writeErrors(w, verr.Messages)
	default:
		log.Error().Err(err).Str("post_id", postID).Msg("Post mutation failed")
		http.Error(w, "Failed to modify post", http.StatusInternalServerError)
	}
}

func writeNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": "post not found"})
}

// writeDeny renders the unauthorized page. The success status is the
// existing contract: the deny view is a page, not a redirect or an HTTP
// error.
func writeDeny(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
