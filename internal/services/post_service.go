package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/isanz/inkwell-be/internal/models"
	"github.com/isanz/inkwell-be/internal/validate"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	Create(ownerID, title, body string) (models.Post, error)
	GetByID(id string) (models.Post, error)
	ListByOwner(ownerID string) ([]models.Post, error)
	Update(id, callerID, title, body string) (models.Post, error)
	Delete(id, callerID string) error
}

// PostService provides post CRUD with per-resource ownership enforcement.
// Only the user recorded in owner_id at creation may update or delete a
// post; owner_id itself is never written again.
type PostService struct {
	db *sql.DB
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB) *PostService {
	return &PostService{db: db}
}

// Create sanitizes and validates the content, then stores a new post owned
// by ownerID with its creation time fixed at insert.
func (s *PostService) Create(ownerID, title, body string) (models.Post, error) {
	title, body, msgs := validate.PostContent(title, body)
	if len(msgs) > 0 {
		return models.Post{}, &ValidationError{Messages: msgs}
	}

	post := models.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
	}

	stmt, err := s.db.Prepare("INSERT INTO posts(id, title, body, owner_id, created_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		return models.Post{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(post.ID, post.Title, post.Body, post.OwnerID, post.CreatedAt); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// GetByID retrieves a single post by its ID.
func (s *PostService) GetByID(id string) (models.Post, error) {
	var post models.Post
	row := s.db.QueryRow("SELECT id, title, body, owner_id, created_at FROM posts WHERE id = ?", id)
	err := row.Scan(&post.ID, &post.Title, &post.Body, &post.OwnerID, &post.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Post{}, ErrPostNotFound
		}
		return models.Post{}, err
	}
	return post, nil
}

// ListByOwner retrieves all posts owned by a user, newest first.
func (s *PostService) ListByOwner(ownerID string) ([]models.Post, error) {
	rows, err := s.db.Query("SELECT id, title, body, owner_id, created_at FROM posts WHERE owner_id = ? ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.OwnerID, &post.CreatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// Update replaces a post's title and body after the ownership check.
// Submitting content identical to what is stored is reported as the
// validation message "no changes made" and performs no write.
func (s *PostService) Update(id, callerID, title, body string) (models.Post, error) {
	post, err := s.GetByID(id)
	if err != nil {
		return models.Post{}, err
	}
	if post.OwnerID != callerID {
		return models.Post{}, ErrNotOwner
	}

	title, body, msgs := validate.PostContent(title, body)
	if len(msgs) > 0 {
		return models.Post{}, &ValidationError{Messages: msgs}
	}
	if title == post.Title && body == post.Body {
		return models.Post{}, &ValidationError{Messages: []string{"no changes made"}}
	}

	if _, err := s.db.Exec("UPDATE posts SET title = ?, body = ? WHERE id = ?", title, body, id); err != nil {
		return models.Post{}, err
	}

	post.Title = title
	post.Body = body
	return post, nil
}

// Delete removes a post after the ownership check.
func (s *PostService) Delete(id, callerID string) error {
	post, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if post.OwnerID != callerID {
		return ErrNotOwner
	}

	_, err = s.db.Exec("DELETE FROM posts WHERE id = ?", id)
	return err
}
