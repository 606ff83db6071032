package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/isanz/inkwell-be/internal/auth"
	"github.com/isanz/inkwell-be/internal/models"
	"github.com/isanz/inkwell-be/internal/validate"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	FindByID(id string) (models.User, error)
	FindByUsername(username string) (models.User, error)
	Register(username, password string) (models.User, error)
	Authenticate(username, password string) (models.User, error)
}

// UserService is the credential store plus the registration and login
// flows built on it.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// FindByID retrieves a single user by their ID.
func (s *UserService) FindByID(id string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// FindByUsername retrieves a single user by username, including the
// password hash for credential checks.
func (s *UserService) FindByUsername(username string) (models.User, error) {
	var user models.User
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// Register validates the input, hashes the password, and creates the user.
// The existence pre-check is best-effort UX only; two concurrent
// registrations can both pass it, and the UNIQUE constraint on username is
// the authoritative backstop. Either path surfaces ErrDuplicateUsername.
func (s *UserService) Register(username, password string) (models.User, error) {
	username, msgs := validate.Registration(username, password)
	if len(msgs) > 0 {
		return models.User{}, &ValidationError{Messages: msgs}
	}

	if _, err := s.FindByUsername(username); err == nil {
		return models.User{}, ErrDuplicateUsername
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, password_hash, created_at) VALUES(?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Username, user.PasswordHash, user.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrDuplicateUsername
		}
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Authenticate verifies a user's credentials. The two failure modes stay
// distinguishable ("user not found" vs "invalid credentials"), matching the
// product's existing behavior.
func (s *UserService) Authenticate(username, password string) (models.User, error) {
	user, err := s.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// isUniqueViolation reports whether an insert lost the race to the
// username UNIQUE constraint.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
