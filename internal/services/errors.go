package services

import (
	"errors"
	"strings"
)

// Sentinel errors returned by the services; handlers map them to HTTP
// outcomes with errors.Is.
var (
	ErrDuplicateUsername  = errors.New("username is already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPostNotFound       = errors.New("post not found")
	ErrNotOwner           = errors.New("not the post owner")
)

// ValidationError carries every message accumulated for a rejected input so
// the client can display the complete list at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
