// Package validate normalizes and constrains user-supplied text before it
// reaches storage or hashing. Sanitization always runs first, even on input
// that validation will reject.
package validate

import (
	"errors"
	"html"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	v     = validator.New()
	strip = bluemonday.StrictPolicy()
)

// Sanitize strips all markup from user-supplied text and trims surrounding
// whitespace. Posts are stored as plain text; any rendering happens at
// display time. Entities are decoded before stripping so entity-encoded
// markup cannot sneak through, and the pass repeats to a fixed point to
// cover double-encoded input.
func Sanitize(s string) string {
	for i := 0; i < 8; i++ {
		next := html.UnescapeString(strip.Sanitize(html.UnescapeString(s)))
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(s)
}

type registrationInput struct {
	Username string `validate:"required,min=3,max=20,alphanum"`
	Password string `validate:"required,min=8,max=18"`
}

// Registration checks a registration form and returns the normalized
// username together with every applicable error message at once. The
// password is checked as submitted, never altered.
func Registration(username, password string) (string, []string) {
	username = strings.TrimSpace(username)
	msgs := messages(v.Struct(registrationInput{Username: username, Password: password}))
	return username, msgs
}

type postInput struct {
	Title string `validate:"required,max=50"`
	Body  string `validate:"required"`
}

// PostContent sanitizes a post's title and body and returns the cleaned
// values together with every applicable error message.
func PostContent(title, body string) (string, string, []string) {
	title = Sanitize(title)
	body = Sanitize(body)
	msgs := messages(v.Struct(postInput{Title: title, Body: body}))
	return title, body, msgs
}

// messages converts validator output into the human-readable list the
// client displays. All field errors are reported, not just the first.
func messages(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	switch fe.Field() {
	case "Username":
		switch fe.Tag() {
		case "required":
			return "username is required"
		case "alphanum":
			return "username may only contain letters and numbers"
		default:
			return "username must be between 3 and 20 characters"
		}
	case "Password":
		if fe.Tag() == "required" {
			return "password is required"
		}
		return "password must be between 8 and 18 characters"
	case "Title":
		if fe.Tag() == "required" {
			return "title is required"
		}
		return "title must be at most 50 characters"
	case "Body":
		return "body is required"
	}
	return fe.Error()
}
