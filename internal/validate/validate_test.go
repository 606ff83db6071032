package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_StripsMarkup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", Sanitize("  <b>hello</b> <script>evil()</script>world "))
	assert.Equal(t, "plain", Sanitize("plain"))
	assert.Equal(t, "", Sanitize("<img src=x onerror=alert(1)>"))
}

// Entity-encoded markup must not survive sanitization as live markup, and
// plain text containing entities must come back as plain text.
func TestSanitize_EntityEncodedMarkup(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Sanitize("&lt;img src=x onerror=alert(1)&gt;"))
	assert.Equal(t, "hello", Sanitize("&lt;b&gt;hello&lt;/b&gt;"))
	// Double-encoded input cannot smuggle markup either.
	assert.Equal(t, "", Sanitize("&amp;lt;script&amp;gt;x()&amp;lt;/script&amp;gt;"))
	assert.Equal(t, "a & b", Sanitize("a &amp; b"))
}

func TestRegistration_Valid(t *testing.T) {
	t.Parallel()

	username, msgs := Registration("  alice  ", "password1")
	assert.Empty(t, msgs)
	assert.Equal(t, "alice", username)
}

// Validation accumulates every applicable message instead of stopping at
// the first failure.
func TestRegistration_AccumulatesErrors(t *testing.T) {
	t.Parallel()

	_, msgs := Registration("ab", "short")
	require.GreaterOrEqual(t, len(msgs), 2)
	assert.Contains(t, msgs, "username must be between 3 and 20 characters")
	assert.Contains(t, msgs, "password must be between 8 and 18 characters")
}

func TestRegistration_UsernameRules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		username string
		want     string
	}{
		{"empty", "", "username is required"},
		{"punctuation", "al!ce", "username may only contain letters and numbers"},
		{"space inside", "al ce", "username may only contain letters and numbers"},
		{"too long", "abcdefghijklmnopqrstu", "username must be between 3 and 20 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, msgs := Registration(tc.username, "password1")
			assert.Contains(t, msgs, tc.want)
		})
	}
}

func TestRegistration_PasswordBounds(t *testing.T) {
	t.Parallel()

	_, msgs := Registration("alice", "")
	assert.Contains(t, msgs, "password is required")

	_, msgs = Registration("alice", "1234567")
	assert.Contains(t, msgs, "password must be between 8 and 18 characters")

	_, msgs = Registration("alice", "1234567890123456789")
	assert.Contains(t, msgs, "password must be between 8 and 18 characters")

	_, msgs = Registration("alice", "12345678")
	assert.Empty(t, msgs)
}

func TestPostContent_SanitizesBeforeValidating(t *testing.T) {
	t.Parallel()

	// Markup-only input must be sanitized first and then rejected as empty.
	title, body, msgs := PostContent("<b></b>", "<script>x()</script>")
	assert.Empty(t, title)
	assert.Empty(t, body)
	assert.Contains(t, msgs, "title is required")
	assert.Contains(t, msgs, "body is required")
}

func TestPostContent_TitleBound(t *testing.T) {
	t.Parallel()

	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}

	_, _, msgs := PostContent(string(long), "body")
	assert.Contains(t, msgs, "title must be at most 50 characters")

	_, _, msgs = PostContent(string(long[:50]), "body")
	assert.Empty(t, msgs)
}

func TestPostContent_CleansContent(t *testing.T) {
	t.Parallel()

	title, body, msgs := PostContent(" <em>Hi</em> ", "<p>world</p>")
	require.Empty(t, msgs)
	assert.Equal(t, "Hi", title)
	assert.Equal(t, "world", body)
}
