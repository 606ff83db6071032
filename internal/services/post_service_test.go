package services

import (
	"testing"

	"github.com/isanz/inkwell-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPostService(t *testing.T) (*PostService, models.User, models.User) {
	t.Helper()

	db := newTestDB(t)
	users := NewUserService(db)

	alice, err := users.Register("alice", "password1")
	require.NoError(t, err)
	bob, err := users.Register("bob", "password1")
	require.NoError(t, err)

	return NewPostService(db), alice, bob
}

func TestCreatePost(t *testing.T) {
	posts, alice, _ := setupPostService(t)

	post, err := posts.Create(alice.ID, "Hi", "world")
	require.NoError(t, err)
	assert.NotEmpty(t, post.ID)
	assert.Equal(t, alice.ID, post.OwnerID)
	assert.False(t, post.CreatedAt.IsZero())

	got, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.Title)
	assert.Equal(t, "world", got.Body)
}

func TestCreatePost_SanitizesMarkup(t *testing.T) {
	posts, alice, _ := setupPostService(t)

	post, err := posts.Create(alice.ID, "<b>Hi</b>", "<p>world</p><script>x()</script>")
	require.NoError(t, err)
	assert.Equal(t, "Hi", post.Title)
	assert.Equal(t, "world", post.Body)

	// Entity-encoded markup must reach storage as plain text, not tags.
	post, err = posts.Create(alice.ID, "&lt;em&gt;Hi&lt;/em&gt;", "world &lt;script&gt;x()&lt;/script&gt;")
	require.NoError(t, err)
	assert.Equal(t, "Hi", post.Title)
	assert.Equal(t, "world", post.Body)

	stored, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.Title, "<")
	assert.NotContains(t, stored.Body, "<")
}

func TestCreatePost_Validation(t *testing.T) {
	posts, alice, _ := setupPostService(t)

	_, err := posts.Create(alice.ID, "", "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.GreaterOrEqual(t, len(verr.Messages), 2)
}

func TestGetPost_NotFound(t *testing.T) {
	posts, _, _ := setupPostService(t)

	_, err := posts.GetByID("missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestUpdatePost_OwnerSucceeds(t *testing.T) {
	posts, alice, _ := setupPostService(t)

	post, err := posts.Create(alice.ID, "Hi", "world")
	require.NoError(t, err)

	updated, err := posts.Update(post.ID, alice.ID, "Hello", "there")
	require.NoError(t, err)
	assert.Equal(t, "Hello", updated.Title)
	assert.Equal(t, alice.ID, updated.OwnerID)

	got, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "there", got.Body)
}

func TestUpdatePost_NonOwnerBlocked(t *testing.T) {
	posts, alice, bob := setupPostService(t)

	post, err := posts.Create(alice.ID, "Hi", "world")
	require.NoError(t, err)

	_, err = posts.Update(post.ID, bob.ID, "Hacked", "content")
	assert.ErrorIs(t, err, ErrNotOwner)

	// Stored post unchanged.
	got, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.Title)
}

func TestUpdatePost_NoChanges(t *testing.T) {
	posts, alice, _ := setupPostService(t)

	post, err := posts.Create(alice.ID, "Hi", "world")
	require.NoError(t, err)

	_, err = posts.Update(post.ID, alice.ID, "Hi", "world")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"no changes made"}, verr.Messages)

	got, err := posts.GetByID(post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi", got.Title)
	assert.Equal(t, "world", got.Body)
}

func TestUpdatePost_NotFound(t *testing.T) {
	posts, alice, _ := setupPostService(t)

	_, err := posts.Update("missing", alice.ID, "Hi", "world")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost(t *testing.T) {
	posts, alice, bob := setupPostService(t)

	post, err := posts.Create(alice.ID, "Hi", "world")
	require.NoError(t, err)

	// Non-owner is blocked and the post survives.
	err = posts.Delete(post.ID, bob.ID)
	assert.ErrorIs(t, err, ErrNotOwner)
	_, err = posts.GetByID(post.ID)
	require.NoError(t, err)

	// Owner succeeds.
	require.NoError(t, posts.Delete(post.ID, alice.ID))
	_, err = posts.GetByID(post.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, posts.Delete(post.ID, alice.ID), ErrPostNotFound)
}

func TestListByOwner(t *testing.T) {
	posts, alice, bob := setupPostService(t)

	_, err := posts.Create(alice.ID, "First", "one")
	require.NoError(t, err)
	_, err = posts.Create(bob.ID, "Other", "two")
	require.NoError(t, err)

	list, err := posts.ListByOwner(alice.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "First", list[0].Title)
}
