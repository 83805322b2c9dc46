package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/services"
)

func TestCommentAdd(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "author")
	reader := f.createUser(t, "reader")
	post := f.createPost(t, author.ID, nil, "a post", time.Now())

	comment, err := f.commentService.Add(reader.ID, post.ID, models.CreateCommentRequest{Text: "nice"})
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, reader.ID, comment.AuthorID)

	comments, err := f.commentService.ListForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "nice", comments[0].Text)
	assert.Equal(t, "reader", comments[0].Author.Username)
}

func TestCommentAddAnonymousRejectedBeforeAnyRow(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "author")
	post := f.createPost(t, author.ID, nil, "a post", time.Now())

	// The post exists, but the missing identity is what rejects the call.
	_, err := f.commentService.Add(0, post.ID, models.CreateCommentRequest{Text: "drive-by"})
	assert.ErrorIs(t, err, services.ErrUnauthorized)
	assert.NotErrorIs(t, err, services.ErrNotFound)

	comments, err := f.commentService.ListForPost(post.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentAddMissingPost(t *testing.T) {
	f := newFixture(t, 10)
	reader := f.createUser(t, "reader")

	_, err := f.commentService.Add(reader.ID, 404, models.CreateCommentRequest{Text: "nice"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCommentsListedOldestFirst(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "author")
	post := f.createPost(t, author.ID, nil, "a post", time.Now())

	for _, text := range []string{"first", "second", "third"} {
		_, err := f.commentService.Add(author.ID, post.ID, models.CreateCommentRequest{Text: text})
		require.NoError(t, err)
	}

	comments, err := f.commentService.ListForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "third", comments[2].Text)
}
