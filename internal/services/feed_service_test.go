package services_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/services"
)

func TestIndexSinglePost(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "name")
	group := f.createGroup(t, "first")

	post, err := f.postService.Create(author.ID, models.CreatePostRequest{
		Text:    "T",
		GroupID: &group.ID,
	}, "")
	require.NoError(t, err)

	page, err := f.feedService.Index(1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, post.ID, page.Posts[0].ID)
	assert.Equal(t, "T", page.Posts[0].Text)
	assert.Equal(t, "name", page.Posts[0].Author.Username)
	assert.EqualValues(t, 1, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestIndexMostRecentFirst(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "name")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	old := f.createPost(t, author.ID, nil, "old", base)
	mid := f.createPost(t, author.ID, nil, "mid", base.Add(time.Hour))
	newest := f.createPost(t, author.ID, nil, "new", base.Add(2*time.Hour))

	page, err := f.feedService.Index(1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, newest.ID, page.Posts[0].ID)
	assert.Equal(t, mid.ID, page.Posts[1].ID)
	assert.Equal(t, old.ID, page.Posts[2].ID)
}

func TestIndexTieBreakOnEqualTimestamps(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "name")
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	first := f.createPost(t, author.ID, nil, "first", at)
	second := f.createPost(t, author.ID, nil, "second", at)

	page, err := f.feedService.Index(1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 2)
	// Same creation time: higher id wins.
	assert.Equal(t, second.ID, page.Posts[0].ID)
	assert.Equal(t, first.ID, page.Posts[1].ID)
}

func TestIndexPagination(t *testing.T) {
	f := newFixture(t, 3)
	author := f.createUser(t, "name")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		f.createPost(t, author.ID, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	page, err := f.feedService.Index(1)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 3)
	assert.Equal(t, 3, page.TotalPages)
	assert.EqualValues(t, 7, page.TotalItems)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrevious)
	assert.Equal(t, "post 6", page.Posts[0].Text)

	page, err = f.feedService.Index(3)
	require.NoError(t, err)
	assert.Len(t, page.Posts, 1)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrevious)
	assert.Equal(t, "post 0", page.Posts[0].Text)
}

func TestPageNumberClampsToValidRange(t *testing.T) {
	f := newFixture(t, 3)
	author := f.createUser(t, "name")
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		f.createPost(t, author.ID, nil, fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute))
	}

	// Far past the end: clamp to the last page.
	page, err := f.feedService.Index(99)
	require.NoError(t, err)
	assert.Equal(t, 2, page.Number)
	assert.Len(t, page.Posts, 2)

	// Below the start: clamp to the first page.
	page, err = f.feedService.Index(-4)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Number)
	assert.Len(t, page.Posts, 3)
}

func TestGroupScope(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "name")
	group := f.createGroup(t, "first")
	other := f.createGroup(t, "second")

	inGroup := f.createPost(t, author.ID, &group.ID, "grouped", time.Now())
	f.createPost(t, author.ID, &other.ID, "elsewhere", time.Now())
	f.createPost(t, author.ID, nil, "ungrouped", time.Now())

	got, page, err := f.feedService.Group("first", 1)
	require.NoError(t, err)
	assert.Equal(t, group.ID, got.ID)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, inGroup.ID, page.Posts[0].ID)
}

func TestGroupScopeUnknownSlug(t *testing.T) {
	f := newFixture(t, 10)

	_, _, err := f.feedService.Group("missing", 1)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProfileScope(t *testing.T) {
	f := newFixture(t, 10)
	author := f.createUser(t, "author")
	other := f.createUser(t, "other")

	mine := f.createPost(t, author.ID, nil, "mine", time.Now())
	f.createPost(t, other.ID, nil, "theirs", time.Now())

	got, page, err := f.feedService.Profile("author", 1)
	require.NoError(t, err)
	assert.Equal(t, author.ID, got.ID)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, mine.ID, page.Posts[0].ID)
}

func TestFollowingFeedFollowsThenUnfollows(t *testing.T) {
	f := newFixture(t, 10)
	a := f.createUser(t, "a")
	b := f.createUser(t, "b")
	post := f.createPost(t, b.ID, nil, "by b", time.Now())

	require.NoError(t, f.followService.Follow(a.ID, b.Username))

	page, err := f.feedService.Following(a.ID, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, post.ID, page.Posts[0].ID)

	require.NoError(t, f.followService.Unfollow(a.ID, b.Username))

	page, err = f.feedService.Following(a.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.EqualValues(t, 0, page.TotalItems)
}

func TestFollowingFeedEmptyWhenFollowingNobody(t *testing.T) {
	f := newFixture(t, 10)
	a := f.createUser(t, "a")
	b := f.createUser(t, "b")
	f.createPost(t, b.ID, nil, "by b", time.Now())

	page, err := f.feedService.Following(a.ID, 1)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
	assert.EqualValues(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestFollowingFeedExcludesOwnAndOthersPosts(t *testing.T) {
	f := newFixture(t, 10)
	a := f.createUser(t, "a")
	b := f.createUser(t, "b")
	c := f.createUser(t, "c")

	f.createPost(t, a.ID, nil, "own post", time.Now())
	followed := f.createPost(t, b.ID, nil, "followed post", time.Now())
	f.createPost(t, c.ID, nil, "unfollowed post", time.Now())

	require.NoError(t, f.followService.Follow(a.ID, b.Username))

	page, err := f.feedService.Following(a.ID, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, followed.ID, page.Posts[0].ID)
}

func TestFollowingFeedRequiresAuthentication(t *testing.T) {
	f := newFixture(t, 10)

	_, err := f.feedService.Following(0, 1)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}
