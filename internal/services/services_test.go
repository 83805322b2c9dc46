package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/anonto42/microblog/backend/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	))
	return db
}

type fixture struct {
	db       *gorm.DB
	users    repositories.UserRepository
	groups   repositories.GroupRepository
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	follows  repositories.FollowRepository

	postService    *services.PostService
	commentService *services.CommentService
	followService  *services.FollowService
	feedService    *services.FeedService
}

func newFixture(t *testing.T, pageSize int) *fixture {
	db := setupTestDB(t)
	f := &fixture{
		db:       db,
		users:    repositories.NewPostgresUserRepository(db),
		groups:   repositories.NewPostgresGroupRepository(db),
		posts:    repositories.NewPostgresPostRepository(db),
		comments: repositories.NewPostgresCommentRepository(db),
		follows:  repositories.NewPostgresFollowRepository(db),
	}
	f.postService = services.NewPostService(f.posts, f.groups)
	f.commentService = services.NewCommentService(f.comments, f.posts)
	f.followService = services.NewFollowService(f.follows, f.users)
	f.feedService = services.NewFeedService(f.posts, f.groups, f.users, f.follows, pageSize)
	return f
}

func (f *fixture) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, f.users.CreateUser(user))
	return user
}

func (f *fixture) createGroup(t *testing.T, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: "Group " + slug, Slug: slug, Description: "test group"}
	require.NoError(t, f.groups.CreateGroup(group))
	return group
}

func (f *fixture) createPost(t *testing.T, authorID uint, groupID *uint, text string, createdAt time.Time) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, GroupID: groupID, Text: text, CreatedAt: createdAt}
	require.NoError(t, f.posts.CreatePost(post))
	return post
}
