package repositories

import (
	"github.com/anonto42/microblog/backend/internal/models"
	"gorm.io/gorm"
)

// postOrder is the canonical "most recent first" ordering for every post
// listing. The id tie-break keeps pages stable when timestamps collide.
const postOrder = "created_at DESC, id DESC"

// PostRepository defines the interface for post data operations. List
// methods return empty slices, never errors, when nothing matches. Updates
// do not check identity; callers must have passed authorization already.
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	UpdatePost(post *models.Post) error
	GetAllPosts(offset, limit int) ([]models.Post, error)
	GetPostsByGroupID(groupID uint, offset, limit int) ([]models.Post, error)
	GetPostsByAuthorID(authorID uint, offset, limit int) ([]models.Post, error)
	GetPostsByAuthorIDs(authorIDs []uint, offset, limit int) ([]models.Post, error)
	CountAllPosts() (int64, error)
	CountPostsByGroupID(groupID uint) (int64, error)
	CountPostsByAuthorID(authorID uint) (int64, error)
	CountPostsByAuthorIDs(authorIDs []uint) (int64, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID with its author and group preloaded
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.Preload("Author").Preload("Group").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost persists the mutable fields of an existing post. Author and
// creation time are immutable and never touched.
func (r *PostgresPostRepository) UpdatePost(post *models.Post) error {
	return r.db.Model(post).Updates(map[string]interface{}{
		"text":     post.Text,
		"group_id": post.GroupID,
		"image":    post.Image,
	}).Error
}

func (r *PostgresPostRepository) listPosts(q *gorm.DB, offset, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := q.Preload("Author").Preload("Group").
		Order(postOrder).Offset(offset).Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// GetAllPosts retrieves a page of posts across all authors and groups
func (r *PostgresPostRepository) GetAllPosts(offset, limit int) ([]models.Post, error) {
	return r.listPosts(r.db.Model(&models.Post{}), offset, limit)
}

// GetPostsByGroupID retrieves a page of posts published into a group
func (r *PostgresPostRepository) GetPostsByGroupID(groupID uint, offset, limit int) ([]models.Post, error) {
	return r.listPosts(r.db.Where("group_id = ?", groupID), offset, limit)
}

// GetPostsByAuthorID retrieves a page of posts by a single author
func (r *PostgresPostRepository) GetPostsByAuthorID(authorID uint, offset, limit int) ([]models.Post, error) {
	return r.listPosts(r.db.Where("author_id = ?", authorID), offset, limit)
}

// GetPostsByAuthorIDs retrieves a page of posts by any of the given authors,
// used for the followed-authors feed
func (r *PostgresPostRepository) GetPostsByAuthorIDs(authorIDs []uint, offset, limit int) ([]models.Post, error) {
	if len(authorIDs) == 0 {
		return []models.Post{}, nil
	}
	return r.listPosts(r.db.Where("author_id IN ?", authorIDs), offset, limit)
}

// CountAllPosts returns the total number of posts
func (r *PostgresPostRepository) CountAllPosts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Count(&count).Error
	return count, err
}

// CountPostsByGroupID returns the number of posts in a group
func (r *PostgresPostRepository) CountPostsByGroupID(groupID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("group_id = ?", groupID).Count(&count).Error
	return count, err
}

// CountPostsByAuthorID returns the number of posts by an author
func (r *PostgresPostRepository) CountPostsByAuthorID(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// CountPostsByAuthorIDs returns the number of posts by any of the given authors
func (r *PostgresPostRepository) CountPostsByAuthorIDs(authorIDs []uint) (int64, error) {
	if len(authorIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id IN ?", authorIDs).Count(&count).Error
	return count, err
}
