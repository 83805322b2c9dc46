package services

import (
	"math"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
)

// Page is a bounded, ordered subset of a post listing plus the metadata
// needed to navigate to adjacent subsets.
type Page struct {
	Posts       []models.Post `json:"posts"`
	Number      int           `json:"page"`
	TotalItems  int64         `json:"total_items"`
	TotalPages  int           `json:"total_pages"`
	HasNext     bool          `json:"has_next"`
	HasPrevious bool          `json:"has_previous"`
}

// FeedService assembles paginated post listings for the four scopes: all
// posts, a group's posts, an author's posts, and posts by the authors a user
// follows. Every read recomputes from the store; there is no cache.
type FeedService struct {
	posts    repositories.PostRepository
	groups   repositories.GroupRepository
	users    repositories.UserRepository
	follows  repositories.FollowRepository
	pageSize int
}

// NewFeedService creates a new FeedService with a fixed page size.
func NewFeedService(
	postRepo repositories.PostRepository,
	groupRepo repositories.GroupRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	pageSize int,
) *FeedService {
	if pageSize < 1 {
		pageSize = 10
	}
	return &FeedService{
		posts:    postRepo,
		groups:   groupRepo,
		users:    userRepo,
		follows:  followRepo,
		pageSize: pageSize,
	}
}

// paginate clamps the requested page number to the valid range, fetches the
// corresponding slice and fills in the navigation metadata. Out-of-range
// page numbers never error.
func (s *FeedService) paginate(
	page int,
	count func() (int64, error),
	list func(offset, limit int) ([]models.Post, error),
) (*Page, error) {
	total, err := count()
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(s.pageSize)))
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	posts := []models.Post{}
	if total > 0 {
		posts, err = list((page-1)*s.pageSize, s.pageSize)
		if err != nil {
			return nil, err
		}
	}

	return &Page{
		Posts:       posts,
		Number:      page,
		TotalItems:  total,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}, nil
}

// Index returns a page of all posts, most recent first.
func (s *FeedService) Index(page int) (*Page, error) {
	return s.paginate(page, s.posts.CountAllPosts, s.posts.GetAllPosts)
}

// Group returns the group identified by slug and a page of its posts.
func (s *FeedService) Group(slug string, page int) (*models.Group, *Page, error) {
	group, err := s.groups.GetGroupBySlug(slug)
	if err != nil {
		return nil, nil, notFound(err)
	}
	p, err := s.paginate(page,
		func() (int64, error) { return s.posts.CountPostsByGroupID(group.ID) },
		func(offset, limit int) ([]models.Post, error) {
			return s.posts.GetPostsByGroupID(group.ID, offset, limit)
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return group, p, nil
}

// Profile returns the named author and a page of their posts.
func (s *FeedService) Profile(username string, page int) (*models.User, *Page, error) {
	author, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, nil, notFound(err)
	}
	p, err := s.paginate(page,
		func() (int64, error) { return s.posts.CountPostsByAuthorID(author.ID) },
		func(offset, limit int) ([]models.Post, error) {
			return s.posts.GetPostsByAuthorID(author.ID, offset, limit)
		},
	)
	if err != nil {
		return nil, nil, err
	}
	return author, p, nil
}

// Following returns a page of posts by the authors the user follows. A user
// following nobody gets an empty page with zero totals, not an error.
func (s *FeedService) Following(userID uint, page int) (*Page, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	authorIDs, err := s.follows.GetFollowedAuthorIDs(userID)
	if err != nil {
		return nil, err
	}
	return s.paginate(page,
		func() (int64, error) { return s.posts.CountPostsByAuthorIDs(authorIDs) },
		func(offset, limit int) ([]models.Post, error) {
			return s.posts.GetPostsByAuthorIDs(authorIDs, offset, limit)
		},
	)
}
