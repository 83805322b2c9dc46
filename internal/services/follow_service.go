package services

import (
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
)

// FollowService maintains the directed follower→author graph. Follow and
// Unfollow are idempotent: repeating either call leaves state unchanged
// after the first effective one, and following yourself is always a no-op.
type FollowService struct {
	follows repositories.FollowRepository
	users   repositories.UserRepository
}

// NewFollowService creates a new FollowService
func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) *FollowService {
	return &FollowService{follows: followRepo, users: userRepo}
}

func (s *FollowService) author(username string) (*models.User, error) {
	author, err := s.users.GetUserByUsername(username)
	if err != nil {
		return nil, notFound(err)
	}
	return author, nil
}

// Follow creates the edge user→author if it does not already exist.
func (s *FollowService) Follow(userID uint, username string) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	author, err := s.author(username)
	if err != nil {
		return err
	}
	if author.ID == userID {
		return nil
	}

	following, err := s.follows.IsFollowing(userID, author.ID)
	if err != nil {
		return err
	}
	if following {
		return nil
	}

	err = s.follows.CreateFollow(&models.Follow{UserID: userID, AuthorID: author.ID})
	if pkgerrors.Is(err, gorm.ErrDuplicatedKey) {
		// Two near-simultaneous follows for the same pair; the unique
		// index keeps a single row either way.
		return nil
	}
	return err
}

// Unfollow removes the edge user→author; removing an absent edge is a no-op.
func (s *FollowService) Unfollow(userID uint, username string) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	author, err := s.author(username)
	if err != nil {
		return err
	}
	return s.follows.DeleteFollow(userID, author.ID)
}

// IsFollowing reports whether the user currently follows the author.
// Anonymous callers follow nobody.
func (s *FollowService) IsFollowing(userID uint, username string) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	author, err := s.author(username)
	if err != nil {
		return false, err
	}
	return s.follows.IsFollowing(userID, author.ID)
}

// FollowedAuthorIDs returns the user's outbound author set, consumed by the
// feed assembler.
func (s *FollowService) FollowedAuthorIDs(userID uint) ([]uint, error) {
	return s.follows.GetFollowedAuthorIDs(userID)
}

// Followers lists the users following the named author.
func (s *FollowService) Followers(username string) ([]models.User, error) {
	author, err := s.author(username)
	if err != nil {
		return nil, err
	}
	return s.follows.GetFollowers(author.ID)
}

// Following lists the authors the named user follows.
func (s *FollowService) Following(username string) ([]models.User, error) {
	user, err := s.author(username)
	if err != nil {
		return nil, err
	}
	return s.follows.GetFollowing(user.ID)
}
