package comment

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oakheim/blog-comments/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	userRepo    domain.UserRepository
	bloomRepo   domain.BloomRepository
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository, userRepo domain.UserRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
		bloomRepo:   bloomRepo,
	}
}

func (s *service) mustExists(ctx context.Context, id int64) error {
	exists, err := s.bloomRepo.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return domain.ErrNotFound
	}

	return nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if strings.TrimSpace(c.Message) == "" {
		return domain.ErrBadParamInput
	}

	if err := s.mustExists(ctx, c.PostID); err != nil {
		return domain.ErrNotFound
	}
	if _, err := s.postRepo.GetByID(ctx, c.PostID); err != nil {
		return err
	}

	// A parent must exist and live on the same post, otherwise the
	// threading invariant breaks.
	if c.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *c.ParentID)
		if err != nil {
			return domain.ErrBadParamInput
		}
		if parent.PostID != c.PostID {
			return domain.ErrBadParamInput
		}
	}

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return err
	}

	author, err := s.userRepo.GetByID(ctx, c.UserID)
	if err != nil {
		logrus.Warnf("failed to resolve author %d for comment %d: %v", c.UserID, c.ID, err)
	} else {
		c.User = &author
	}

	// A fresh comment cannot have been liked yet.
	c.LikeCount = 0
	c.LikedByMe = false
	return nil
}

func (s *service) Update(ctx context.Context, commentID, userID int64, message string) (domain.Comment, error) {
	if strings.TrimSpace(message) == "" {
		return domain.Comment{}, domain.ErrBadParamInput
	}

	existing, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return domain.Comment{}, domain.ErrNotFound
	}
	if existing.UserID != userID {
		return domain.Comment{}, domain.ErrForbidden
	}

	if err := s.commentRepo.UpdateMessage(ctx, commentID, message); err != nil {
		return domain.Comment{}, err
	}

	existing.Message = message
	return *existing, nil
}

func (s *service) Delete(ctx context.Context, commentID, userID int64) error {
	existing, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return domain.ErrNotFound
	}
	if existing.UserID != userID {
		return domain.ErrForbidden
	}

	return s.commentRepo.DeleteWithReplies(ctx, commentID)
}
