package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oakheim/blog-comments/domain"
)

type service struct {
	likeRepo domain.LikeRepository
}

var _ domain.LikeUsecase = (*service)(nil)

func NewService(likeRepo domain.LikeRepository) *service {
	return &service{
		likeRepo: likeRepo,
	}
}

// Toggle flips the like state for (userID, commentID). The read-then-write
// pair is not atomic; the unique index on comment_likes is the backstop, so
// a lost race surfaces as ErrConflict or ErrNotFound here and both resolve
// to the state the caller intended.
func (s *service) Toggle(ctx context.Context, commentID, userID int64) (bool, error) {
	liked, err := s.likeRepo.Exists(ctx, userID, commentID)
	if err != nil {
		return false, err
	}

	if liked {
		err := s.likeRepo.Remove(ctx, userID, commentID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return false, err
		}
		if errors.Is(err, domain.ErrNotFound) {
			logrus.Infof("like (%d, %d) already removed by a concurrent request", userID, commentID)
		}
		return false, nil
	}

	err = s.likeRepo.Create(ctx, domain.CommentLike{
		UserID:    userID,
		CommentID: commentID,
	})
	if err != nil && !errors.Is(err, domain.ErrConflict) {
		return false, err
	}
	if errors.Is(err, domain.ErrConflict) {
		logrus.Infof("like (%d, %d) already created by a concurrent request", userID, commentID)
	}
	return true, nil
}
