package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakheim/blog-comments/domain"
)

type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Exists(ctx context.Context, userID, commentID int64) (bool, error) {
	args := m.Called(ctx, userID, commentID)
	return args.Bool(0), args.Error(1)
}

func (m *LikeRepository) Create(ctx context.Context, like domain.CommentLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *LikeRepository) Remove(ctx context.Context, userID, commentID int64) error {
	args := m.Called(ctx, userID, commentID)
	return args.Error(0)
}

func (m *LikeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *LikeRepository) LikedCommentIDs(ctx context.Context, userID int64, commentIDs []int64) ([]int64, error) {
	args := m.Called(ctx, userID, commentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) Toggle(ctx context.Context, commentID, userID int64) (bool, error) {
	args := m.Called(ctx, commentID, userID)
	return args.Bool(0), args.Error(1)
}
