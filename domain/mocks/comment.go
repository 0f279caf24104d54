package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakheim/blog-comments/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *CommentRepository) FetchByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) UpdateMessage(ctx context.Context, id int64, message string) error {
	args := m.Called(ctx, id, message)
	return args.Error(0)
}

func (m *CommentRepository) DeleteWithReplies(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentUsecase) Update(ctx context.Context, commentID, userID int64, message string) (domain.Comment, error) {
	args := m.Called(ctx, commentID, userID, message)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentUsecase) Delete(ctx context.Context, commentID, userID int64) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}
