package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/oakheim/blog-comments/domain"
)

type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) Fetch(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type PostCache struct {
	mock.Mock
}

func (m *PostCache) GetPost(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostCache) SetPost(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostCache) GetHome(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostCache) SetHome(ctx context.Context, posts []domain.Post) error {
	args := m.Called(ctx, posts)
	return args.Error(0)
}

type PostUsecase struct {
	mock.Mock
}

func (m *PostUsecase) Fetch(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Post), args.Error(1)
}

func (m *PostUsecase) GetWithComments(ctx context.Context, postID, viewerID int64) (domain.PostDetail, error) {
	args := m.Called(ctx, postID, viewerID)
	return args.Get(0).(domain.PostDetail), args.Error(1)
}

func (m *PostUsecase) InitBloomFilter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
