package repository

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/oakheim/blog-comments/domain"
)

// postRepository 协调层，协调缓存和数据库
type postRepository struct {
	db    domain.PostDBRepository
	cache domain.PostCache
	group singleflight.Group
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建协调层repository
func NewPostRepository(db domain.PostDBRepository, cache domain.PostCache) *postRepository {
	return &postRepository{
		db:    db,
		cache: cache,
	}
}

// Fetch 获取文章列表, 优先读首页缓存
func (r *postRepository) Fetch(ctx context.Context) ([]domain.Post, error) {
	posts, err := r.cache.GetHome(ctx)
	if err == nil {
		return posts, nil
	}

	posts, err = r.db.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	// 异步更新缓存
	go func(data []domain.Post) {
		if err := r.cache.SetHome(context.Background(), data); err != nil {
			logrus.Warnf("failed to set home cache: %v", err)
		}
	}(posts)

	return posts, nil
}

// GetByID 根据ID获取文章, 缓存未命中时用singleflight避免缓存击穿
func (r *postRepository) GetByID(ctx context.Context, id int64) (domain.Post, error) {
	post, err := r.cache.GetPost(ctx, id)
	if err == nil {
		return post, nil
	}

	key := "post:" + strconv.FormatInt(id, 10)
	result, err, _ := r.group.Do(key, func() (interface{}, error) {
		p, err := r.db.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}

		go func(data domain.Post) {
			if err := r.cache.SetPost(context.Background(), &data); err != nil {
				logrus.Warnf("failed to set post cache: %v", err)
			}
		}(p)

		return p, nil
	})

	if err != nil {
		return domain.Post{}, err
	}

	return result.(domain.Post), nil
}

// FetchIDs 获取文章ID列表
func (r *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	return r.db.FetchIDs(ctx, cursor, limit)
}
