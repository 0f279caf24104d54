package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oakheim/blog-comments/domain"
	"github.com/oakheim/blog-comments/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

// mysql层只负责数据库操作
var _ domain.PostDBRepository = (*postRepository)(nil)

// NewPostDBRepository 创建数据库操作层
func NewPostDBRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Fetch(ctx context.Context) (res []domain.Post, err error) {
	var posts []model.Post
	err = m.DB.WithContext(ctx).
		Select("id, title, user_id, created_at").
		Order("created_at DESC").
		Find(&posts).
		Error

	if err != nil {
		return
	}

	for _, post := range posts {
		res = append(res, post.ToDomain())
	}

	return
}

func (m *postRepository) GetByID(ctx context.Context, id int64) (res domain.Post, err error) {
	var post model.Post
	err = m.DB.WithContext(ctx).First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return res, domain.ErrNotFound
	} else if err != nil {
		return res, err
	}
	res = post.ToDomain()
	return
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
