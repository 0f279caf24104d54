package mysql

import (
	"context"
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/oakheim/blog-comments/domain"
	"github.com/oakheim/blog-comments/internal/repository/mysql/model"
)

// MySQL error 1062: duplicate entry for a unique key
const errDuplicateEntry = 1062

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{
		DB: db,
	}
}

func (m *likeRepository) Exists(ctx context.Context, userID, commentID int64) (bool, error) {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *likeRepository) Create(ctx context.Context, like domain.CommentLike) error {
	likeModel := model.NewCommentLikeFromDomain(like)
	err := m.DB.WithContext(ctx).Create(&likeModel).Error
	if err != nil {
		var mysqlErr *mysqldriver.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
			return domain.ErrConflict
		}
		return err
	}
	return nil
}

func (m *likeRepository) Remove(ctx context.Context, userID, commentID int64) error {
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentLike{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *likeRepository) CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error) {
	res := make(map[int64]int64)
	if len(commentIDs) == 0 {
		return res, nil
	}

	var rows []struct {
		CommentID int64
		Likes     int64
	}
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Select("comment_id, COUNT(*) AS likes").
		Where("comment_id IN ?", commentIDs).
		Group("comment_id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		res[row.CommentID] = row.Likes
	}
	return res, nil
}

func (m *likeRepository) LikedCommentIDs(ctx context.Context, userID int64, commentIDs []int64) ([]int64, error) {
	if len(commentIDs) == 0 {
		return nil, nil
	}

	var ids []int64
	err := m.DB.WithContext(ctx).
		Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id IN ?", userID, commentIDs).
		Pluck("comment_id", &ids).
		Error

	return ids, err
}
