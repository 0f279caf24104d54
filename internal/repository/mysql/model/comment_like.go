package model

import (
	"time"

	"github.com/oakheim/blog-comments/domain"
)

type CommentLike struct {
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_comment"`
	CommentID int64     `gorm:"column:comment_id;not null;uniqueIndex:idx_user_comment"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}

func NewCommentLikeFromDomain(cl domain.CommentLike) CommentLike {
	return CommentLike{
		UserID:    cl.UserID,
		CommentID: cl.CommentID,
		CreatedAt: cl.CreatedAt,
	}
}
