package domain

import (
	"context"
	"time"
)

// Comment domain model. ParentID is nil for top-level comments; a non-nil
// ParentID must reference another comment on the same post.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`

	// LikeCount and LikedByMe are computed per request, never stored.
	LikeCount int64 `json:"like_count"`
	LikedByMe bool  `json:"liked_by_me"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create stores a new comment. The returned comment carries its
	// author and zero like state.
	Create(ctx context.Context, c *Comment) error

	// Update changes the message of an own comment.
	// Returns ErrNotFound if the comment is absent, ErrForbidden if
	// userID is not the author.
	Update(ctx context.Context, commentID, userID int64, message string) (Comment, error)

	// Delete removes an own comment together with its reply subtree
	// and all likes on the removed comments.
	Delete(ctx context.Context, commentID, userID int64) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (*Comment, error)
	// FetchByPost 获取某篇文章的全部评论, 按创建时间倒序
	FetchByPost(ctx context.Context, postID int64) ([]Comment, error)
	UpdateMessage(ctx context.Context, id int64, message string) error
	// DeleteWithReplies 级联删除评论及其所有子孙评论和相关点赞
	DeleteWithReplies(ctx context.Context, id int64) error
}
