package domain

import (
	"context"
	"time"
)

// CommentLike is representing a like record. At most one row exists per
// (UserID, CommentID) pair, enforced by a unique index in storage.
type CommentLike struct {
	UserID    int64
	CommentID int64
	CreatedAt time.Time
}

// LikeRepository defines the contract for like persistence.
type LikeRepository interface {
	// Exists reports whether userID currently likes commentID.
	Exists(ctx context.Context, userID, commentID int64) (bool, error)

	// Create inserts a like record.
	// Returns ErrConflict if the record already exists.
	Create(ctx context.Context, like CommentLike) error

	// Remove deletes a like record.
	// Returns ErrNotFound if there is nothing to delete.
	Remove(ctx context.Context, userID, commentID int64) error

	// CountByComments 按评论ID聚合点赞数
	CountByComments(ctx context.Context, commentIDs []int64) (map[int64]int64, error)

	// LikedCommentIDs returns the subset of commentIDs that userID
	// has liked.
	LikedCommentIDs(ctx context.Context, userID int64, commentIDs []int64) ([]int64, error)
}

// LikeUsecase defines the business logic contract for the like toggle.
type LikeUsecase interface {
	// Toggle flips the like state of (userID, commentID).
	// Returns true when the call left the pair in the Liked state.
	Toggle(ctx context.Context, commentID, userID int64) (bool, error)
}
