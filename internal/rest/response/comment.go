package response

import "github.com/oakheim/blog-comments/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type Comment struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	ParentID  *int64 `json:"parentId"`
	CreatedAt string `json:"createdAt"`
	Author    Author `json:"author"`
	LikeCount int64  `json:"likeCount"`
	LikedByMe bool   `json:"likedByMe"`
}

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	res := Comment{
		ID:        c.ID,
		Message:   c.Message,
		ParentID:  c.ParentID,
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		LikeCount: c.LikeCount,
		LikedByMe: c.LikedByMe,
	}
	if c.User != nil {
		res.Author = Author{
			ID:   c.User.ID,
			Name: c.User.Name,
		}
	} else {
		res.Author = Author{ID: c.UserID}
	}
	return res
}
