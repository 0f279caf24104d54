package request

import "github.com/oakheim/blog-comments/domain"

type CreateComment struct {
	Message  string `json:"message" binding:"required,notblank"`
	ParentID *int64 `json:"parentId"`
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain() domain.Comment {
	return domain.Comment{
		Message:  r.Message,
		ParentID: r.ParentID,
	}
}

type UpdateComment struct {
	Message string `json:"message" binding:"required,notblank"`
}
