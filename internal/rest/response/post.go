package response

import "github.com/oakheim/blog-comments/domain"

type PostSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// NewPostSummaryFromDomain: Domain -> Response
func NewPostSummaryFromDomain(p *domain.Post) PostSummary {
	return PostSummary{
		ID:    p.ID,
		Title: p.Title,
	}
}

type PostDetail struct {
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Comments []Comment `json:"comments"`
}

func NewPostDetailFromDomain(d *domain.PostDetail) PostDetail {
	comments := make([]Comment, len(d.Comments))
	for i := range d.Comments {
		comments[i] = NewCommentFromDomain(&d.Comments[i])
	}
	return PostDetail{
		Title:    d.Post.Title,
		Body:     d.Post.Body,
		Comments: comments,
	}
}
