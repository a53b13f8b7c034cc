package request

import "github.com/Guyuepp/blog-comments/domain"

type Comment struct {
	Comment  string `json:"comment" binding:"required,max=2000"`
	ParentID *int64 `json:"parent_id" binding:"omitempty,gt=0"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		Text:     r.Comment,
		ParentID: r.ParentID,
	}
}
