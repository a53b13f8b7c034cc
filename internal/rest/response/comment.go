package response

import "github.com/Guyuepp/blog-comments/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type Comment struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	Comment   string `json:"comment"`
	ParentID  *int64 `json:"parent_id"`
	Level     int    `json:"level"`
	IsRoot    bool   `json:"is_root"`
	UserID    int64  `json:"user_id"`
	CreateDt  string `json:"create_dt"`
}

// Node 评论及其全部子评论
type Node struct {
	Comment
	Children []*Node `json:"children"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Comment:   c.Text,
		ParentID:  c.ParentID,
		Level:     c.Level,
		IsRoot:    c.IsRoot,
		UserID:    c.UserID,
		CreateDt:  c.CreateDt.Format(DateTimeFormat),
	}
}

func NewCommentsFromDomain(list []domain.Comment) []Comment {
	res := make([]Comment, len(list))
	for i := range list {
		res[i] = NewCommentFromDomain(&list[i])
	}
	return res
}

// NewNodeFromDomain converts n and its descendants. Children is never nil.
func NewNodeFromDomain(n *domain.CommentNode) *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		Comment: Comment{
			ID:        n.ID,
			ArticleID: n.ArticleID,
			Comment:   n.Text,
			ParentID:  n.ParentID,
			Level:     n.Level,
			IsRoot:    n.IsRoot,
			UserID:    n.UserID,
			CreateDt:  n.CreateDt.Format(DateTimeFormat),
		},
		Children: make([]*Node, 0, len(n.Children)),
	}
	for _, child := range n.Children {
		res.Children = append(res.Children, NewNodeFromDomain(child))
	}
	return res
}

func NewForestFromDomain(roots []*domain.CommentNode) []*Node {
	res := make([]*Node, 0, len(roots))
	for _, r := range roots {
		res = append(res, NewNodeFromDomain(r))
	}
	return res
}
