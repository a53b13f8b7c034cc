package domain

import "time"

// CommentNode is a comment together with its nested replies.
type CommentNode struct {
	ID        int64          `json:"id"`
	ArticleID int64          `json:"article_id"`
	Text      string         `json:"comment"`
	ParentID  *int64         `json:"parent_id"`
	Level     int            `json:"level"`
	IsRoot    bool           `json:"is_root"`
	UserID    int64          `json:"user_id"`
	CreateDt  time.Time      `json:"create_dt"`
	Children  []*CommentNode `json:"children"`
}
