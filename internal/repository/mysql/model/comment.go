package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

type Comment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `gorm:"column:article_id;not null;index"`
	Comment   string    `gorm:"column:comment;type:text;not null"`
	ParentID  *int64    `gorm:"column:parent_id;index"`
	Level     int       `gorm:"column:level;not null;default:0"`
	IsRoot    bool      `gorm:"column:is_root;not null;default:false"`
	UserID    int64     `gorm:"column:user_id;not null"`
	CreateDt  time.Time `gorm:"column:create_dt;type:datetime(6);index"`
}

func (Comment) TableName() string {
	return "comment"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		Comment:   c.Text,
		ParentID:  c.ParentID,
		Level:     c.Level,
		IsRoot:    c.IsRoot,
		UserID:    c.UserID,
		CreateDt:  c.CreateDt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:        m.ID,
		ArticleID: m.ArticleID,
		Text:      m.Comment,
		ParentID:  m.ParentID,
		Level:     m.Level,
		IsRoot:    m.IsRoot,
		UserID:    m.UserID,
		CreateDt:  m.CreateDt,
	}
}
