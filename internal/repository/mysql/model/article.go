package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

type Article struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(45);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	UserID    int64     `gorm:"column:user_id;not null"`
	UpdatedAt time.Time `gorm:"type:datetime"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Article) TableName() string {
	return "article"
}

func (m *Article) ToDomain() domain.Article {
	return domain.Article{
		ID:        m.ID,
		Title:     m.Title,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
