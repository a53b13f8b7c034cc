package model

import (
	"time"

	"github.com/Guyuepp/blog-comments/domain"
)

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(150);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(128);not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Username:  m.Username,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Token is keyed by the token string; a user owns at most one.
type Token struct {
	Key       string    `gorm:"column:key;type:char(40);primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"type:datetime"`
}

func (Token) TableName() string {
	return "authtoken_token"
}

func NewTokenFromDomain(t *domain.Token) *Token {
	return &Token{
		Key:       t.Key,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
	}
}

func (m *Token) ToDomain() domain.Token {
	return domain.Token{
		Key:       m.Key,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}
