package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Guyuepp/blog-comments/domain"
	"github.com/Guyuepp/blog-comments/internal/repository/mysql/model"
)

type tokenRepository struct {
	DB *gorm.DB
}

var _ domain.TokenRepository = (*tokenRepository)(nil)

func NewTokenRepository(db *gorm.DB) *tokenRepository {
	return &tokenRepository{DB: db}
}

func (r *tokenRepository) GetByKey(ctx context.Context, key string) (domain.Token, error) {
	return r.first(ctx, "`key` = ?", key)
}

func (r *tokenRepository) GetByUserID(ctx context.Context, userID int64) (domain.Token, error) {
	return r.first(ctx, "user_id = ?", userID)
}

func (r *tokenRepository) first(ctx context.Context, query string, arg any) (domain.Token, error) {
	var token model.Token
	err := r.DB.WithContext(ctx).First(&token, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Token{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Token{}, err
	}
	return token.ToDomain(), nil
}

func (r *tokenRepository) Store(ctx context.Context, t *domain.Token) error {
	m := model.NewTokenFromDomain(t)
	err := r.DB.WithContext(ctx).Create(m).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrConflict
	}
	if err != nil {
		return err
	}
	t.CreatedAt = m.CreatedAt
	return nil
}
